package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pjmaster/project-api/internal/logging"
	"github.com/pjmaster/project-api/internal/projects/domain"
	"github.com/pjmaster/project-api/internal/storage/postgres"
)

type op string

const (
	opList   op = "list"
	opGet    op = "get"
	opCreate op = "create"
	opUpdate op = "update"
)

const (
	msgCreated = "プロジェクト追加成功"
	msgUpdated = "プロジェクト更新成功"

	msgFetchFailed  = "データ取得に失敗しました"
	msgNotFound     = "プロジェクトが見つかりません"
	msgCreateFailed = "プロジェクト追加に失敗しました"
	msgUpdateFailed = "プロジェクト更新に失敗しました"
	msgBadRequest   = "リクエストが不正です"
)

// statusFor is the only place an error kind becomes an HTTP status. Store
// and unexpected errors share the generic per-operation message so no
// driver detail reaches the client.
func statusFor(o op, err error) (int, gin.H) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, gin.H{"error": msgNotFound}
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, gin.H{"error": msgBadRequest}
	}

	switch o {
	case opCreate:
		return http.StatusInternalServerError, gin.H{"error": msgCreateFailed}
	case opUpdate:
		return http.StatusInternalServerError, gin.H{"error": msgUpdateFailed}
	default:
		return http.StatusInternalServerError, gin.H{"error": msgFetchFailed}
	}
}

func (h *Handler) fail(c *gin.Context, o op, pjCd string, err error) {
	status, body := statusFor(o, err)

	l := logging.Ctx(c.Request.Context())
	ev := l.Debug()
	if status >= http.StatusInternalServerError {
		ev = l.Error()
	}
	ev.Err(err).
		Str("op", string(o)).
		Str("pjCd", pjCd).
		Str("sqlstate", postgres.SQLState(err)).
		Int("status", status).
		Msg("project request failed")

	c.JSON(status, body)
}
