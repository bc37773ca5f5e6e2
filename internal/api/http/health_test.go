package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

var (
	pingUp   = pingFunc(func(context.Context) error { return nil })
	pingDown = pingFunc(func(context.Context) error { return errors.New("refused") })
)

func healthRequest(t *testing.T, db Pinger, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	info := ServiceInfo{Name: "project-api", Version: "1.0.0", Driver: "pgx"}
	NewHealthHandler(info, db).RegisterRoutes(router)

	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeHealth(t *testing.T, rr *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var res HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	return res
}

func TestHealth(t *testing.T) {
	cases := []struct {
		name       string
		db         Pinger
		wantDB     string
		wantStatus string
	}{
		{"no database", nil, "disabled", "ok"},
		{"database up", pingUp, "up", "ok"},
		{"database down", pingDown, "down", "degraded"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := healthRequest(t, tc.db, http.MethodGet, "/health")
			require.Equal(t, http.StatusOK, rr.Code)

			res := decodeHealth(t, rr)
			assert.Equal(t, tc.wantStatus, res.Status)
			assert.Equal(t, tc.wantDB, res.DB)
			assert.Equal(t, "project-api", res.Service)
			assert.Equal(t, "1.0.0", res.Version)
			assert.Equal(t, "pgx", res.Driver)
			assert.False(t, res.Timestamp.IsZero())
		})
	}
}

func TestReady(t *testing.T) {
	t.Run("store reachable", func(t *testing.T) {
		rr := healthRequest(t, pingUp, http.MethodGet, "/healthz")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "up", decodeHealth(t, rr).DB)
	})

	t.Run("store unreachable", func(t *testing.T) {
		rr := healthRequest(t, pingDown, http.MethodGet, "/healthz")
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "degraded", decodeHealth(t, rr).Status)
	})

	t.Run("no store configured", func(t *testing.T) {
		rr := healthRequest(t, nil, http.MethodGet, "/healthz")
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestPingUsesDeadline(t *testing.T) {
	var hasDeadline bool
	db := pingFunc(func(ctx context.Context) error {
		_, hasDeadline = ctx.Deadline()
		return nil
	})

	healthRequest(t, db, http.MethodGet, "/health")
	assert.True(t, hasDeadline)
}

func TestHealthMethodNotAllowed(t *testing.T) {
	rr := healthRequest(t, nil, http.MethodPost, "/health")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
