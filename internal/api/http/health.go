package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pjmaster/project-api/internal/logging"
)

const (
	dbUp       = "up"
	dbDown     = "down"
	dbDisabled = "disabled"

	statusOK       = "ok"
	statusDegraded = "degraded"

	pingTimeout = time.Second
)

// HealthResponse is the body of both health routes. Driver names the
// project store backend (pgx or postgres).
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Driver    string    `json:"driver,omitempty"`
	DB        string    `json:"db"`
}

// Pinger is satisfied by both store backends.
type Pinger interface {
	Ping(ctx context.Context) error
}

type ServiceInfo struct {
	Name    string
	Version string
	Driver  string
}

type HealthHandler struct {
	info ServiceInfo
	db   Pinger
}

// NewHealthHandler accepts a nil db, in which case the database is reported
// as disabled.
func NewHealthHandler(info ServiceInfo, db Pinger) *HealthHandler {
	return &HealthHandler{info: info, db: db}
}

func (h *HealthHandler) check(ctx context.Context) HealthResponse {
	res := HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now().UTC(),
		Service:   h.info.Name,
		Version:   h.info.Version,
		Driver:    h.info.Driver,
		DB:        dbDisabled,
	}
	if h.db == nil {
		return res
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := h.db.Ping(pingCtx); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("driver", h.info.Driver).Msg("project store ping failed")
		res.DB = dbDown
		res.Status = statusDegraded
		return res
	}
	res.DB = dbUp
	return res
}

// Health always answers 200 so dashboards can read the body.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.check(c.Request.Context()))
}

// Ready answers 503 while the project store is unreachable.
func (h *HealthHandler) Ready(c *gin.Context) {
	res := h.check(c.Request.Context())
	status := http.StatusOK
	if res.DB == dbDown {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, res)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.Health)
	r.GET("/healthz", h.Ready)
}
