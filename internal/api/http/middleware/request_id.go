package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pjmaster/project-api/internal/logging"
)

const RequestIDHeader = "X-Request-Id"

// RequestIDMiddleware ensures every request has a stable request ID.
// - Reads X-Request-Id header if present
// - Otherwise generates a new UUID
// - Stores it in both Gin context and the request context
// - Echoes it back in response header X-Request-Id
// - Logs request details (method, path, status, latency)
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if rid == "" {
			rid = logging.GenerateRequestID()
		}

		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(logging.ContextWithRequestID(c.Request.Context(), rid))
		c.Writer.Header().Set(RequestIDHeader, rid)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		l := logging.Ctx(c.Request.Context())
		ev := l.Info()
		if status >= 500 {
			ev = l.Warn()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
