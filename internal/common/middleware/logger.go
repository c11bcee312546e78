package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"scratchcard-backend/internal/common/logger"
	"scratchcard-backend/internal/common/metrics"
)

// Logger logs each request and feeds the HTTP metrics. m may be nil.
func Logger(m *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery
		if raw != "" {
			path = path + "?" + raw
		}

		// Process request
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		m.RecordHTTPRequest(c.Request.Method, c.FullPath(), status, latency)

		logger.Info().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Int("body_size", c.Writer.Size()).
			Msg("Request processed")
	}
}
