package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const RequestIdKey = "request_id"

// RequestLogger tags every request with an id and emits one line with
// method, path, status and elapsed time once the response is written.
// It observes only; it never rejects or modifies a request.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		requestId := uuid.NewString()
		c.Set(RequestIdKey, requestId)
		c.Writer.Header().Set("X-Request-ID", requestId)

		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Int64("elapsed_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Str("request_id", requestId).
			Msg("request")
	}
}
