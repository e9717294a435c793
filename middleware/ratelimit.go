package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitMessage is the fixed body returned on every rejection.
const RateLimitMessage = "Too many requests. Slow down."

// KeyFunc derives the client identity a window counter is keyed by.
type KeyFunc func(c *gin.Context) string

// WindowCounter counts hits per key inside a fixed window. The returned
// count includes the current hit; the counter resets itself once the
// window elapses. Implementations know nothing about HTTP.
type WindowCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimitOptions configures the fixed-window limiter middleware.
type RateLimitOptions struct {
	Counter WindowCounter
	Max     int
	Window  time.Duration
	KeyFn   KeyFunc
	Logger  zerolog.Logger
}

// RateLimit rejects a client's requests past Max hits per Window with a
// fixed JSON body, short-circuiting everything downstream. Counter
// errors fail open: the backend being down must not take reads down
// with it.
func RateLimit(opts RateLimitOptions) gin.HandlerFunc {
	if opts.KeyFn == nil {
		opts.KeyFn = func(c *gin.Context) string { return c.ClientIP() }
	}

	return func(c *gin.Context) {
		key := opts.KeyFn(c)

		count, err := opts.Counter.Incr(c.Request.Context(), key, opts.Window)
		if err != nil {
			opts.Logger.Error().Err(err).Str("key", key).Msg("rate limit counter failed, allowing request")
			c.Next()
			return
		}

		if count > int64(opts.Max) {
			opts.Logger.Debug().
				Str("key", key).
				Int64("count", count).
				Msg("rate limit exceeded")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": RateLimitMessage})
			return
		}

		c.Next()
	}
}
