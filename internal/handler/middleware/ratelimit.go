package middleware

import (
	"log/slog"

	"weekend-booking/internal/handler/httperr"
	"weekend-booking/internal/infra/ratelimit"
	"weekend-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errRateLimited = errs.New("rate limit exceeded")

// LimitRecorder counts requests the limiter turned away.
type LimitRecorder interface {
	RequestLimited(route string)
}

// RateLimit keys requests by route and client IP. When the limiter backend
// fails, failOpen decides whether the request goes through.
func RateLimit(limiter ratelimit.Limiter, failOpen bool, recorder LimitRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		allowed, err := limiter.Allow(c.Request.Context(), route+"|"+c.ClientIP())
		if err != nil {
			slog.Error("Rate limiter unavailable", "error", err, "route", route, "fail_open", failOpen)
			allowed = failOpen
		}
		if !allowed {
			if recorder != nil {
				recorder.RequestLimited(route)
			}
			httperr.TooManyRequests(c, errRateLimited)
			return
		}
		c.Next()
	}
}
