package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atgs/internal/infrastructure/ratelimit"
	"atgs/internal/shared/logger"
	"atgs/internal/shared/utils"
)

// RateLimit enforces the limiter per client IP. A nil limiter disables
// limiting entirely; limiter errors fail open so redis outages never block
// traffic.
func RateLimit(limiter ratelimit.Limiter, limits ratelimit.Limits, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP(), limits)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"client_ip", c.ClientIP(), "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
