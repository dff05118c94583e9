package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ddportal/internal/infrastructure/ratelimit"
	"ddportal/internal/shared/config"
	"ddportal/internal/shared/constants"
	"ddportal/internal/shared/logger"
	"ddportal/internal/shared/utils"
)

// RateLimit throttles write endpoints per authenticated user. Unlimited when
// disabled or when the limiter is unreachable; availability beats throttling.
func RateLimit(limiter ratelimit.RateLimiter, cfg *config.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled || limiter == nil {
			c.Next()
			return
		}

		userID := c.GetUint(constants.ContextKeyUserID)
		key := fmt.Sprintf("user:%d:%s", userID, c.FullPath())

		allowed, err := limiter.Allow(key, ratelimit.Limits{
			PerMinute: cfg.RequestsPerMinute,
			PerHour:   cfg.RequestsPerHour,
			PerDay:    cfg.RequestsPerDay,
		})
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
