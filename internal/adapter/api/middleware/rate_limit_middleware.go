package middleware

import (
	"negobot/internal/infrastructure/ratelimit"
	"negobot/pkg/errors"
	"negobot/pkg/logger"
	"negobot/pkg/response"

	"github.com/labstack/echo/v4"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit enforces the token bucket for the given action, keyed by the
// caller's IP.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sender := c.RealIP()

			allowed, wait := m.limiter.Allow(sender, action)
			if !allowed {
				logger.Warn("Rate limit hit: sender=%s, action=%s, retry in %v", sender, action, wait)
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded, slow down"))
			}

			return next(c)
		}
	}
}
