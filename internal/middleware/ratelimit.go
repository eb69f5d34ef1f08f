package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"skill-tracking-assistant/pkg/response"
)

// RateLimit enforces the per-client request budget, keyed by client IP.
// Over-limit requests get 429 with the standard envelope.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(m.rate, m.burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware: rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			return
		}

		c.Next()
	}
}
