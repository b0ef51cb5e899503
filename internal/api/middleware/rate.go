package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for the rate limiter
type RateLimitConfig struct {
	// Requests per second. Zero disables the limiter entirely.
	RPS int
	// Burst size (number of requests that can be made in a single burst)
	Burst int
}

// RateLimitMiddleware applies a process-wide token bucket to the routes it is
// mounted on. Disabled limiters return a pass-through handler.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.RPS <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	burst := config.Burst
	if burst < 1 {
		burst = config.RPS
	}

	limiter := rate.NewLimiter(rate.Limit(config.RPS), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.Header("Retry-After", "1")
			c.Abort()
			c.String(http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.RPS))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

		c.Next()
	}
}
