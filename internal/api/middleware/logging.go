package middleware

import (
	"time"

	"github.com/bitwild/webstack/internal/logging"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request through the application logger.
// When disabled it returns a no-op middleware, so the check costs nothing
// per request.
func RequestLogger(logger *logging.Logger, enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		// ClientIP honors forwarded headers only from trusted proxies,
		// which the server configures on the engine.
		logger.Access(
			method,
			path,
			c.ClientIP(),
			c.GetString(RequestIDKey),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start),
		)
	}
}
