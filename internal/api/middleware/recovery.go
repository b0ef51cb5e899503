package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/bitwild/webstack/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into 500 responses and logs the stack trace, so a
// single bad request cannot take the process down.
func Recovery(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered: %v | %s %s | %s\n%s",
					err,
					c.Request.Method,
					c.Request.URL.Path,
					c.GetString(RequestIDKey),
					debug.Stack(),
				)

				c.Abort()
				c.String(http.StatusInternalServerError, "internal server error")
			}
		}()

		c.Next()
	}
}
