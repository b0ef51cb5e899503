package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key the request ID is stored under.
const RequestIDKey = "RequestID"

const requestIDHeader = "X-Request-ID"

// RequestID ensures every request carries an ID for log correlation. An
// inbound X-Request-ID (for example set by the reverse proxy) is preserved,
// otherwise a new one is generated. The ID is echoed in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()
	}
}
