package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GreetingHandler serves the fixed greeting on the root route. It is the one
// piece of application behavior this process exposes: a static body proving
// liveness behind the reverse proxy.
type GreetingHandler struct {
	greeting string
}

// NewGreetingHandler creates a new greeting handler with the body it serves.
func NewGreetingHandler(greeting string) *GreetingHandler {
	return &GreetingHandler{greeting: greeting}
}

// Root answers GET / with the configured greeting as plain text. The body is
// identical for every request; nothing is read from the request.
func (h *GreetingHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, h.greeting)
}
