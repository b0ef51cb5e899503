package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newRequestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})
	return router
}

func TestRequestID_GeneratesID(t *testing.T) {
	router := newRequestIDRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get("X-Request-ID")
	if id == "" {
		t.Fatal("Expected X-Request-ID header to be set")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("Expected a valid UUID, got %q: %v", id, err)
	}
	if w.Body.String() != id {
		t.Errorf("Context value = %q, want header value %q", w.Body.String(), id)
	}
}

func TestRequestID_PreservesIncomingID(t *testing.T) {
	router := newRequestIDRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "upstream-id" {
		t.Errorf("X-Request-ID = %q, want %q", got, "upstream-id")
	}
	if w.Body.String() != "upstream-id" {
		t.Errorf("Context value = %q, want %q", w.Body.String(), "upstream-id")
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	router := newRequestIDRouter()

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get("X-Request-ID")
		if seen[id] {
			t.Fatalf("Request ID %q repeated", id)
		}
		seen[id] = true
	}
}
