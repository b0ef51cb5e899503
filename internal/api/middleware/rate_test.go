package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRateLimitRouter(config RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimitMiddleware(config))
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func doGet(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestRateLimit_DisabledByDefault(t *testing.T) {
	router := newRateLimitRouter(RateLimitConfig{})

	for i := 0; i < 20; i++ {
		w := doGet(router)
		if w.Code != http.StatusOK {
			t.Fatalf("Request %d: status = %d, want %d", i, w.Code, http.StatusOK)
		}
		if w.Header().Get("X-RateLimit-Limit") != "" {
			t.Fatal("Expected no rate limit headers when disabled")
		}
	}
}

func TestRateLimit_RejectsAboveBurst(t *testing.T) {
	router := newRateLimitRouter(RateLimitConfig{RPS: 1, Burst: 1})

	first := doGet(router)
	if first.Code != http.StatusOK {
		t.Fatalf("First request: status = %d, want %d", first.Code, http.StatusOK)
	}
	if got := first.Header().Get("X-RateLimit-Limit"); got != "1" {
		t.Errorf("X-RateLimit-Limit = %q, want %q", got, "1")
	}

	second := doGet(router)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("Second request: status = %d, want %d", second.Code, http.StatusTooManyRequests)
	}
	if got := second.Header().Get("Retry-After"); got != "1" {
		t.Errorf("Retry-After = %q, want %q", got, "1")
	}
}

func TestRateLimit_BurstDefaultsToRPS(t *testing.T) {
	router := newRateLimitRouter(RateLimitConfig{RPS: 3})

	for i := 0; i < 3; i++ {
		if w := doGet(router); w.Code != http.StatusOK {
			t.Fatalf("Request %d: status = %d, want %d", i, w.Code, http.StatusOK)
		}
	}

	if w := doGet(router); w.Code != http.StatusTooManyRequests {
		t.Fatalf("Request above burst: status = %d, want %d", w.Code, http.StatusTooManyRequests)
	}
}
