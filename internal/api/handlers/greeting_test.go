package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGreetingHandler_Root(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const greeting = "Hello from the Go app on app.example.com!"

	router := gin.New()
	router.GET("/", NewGreetingHandler(greeting).Root)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != greeting {
		t.Errorf("Body = %q, want %q", w.Body.String(), greeting)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
}

func TestGreetingHandler_ResponseIsStable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/", NewGreetingHandler("hello").Root)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if w.Code != http.StatusOK || w.Body.String() != "hello" {
			t.Fatalf("Request %d: got %d %q, want 200 %q", i, w.Code, w.Body.String(), "hello")
		}
	}
}
