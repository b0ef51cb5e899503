package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/bitwild/webstack/internal/api/handlers"
	"github.com/bitwild/webstack/internal/api/middleware"
	"github.com/bitwild/webstack/internal/config"
	"github.com/bitwild/webstack/internal/logging"

	"github.com/gin-gonic/gin"
)

// DefaultMaxHeaderBytes caps request header size on the underlying server.
const DefaultMaxHeaderBytes = 1 << 20 // 1 MB

// Server represents the HTTP application server
type Server struct {
	cfg    *config.Config
	logger *logging.Logger
	router *gin.Engine
}

// New creates a new server instance and assembles the engine, the middleware
// chain, and the route table.
func New(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	// Set release mode for production
	gin.SetMode(gin.ReleaseMode)

	// Disable Gin's own output entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	// Forwarded headers are honored only from the configured proxy peers.
	// An empty list keeps the engine default.
	if len(cfg.TrustedProxies) > 0 {
		if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			return nil, fmt.Errorf("invalid trusted proxies: %w", err)
		}
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		router: router,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recovery(s.logger))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.RequestLogger(s.logger, s.cfg.LogRequests))
	s.router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   s.cfg.RateLimitRPS,
		Burst: s.cfg.RateLimitBurst,
	}))
}

func (s *Server) setupRoutes() {
	greeting := handlers.NewGreetingHandler(s.cfg.Greeting)

	// The route surface is exactly one path. Everything else falls through
	// to the engine's default 404.
	s.router.GET("/", greeting.Root)
}

// Handler exposes the assembled engine. Tests drive it directly through
// httptest without opening a real listener.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen opens the TCP listener. It is split from Serve so that startup
// failures (port already bound, bad address) surface immediately with a
// non-nil error instead of on the first request.
func (s *Server) Listen() (net.Listener, error) {
	listener, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return nil, fmt.Errorf("failed to create listener: %w", err)
	}
	return listener, nil
}

// Serve accepts connections on the given listener until ctx is canceled,
// then drains in-flight requests within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:        s.router,
		ReadTimeout:    s.cfg.ReadTimeout,
		WriteTimeout:   s.cfg.WriteTimeout,
		IdleTimeout:    s.cfg.IdleTimeout,
		MaxHeaderBytes: DefaultMaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening on %s", listener.Addr())
		if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server (within %s)", s.cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server stopped")
	return nil
}
