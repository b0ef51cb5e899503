package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitwild/webstack/internal/config"
	"github.com/bitwild/webstack/internal/logging"
	"github.com/bitwild/webstack/internal/server"
	"github.com/bitwild/webstack/internal/version"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server and block until it is told to stop.

The listener address comes from APP_HOST and APP_PORT (or a .env file),
overridable with --host and --port. The process exits non-zero right away
when the address cannot be bound.

Example:
  webstack serve                # Listen on 0.0.0.0:8000
  webstack serve --port 9000    # Override the port`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}

		// Flags win over the environment
		host, _ := cmd.Flags().GetString("host")
		port, _ := cmd.Flags().GetInt("port")
		if host != "" {
			cfg.Host = host
		}
		if port != 0 {
			cfg.Port = port
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to validate configuration: %v\n", err)
			os.Exit(1)
		}

		logConfig := &logging.Config{
			Level:      cfg.LogLevel,
			File:       cfg.LogFile,
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
		}
		if err := logging.InitLogger(logConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
		logger := logging.GetGlobalLogger()
		defer logger.Close()

		logger.Info("Starting webstack %s in %s mode", version.Info(), cfg.Environment)

		srv, err := server.New(cfg, logger)
		if err != nil {
			logger.Error("Failed to create server: %v", err)
			os.Exit(1)
		}

		// Bind before anything else so a taken port fails the process
		// immediately, not on the first request.
		listener, err := srv.Listen()
		if err != nil {
			logger.Error("Failed to start server: %v", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		eg, ctx := errgroup.WithContext(ctx)
		eg.Go(func() error {
			return srv.Serve(ctx, listener)
		})

		if err := eg.Wait(); err != nil {
			logger.Error("Server exited with error: %v", err)
			os.Exit(1)
		}

		logger.Info("Server stopped")
	},
}
