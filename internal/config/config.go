package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application process. Values come
// from the environment, optionally seeded from a .env file. The same .env
// file feeds docker-compose, so one file configures the whole stack.
type Config struct {
	Environment string `env:"ENV" envDefault:"development"`

	// HTTP listener. The reverse proxy always targets this port.
	Host string `env:"APP_HOST" envDefault:"0.0.0.0" validate:"omitempty,hostname|ip"`
	Port int    `env:"APP_PORT" envDefault:"8000" validate:"min=1,max=65535"`

	// Response body served on the root route.
	Greeting string `env:"GREETING" envDefault:"Hello from the Go app on app.example.com!" validate:"required"`

	// Peers allowed to set forwarded headers (comma-separated CIDRs or IPs).
	// Empty means the engine default, which trusts everything; the bundle's
	// internal network makes that acceptable, but operators can pin it to the
	// proxy subnet.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:"," validate:"dive,cidr|ip"`

	// Logging
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFile     string `env:"LOG_FILE"`
	LogRequests bool   `env:"LOG_REQUESTS" envDefault:"true"`

	// Rate limiting for the public route. Zero disables the limiter, which is
	// the default: every well-formed request to the root must answer 200.
	RateLimitRPS   int `env:"RATE_LIMIT_RPS" envDefault:"0" validate:"min=0"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST" envDefault:"0" validate:"min=0"`

	// HTTP server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s" validate:"mind=1s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s" validate:"mind=1s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s" validate:"mind=0s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s" validate:"mind=1s"`
}

// Load loads the configuration from environment variables and .env files.
func Load() (*Config, error) {
	// Load .env file if present. godotenv never overrides variables that are
	// already set in the real environment. An ENV-specific file wins over the
	// plain one.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/var/log/webstack/app.log"
		} else {
			cfg.LogFile = "./logs/app.log"
		}
	}

	// A configured rate limit without an explicit burst gets a burst of one
	// full second's worth of requests.
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst == 0 {
		cfg.RateLimitBurst = cfg.RateLimitRPS
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
