package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/pjmaster/project-api/internal/logging"
)

const (
	DriverPgx      = "pgx"
	DriverPostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	App       AppConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DatabaseConfig struct {
	URL            string        `env:"DATABASE_URL"`
	Driver         string        `env:"DB_DRIVER" envDefault:"pgx"`
	MaxConns       int           `env:"DB_MAX_CONNS" envDefault:"10"`
	MinConns       int           `env:"DB_MIN_CONNS" envDefault:"2"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	PingTimeout    time.Duration `env:"DB_PING_TIMEOUT" envDefault:"2s"`
}

type AppConfig struct {
	Name        string `env:"APP_NAME" envDefault:"project-api"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	Version     string `env:"APP_VERSION" envDefault:"1.0.0"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`
}

type CORSConfig struct {
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

// RateLimitConfig configures the process-wide token bucket. RPS <= 0 disables it.
type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"0"`
	Burst int     `env:"RATE_LIMIT_BURST" envDefault:"0"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logging.Info().Msg("no .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	switch c.Database.Driver {
	case DriverPgx, DriverPostgres:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPgx, DriverPostgres, c.Database.Driver)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
