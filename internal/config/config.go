package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Storage backend names.
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds all configuration for the state daemon.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"SHOPSTATE_HTTP_PORT" envDefault:"8090"`

	// Storage backend: file, redis, or postgres.
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"file"`

	// File backend
	StateDir string `env:"STATE_DIR" envDefault:"./data"`

	// Redis backend
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// State TTL in hours for the redis backend (0 = no expiry).
	StateTTL int `env:"STATE_TTL_HOURS" envDefault:"0"`

	// Postgres backend
	PostgresDSN string `env:"POSTGRES_DSN" envDefault:""`

	// Per-subscriber buffer of the notice fan-out.
	NoticeBuffer int `env:"NOTICE_BUFFER" envDefault:"16"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("load shopstate config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	switch c.StorageBackend {
	case BackendFile, BackendRedis, BackendPostgres:
	default:
		return fmt.Errorf("unknown storage backend: %q", c.StorageBackend)
	}

	if c.StorageBackend == BackendPostgres && c.PostgresDSN == "" {
		return fmt.Errorf("POSTGRES_DSN is required for the postgres backend")
	}

	if c.StateTTL < 0 {
		return fmt.Errorf("state TTL must not be negative: %d", c.StateTTL)
	}

	return nil
}
