// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting the service reads.
type Config struct {
	Port        string `env:"PORT"         envDefault:"3000"`
	DatabaseURL string `env:"DATABASE_URL"`
	RedisAddr   string `env:"REDIS_ADDR"`

	// BaseURL overrides the request-derived base for resolved image
	// links; leave empty to derive scheme and host per request.
	BaseURL  string `env:"BASE_URL"`
	ImageDir string `env:"IMAGE_DIR" envDefault:"lesson-images"`

	// MinPhoneDigits is the order phone-length policy. It has moved
	// between deployments (10, then 2), so it stays configurable.
	MinPhoneDigits int `env:"PHONE_MIN_DIGITS" envDefault:"2"`

	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:8080"`
	CacheTTL       time.Duration `env:"CACHE_TTL"       envDefault:"30s"`

	OtelHost         string  `env:"OTEL_HOST"         envDefault:"localhost:4317"`
	TraceProbability float64 `env:"TRACE_PROBABILITY" envDefault:"1.0"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
