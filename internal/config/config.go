// Package config loads process configuration from the environment, once at
// startup. Services receive the parsed struct; nothing reads the environment
// at call time.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all process configuration.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"fit-and-fix.db"`
	JWTSecret    string `env:"JWT_SECRET"`
	BcryptCost   int    `env:"BCRYPT_COST" envDefault:"10"`
}

// Load parses configuration from the environment and validates it. A missing
// or short signing secret is a startup failure, never a silent fallback to a
// default key.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 14 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cfg.BcryptCost)
	}

	return cfg, nil
}
