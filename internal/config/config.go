package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the process configuration, sourced from environment variables
// with an optional .env file.
type Config struct {
	HTTPPort uint16 `env:"HTTP_PORT" envDefault:"8080" validate:"min=1024,max=65535"`
	GinMode  string `env:"GIN_MODE"  envDefault:"release" validate:"oneof=debug release test"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warning error fatal panic"`
}

// LoadConfig parses and validates the configuration. A missing .env file is
// not an error.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
