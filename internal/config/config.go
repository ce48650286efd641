// Package config loads cumprod settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/mfridman/cumprod/internal/logging"
)

// Config holds settings that are not worth a command-line flag.
type Config struct {
	// LogLevel is the threshold for diagnostic output on stderr.
	LogLevel string `env:"CUMPROD_LOG_LEVEL" envDefault:"warning"`
}

// Load parses the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("CUMPROD_LOG_LEVEL: %w", err)
	}
	return &cfg, nil
}
