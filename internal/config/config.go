// Package config provides configuration loading using koanf.
// Precedence: environment variables over compiled defaults.
package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/staffihq/staffi-go/internal/domain"
)

// Config holds all client configuration.
type Config struct {
	// Environment identifier: "local", "dev", "prod"
	Environment string `koanf:"environment"`

	// Logging configuration
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	API     APIConfig     `koanf:"api"`
	Session SessionConfig `koanf:"session"`
	Notify  NotifyConfig  `koanf:"notify"`
	Guard   GuardConfig   `koanf:"guard"`

	// OpenTelemetry configuration
	OTEL OTELConfig `koanf:"otel"`
}

// APIConfig holds backend connection configuration.
type APIConfig struct {
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
}

// SessionConfig holds session persistence configuration.
type SessionConfig struct {
	// Path of the session file. Empty keeps the session in memory only.
	Path string `koanf:"path"`
}

// NotifyConfig holds notification display configuration.
type NotifyConfig struct {
	Duration time.Duration `koanf:"duration"`
}

// GuardConfig holds navigation guard configuration.
type GuardConfig struct {
	// Paths that never get a returnUrl attached after a 401.
	PublicPaths []string `koanf:"public_paths"`
}

// OTELConfig holds OpenTelemetry configuration.
type OTELConfig struct {
	Endpoint    string `koanf:"endpoint"` // Empty disables OTLP export
	ServiceName string `koanf:"service_name"`
}

func defaults() *Config {
	return &Config{
		Environment: "local",
		LogLevel:    "info",
		LogFormat:   "json",

		API: APIConfig{
			BaseURL: "http://localhost:8081/api",
			Timeout: 30 * time.Second,
		},
		Session: SessionConfig{
			Path: defaultSessionPath(),
		},
		Notify: NotifyConfig{
			Duration: 5 * time.Second,
		},
		Guard: GuardConfig{
			PublicPaths: []string{"/", "/login"},
		},
		OTEL: OTELConfig{
			ServiceName: "staffi-client",
		},
	}
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".staffi", "session.json")
	}
	return filepath.Join(home, ".staffi", "session.json")
}

// Load loads configuration following the precedence:
// 1. Environment variables with the STAFFI_ prefix (highest)
// 2. Compiled defaults (lowest)
//
// Double underscore separates sections, so STAFFI_API__BASE_URL maps to
// api.base_url while STAFFI_LOG_LEVEL stays the top-level log_level key.
func Load(ctx context.Context) (*Config, error) {
	k := koanf.New(".")

	cfg := defaults()

	err := k.Load(env.Provider("STAFFI_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "STAFFI_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("%w: api.base_url", domain.ErrConfigRequired)
	}
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url %q is not an absolute URL", cfg.API.BaseURL)
	}
	if cfg.Notify.Duration <= 0 {
		return fmt.Errorf("notify.duration must be positive, got %s", cfg.Notify.Duration)
	}
	return nil
}

// IsLocal returns true if running against a local development backend.
func (c *Config) IsLocal() bool {
	return c.Environment == "local"
}

// IsProd returns true if running against the production backend.
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}
