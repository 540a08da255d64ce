package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffihq/staffi-go/internal/config"
	"github.com/staffihq/staffi-go/internal/domain"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)

	assert.Equal(t, "http://localhost:8081/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.NotEmpty(t, cfg.Session.Path)
	assert.Equal(t, 5*time.Second, cfg.Notify.Duration)
	assert.Equal(t, []string{"/", "/login"}, cfg.Guard.PublicPaths)
	assert.Equal(t, "staffi-client", cfg.OTEL.ServiceName)
	assert.Empty(t, cfg.OTEL.Endpoint)
}

func TestIsLocal(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want bool
	}{
		{"local returns true", "local", true},
		{"prod returns false", "prod", false},
		{"dev returns false", "dev", false},
		{"empty returns false", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Environment: tt.env}

			assert.Equal(t, tt.want, cfg.IsLocal())
		})
	}
}

func TestIsProd(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want bool
	}{
		{"prod returns true", "prod", true},
		{"local returns false", "local", false},
		{"dev returns false", "dev", false},
		{"empty returns false", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Environment: tt.env}

			assert.Equal(t, tt.want, cfg.IsProd())
		})
	}
}

func TestLoadWithEnvOverride(t *testing.T) {
	t.Setenv("STAFFI_ENVIRONMENT", "prod")
	t.Setenv("STAFFI_API__BASE_URL", "https://staffi.example.com/api")
	t.Setenv("STAFFI_LOG_LEVEL", "debug")

	cfg, err := config.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, "https://staffi.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsEmptyBaseURL(t *testing.T) {
	t.Setenv("STAFFI_API__BASE_URL", "")

	_, err := config.Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigRequired)
}

func TestLoadRejectsRelativeBaseURL(t *testing.T) {
	t.Setenv("STAFFI_API__BASE_URL", "/api")

	_, err := config.Load(context.Background())

	require.Error(t, err)
}
