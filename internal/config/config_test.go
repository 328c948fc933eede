package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test defaults and overrides
func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, uint16(8080), cfg.HTTPPort)
	require.Equal(t, "release", cfg.GinMode)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, ":8080", cfg.Addr())

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("GIN_MODE", "test")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err = LoadConfig()
	require.NoError(t, err)
	require.Equal(t, uint16(9090), cfg.HTTPPort)
	require.Equal(t, "test", cfg.GinMode)
	require.Equal(t, "debug", cfg.LogLevel)
}

// Test validation failures
func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("HTTP_PORT", "80")
	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("GIN_MODE", "verbose")
	_, err = LoadConfig()
	require.Error(t, err)
}
