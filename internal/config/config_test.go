package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := Config{}
	require.NoError(t, env.Parse(&cfg))
	require.NoError(t, cfg.Validate())

	require.Empty(t, cfg.API.Addr)
	require.Equal(t, 10*time.Second, cfg.API.Timeout)
	require.False(t, cfg.API.Offline)
	require.Equal(t, "billed.db", cfg.Storage.Path)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("API_ADDR", "https://billed.test")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("API_OFFLINE", "true")
	t.Setenv("STORAGE_PATH", "/tmp/billed.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Config{}
	require.NoError(t, env.Parse(&cfg))
	require.NoError(t, cfg.Validate())

	require.Equal(t, "https://billed.test", cfg.API.Addr)
	require.Equal(t, 5*time.Second, cfg.API.Timeout)
	require.True(t, cfg.API.Offline)
	require.Equal(t, "/tmp/billed.db", cfg.Storage.Path)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestConfig_RejectsBadValues(t *testing.T) {
	t.Setenv("API_ADDR", "not a url")

	cfg := Config{}
	require.NoError(t, env.Parse(&cfg))
	require.Error(t, cfg.Validate())

	t.Setenv("API_ADDR", "")
	t.Setenv("LOG_LEVEL", "chatty")

	cfg = Config{}
	require.NoError(t, env.Parse(&cfg))
	require.Error(t, cfg.Validate())
}
