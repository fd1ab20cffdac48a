package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NODE_ENV", "APP_ENV", "SESSION_SECRET", "DOMAIN", "APP_PORT",
		"REDIS_DB", "REDIS_ADDR", "LOGIN_MAX_ATTEMPTS", "HTTP_REQUEST_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_DevelopmentFallsBackToDefaultSecret(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DefaultSessionSecret, cfg.Session.Secret)
	assert.True(t, cfg.Session.UsingDefaultSecret)
	assert.Equal(t, 30*24*time.Hour, cfg.Session.MaxAge())
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("NODE_ENV", "production")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingSessionSecret)
}

func TestLoad_ProductionWithSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("NODE_ENV", "production")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("DOMAIN", "me.example.org")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.App.IsProduction())
	assert.False(t, cfg.Session.UsingDefaultSecret)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.Equal(t, "me.example.org", cfg.Session.Domain)
}

func TestLoad_AppEnvAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "Production")
	t.Setenv("SESSION_SECRET", "x")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.App.IsProduction())
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_DB", "zero")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_IntFallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOGIN_MAX_ATTEMPTS", "nope")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Auth.LoginMaxAttempts)
	assert.Zero(t, cfg.App.RequestTimeout())
	assert.Equal(t, "0.0.0.0:3000", cfg.App.Addr())
}
