package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("POSTPARSE_PRIMARY.ENV", "development")
	t.Setenv("POSTPARSE_SERVER.PORT", "8080")
	t.Setenv("POSTPARSE_SERVER.READ_TIMEOUT", "10")
	t.Setenv("POSTPARSE_SERVER.WRITE_TIMEOUT", "10")
	t.Setenv("POSTPARSE_SERVER.IDLE_TIMEOUT", "30")
	t.Setenv("POSTPARSE_SERVER.CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func TestNew_LoadsFromEnv(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.IsDevelopment())
}

func TestNew_DefaultsLogLevel(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestNew_RejectsUnknownEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("POSTPARSE_PRIMARY.ENV", "sandbox")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
