package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("SESSION_TTL_MINUTES", "")
	t.Setenv("APP_ENV", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, EnvDevelopment, cfg.Env)
}

func TestLoadSessionTTL(t *testing.T) {
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")

	t.Setenv("SESSION_TTL_MINUTES", "9")
	assert.Equal(t, 9*time.Minute, Load().SessionTTL)

	// Garbage falls back to the default instead of breaking startup.
	t.Setenv("SESSION_TTL_MINUTES", "soon")
	assert.Equal(t, 5*time.Minute, Load().SessionTTL)

	t.Setenv("SESSION_TTL_MINUTES", "-3")
	assert.Equal(t, 5*time.Minute, Load().SessionTTL)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_TEST_KEY", "value")
	assert.Equal(t, "value", getEnv("SOME_TEST_KEY", "def"))
	assert.Equal(t, "def", getEnv("SOME_MISSING_TEST_KEY", "def"))
}
