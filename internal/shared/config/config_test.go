package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	for _, key := range []string{"PORT", "ENV", "DATABASE_URL", "SESSION_TTL", "LOG_FORMAT", "COOKIE_SECURE"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5*time.Minute, cfg.SessionSweepInterval)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.CookieSecure)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("ENV", "prod")
	t.Setenv("PORT", ":9090")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("RENDER_TIMEOUT", "bogus")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("LOG_FORMAT", "")

	cfg := Load()
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.RenderTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigin)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.CookieSecure)
}

func TestLoadReadsDotEnvWithoutOverriding(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SESSION_TTL=45m\nCHROME_PATH=\"/opt/chrome\"\n"), 0o600))
	t.Setenv("SESSION_TTL", "10m")
	t.Setenv("CHROME_PATH", "")
	require.NoError(t, os.Unsetenv("CHROME_PATH"))

	cfg := Load()
	assert.Equal(t, 10*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "/opt/chrome", cfg.ChromePath)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Config{
		Port:                 "http",
		Env:                  "dev",
		SessionTTL:           time.Second,
		SessionSweepInterval: time.Minute,
		RenderTimeout:        time.Second,
		LogFormat:            "xml",
		LogLevel:             "info",
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.Port")
	assert.Contains(t, err.Error(), "Config.SessionTTL")
	assert.Contains(t, err.Error(), "Config.LogFormat")
}
