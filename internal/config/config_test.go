package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_COOKIE_SECURE", "true")
	t.Setenv("UPSTREAM_URL", "https://api.example.com/")
	t.Setenv("PUBLIC_BASE_URL", "https://shop.example.com/")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("CORS_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.True(t, cfg.Session.CookieSecure)
	assert.Equal(t, 168*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, "https://api.example.com", cfg.UpstreamURL)
	assert.Equal(t, "https://shop.example.com", cfg.PublicBaseURL)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
	assert.Equal(t, 5*time.Second, cfg.Redis.DialTimeout)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, Production, cfg.Environment())
	assert.True(t, cfg.Environment().IsProduction())
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
}

func TestLoad_RequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	require.NoError(t, os.Unsetenv("SESSION_SECRET"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestParseEnvironment(t *testing.T) {
	tests := map[string]Environment{
		"production":  Production,
		" TESTING ":   Testing,
		"development": Development,
		"staging":     Development,
		"":            Development,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseEnvironment(in), in)
	}
}

func TestLoad_IgnoresUnprefixedKeys(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	require.NoError(t, os.Unsetenv("SESSION_SECRET"))
	t.Setenv("REDIS_URL", "")
	require.NoError(t, os.Unsetenv("REDIS_URL"))
	t.Setenv("SECRET", "from-bare-secret")
	t.Setenv("URL", "redis://unrelated-host:6379")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")

	t.Setenv("SESSION_SECRET", "scoped")
	t.Setenv("SESSION_MAX_AGE", "2h")
	t.Setenv("REDIS_DIAL_TIMEOUT", "1s")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "scoped", cfg.Session.Secret)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 2*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, time.Second, cfg.Redis.DialTimeout)
}
