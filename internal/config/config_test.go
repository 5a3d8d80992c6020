package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mayaverse-dev/Maya-Dashboard/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, 5, cfg.Postgres.MaxConns)
	assert.Equal(t, 604800, cfg.Auth.TokenTTLSeconds)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL())
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "./frontend/dist", cfg.Static.Dir)
	assert.Equal(t, "index.html", cfg.Static.Index)
	assert.Equal(t, []int{30}, cfg.Jobs.WarmWindows)
}

func TestLoadLegacyEnvNames(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://stats:pw@db:5432/pledge")
	t.Setenv("DB_POOL_MAX_SIZE", "12")
	t.Setenv("SHARED_JWT_SECRET", "legacy-secret")
	t.Setenv("METRICS_PORTAL_PASSWORD", "legacy-pw")
	t.Setenv("COOKIE_DOMAIN", ".entermaya.com")
	t.Setenv("PORT", "9001")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://stats:pw@db:5432/pledge", cfg.Postgres.DSN)
	assert.Equal(t, 12, cfg.Postgres.MaxConns)
	assert.Equal(t, "legacy-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "legacy-pw", cfg.Auth.PortalPassword)
	assert.Equal(t, ".entermaya.com", cfg.Auth.CookieDomain)
	assert.Equal(t, 9001, cfg.HTTP.Port)
}

func TestTokenTTLFloor(t *testing.T) {
	t.Setenv("JWT_TTL_SECONDS", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Auth.TokenTTLSeconds)
	assert.Equal(t, time.Minute, cfg.Auth.TokenTTL(), "TTL must be floored to one minute")

	assert.Equal(t, time.Minute, config.AuthConfig{TokenTTLSeconds: 0}.TokenTTL())
	assert.Equal(t, time.Minute, config.AuthConfig{TokenTTLSeconds: -10}.TokenTTL())
	assert.Equal(t, 2*time.Minute, config.AuthConfig{TokenTTLSeconds: 120}.TokenTTL())
}

func TestSecretsHaveNoDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Auth.JWTSecret)
	assert.Empty(t, cfg.Auth.PortalPassword)
}
