package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/dashboard/invoices", cfg.Actions.ListingPath)
	assert.False(t, cfg.Actions.DeleteDisabled)
	assert.Equal(t, 10*time.Minute, cfg.Actions.ViewCacheTTL)
	assert.Equal(t, "session", cfg.JWT.CookieName)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_ENV", "development")
	t.Setenv("ACTIONS_DELETE_DISABLED", "true")
	t.Setenv("ACTIONS_VIEW_CACHE_TTL", "30s")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Actions.DeleteDisabled)
	assert.Equal(t, 30*time.Second, cfg.Actions.ViewCacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s3cr3t")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable",
	}}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", cfg.GetDSN())
}
