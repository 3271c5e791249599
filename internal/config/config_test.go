package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseConfig_IsPostgres(t *testing.T) {
	assert.True(t, (&DatabaseConfig{URL: "postgres://user:pw@localhost:5432/portfolio"}).IsPostgres())
	assert.True(t, (&DatabaseConfig{URL: "postgresql://user:pw@localhost/portfolio"}).IsPostgres())
	assert.False(t, (&DatabaseConfig{URL: "sqlite:///./portfolio.db"}).IsPostgres())
	assert.False(t, (&DatabaseConfig{URL: "./portfolio.db"}).IsPostgres())
}

func TestDatabaseConfig_GetSQLitePath(t *testing.T) {
	assert.Equal(t, "./portfolio.db", (&DatabaseConfig{URL: "sqlite:///./portfolio.db"}).GetSQLitePath())
	assert.Equal(t, "/data/app.db", (&DatabaseConfig{URL: "sqlite:////data/app.db"}).GetSQLitePath())
	assert.Equal(t, "plain.db", (&DatabaseConfig{URL: "plain.db"}).GetSQLitePath())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:5173")
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
	assert.Equal(t, ".vercel.app", cfg.CORS.AllowedSuffix)
	assert.False(t, cfg.Admin.Enabled())
	assert.False(t, cfg.Email.Enabled)
	assert.Equal(t, "https://leetcode.com/graphql", cfg.LeetCode.GraphQLURL)
}

func TestLoad_FrontendURLJoinsAllowList(t *testing.T) {
	t.Setenv("FRONTEND_URL", "https://portfolio.vercel.app/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "https://portfolio.vercel.app")
}

func TestLoad_AdminRequiresSecret(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("SECRET_KEY", "a-real-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Admin.Enabled())
}
