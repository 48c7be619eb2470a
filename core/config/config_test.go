package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "pass-finder", cfg.Storage.Bucket)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "embedded", cfg.Registry.Source)
	assert.Equal(t, "https://gateway.bibliocommons.com", cfg.Sources.BiblioCommonsURL)
	assert.Equal(t, 60, cfg.Sources.FetchTimeoutSeconds)
	assert.Equal(t, 15, cfg.Sources.HTTP.TimeoutSeconds)
	assert.True(t, cfg.Scrape.Enabled)
	assert.True(t, cfg.Scrape.Headless)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("CACHE_TTL_SECONDS", "0")
	t.Setenv("SCRAPE_ENABLED", "false")
	t.Setenv("SOURCES_HTTP_TIMEOUT_SECONDS", "5")
	t.Setenv("REGISTRY_SOURCE", "file")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Cache.TTLSeconds)
	assert.False(t, cfg.Scrape.Enabled)
	assert.Equal(t, 5, cfg.Sources.HTTP.TimeoutSeconds)
	assert.Equal(t, "file", cfg.Registry.Source)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9191\nLOG_FORMAT=console\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("LOG_FORMAT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.Server.Port)
	assert.Equal(t, "console", cfg.Log.Format)
}
