package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, int64(1048576), cfg.SnapshotMaxBytes)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATA_DIR", "/var/lib/craftdex")
	t.Setenv("SNAPSHOT_MAX_BYTES", "2048")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/var/lib/craftdex", cfg.DataDir)
	assert.Equal(t, int64(2048), cfg.SnapshotMaxBytes)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid PORT value")
}

func TestLoadInvalidSnapshotMaxBytes(t *testing.T) {
	t.Setenv("SNAPSHOT_MAX_BYTES", "-1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SNAPSHOT_MAX_BYTES")
}

func TestCatalogPaths(t *testing.T) {
	cfg := &Config{DataDir: "data"}

	assert.Equal(t, filepath.Join("data", "items.json"), cfg.ItemsPath())
	assert.Equal(t, filepath.Join("data", "recipes.json"), cfg.RecipesPath())
}
