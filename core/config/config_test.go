package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 250000, cfg.Database.MaxRows)
	assert.Equal(t, "exports", cfg.Export.Dir)
	assert.Empty(t, cfg.Export.FixDir)
	assert.True(t, cfg.Export.Excel)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("DATABASE_PORT", "3307")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("EXPORT_FIX_DIR", "/tmp/fixes")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/fixes", cfg.Export.FixDir)
}
