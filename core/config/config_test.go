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

	assert.Equal(t, "code_base_files.ini", cfg.Audit.File)
	assert.False(t, cfg.Audit.JSON)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "docs", cfg.Storage.Bucket)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("AUDIT_FILE", "custom.ini")
	t.Setenv("STORAGE_ENABLED", "true")
	t.Setenv("STORAGE_PREFIX", "inishell/xml/")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "custom.ini", cfg.Audit.File)
	assert.True(t, cfg.Storage.Enabled)
	assert.Equal(t, "inishell/xml/", cfg.Storage.Prefix)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nAUDIT_JSON=true\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("AUDIT_JSON")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Audit.JSON)
}
