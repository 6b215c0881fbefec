package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 199, cfg.Disk.Bound)
	assert.Equal(t, "fcfs", cfg.Disk.DefaultPolicy)
	assert.Equal(t, "up", cfg.Disk.DefaultDirection)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadTOMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[disk]\nbound = 4999\ndefault_policy = \"look\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4999, cfg.Disk.Bound)
	assert.Equal(t, "look", cfg.Disk.DefaultPolicy)
	assert.Equal(t, 8080, cfg.Server.Port, "untouched keys keep defaults")
}

func TestLoadEnvOverridesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[disk]\nbound = 999\n"), 0o644))
	t.Setenv("ADSS_DISK_BOUND", "2047")
	t.Setenv("ADSS_LOGGING_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2047, cfg.Disk.Bound)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[[not toml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
