package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigPath(t *testing.T) {
	require.NoError(t, os.Unsetenv("CONFIG_PATH"))
	require.NoError(t, os.Unsetenv("VOCAB_TUISTER_ADDR"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, "*", cfg.CORS.AllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	require.NoError(t, os.Unsetenv("CONFIG_PATH"))
	require.NoError(t, os.Setenv("VOCAB_TUISTER_ADDR", ":9090"))
	defer os.Unsetenv("VOCAB_TUISTER_ADDR")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
}

func TestLoadFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":7000\"\n"), 0o644))

	require.NoError(t, os.Setenv("CONFIG_PATH", path))
	defer os.Unsetenv("CONFIG_PATH")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
}

func TestLoadMissingExplicitConfigPath(t *testing.T) {
	require.NoError(t, os.Setenv("CONFIG_PATH", "/nonexistent/config.yaml"))
	defer os.Unsetenv("CONFIG_PATH")

	_, err := Load()
	assert.Error(t, err)
}
