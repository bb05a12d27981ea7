package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// the package directory carries no config.yaml
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9095, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 100, cfg.MaxProcesses)
	assert.Equal(t, 64, cfg.MaxConcurrent)
	assert.Equal(t, 1<<20, cfg.BodyLimit)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, ":9095", cfg.Addr())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
port: 8081
log:
  level: debug
  format: json
server:
  max_processes: 10
history:
  enabled: true
  path: /tmp/history.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10, cfg.MaxProcesses)
	assert.Equal(t, 64, cfg.MaxConcurrent)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "/tmp/history.db", cfg.History.Path)
	assert.Equal(t, 20, cfg.History.ListLimit)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SJF_PORT", "7000")
	t.Setenv("SJF_SERVER_MAX_PROCESSES", "5")

	cfg, err := Load(writeConfig(t, "port: 8081\n"))
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, 5, cfg.MaxProcesses)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "port: 0\n"))
	assert.ErrorContains(t, err, "invalid port")

	_, err = Load(writeConfig(t, "server:\n  max_concurrent: -1\n"))
	assert.ErrorContains(t, err, "max_concurrent")

	_, err = Load(writeConfig(t, "history:\n  list_limit: 0\n"))
	assert.ErrorContains(t, err, "history.list_limit")

	_, err = Load(writeConfig(t, "history:\n  enabled: true\n  path: \"\"\n"))
	assert.ErrorContains(t, err, "history.path")
}
