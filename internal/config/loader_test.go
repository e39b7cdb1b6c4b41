package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/cricket-stats-service/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
app:
  port: 9090
logger:
  env: dev
store:
  source: file
  data_dir: /var/lib/cricket
  workers: 8
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "0.0.0.0", cfg.App.Host, "host falls back to the default")
	assert.Equal(t, 10, cfg.App.ShutdownTimeout)
	assert.Equal(t, "dev", cfg.Logger.Env)
	assert.Equal(t, "file", cfg.Store.Source)
	assert.Equal(t, "/var/lib/cricket", cfg.Store.DataDir)
	assert.Equal(t, 8, cfg.Store.Workers)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `logger: {env: prod}`))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "file", cfg.Store.Source)
	assert.Equal(t, "data", cfg.Store.DataDir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	_, err := config.Load(writeConfig(t, `store: {source: carrier-pigeon}`))
	assert.Error(t, err, "unknown store source must fail validation")

	_, err = config.Load(writeConfig(t, `app: {port: -1}`))
	assert.Error(t, err, "negative port must fail validation")
}
