package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/cricket-stats-service/internal/logger"
)

func TestNew_AppliesDefaults(t *testing.T) {
	cfg := &logger.LoggerConfig{}
	_, err := logger.New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "cricket-stats-service", cfg.ServiceName)
}

func TestNew_DevDefaults(t *testing.T) {
	cfg := &logger.LoggerConfig{Env: "dev"}
	_, err := logger.New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.True(t, cfg.WithCaller)
}

func TestNew_RejectsBadConfig(t *testing.T) {
	_, err := logger.New(&logger.LoggerConfig{Level: "verbose"})
	assert.Error(t, err)

	_, err = logger.New(&logger.LoggerConfig{Env: "production"})
	assert.Error(t, err)
}
