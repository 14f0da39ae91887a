package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromEnvDefaults(t *testing.T) {
	t.Setenv("AGUI_PAYLOAD_DIR", "/payloads")

	cfg, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/payloads", cfg.Checker.PayloadDir)
	assert.Equal(t, "./data/agui-checker.db", cfg.Checker.DBPath)
	assert.Empty(t, cfg.Checker.CronExpr)
	assert.Equal(t, 4, cfg.Checker.Concurrency)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestNewFromEnvOverrides(t *testing.T) {
	t.Setenv("AGUI_PAYLOAD_DIR", "/captured")
	t.Setenv("AGUI_DB_PATH", "/data/checks.db")
	t.Setenv("AGUI_CRON_EXPR", "*/5 * * * *")
	t.Setenv("AGUI_CONCURRENCY", "8")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/captured", cfg.Checker.PayloadDir)
	assert.Equal(t, "/data/checks.db", cfg.Checker.DBPath)
	assert.Equal(t, "*/5 * * * *", cfg.Checker.CronExpr)
	assert.Equal(t, 8, cfg.Checker.Concurrency)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestNewFromEnvMissingPayloadDir(t *testing.T) {
	t.Setenv("AGUI_PAYLOAD_DIR", "")

	_, err := NewFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AGUI_PAYLOAD_DIR")
}

func TestNewFromEnvInvalidConcurrency(t *testing.T) {
	t.Setenv("AGUI_PAYLOAD_DIR", "/payloads")
	t.Setenv("AGUI_CONCURRENCY", "0")

	_, err := NewFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AGUI_CONCURRENCY")
}

func TestOptions(t *testing.T) {
	t.Setenv("AGUI_PAYLOAD_DIR", "/payloads")

	cfg, err := NewFromEnv(func(c *Config) {
		c.Checker.Concurrency = 2
	})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Checker.Concurrency)
}
