package adapter

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Layout.ColumnSpacing)
	assert.Equal(t, 10.0, cfg.Layout.MaxInclination)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.NotEmpty(t, cfg.Store.Path)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store:
  path: ""
layout:
  column_spacing: 2
  max_inclination: 7.5
ui:
  transfers: /tmp/transfers.toml
logging:
  level: debug
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Store.Path)
	assert.Equal(t, 2, cfg.Layout.ColumnSpacing)
	assert.Equal(t, 7.5, cfg.Layout.MaxInclination)
	assert.Equal(t, "/tmp/transfers.toml", cfg.UI.Transfers)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigExplicitMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout:\n  column_spacing: 2\n"), 0644))
	t.Setenv("ASTROGATOR_LAYOUT_COLUMN_SPACING", "3")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Layout.ColumnSpacing)
}

func TestLoadConfigRejectsNegativeSpacing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout:\n  column_spacing: -1\n"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Layout.ColumnSpacing = 4
	cfg.UI.Theme = "mono"

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.Layout.ColumnSpacing)
	assert.Equal(t, "mono", loaded.UI.Theme)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLogLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("nonsense"))
}

func TestSetupLoggerTagsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "astrogator.log")

	logger, err := SetupLogger(&LoggingConfig{File: path, Level: "DEBUG"}, "1.2.3")
	require.NoError(t, err)
	logger.Debug("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"app":"astrogator"`)
	assert.Contains(t, string(data), `"version":"1.2.3"`)
}

func TestSetupLoggerWithoutFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	logger, err := SetupLogger(&LoggingConfig{File: "  ", Level: "DEBUG"}, "dev")
	require.NoError(t, err)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
