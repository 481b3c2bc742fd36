package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Empty(t, cfg.Export.SQLitePath)
	assert.Equal(t, 5*time.Minute, cfg.BarDuration())

	epoch, err := cfg.EpochTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC), epoch)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  encoding: json
output:
  format: json
  path: out/scenarios.json
export:
  sqlite_path: data/scenarios.db
chart:
  bar_minutes: 15
`)
	t.Setenv("CVD_OUTPUT_FORMAT", "text")
	t.Setenv("CVD_METRICS_PATH", "metrics/cvd.prom")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, "out/scenarios.json", cfg.Output.Path)
	assert.Equal(t, "data/scenarios.db", cfg.Export.SQLitePath)
	assert.Equal(t, "metrics/cvd.prom", cfg.Metrics.TextfilePath)
	assert.Equal(t, 15*time.Minute, cfg.BarDuration())
}

func TestLoad_BadInput(t *testing.T) {
	_, err := Load(writeConfig(t, "log: [unterminated"))
	assert.Error(t, err)

	t.Setenv("CVD_BAR_MINUTES", "five")
	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
		{"log encoding", func(c *Config) { c.Log.Encoding = "xml" }},
		{"format", func(c *Config) { c.Output.Format = "html" }},
		{"tui with path", func(c *Config) { c.Output.Format = FormatTUI; c.Output.Path = "x.txt" }},
		{"epoch", func(c *Config) { c.Chart.Epoch = "yesterday" }},
		{"bar minutes", func(c *Config) { c.Chart.BarMinutes = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
