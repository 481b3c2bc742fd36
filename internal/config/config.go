package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTUI  = "tui"
)

// Config holds all application configuration. None of it affects generation.
type Config struct {
	Log struct {
		Level    string `yaml:"level"`
		Encoding string `yaml:"encoding"`
	} `yaml:"log"`
	Output struct {
		Format string `yaml:"format"`
		Path   string `yaml:"path"`
	} `yaml:"output"`
	Export struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"export"`
	Metrics struct {
		TextfilePath string `yaml:"textfile_path"`
	} `yaml:"metrics"`
	Chart struct {
		Epoch      string `yaml:"epoch"`
		BarMinutes int    `yaml:"bar_minutes"`
	} `yaml:"chart"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("CVD_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("CVD_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("CVD_OUTPUT_PATH"); v != "" {
		cfg.Output.Path = v
	}
	if v := os.Getenv("CVD_SQLITE_PATH"); v != "" {
		cfg.Export.SQLitePath = v
	}
	if v := os.Getenv("CVD_METRICS_PATH"); v != "" {
		cfg.Metrics.TextfilePath = v
	}
	if v := os.Getenv("CVD_BAR_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse CVD_BAR_MINUTES: %w", err)
		}
		cfg.Chart.BarMinutes = n
	}

	// Defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Encoding == "" {
		cfg.Log.Encoding = "console"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatText
	}
	if cfg.Chart.Epoch == "" {
		cfg.Chart.Epoch = "2024-01-01T09:30:00Z"
	}
	if cfg.Chart.BarMinutes == 0 {
		cfg.Chart.BarMinutes = 5
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch c.Log.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("log.encoding %q is not one of console, json", c.Log.Encoding)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatTUI:
	default:
		return fmt.Errorf("output.format %q is not one of text, json, tui", c.Output.Format)
	}
	if c.Output.Format == FormatTUI && c.Output.Path != "" {
		return fmt.Errorf("output.path cannot be used with the tui format")
	}
	if _, err := c.EpochTime(); err != nil {
		return err
	}
	if c.Chart.BarMinutes <= 0 {
		return fmt.Errorf("chart.bar_minutes must be positive")
	}
	return nil
}

// EpochTime parses chart.epoch.
func (c *Config) EpochTime() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, c.Chart.Epoch)
	if err != nil {
		return time.Time{}, fmt.Errorf("chart.epoch: %w", err)
	}
	return t, nil
}

// BarDuration is the synthetic length of one candle.
func (c *Config) BarDuration() time.Duration {
	return time.Duration(c.Chart.BarMinutes) * time.Minute
}
