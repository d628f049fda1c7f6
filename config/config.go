// Package config loads analyser configuration from a YAML file, then
// applies environment variable overrides. All settings have working
// defaults: a missing config file is not an error.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all analyser configuration.
type Config struct {
	Analysis struct {
		// SwingThresholdPct is the zig-zag confirmation threshold as a
		// fraction (0.03 = 3%).
		SwingThresholdPct float64 `yaml:"swing_threshold_pct"`
		// IncludeSeries attaches full indicator series to the output.
		IncludeSeries bool `yaml:"include_series"`
	} `yaml:"analysis"`
	Log struct {
		Level string `yaml:"level"` // debug, info, warn, error
	} `yaml:"log"`
	// MetricsAddr is the Prometheus/health listen address.
	// Empty disables the metrics server.
	MetricsAddr string `yaml:"metrics_addr"`
}

// Load reads config from a YAML file, then applies environment
// variable overrides and defaults.
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
	if v := os.Getenv("ANALYSER_SWING_THRESHOLD_PCT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Analysis.SwingThresholdPct = f
		}
	}
	if v := os.Getenv("ANALYSER_INCLUDE_SERIES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Analysis.IncludeSeries = b
		}
	}
	if v := os.Getenv("ANALYSER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ANALYSER_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}

	// Defaults
	if cfg.Analysis.SwingThresholdPct == 0 {
		cfg.Analysis.SwingThresholdPct = 0.03
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// SlogLevel maps the configured log level string to a slog.Level.
// Unknown values fall back to Info.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
