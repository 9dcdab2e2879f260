// Package config loads server configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by Load. IMAGE_MCP_CONFIG names the
// config file when no path is given; the others override individual fields.
const (
	EnvConfigPath = "IMAGE_MCP_CONFIG"
	EnvLogLevel   = "IMAGE_MCP_LOG_LEVEL"
	EnvWorkers    = "IMAGE_MCP_WORKERS"
)

// Config holds the tunables for the server and the rendering engine.
type Config struct {
	// LogLevel selects the slog level: "debug", "info", "warn", or "error".
	LogLevel string `yaml:"log_level"`

	// ResizeFilter is the default resampling filter for resize operations
	// when a tool call does not name one.
	ResizeFilter string `yaml:"resize_filter"`

	// JPEGQuality is the encoder quality (1-100) for JPEG output.
	JPEGQuality int `yaml:"jpeg_quality"`

	// Workers bounds how many overlay images are decoded concurrently when
	// preparing a composition. This is the engine's concurrency limit; the
	// planner itself is synchronous.
	Workers int `yaml:"workers"`

	// CacheEnabled toggles the in-memory image cache.
	CacheEnabled bool `yaml:"cache_enabled"`
}

// Default returns the configuration used when no file or overrides are
// present.
func Default() Config {
	return Config{
		LogLevel:     "info",
		ResizeFilter: "lanczos",
		JPEGQuality:  90,
		Workers:      4,
		CacheEnabled: true,
	}
}

// Load reads configuration from path, falling back to the IMAGE_MCP_CONFIG
// environment variable and then to defaults when no file exists. Environment
// overrides are applied last.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.JPEGQuality < 1 || cfg.JPEGQuality > 100 {
		cfg.JPEGQuality = Default().JPEGQuality
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Workers = n
		}
	}
}
