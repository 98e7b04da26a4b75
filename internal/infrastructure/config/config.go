// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for lorebook configuration.
	DefaultConfigDir = ".lorebook"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
)

// Config holds client configuration. The mock-data flag is the only part
// expected to change at runtime; everything else is read-only after init.
type Config struct {
	API  APIConfig  `yaml:"api,omitempty"`
	Mock MockConfig `yaml:"mock,omitempty"`
	Log  LogConfig  `yaml:"log,omitempty"`
}

// APIConfig holds connection settings for the Lore-Book backend.
type APIConfig struct {
	BaseURL        string `yaml:"base_url,omitempty"`
	Token          string `yaml:"token,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
}

// MockConfig controls the seed-data fallback.
type MockConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LogConfig controls log output.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8477",
			TimeoutSeconds: 30,
		},
		Mock: MockConfig{Enabled: true},
		Log:  LogConfig{Level: "info"},
	}
}

// Load loads configuration from the .lorebook directory in the given
// path.
func Load(basePath string) (*Config, error) {
	configFile := FilePath(basePath)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'lorebook init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LOREBOOK_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("LOREBOOK_API_TOKEN"); v != "" {
		c.API.Token = v
	}
	if v := os.Getenv("LOREBOOK_MOCK_DATA"); v != "" {
		c.Mock.Enabled = parseBool(v)
	}
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// Dir returns the path to the .lorebook config directory.
func Dir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// FilePath returns the path to the config file.
func FilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a lorebook config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(FilePath(basePath))
	return err == nil
}

// Write persists the config to the .lorebook directory, creating it if
// needed.
func Write(basePath string, cfg *Config) error {
	if err := os.MkdirAll(Dir(basePath), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(FilePath(basePath), data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
