// Package config provides swiftfs configuration loading and validation.
//
// Precedence, lowest to highest:
//  1. Built-in defaults
//  2. User config (~/.config/swiftfs/config.yaml)
//  3. Environment variables (SWIFTFS_*)
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete swiftfs configuration.
type Config struct {
	Version   int             `yaml:"version" json:"version"`
	Engine    EngineConfig    `yaml:"engine" json:"engine"`
	Verify    VerifyConfig    `yaml:"verify" json:"verify"`
	Logging   LoggingConfig   `yaml:"logging" json:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry" json:"telemetry"`
}

// EngineConfig configures the external index engine invocation.
type EngineConfig struct {
	// Binary is the index engine executable. Resolved via PATH when not
	// absolute.
	Binary string `yaml:"binary" json:"binary"`

	// ExtraArgs are prepended to every query (e.g., instance selection).
	ExtraArgs []string `yaml:"extra_args" json:"extra_args"`
}

// VerifyConfig configures index-versus-filesystem cross-checking.
type VerifyConfig struct {
	// Enabled turns on verification mode: every index answer is compared
	// against direct filesystem truth and discrepancies become errors.
	// Intended for test and debug builds only; it doubles query cost.
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// LoggingConfig configures the diagnostic log stream.
type LoggingConfig struct {
	Level    string `yaml:"level" json:"level"`
	FilePath string `yaml:"file_path" json:"file_path"`
	Stderr   bool   `yaml:"stderr" json:"stderr"`
}

// TelemetryConfig configures local query telemetry.
type TelemetryConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// NewConfig returns the built-in default configuration.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Engine: EngineConfig{
			Binary:    defaultEngineBinary(),
			ExtraArgs: nil,
		},
		Verify: VerifyConfig{
			Enabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Stderr: false,
		},
		Telemetry: TelemetryConfig{
			Enabled: true,
		},
	}
}

// defaultEngineBinary picks the conventional index engine client per platform.
func defaultEngineBinary() string {
	if runtime.GOOS == "windows" {
		return "es.exe"
	}
	return "es"
}

// GetUserConfigPath returns the user config file path
// (~/.config/swiftfs/config.yaml).
func GetUserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "swiftfs", "config.yaml")
}

// UserConfigExists reports whether a user config file is present.
func UserConfigExists() bool {
	path := GetUserConfigPath()
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Load builds the effective configuration: defaults, then user config,
// then environment overrides, then validation.
func Load() (*Config, error) {
	cfg := NewConfig()

	if UserConfigExists() {
		if err := cfg.loadYAML(GetUserConfigPath()); err != nil {
			return nil, fmt.Errorf("failed to load user config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadFile loads configuration from an explicit path, then applies
// environment overrides and validates.
func LoadFile(path string) (*Config, error) {
	cfg := NewConfig()

	if err := cfg.loadYAML(path); err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadYAML merges values from a YAML file over the current config.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies SWIFTFS_* environment variables, the highest
// precedence configuration source.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SWIFTFS_ENGINE_BINARY"); v != "" {
		c.Engine.Binary = v
	}
	if v := os.Getenv("SWIFTFS_VERIFY"); v != "" {
		c.Verify.Enabled = strings.ToLower(v) == "true" || v == "1"
	}
	if v := os.Getenv("SWIFTFS_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SWIFTFS_TELEMETRY"); v != "" {
		c.Telemetry.Enabled = strings.ToLower(v) == "true" || v == "1"
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Engine.Binary == "" {
		return fmt.Errorf("engine.binary must not be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level must be 'debug', 'info', 'warn', or 'error', got %s", c.Logging.Level)
	}

	return nil
}

// WriteYAML writes the configuration to a YAML file, creating parent
// directories as needed.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// WriteTo streams the configuration as YAML.
func (c *Config) WriteTo(w io.Writer) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = w.Write(data)
	return err
}
