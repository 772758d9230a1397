package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftfs/swiftfs/configs"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.NotEmpty(t, cfg.Engine.Binary)
	assert.False(t, cfg.Verify.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoadFile_MergesOverDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	yaml := `
engine:
  binary: /opt/index/es
  extra_args: ["-instance", "main"]
verify:
  enabled: true
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/index/es", cfg.Engine.Binary)
	assert.Equal(t, []string{"-instance", "main"}, cfg.Engine.ExtraArgs)
	assert.True(t, cfg.Verify.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched sections keep defaults
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides_TakePrecedence(t *testing.T) {
	t.Setenv("SWIFTFS_ENGINE_BINARY", "/usr/local/bin/es")
	t.Setenv("SWIFTFS_VERIFY", "1")
	t.Setenv("SWIFTFS_LOG_LEVEL", "warn")
	t.Setenv("SWIFTFS_TELEMETRY", "false")

	cfg := NewConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "/usr/local/bin/es", cfg.Engine.Binary)
	assert.True(t, cfg.Verify.Enabled)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty binary", func(c *Config) { c.Engine.Binary = "" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"upper-case level ok", func(c *Config) { c.Logging.Level = "DEBUG" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserConfigTemplate_LoadsAndValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configs.UserConfigTemplate), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "es", cfg.Engine.Binary)
	assert.False(t, cfg.Verify.Enabled)
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.yaml")

	cfg := NewConfig()
	cfg.Engine.Binary = "/tmp/es"
	cfg.Verify.Enabled = true
	require.NoError(t, cfg.WriteYAML(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/es", loaded.Engine.Binary)
	assert.True(t, loaded.Verify.Enabled)
}
