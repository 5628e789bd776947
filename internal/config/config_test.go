package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromConfigDir(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "shades"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shades", FileName), []byte(`palette:
  scale: compact
  name: brand
  format: css
tui:
  theme: high-contrast
`), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "compact", cfg.Palette.Scale)
	assert.Equal(t, "brand", cfg.Palette.Name)
	assert.Equal(t, "css", cfg.Palette.Format)
	assert.Equal(t, "high-contrast", cfg.TUI.Theme)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n  format: json\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SHADES_PALETTE_SCALE", "tints")
	t.Setenv("SHADES_PALETTE_FORMAT", "scss")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "tints", cfg.Palette.Scale)
	assert.Equal(t, "scss", cfg.Palette.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"export format", func(c *Config) { c.Palette.Format = "yaml" }, false},
		{"unknown format", func(c *Config) { c.Palette.Format = "pdf" }, true},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"empty scale", func(c *Config) { c.Palette.Scale = " " }, true},
		{"unknown theme", func(c *Config) { c.TUI.Theme = "neon" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/shades", Dir())

	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "shades"), Dir())
}
