// Package config loads shades settings from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencode-ai/shades/internal/export"
	"github.com/opencode-ai/shades/internal/logging"
	"github.com/opencode-ai/shades/internal/scales"
	"github.com/opencode-ai/shades/internal/tui/styles"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. SHADES_PALETTE_SCALE.
const EnvPrefix = "SHADES"

// FileName is the config file name inside the config directory.
const FileName = "config.yaml"

// OutputTable is the human-readable palette output format.
const OutputTable = "table"

// Config is the full shades configuration.
type Config struct {
	Logging logging.Config `mapstructure:"logging"`
	Palette PaletteConfig  `mapstructure:"palette"`
	TUI     TUIConfig      `mapstructure:"tui"`
}

// PaletteConfig holds palette generation defaults.
type PaletteConfig struct {
	// Scale is the default scale name.
	Scale string `mapstructure:"scale"`
	// Name prefixes exported variables, e.g. --primary-500.
	Name string `mapstructure:"name"`
	// Format is "table" or an export format.
	Format string `mapstructure:"format"`
}

// TUIConfig holds preview settings.
type TUIConfig struct {
	Theme string `mapstructure:"theme"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Logging: logging.DefaultConfig(),
		Palette: PaletteConfig{
			Scale:  scales.DefaultScaleName,
			Name:   "color",
			Format: OutputTable,
		},
		TUI: TUIConfig{
			Theme: "default",
		},
	}
}

// Dir returns the default config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "shades")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", "shades")
	}
	return ".shades"
}

// Load reads configuration. An empty path searches Dir(); a missing file
// there is not an error and leaves defaults plus environment overrides.
func Load(path string) (*Config, error) {
	return LoadWithViper(viper.New(), path)
}

// LoadWithViper is Load on a caller-supplied viper instance, so flags bound
// to v take part in resolution.
func LoadWithViper(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("palette.scale", defaults.Palette.Scale)
	v.SetDefault("palette.name", defaults.Palette.Name)
	v.SetDefault("palette.format", defaults.Palette.Format)
	v.SetDefault("tui.theme", defaults.TUI.Theme)
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}

	if c.Palette.Format != OutputTable {
		if _, err := export.ParseFormat(c.Palette.Format); err != nil {
			return fmt.Errorf("invalid palette.format: %w", err)
		}
	}

	if strings.TrimSpace(c.Palette.Scale) == "" {
		return fmt.Errorf("palette.scale is required")
	}

	if _, ok := styles.Themes[c.TUI.Theme]; !ok {
		return fmt.Errorf("invalid tui.theme %q (expected one of %s)", c.TUI.Theme, strings.Join(styles.ThemeNames(), ", "))
	}

	return nil
}
