// Package cli implements the shades command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/opencode-ai/shades/internal/config"
	"github.com/opencode-ai/shades/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile        string
	jsonOutput     bool
	jsonlOutput    bool
	noColor        bool
	nonInteractive bool

	appConfig *config.Config
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/shades/config.yaml)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	flags.BoolVar(&noColor, "no-color", false, "disable colored swatches")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or open the preview")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (console, json)")
}

var rootCmd = &cobra.Command{
	Use:   "shades",
	Short: "Generate tint and shade palettes from a color",
	Long: `shades turns one color into a lightness scale of tints and shades.

Colors may be given as #AABBCC, #ABC or r,g,b. The default scale produces the
50-950 steps used by CSS utility frameworks.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initConfig(cmd.Root())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initConfig(root *cobra.Command) error {
	settings := viper.New()
	flags := root.PersistentFlags()
	_ = settings.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = settings.BindPFlag("logging.format", flags.Lookup("log-format"))

	cfg, err := config.LoadWithViper(settings, cfgFile)
	if err != nil {
		return err
	}
	if err := logging.Init(cfg.Logging); err != nil {
		return err
	}
	appConfig = cfg

	logging.Component("cli").Debug().
		Str("scale", cfg.Palette.Scale).
		Str("format", cfg.Palette.Format).
		Str("config", settings.ConfigFileUsed()).
		Msg("configuration loaded")
	return nil
}

// GetConfig returns the loaded configuration, or defaults before loading.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// PreflightError reports a condition that stops a command before it starts.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	msg := e.Message
	if e.Hint != "" {
		msg += "\nHint: " + e.Hint
	}
	if e.NextStep != "" {
		msg += fmt.Sprintf("\nTry: %s", e.NextStep)
	}
	return msg
}

func projectDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return dir
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
