// Package cli provides the preview launch command.
package cli

import (
	"fmt"

	"github.com/opencode-ai/shades/internal/scales"
	"github.com/opencode-ai/shades/internal/tui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui [color]",
	Short: "Preview palettes interactively",
	Long:  "Launch an interactive terminal preview that re-renders the palette as you type.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		initial := ""
		if len(args) == 1 {
			initial = args[0]
		}
		return runTUI(initial)
	},
}

func runTUI(initial string) error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "the preview requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use the palette command",
			NextStep: "shades palette <color>",
		}
	}

	items, err := scales.LoadScalesFromSearchPaths(projectDir())
	if err != nil {
		return fmt.Errorf("failed to load scales: %w", err)
	}

	cfg := GetConfig()
	return tui.RunWithConfig(tui.Config{
		Theme:  cfg.TUI.Theme,
		Scales: items,
		Scale:  cfg.Palette.Scale,
		Color:  initial,
	})
}
