// Package cli provides palette generation commands.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/opencode-ai/shades/internal/config"
	"github.com/opencode-ai/shades/internal/export"
	"github.com/opencode-ai/shades/internal/logging"
	"github.com/opencode-ai/shades/internal/palette"
	"github.com/opencode-ai/shades/internal/scales"
	"github.com/opencode-ai/shades/internal/tui/styles"
	"github.com/spf13/cobra"
)

var (
	paletteScale  string
	paletteName   string
	paletteFormat string
)

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().StringVarP(&paletteScale, "scale", "s", "", "scale name (default from config, tailwind)")
	paletteCmd.Flags().StringVarP(&paletteName, "name", "n", "", "palette name used in exported variables")
	paletteCmd.Flags().StringVarP(&paletteFormat, "format", "f", "", "output format: table, css, scss, json, yaml, tailwind")
}

var paletteCmd = &cobra.Command{
	Use:     "palette <color>",
	Aliases: []string{"gen"},
	Short:   "Generate a palette from a color",
	Long: `Generate a tint/shade palette from a color.

The color is parsed once and every step of the selected scale is applied to it.`,
	Example: `  # Default 50-950 scale as a table
  shades palette "#3366FF"

  # CSS custom properties named --primary-*
  shades palette 51,102,255 --name primary --format css

  # A project or builtin scale
  shades palette "#E11D48" --scale compact --format tailwind`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		input := args[0]

		scale, err := resolveScale(firstNonEmpty(paletteScale, cfg.Palette.Scale))
		if err != nil {
			return err
		}

		p, err := scale.Apply(input)
		if err != nil {
			return fmt.Errorf("invalid color: %w", err)
		}
		warnInvalidChannels(input)

		name := export.Slug(firstNonEmpty(paletteName, cfg.Palette.Name))
		out := cmd.OutOrStdout()

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, PaletteResult{
				Input:   input,
				Scale:   scale.Name,
				Name:    name,
				Palette: p,
			})
		}

		format := firstNonEmpty(paletteFormat, cfg.Palette.Format)
		if format == config.OutputTable {
			return writePaletteTable(out, p, colorEnabled(out))
		}

		exportFormat, err := export.ParseFormat(format)
		if err != nil {
			return err
		}
		return export.Write(out, exportFormat, name, p)
	},
}

// PaletteResult is the payload returned by `shades palette --json`.
type PaletteResult struct {
	Input   string          `json:"input"`
	Scale   string          `json:"scale"`
	Name    string          `json:"name"`
	Palette palette.Palette `json:"palette"`
}

func resolveScale(name string) (*scales.Scale, error) {
	scale, err := scales.FindScale(projectDir(), name)
	if err != nil {
		if errors.Is(err, scales.ErrScaleNotFound) {
			return nil, fmt.Errorf("scale %q not found (run 'shades scales list')", name)
		}
		return nil, fmt.Errorf("failed to load scales: %w", err)
	}

	logging.Component("cli").Debug().
		Str("scale", scale.Name).
		Str("source", scale.Source).
		Msg("scale resolved")
	return scale, nil
}

// warnInvalidChannels logs comma input whose channels did not parse as numbers.
func warnInvalidChannels(input string) {
	c, err := palette.ParseColor(input)
	if err != nil || c.Valid() {
		return
	}
	logging.Component("cli").Warn().
		Str("input", input).
		Str("hex", c.Hex()).
		Msg("color has non-numeric channels")
}

func writePaletteTable(out io.Writer, p palette.Palette, color bool) error {
	headers := []string{"LABEL", "HEX", "R", "G", "B"}
	styleSet := styles.BuildStyles(styles.ThemeByName(GetConfig().TUI.Theme))
	if color {
		headers = append(headers, "SWATCH")
	}

	rows := make([][]string, 0, len(p))
	for _, swatch := range p {
		row := append([]string{swatch.Label, swatch.Hex}, channelCells(swatch.Hex)...)
		if color {
			row = append(row, styleSet.Swatch(swatch.Hex, "      "))
		}
		rows = append(rows, row)
	}
	return writeTable(out, headers, rows)
}
