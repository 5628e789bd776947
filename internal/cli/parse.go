// Package cli provides single-color commands.
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/opencode-ai/shades/internal/palette"
	"github.com/opencode-ai/shades/internal/tui/styles"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tintCmd)
	rootCmd.AddCommand(shadeCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <color>",
	Short: "Show the channels of a color",
	Long: `Parse a color and print its red, green and blue channels.

Non-numeric channels in r,g,b input are reported as NaN rather than rejected.`,
	Example: `  shades parse "#ABC"
  shades parse 12,34,56`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := palette.ParseColor(args[0])
		if err != nil {
			return fmt.Errorf("invalid color: %w", err)
		}
		warnInvalidChannels(args[0])
		return writeColorResult(cmd.OutOrStdout(), newColorResult(args[0], "parse", nil, c))
	},
}

var tintCmd = &cobra.Command{
	Use:   "tint <color> <intensity>",
	Short: "Lighten a color toward white",
	Long: `Tint a color: each channel moves toward 255 by intensity.

Intensity is normally between 0 and 1; other values extrapolate.`,
	Example: `  shades tint "#3366FF" 0.5`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMix(cmd.OutOrStdout(), "tint", args[0], args[1], palette.Tint)
	},
}

var shadeCmd = &cobra.Command{
	Use:   "shade <color> <intensity>",
	Short: "Darken a color toward black",
	Long: `Shade a color: each channel is scaled by intensity.

Intensity is normally between 0 and 1; other values extrapolate.`,
	Example: `  shades shade "#3366FF" 0.45`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMix(cmd.OutOrStdout(), "shade", args[0], args[1], palette.Shade)
	},
}

// ColorResult is the payload returned by the parse, tint and shade commands.
type ColorResult struct {
	Input     string   `json:"input"`
	Operation string   `json:"operation"`
	Intensity *float64 `json:"intensity,omitempty"`
	// RGB holds null for channels that are not numbers.
	RGB   []*int `json:"rgb"`
	Hex   string `json:"hex"`
	Valid bool   `json:"valid"`
}

func newColorResult(input, operation string, intensity *float64, c palette.Color) ColorResult {
	rgb := make([]*int, len(c))
	for i, ch := range c {
		if ch == palette.NaN {
			continue
		}
		value := ch
		rgb[i] = &value
	}
	return ColorResult{
		Input:     input,
		Operation: operation,
		Intensity: intensity,
		RGB:       rgb,
		Hex:       c.Hex(),
		Valid:     c.Valid(),
	}
}

func runMix(out io.Writer, operation, input, rawIntensity string, mix func(palette.Color, float64) palette.Color) error {
	intensity, err := strconv.ParseFloat(rawIntensity, 64)
	if err != nil {
		return fmt.Errorf("invalid intensity %q: must be a number", rawIntensity)
	}

	c, err := palette.ParseColor(input)
	if err != nil {
		return fmt.Errorf("invalid color: %w", err)
	}
	warnInvalidChannels(input)

	return writeColorResult(out, newColorResult(input, operation, &intensity, mix(c, intensity)))
}

func writeColorResult(out io.Writer, result ColorResult) error {
	if IsJSONOutput() || IsJSONLOutput() {
		return WriteOutput(out, result)
	}

	row := []string{result.Hex}
	for _, ch := range result.RGB {
		if ch == nil {
			row = append(row, "NaN")
			continue
		}
		row = append(row, strconv.Itoa(*ch))
	}
	headers := []string{"HEX", "R", "G", "B"}

	if colorEnabled(out) {
		styleSet := styles.BuildStyles(styles.ThemeByName(GetConfig().TUI.Theme))
		headers = append(headers, "SWATCH")
		row = append(row, styleSet.Swatch(result.Hex, "      "))
	}
	return writeTable(out, headers, [][]string{row})
}
