// Package cli provides scale listing commands.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opencode-ai/shades/internal/scales"
	"github.com/opencode-ai/shades/internal/tui/components"
	"github.com/opencode-ai/shades/internal/tui/styles"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var scalesListTags []string

func init() {
	rootCmd.AddCommand(scalesCmd)
	scalesCmd.AddCommand(scalesListCmd)
	scalesCmd.AddCommand(scalesShowCmd)

	scalesListCmd.Flags().StringSliceVar(&scalesListTags, "tag", nil, "filter by tag (repeatable)")
}

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "Inspect palette scales",
	Long: `Inspect the scales available for palette generation.

Scales are read from .shades/scales in the current directory, then
~/.config/shades/scales, then /usr/share/shades/scales, then the builtins.
The first scale with a given name wins.`,
}

var scalesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available scales",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := scales.LoadScalesFromSearchPaths(projectDir())
		if err != nil {
			return fmt.Errorf("failed to load scales: %w", err)
		}
		items = scales.FilterByTags(items, scalesListTags)

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, items)
		}

		if len(items) == 0 {
			fmt.Fprintln(out, components.EmptyScales().RenderCompact(styles.DefaultStyles()))
			return nil
		}

		rows := lo.Map(items, func(scale *scales.Scale, _ int) []string {
			return []string{
				scale.Name,
				strconv.Itoa(len(scale.Steps)),
				strings.Join(scale.Tags, ","),
				scale.Source,
				scale.Description,
			}
		})
		return writeTable(out, []string{"NAME", "STEPS", "TAGS", "SOURCE", "DESCRIPTION"}, rows)
	},
}

var scalesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the steps of a scale",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scale, err := resolveScale(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, scale)
		}

		fmt.Fprintf(out, "Scale:  %s\n", scale.Name)
		if scale.Description != "" {
			fmt.Fprintf(out, "About:  %s\n", scale.Description)
		}
		fmt.Fprintf(out, "Source: %s\n\n", scale.Source)

		rows := lo.Map(scale.Steps, func(step scales.Step, _ int) []string {
			intensity := "-"
			if step.Kind() != "base" {
				intensity = formatIntensity(step.Intensity())
			}
			return []string{step.Label, step.Kind(), intensity}
		})
		return writeTable(out, []string{"LABEL", "KIND", "INTENSITY"}, rows)
	},
}
