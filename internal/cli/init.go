// Package cli provides the init command.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opencode-ai/shades/internal/config"
	"github.com/spf13/cobra"
)

var (
	initForce bool

	// configDirFunc is swapped in tests.
	configDirFunc = defaultConfigDir
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write a commented config.yaml into the shades config directory
($XDG_CONFIG_HOME/shades or ~/.config/shades) and create the user scales
directory next to it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		results := []initResult{
			createConfigFile(),
			createScalesDir(),
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			payload := make([]map[string]string, 0, len(results))
			for _, r := range results {
				payload = append(payload, map[string]string{
					"step":    r.name,
					"status":  r.status,
					"message": r.message,
				})
			}
			return WriteOutput(out, payload)
		}

		rows := make([][]string, 0, len(results))
		failed := false
		for _, r := range results {
			rows = append(rows, []string{r.name, r.status, r.message})
			failed = failed || r.status == "failed"
		}
		if err := writeTable(out, []string{"STEP", "STATUS", "DETAIL"}, rows); err != nil {
			return err
		}
		if failed {
			return fmt.Errorf("init did not complete")
		}
		return nil
	},
}

type initResult struct {
	name    string
	status  string // done, skipped, failed
	message string
}

func defaultConfigDir() string {
	return config.Dir()
}

func createConfigFile() initResult {
	result := initResult{name: "Config file"}
	dir := configDirFunc()
	path := filepath.Join(dir, config.FileName)

	if _, err := os.Stat(path); err == nil && !initForce {
		result.status = "skipped"
		result.message = fmt.Sprintf("%s already exists (use --force to overwrite)", path)
		return result
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		result.status = "failed"
		result.message = fmt.Sprintf("create %s: %v", dir, err)
		return result
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		result.status = "failed"
		result.message = fmt.Sprintf("write %s: %v", path, err)
		return result
	}

	result.status = "done"
	result.message = path
	return result
}

func createScalesDir() initResult {
	result := initResult{name: "Scales directory"}
	dir := filepath.Join(configDirFunc(), "scales")

	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		result.status = "skipped"
		result.message = fmt.Sprintf("%s already exists", dir)
		return result
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		result.status = "failed"
		result.message = fmt.Sprintf("create %s: %v", dir, err)
		return result
	}

	result.status = "done"
	result.message = dir
	return result
}

const configTemplate = `# Shades Configuration File
#
# Every setting can be overridden with an environment variable prefixed by
# SHADES_, e.g. SHADES_PALETTE_SCALE=compact.

logging:
  # debug, info, warn, error
  level: warn
  # console or json
  format: console

palette:
  # Default scale. Add your own as YAML files under the scales/ directory
  # next to this file or under .shades/scales in a project.
  scale: tailwind
  # Prefix for exported variables, e.g. --color-500.
  name: color
  # table, css, scss, json, yaml or tailwind
  format: table

tui:
  # default or high-contrast
  theme: default
`
