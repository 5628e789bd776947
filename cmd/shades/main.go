// Command shades generates tint and shade palettes from a color.
package main

import (
	"os"

	"github.com/opencode-ai/shades/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
