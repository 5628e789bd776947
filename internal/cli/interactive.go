// Package cli provides helpers for interactive mode detection.
package cli

import (
	"os"

	"golang.org/x/term"
)

// IsNonInteractive reports whether prompts and the preview should be skipped.
func IsNonInteractive() bool {
	if nonInteractive {
		return true
	}
	if _, ok := os.LookupEnv("SHADES_NON_INTERACTIVE"); ok {
		return true
	}
	return !hasTTY()
}

// IsInteractive reports whether the session can prompt for user input.
func IsInteractive() bool {
	return !IsNonInteractive()
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
