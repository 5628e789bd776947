// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/shades/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional icon to display (e.g., "🎨", "⚠️").
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are actionable commands the user can run.
	Suggestions []Suggestion
}

// Suggestion represents a suggested command with description.
type Suggestion struct {
	// Command is the CLI command to run (e.g., "shades scales list").
	Command string
	// Description explains what the command does.
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	// Icon + Title
	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Muted.Render(titleLine))

	// Subtitle
	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	// Suggestions
	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		lines = append(lines, styleSet.Text.Render("Get started:"))
		for _, s := range e.Suggestions {
			cmdLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Command))
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a compact single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if e.Icon != "" {
		line = e.Icon + " " + line
	}
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Command)
	}
	return styleSet.Muted.Render(line)
}

// Common empty states for reuse across views.

// EmptyScales returns an empty state for when no scale definitions load.
func EmptyScales() EmptyState {
	return EmptyState{
		Icon:     "🎨",
		Title:    "No scales available",
		Subtitle: "Scales define the tint and shade steps of a palette.",
		Suggestions: []Suggestion{
			{Command: "shades scales list", Description: "check which scales load"},
			{Command: ".shades/scales/<name>.yaml", Description: "add a project scale"},
		},
	}
}

// EmptyColor returns an empty state for when no color has been typed yet.
func EmptyColor() EmptyState {
	return EmptyState{
		Icon:     "✏️",
		Title:    "Type a color to preview its scale",
		Subtitle: "Accepted: #AABBCC, #ABC or r,g,b",
	}
}

// InvalidColor returns an empty state for input that does not parse,
// showing err when set.
func InvalidColor(input string, err error) EmptyState {
	subtitle := "Use #ABC, #AABBCC or r,g,b."
	if err != nil {
		subtitle = err.Error()
	}
	return EmptyState{
		Icon:     "⚠️",
		Title:    fmt.Sprintf("Cannot parse '%s'", input),
		Subtitle: subtitle,
	}
}
