// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/shades/internal/tui/styles"
)

// QuickAction represents a keyboard-triggered action.
type QuickAction struct {
	Key     string // Keyboard key (e.g., "tab", "esc")
	Label   string // Display label (e.g., "Next scale")
	Enabled bool   // Whether the action is available
}

// RenderQuickActionBar renders a horizontal bar of available quick actions.
// Format: "tab:Next scale  ctrl+u:Clear  esc:Quit"
func RenderQuickActionBar(styleSet styles.Styles, actions []QuickAction) string {
	if len(actions) == 0 {
		return ""
	}

	var parts []string
	for _, action := range actions {
		if !action.Enabled {
			continue
		}
		keyStyle := styleSet.Accent.Copy().Bold(true)
		labelStyle := styleSet.Muted
		part := fmt.Sprintf("%s:%s", keyStyle.Render(action.Key), labelStyle.Render(action.Label))
		parts = append(parts, part)
	}

	if len(parts) == 0 {
		return ""
	}

	return strings.Join(parts, "  ")
}

// PreviewQuickActions returns the preview actions available for the given
// number of scales and input state.
func PreviewQuickActions(scaleCount int, hasInput bool) []QuickAction {
	return []QuickAction{
		{Key: "tab", Label: "Next scale", Enabled: scaleCount > 1},
		{Key: "shift+tab", Label: "Prev scale", Enabled: scaleCount > 1},
		{Key: "ctrl+u", Label: "Clear", Enabled: hasInput},
		{Key: "esc", Label: "Quit", Enabled: true},
	}
}
