// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/shades/internal/palette"
	"github.com/opencode-ai/shades/internal/tui/styles"
)

// ColorState classifies the color currently typed into the preview.
type ColorState string

const (
	ColorStateEmpty   ColorState = "empty"
	ColorStateValid   ColorState = "valid"
	ColorStatePartial ColorState = "partial"
	ColorStateInvalid ColorState = "invalid"
)

// ClassifyColor reports the state of input as a palette color.
func ClassifyColor(input string) ColorState {
	if strings.TrimSpace(input) == "" {
		return ColorStateEmpty
	}
	c, err := palette.ParseColor(input)
	if err != nil {
		return ColorStateInvalid
	}
	if !c.Valid() {
		return ColorStatePartial
	}
	return ColorStateValid
}

// RenderColorStateBadge renders a color state with icon and color.
func RenderColorStateBadge(styleSet styles.Styles, state ColorState) string {
	icon, label, style := stateDescriptor(styleSet, state)
	return style.Render(fmt.Sprintf("%s %s", icon, label))
}

func stateDescriptor(styleSet styles.Styles, state ColorState) (string, string, lipgloss.Style) {
	switch state {
	case ColorStateValid:
		return "OK", "Valid", styleSet.Success
	case ColorStatePartial:
		return "NaN", "Partial", styleSet.Warning
	case ColorStateInvalid:
		return "ERR", "Invalid", styleSet.Error
	case ColorStateEmpty:
		return "-", "Empty", styleSet.Muted
	default:
		return "-", normalizeStateLabel(state), styleSet.Muted
	}
}

func normalizeStateLabel(state ColorState) string {
	value := strings.TrimSpace(strings.ReplaceAll(string(state), "_", " "))
	if value == "" {
		return "Unknown"
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
