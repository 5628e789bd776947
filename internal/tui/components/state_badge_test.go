package components

import (
	"strings"
	"testing"

	"github.com/opencode-ai/shades/internal/tui/styles"
)

func TestClassifyColor(t *testing.T) {
	tests := []struct {
		input string
		want  ColorState
	}{
		{"", ColorStateEmpty},
		{"   ", ColorStateEmpty},
		{"#3366FF", ColorStateValid},
		{"#abc", ColorStateValid},
		{"12,34,56", ColorStateValid},
		{"12,abc,56", ColorStatePartial},
		{"#GGGGGG", ColorStateInvalid},
		{"blue", ColorStateInvalid},
	}

	for _, tt := range tests {
		if got := ClassifyColor(tt.input); got != tt.want {
			t.Errorf("ClassifyColor(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRenderColorStateBadge(t *testing.T) {
	styleSet := styles.DefaultStyles()

	tests := []struct {
		state ColorState
		want  string
	}{
		{ColorStateValid, "OK Valid"},
		{ColorStatePartial, "NaN Partial"},
		{ColorStateInvalid, "ERR Invalid"},
		{ColorStateEmpty, "- Empty"},
		{ColorState("half_done"), "- Half done"},
	}

	for _, tt := range tests {
		got := RenderColorStateBadge(styleSet, tt.state)
		if !strings.Contains(got, tt.want) {
			t.Errorf("RenderColorStateBadge(%q) = %q, want it to contain %q", tt.state, got, tt.want)
		}
	}
}
