package components

import (
	"strings"
	"testing"

	"github.com/opencode-ai/shades/internal/palette"
	"github.com/opencode-ai/shades/internal/tui/styles"
)

func TestSwatchListRender(t *testing.T) {
	p, err := palette.GetColors("#3366FF", nil)
	if err != nil {
		t.Fatalf("GetColors: %v", err)
	}

	result := SwatchList{Palette: p}.Render(styles.DefaultStyles())
	lines := strings.Split(result, "\n")
	if len(lines) != len(p) {
		t.Fatalf("expected %d lines, got %d", len(p), len(lines))
	}

	for i, swatch := range p {
		if !strings.Contains(lines[i], swatch.Label) || !strings.Contains(lines[i], swatch.Hex) {
			t.Errorf("line %d missing %+v: %q", i, swatch, lines[i])
		}
	}
}

func TestSwatchListEmpty(t *testing.T) {
	if got := (SwatchList{}).Render(styles.DefaultStyles()); got != "" {
		t.Errorf("expected empty render, got %q", got)
	}
}
