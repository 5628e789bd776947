package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/shades/internal/palette"
	"github.com/opencode-ai/shades/internal/tui/styles"
)

// SwatchList renders one row per palette entry: label, filled swatch, hex.
type SwatchList struct {
	Palette palette.Palette
	// Width is the swatch fill width in cells; 0 uses DefaultSwatchWidth.
	Width int
}

// DefaultSwatchWidth is the swatch fill width when none is set.
const DefaultSwatchWidth = 12

// Render renders the list with the given styles.
func (l SwatchList) Render(styleSet styles.Styles) string {
	width := l.Width
	if width <= 0 {
		width = DefaultSwatchWidth
	}

	lines := make([]string, 0, len(l.Palette))
	for _, swatch := range l.Palette {
		fill := styleSet.Swatch(swatch.Hex, fmt.Sprintf("%-*s", width, swatch.Hex))
		lines = append(lines, fmt.Sprintf("%s %s", styleSet.Label.Render(swatch.Label), fill))
	}
	return strings.Join(lines, "\n")
}
