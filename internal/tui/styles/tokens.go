// Package styles holds the preview themes and swatch rendering.
package styles

import "sort"

// ThemeTokens defines the semantic color roles for the preview chrome.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Error      string
	Info       string
	// SwatchDark and SwatchLight label swatches on light and dark fills.
	SwatchDark  string
	SwatchLight string
}

// Theme bundles a palette with a name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	"default":       DefaultTheme,
	"high-contrast": HighContrastTheme,
}

// ThemeNames returns the theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns the named theme, falling back to DefaultTheme.
func ThemeByName(name string) Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	return DefaultTheme
}
