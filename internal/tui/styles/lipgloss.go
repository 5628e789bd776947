package styles

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// lightThreshold is the CIE L* above which a fill takes dark text.
const lightThreshold = 0.6

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme   Theme
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Panel   lipgloss.Style
	Border  lipgloss.Style
	Focus   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Input   lipgloss.Style
	Label   lipgloss.Style
}

// DefaultStyles builds styles from the default theme.
func DefaultStyles() Styles {
	return BuildStyles(DefaultTheme)
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(theme Theme) Styles {
	tokens := theme.Tokens

	return Styles{
		Theme:   theme,
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		Panel:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Panel)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tokens.Border)),
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Border)),
		Focus:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Success)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Warning)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Info)),
		Input:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(tokens.Border)).Padding(0, 1),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)).Width(6).Align(lipgloss.Right),
	}
}

// Swatch renders text on a hex fill with a legible foreground. Hex values
// that are not renderable colors fall back to the muted style.
func (s Styles) Swatch(hex, text string) string {
	if _, err := colorful.Hex(hex); err != nil {
		return s.Muted.Render(text)
	}

	fg := s.Theme.Tokens.SwatchLight
	if IsLight(hex) {
		fg = s.Theme.Tokens.SwatchDark
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1).
		Render(text)
}

// IsLight reports whether hex is light enough to need dark text.
// Unparseable values are treated as dark.
func IsLight(hex string) bool {
	c, err := colorful.Hex(hex)
	if err != nil {
		return false
	}
	l, _, _ := c.Lab()
	return l > lightThreshold
}
