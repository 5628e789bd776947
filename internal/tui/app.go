// Package tui implements the shades interactive palette preview.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/shades/internal/palette"
	"github.com/opencode-ai/shades/internal/scales"
	"github.com/opencode-ai/shades/internal/tui/components"
	"github.com/opencode-ai/shades/internal/tui/styles"
)

// Config configures the preview.
type Config struct {
	// Theme names a styles theme; unknown names use the default.
	Theme string
	// Scales are the selectable scales, in display order.
	Scales []*scales.Scale
	// Scale is the initially selected scale name.
	Scale string
	// Color is the initial input.
	Color string
}

// RunWithConfig launches the preview program.
func RunWithConfig(cfg Config) error {
	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	width  int
	height int
	styles styles.Styles
	scales []*scales.Scale
	scale  int
	input  string
}

const (
	minWidth  = 40
	minHeight = 16
)

func newModel(cfg Config) model {
	m := model{
		styles: styles.BuildStyles(styles.ThemeByName(cfg.Theme)),
		scales: cfg.Scales,
		input:  cfg.Color,
	}
	for i, scale := range cfg.Scales {
		if strings.EqualFold(scale.Name, cfg.Scale) {
			m.scale = i
			break
		}
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.scale = m.cycleScale(1)
		case tea.KeyShiftTab:
			m.scale = m.cycleScale(-1)
		case tea.KeyBackspace:
			if runes := []rune(m.input); len(runes) > 0 {
				m.input = string(runes[:len(runes)-1])
			}
		case tea.KeyCtrlU:
			m.input = ""
		case tea.KeyRunes, tea.KeySpace:
			m.input += string(msg.Runes)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) cycleScale(step int) int {
	if len(m.scales) == 0 {
		return 0
	}
	return (m.scale + step + len(m.scales)) % len(m.scales)
}

func (m model) currentScale() *scales.Scale {
	if m.scale < 0 || m.scale >= len(m.scales) {
		return nil
	}
	return m.scales[m.scale]
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", joinLines(m.smallViewLines()))
		}
	}

	lines := []string{
		m.styles.Title.Render("shades"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			m.styles.Input.Render("Color: "+m.input+"▏"),
			"  ",
			components.RenderColorStateBadge(m.styles, components.ClassifyColor(m.input)),
		),
		"",
	}

	lines = append(lines, m.bodyLines()...)
	lines = append(lines, "", components.RenderQuickActionBar(m.styles, components.PreviewQuickActions(len(m.scales), m.input != "")))

	return fmt.Sprintf("%s\n", joinLines(lines))
}

func (m model) bodyLines() []string {
	scale := m.currentScale()
	if scale == nil {
		return []string{components.EmptyScales().Render(m.styles)}
	}

	header := m.styles.Accent.Render(fmt.Sprintf("Scale: %s (%d/%d)", scale.Name, m.scale+1, len(m.scales)))
	if strings.TrimSpace(m.input) == "" {
		return []string{header, "", components.EmptyColor().Render(m.styles)}
	}

	p, err := palette.GetColors(m.input, scale.Variants())
	if err != nil {
		return []string{header, "", components.InvalidColor(m.input, err).Render(m.styles)}
	}

	return []string{header, "", components.SwatchList{Palette: p}.Render(m.styles)}
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press esc to quit."),
	}
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
