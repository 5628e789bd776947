package styles

import (
	"strings"
	"testing"
)

func TestIsLight(t *testing.T) {
	tests := []struct {
		hex  string
		want bool
	}{
		{"#FFFFFF", true},
		{"#F5F7FF", true},
		{"#FFFF00", true},
		{"#000000", false},
		{"#0A1433", false},
		{"#3366FF", false},
		{"#AN00FF", false},
		{"not-a-color", false},
	}

	for _, tt := range tests {
		if got := IsLight(tt.hex); got != tt.want {
			t.Errorf("IsLight(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestSwatchKeepsText(t *testing.T) {
	styleSet := DefaultStyles()

	for _, hex := range []string{"#3366FF", "#FFFFFF", "#AN00FF"} {
		out := styleSet.Swatch(hex, hex)
		if !strings.Contains(out, hex) {
			t.Errorf("Swatch(%q) lost its text: %q", hex, out)
		}
	}
}

func TestThemeLookup(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 || names[0] != "default" || names[1] != "high-contrast" {
		t.Fatalf("unexpected theme names: %v", names)
	}

	if ThemeByName("high-contrast").Name != "high-contrast" {
		t.Fatalf("expected high-contrast theme")
	}
	if ThemeByName("missing").Name != DefaultTheme.Name {
		t.Fatalf("expected fallback to default theme")
	}

	built := BuildStyles(HighContrastTheme)
	if built.Theme.Name != "high-contrast" {
		t.Fatalf("unexpected theme in styles: %q", built.Theme.Name)
	}
}
