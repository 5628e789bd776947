package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/opencode-ai/shades/internal/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sample = palette.Palette{
	{Label: "50", Hex: "#F5F7FF"},
	{Label: "500", Hex: "#3366FF"},
	{Label: "950", Hex: "#0A1433"},
}

func render(t *testing.T, format Format, name string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, format, name, sample))
	return buf.String()
}

func TestWriteCSS(t *testing.T) {
	want := `:root {
  --primary-50: #F5F7FF;
  --primary-500: #3366FF;
  --primary-950: #0A1433;
}
`
	assert.Equal(t, want, render(t, FormatCSS, "Primary"))
}

func TestWriteSCSS(t *testing.T) {
	want := `$brand-blue-50: #F5F7FF;
$brand-blue-500: #3366FF;
$brand-blue-950: #0A1433;
`
	assert.Equal(t, want, render(t, FormatSCSS, "brand blue"))
}

func TestWriteJSON(t *testing.T) {
	want := `{
  "color": {
    "50": "#F5F7FF",
    "500": "#3366FF",
    "950": "#0A1433"
  }
}
`
	assert.Equal(t, want, render(t, FormatJSON, ""))
}

func TestWriteYAMLKeepsOrderAndStringKeys(t *testing.T) {
	out := render(t, FormatYAML, "accent")

	want := `accent:
  "50": "#F5F7FF"
  "500": "#3366FF"
  "950": "#0A1433"
`
	assert.Equal(t, want, out)

	var decoded map[string]map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "#3366FF", decoded["accent"]["500"])
}

func TestWriteTailwind(t *testing.T) {
	out := render(t, FormatTailwind, "primary")
	assert.Contains(t, out, "module.exports = {")
	assert.Contains(t, out, "        'primary': {\n")
	assert.Contains(t, out, "          '500': '#3366FF',\n")
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, Format("pdf"), "x", sample)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"css", FormatCSS, false},
		{" SCSS ", FormatSCSS, false},
		{"Json", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"tailwind", FormatTailwind, false},
		{"table", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Primary":       "primary",
		"brand blue":    "brand-blue",
		"  a__b--c  ":   "a-b-c",
		"":              DefaultName,
		"!!!":           DefaultName,
		"gray/neutral!": "gray-neutral",
	}
	for input, want := range tests {
		assert.Equal(t, want, Slug(input), "Slug(%q)", input)
	}
}
