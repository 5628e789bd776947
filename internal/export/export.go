// Package export writes palettes as CSS, SCSS, JSON, YAML or Tailwind config.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/opencode-ai/shades/internal/palette"
	"gopkg.in/yaml.v3"
)

// Format identifies an export format.
type Format string

const (
	FormatCSS      Format = "css"
	FormatSCSS     Format = "scss"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTailwind Format = "tailwind"
)

// DefaultName is used when no palette name is given.
const DefaultName = "color"

// ErrUnknownFormat is returned for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatCSS, FormatSCSS, FormatJSON, FormatYAML, FormatTailwind}
}

// ParseFormat resolves a format name, ignoring case and surrounding space.
func ParseFormat(value string) (Format, error) {
	normalized := Format(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "yml" {
		return FormatYAML, nil
	}
	for _, format := range Formats() {
		if normalized == format {
			return format, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, value)
}

// Write serializes p under name to w.
func Write(w io.Writer, format Format, name string, p palette.Palette) error {
	name = Slug(name)

	switch format {
	case FormatCSS:
		return writeCSS(w, name, p)
	case FormatSCSS:
		return writeSCSS(w, name, p)
	case FormatJSON:
		return writeJSON(w, name, p)
	case FormatYAML:
		return writeYAML(w, name, p)
	case FormatTailwind:
		return writeTailwind(w, name, p)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, string(format))
	}
}

// Slug lowercases name and replaces runs of non-alphanumerics with "-".
// An empty result becomes DefaultName.
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return DefaultName
	}
	return slug
}

func writeCSS(w io.Writer, name string, p palette.Palette) error {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, swatch := range p {
		fmt.Fprintf(&b, "  --%s-%s: %s;\n", name, Slug(swatch.Label), swatch.Hex)
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeSCSS(w io.Writer, name string, p palette.Palette) error {
	var b strings.Builder
	for _, swatch := range p {
		fmt.Fprintf(&b, "$%s-%s: %s;\n", name, Slug(swatch.Label), swatch.Hex)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeJSON(w io.Writer, name string, p palette.Palette) error {
	data, err := json.MarshalIndent(map[string]palette.Palette{name: p}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal palette: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func writeYAML(w io.Writer, name string, p palette.Palette) error {
	values := &yaml.Node{Kind: yaml.MappingNode}
	for _, swatch := range p {
		values.Content = append(values.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: swatch.Label, Style: yaml.DoubleQuotedStyle},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: swatch.Hex, Style: yaml.DoubleQuotedStyle},
		)
	}
	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			values,
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode palette: %w", err)
	}
	return enc.Close()
}

func writeTailwind(w io.Writer, name string, p palette.Palette) error {
	var b strings.Builder
	b.WriteString("module.exports = {\n")
	b.WriteString("  theme: {\n")
	b.WriteString("    extend: {\n")
	b.WriteString("      colors: {\n")
	fmt.Fprintf(&b, "        '%s': {\n", name)
	for _, swatch := range p {
		fmt.Fprintf(&b, "          '%s': '%s',\n", jsQuote(swatch.Label), swatch.Hex)
	}
	b.WriteString("        },\n")
	b.WriteString("      },\n")
	b.WriteString("    },\n")
	b.WriteString("  },\n")
	b.WriteString("};\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func jsQuote(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}
