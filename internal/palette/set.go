package palette

import (
	"bytes"
	"encoding/json"
)

// Palette maps variant labels to hex strings, in variant-table order.
type Palette []Swatch

// Get returns the hex value for label.
func (p Palette) Get(label string) (string, bool) {
	for _, swatch := range p {
		if swatch.Label == label {
			return swatch.Hex, true
		}
	}
	return "", false
}

// Labels returns the variant labels in order.
func (p Palette) Labels() []string {
	labels := make([]string, 0, len(p))
	for _, swatch := range p {
		labels = append(labels, swatch.Label)
	}
	return labels
}

// Map returns the palette as an unordered label to hex map.
func (p Palette) Map() map[string]string {
	out := make(map[string]string, len(p))
	for _, swatch := range p {
		out[swatch.Label] = swatch.Hex
	}
	return out
}

// MarshalJSON encodes the palette as a JSON object keyed by label, keeping order.
func (p Palette) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, swatch := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(swatch.Label)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(swatch.Hex)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
