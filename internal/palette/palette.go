// Package palette derives tint/shade lightness scales from a single color.
package palette

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNotString is returned when a color value is not a string.
	ErrNotString = errors.New("color should be string")
	// ErrInvalidFormat is returned when a color string matches no accepted format.
	ErrInvalidFormat = errors.New("invalid color format, use #ABC or #AABBCC or r,g,b")
)

// NaN marks a channel that could not be parsed as a number.
const NaN = math.MinInt

// ParseError describes a color string that could not be parsed.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse color %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Color is an RGB triple. Channels are 0-255 for well-formed input.
type Color [3]int

// Valid reports whether every channel holds a number.
func (c Color) Valid() bool {
	for _, ch := range c {
		if ch == NaN {
			return false
		}
	}
	return true
}

// Hex is shorthand for HexValue(c).
func (c Color) Hex() string {
	return HexValue(c)
}

// Transform maps a color to a derived color.
type Transform func(Color) Color

// Variant is one named entry in a lightness scale.
type Variant struct {
	Label     string
	Transform Transform
}

// Variants is an ordered variant table.
type Variants []Variant

// Identity returns c unchanged.
func Identity(c Color) Color {
	return c
}

// WithTint returns a transform that tints by intensity.
func WithTint(intensity float64) Transform {
	return func(c Color) Color {
		return Tint(c, intensity)
	}
}

// WithShade returns a transform that shades by intensity.
func WithShade(intensity float64) Transform {
	return func(c Color) Color {
		return Shade(c, intensity)
	}
}

// DefaultVariants returns the eleven-step 50..950 table.
func DefaultVariants() Variants {
	return Variants{
		{Label: "50", Transform: WithTint(0.95)},
		{Label: "100", Transform: WithTint(0.9)},
		{Label: "200", Transform: WithTint(0.75)},
		{Label: "300", Transform: WithTint(0.6)},
		{Label: "400", Transform: WithTint(0.3)},
		{Label: "500", Transform: Identity},
		{Label: "600", Transform: WithShade(0.9)},
		{Label: "700", Transform: WithShade(0.6)},
		{Label: "800", Transform: WithShade(0.45)},
		{Label: "900", Transform: WithShade(0.3)},
		{Label: "950", Transform: WithShade(0.2)},
	}
}

// Swatch is one labeled hex value in a palette.
type Swatch struct {
	Label string `json:"label"`
	Hex   string `json:"hex"`
}

// GetColors parses color once and applies every variant to it in order.
// A nil variants table selects DefaultVariants.
func GetColors(color string, variants Variants) (Palette, error) {
	if variants == nil {
		variants = DefaultVariants()
	}

	components, err := ParseColor(color)
	if err != nil {
		return nil, err
	}

	out := make(Palette, 0, len(variants))
	index := make(map[string]int, len(variants))
	for _, variant := range variants {
		transform := variant.Transform
		if transform == nil {
			transform = Identity
		}
		hex := HexValue(transform(components))

		// A repeated label keeps its first position and takes the last value.
		if i, ok := index[variant.Label]; ok {
			out[i].Hex = hex
			continue
		}
		index[variant.Label] = len(out)
		out = append(out, Swatch{Label: variant.Label, Hex: hex})
	}

	return out, nil
}
