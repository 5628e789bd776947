// Package scales provides named variant tables loaded from YAML.
package scales

import (
	"errors"
	"fmt"

	"github.com/opencode-ai/shades/internal/palette"
)

// DefaultScaleName is the scale used when none is configured.
const DefaultScaleName = "tailwind"

var (
	// ErrScaleNameRequired is returned when a scale has no name.
	ErrScaleNameRequired = errors.New("scale name is required")
	// ErrScaleNoSteps is returned when a scale has no steps.
	ErrScaleNoSteps = errors.New("scale must have at least one step")
	// ErrScaleNotFound is returned when a scale is not found.
	ErrScaleNotFound = errors.New("scale not found")
)

// ScaleValidationError describes a validation error in a scale.
type ScaleValidationError struct {
	Field   string
	Index   int
	Message string
}

func (e *ScaleValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("scale %s[%d]: %s", e.Field, e.Index, e.Message)
	}
	return fmt.Sprintf("scale %s: %s", e.Field, e.Message)
}

// Scale is a named, ordered list of tint/shade steps.
type Scale struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Steps       []Step   `yaml:"steps" json:"steps"`
	Source      string   `yaml:"-" json:"source,omitempty"` // file path or "builtin"
}

// Step is one labeled variant. A step with neither Tint nor Shade is the identity.
type Step struct {
	Label string   `yaml:"label" json:"label"`
	Tint  *float64 `yaml:"tint,omitempty" json:"tint,omitempty"`
	Shade *float64 `yaml:"shade,omitempty" json:"shade,omitempty"`
}

// Kind names the step operation: "tint", "shade" or "base".
func (s Step) Kind() string {
	switch {
	case s.Tint != nil:
		return "tint"
	case s.Shade != nil:
		return "shade"
	default:
		return "base"
	}
}

// Intensity returns the tint or shade intensity, or 0 for the identity.
func (s Step) Intensity() float64 {
	switch {
	case s.Tint != nil:
		return *s.Tint
	case s.Shade != nil:
		return *s.Shade
	default:
		return 0
	}
}

// Transform returns the palette transform for this step.
func (s Step) Transform() palette.Transform {
	switch {
	case s.Tint != nil:
		return palette.WithTint(*s.Tint)
	case s.Shade != nil:
		return palette.WithShade(*s.Shade)
	default:
		return palette.Identity
	}
}

// Variants converts the scale into a palette variant table.
func (s *Scale) Variants() palette.Variants {
	variants := make(palette.Variants, 0, len(s.Steps))
	for _, step := range s.Steps {
		variants = append(variants, palette.Variant{
			Label:     step.Label,
			Transform: step.Transform(),
		})
	}
	return variants
}

// Apply derives a palette for color using this scale.
func (s *Scale) Apply(color string) (palette.Palette, error) {
	return palette.GetColors(color, s.Variants())
}

// HasTag reports whether the scale carries tag.
func (s *Scale) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Validate checks that the scale is well formed.
func (s *Scale) Validate() error {
	if s.Name == "" {
		return ErrScaleNameRequired
	}
	if len(s.Steps) == 0 {
		return ErrScaleNoSteps
	}

	seen := make(map[string]struct{}, len(s.Steps))
	for i, step := range s.Steps {
		if step.Label == "" {
			return &ScaleValidationError{
				Field:   "steps",
				Index:   i,
				Message: "label is required",
			}
		}
		if _, ok := seen[step.Label]; ok {
			return &ScaleValidationError{
				Field:   "steps",
				Index:   i,
				Message: fmt.Sprintf("duplicate label %q", step.Label),
			}
		}
		seen[step.Label] = struct{}{}

		if step.Tint != nil && step.Shade != nil {
			return &ScaleValidationError{
				Field:   "steps",
				Index:   i,
				Message: "tint and shade are mutually exclusive",
			}
		}
	}
	return nil
}
