package scales

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/opencode-ai/shades/internal/logging"
	"gopkg.in/yaml.v3"
)

// LoadScale reads a single scale from disk.
func LoadScale(path string) (*Scale, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("scale path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scale %s: %w", path, err)
	}

	scale, err := parseScale(data)
	if err != nil {
		return nil, fmt.Errorf("parse scale %s: %w", path, err)
	}
	scale.Source = path
	return scale, nil
}

// LoadScalesFromDir loads all scales from a directory.
func LoadScalesFromDir(dir string) ([]*Scale, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Scale{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Scale{}, nil
		}
		return nil, fmt.Errorf("read scales dir %s: %w", dir, err)
	}

	scales := make([]*Scale, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		scale, err := LoadScale(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		scales = append(scales, scale)
	}

	sort.Slice(scales, func(i, j int) bool {
		return scales[i].Name < scales[j].Name
	})

	return scales, nil
}

func parseScale(data []byte) (*Scale, error) {
	var scale Scale
	if err := yaml.Unmarshal(data, &scale); err != nil {
		return nil, err
	}

	scale.Name = strings.TrimSpace(scale.Name)
	for i := range scale.Steps {
		scale.Steps[i].Label = strings.TrimSpace(scale.Steps[i].Label)
	}
	if err := scale.Validate(); err != nil {
		return nil, err
	}

	warnExtrapolation(&scale)
	return &scale, nil
}

// warnExtrapolation logs steps whose intensity lies outside [0,1].
func warnExtrapolation(scale *Scale) {
	logger := logging.Component("scales")
	for _, step := range scale.Steps {
		if step.Kind() == "base" {
			continue
		}
		if v := step.Intensity(); v < 0 || v > 1 {
			logger.Warn().
				Str("scale", scale.Name).
				Str("label", step.Label).
				Str("kind", step.Kind()).
				Float64("intensity", v).
				Msg("intensity outside [0,1], values will extrapolate")
		}
	}
}
