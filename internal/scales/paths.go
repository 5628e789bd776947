package scales

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// ScaleSearchPaths returns scale search directories in precedence order.
func ScaleSearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".shades", "scales"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "shades", "scales"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "shades", "scales"))
	return paths
}

// LoadScalesFromSearchPaths loads scales from search paths with first-hit
// precedence, falling back to the builtins.
func LoadScalesFromSearchPaths(projectDir string) ([]*Scale, error) {
	seen := make(map[string]*Scale)
	order := make([]string, 0)

	add := func(scales []*Scale) {
		for _, scale := range scales {
			if _, exists := seen[scale.Name]; exists {
				continue
			}
			seen[scale.Name] = scale
			order = append(order, scale.Name)
		}
	}

	for _, path := range ScaleSearchPaths(projectDir) {
		scales, err := LoadScalesFromDir(path)
		if err != nil {
			return nil, err
		}
		add(scales)
	}

	builtins, err := LoadBuiltinScales()
	if err != nil {
		return nil, err
	}
	add(builtins)

	return lo.Map(order, func(name string, _ int) *Scale {
		return seen[name]
	}), nil
}

// FindScale loads a specific scale by name. Matching ignores case.
func FindScale(projectDir, name string) (*Scale, error) {
	scales, err := LoadScalesFromSearchPaths(projectDir)
	if err != nil {
		return nil, err
	}
	if scale := FindByName(scales, name); scale != nil {
		return scale, nil
	}
	return nil, ErrScaleNotFound
}

// FindByName returns the scale named name, ignoring case, or nil.
func FindByName(scales []*Scale, name string) *Scale {
	name = strings.TrimSpace(name)
	scale, ok := lo.Find(scales, func(s *Scale) bool {
		return strings.EqualFold(s.Name, name)
	})
	if !ok {
		return nil
	}
	return scale
}

// FilterByTags keeps scales carrying any of tags. No tags keeps everything.
func FilterByTags(scales []*Scale, tags []string) []*Scale {
	if len(tags) == 0 {
		return scales
	}
	return lo.Filter(scales, func(s *Scale, _ int) bool {
		return lo.SomeBy(tags, s.HasTag)
	})
}
