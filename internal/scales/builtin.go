package scales

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltinScales returns the scales bundled with shades.
func LoadBuiltinScales() ([]*Scale, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin scales: %w", err)
	}

	scales := make([]*Scale, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin scale %s: %w", entry.Name(), err)
		}
		scale, err := parseScale(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin scale %s: %w", entry.Name(), err)
		}
		scale.Source = "builtin"
		scales = append(scales, scale)
	}

	sort.Slice(scales, func(i, j int) bool {
		return scales[i].Name < scales[j].Name
	})

	return scales, nil
}
