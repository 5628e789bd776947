// Package cli provides machine-readable output helpers.
package cli

import (
	"encoding/json"
	"io"
	"os"
	"reflect"

	"golang.org/x/term"
)

// IsJSONOutput reports whether --json was requested.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsJSONLOutput reports whether --jsonl was requested.
func IsJSONLOutput() bool {
	return jsonlOutput
}

// WriteOutput writes value as indented JSON, or as JSON lines with one
// element per line when value is a slice and --jsonl is set.
func WriteOutput(out io.Writer, value any) error {
	if IsJSONLOutput() {
		enc := json.NewEncoder(out)
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Slice {
			for i := 0; i < rv.Len(); i++ {
				if err := enc.Encode(rv.Index(i).Interface()); err != nil {
					return err
				}
			}
			return nil
		}
		return enc.Encode(value)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

// colorEnabled reports whether swatches should carry ANSI color.
func colorEnabled(out io.Writer) bool {
	if noColor || IsJSONOutput() || IsJSONLOutput() {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
