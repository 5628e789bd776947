// Package cli provides table helpers for human-readable output.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/opencode-ai/shades/internal/palette"
)

const tablePadding = 2

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

// formatChannel renders a channel, showing NaN for non-numeric input.
func formatChannel(ch int) string {
	if ch == palette.NaN {
		return "NaN"
	}
	return strconv.Itoa(ch)
}

// channelCells splits a palette hex value back into channel cells.
func channelCells(hex string) []string {
	c, err := palette.ParseColor(hex)
	if err != nil {
		return []string{"-", "-", "-"}
	}
	return []string{formatChannel(c[0]), formatChannel(c[1]), formatChannel(c[2])}
}

func formatIntensity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
