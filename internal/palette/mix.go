package palette

import (
	"math"
	"strconv"
	"strings"
)

// Tint moves each channel toward 255 by intensity.
// Intensity is not range-checked; values outside [0,1] extrapolate.
func Tint(c Color, intensity float64) Color {
	var out Color
	for i, ch := range c {
		if ch == NaN {
			out[i] = NaN
			continue
		}
		v := float64(ch)
		out[i] = roundChannel(v + (255-v)*intensity)
	}
	return out
}

// Shade scales each channel toward 0 by intensity.
func Shade(c Color, intensity float64) Color {
	var out Color
	for i, ch := range c {
		if ch == NaN {
			out[i] = NaN
			continue
		}
		out[i] = roundChannel(float64(ch) * intensity)
	}
	return out
}

// roundChannel rounds half up, so 127.5 becomes 128 and -0.5 becomes 0.
// The fraction is compared directly since v+0.5 can round up in float64.
func roundChannel(v float64) int {
	r := math.Floor(v)
	if v-r >= 0.5 {
		r++
	}
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= float64(NaN) || r >= math.MaxInt {
		return NaN
	}
	return int(r)
}

// HexValue formats c as "#RRGGBB" in uppercase.
//
// Each channel keeps only the last two characters of its zero-padded base-16
// form, so out-of-range values are truncated rather than rejected. NaN
// channels render as "AN".
func HexValue(c Color) string {
	var b strings.Builder
	b.Grow(7)
	b.WriteByte('#')
	for _, ch := range c {
		digits := "0" + channelHex(ch)
		b.WriteString(digits[len(digits)-2:])
	}
	return b.String()
}

func channelHex(ch int) string {
	if ch == NaN {
		return "NAN"
	}
	return strings.ToUpper(strconv.FormatInt(int64(ch), 16))
}
