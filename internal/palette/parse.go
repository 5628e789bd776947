package palette

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	hexLongPattern  = regexp.MustCompile(`(?i)^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`)
	hexShortPattern = regexp.MustCompile(`(?i)^#?([0-9a-f])([0-9a-f])([0-9a-f])$`)
)

// ParseAny parses a dynamically typed color value. Anything other than a
// string fails with ErrNotString.
func ParseAny(value any) (Color, error) {
	color, ok := value.(string)
	if !ok {
		return Color{}, fmt.Errorf("%w: got %T", ErrNotString, value)
	}
	return ParseColor(color)
}

// ParseColor parses "#AABBCC", "AABBCC", "#ABC", "ABC" or "r,g,b".
//
// The comma form is permissive: components are read with a lenient integer
// parser and anything non-numeric becomes NaN rather than an error. Missing
// components are NaN and extra components are ignored.
func ParseColor(color string) (Color, error) {
	if match := hexLongPattern.FindStringSubmatch(color); match != nil {
		return Color{hexByte(match[1]), hexByte(match[2]), hexByte(match[3])}, nil
	}

	if match := hexShortPattern.FindStringSubmatch(color); match != nil {
		return Color{
			hexByte(match[1] + match[1]),
			hexByte(match[2] + match[2]),
			hexByte(match[3] + match[3]),
		}, nil
	}

	if strings.Contains(color, ",") {
		parts := strings.Split(color, ",")
		c := Color{NaN, NaN, NaN}
		for i := 0; i < len(c) && i < len(parts); i++ {
			c[i] = parseLenientInt(parts[i])
		}
		return c, nil
	}

	return Color{}, &ParseError{Input: color, Err: ErrInvalidFormat}
}

// hexByte decodes a regexp-validated one-byte hex string.
func hexByte(s string) int {
	v, _ := strconv.ParseUint(s, 16, 8)
	return int(v)
}

// parseLenientInt reads the longest integer prefix of s after leading
// whitespace and an optional sign. A "0x" prefix switches to base 16.
// It returns NaN when no digits are present. Values outside the int range
// are reduced by wrapOverflow.
func parseLenientInt(s string) int {
	s = strings.TrimLeftFunc(s, isLeadingSpace)

	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, s = 16, s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return NaN
	}

	v, err := strconv.ParseInt(sign+s[:end], base, 64)
	if err != nil || v <= int64(NaN) || v > math.MaxInt {
		return wrapOverflow(s[:end], base)
	}
	return int(v)
}

// wrapOverflow reduces a magnitude too large for int to its value modulo 256,
// which is all that survives hex rendering. The digits are first rounded to
// float64. Magnitudes beyond float64 range are NaN.
func wrapOverflow(digits string, base int) int {
	literal := digits
	if base == 16 {
		literal = "0x" + digits + "p0"
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil || math.IsInf(f, 0) {
		return NaN
	}
	return int(math.Mod(f, 256))
}

// isLeadingSpace matches the characters skipped before an integer: Unicode
// white space and the byte order mark, but not NEL.
func isLeadingSpace(r rune) bool {
	if r == '\ufeff' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

func isDigit(b byte, base int) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case base == 16 && b >= 'a' && b <= 'f':
		return true
	case base == 16 && b >= 'A' && b <= 'F':
		return true
	default:
		return false
	}
}
