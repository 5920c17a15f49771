package calc

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Balance appends a close parenthesis to src for each open parenthesis that
// src does not close.
func Balance(src string) string {
	n := strings.Count(src, "(") - strings.Count(src, ")")
	if n <= 0 {
		return src
	}
	return src + strings.Repeat(")", n)
}

var glyphs = strings.NewReplacer("×", "*", "÷", "/", "−", "-")

// Normalize converts src to Unicode normalization form NFKC, so that e.g.
// fullwidth digits become ASCII, and replaces the display glyphs × ÷ − with
// the operators * / -.
func Normalize(src string) string {
	return glyphs.Replace(norm.NFKC.String(src))
}

// Format formats a result as a decimal number with no exponent, so that the
// result is itself a valid expression. Integers are formatted exactly. Other
// values are rounded to digits decimal places with trailing zeros removed, or
// formatted with the fewest digits that evaluate to exactly x if digits is
// negative. Negative zero formats as "0". Format is not meaningful for
// infinities or NaN, which Evaluate never returns.
func Format(x float64, digits int) string {
	if x == 0 {
		return "0"
	}
	if digits < 0 || x == math.Trunc(x) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', digits, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
