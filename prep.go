package calc

import (
	"regexp"
	"strings"
	"unicode"
)

// Operators contains the runes which are considered to be operators, not
// counting the minus sign of a negative number.
const Operators = "+-*/^%√"

// spaces is the whitespace allowed around the operator of the percent
// shorthand. It agrees with isSpace.
const spaces = `[\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}]*`

// percentRE matches the "increase or decrease by b percent" shorthand. There
// is no space between b and the percent sign.
var percentRE = regexp.MustCompile(`(\d+(?:\.\d+)?)` + spaces + `([+-])` + spaces + `(\d+(?:\.\d+)?)%`)

// Preprocess rewrites the first percent shorthand "a+b%" or "a-b%" in src to
// "a + (b / 100 * a)" or "a - (b / 100 * a)", then checks that every rune is
// in the calculator's alphabet and removes whitespace. Other occurrences of %
// are left for the evaluator, which treats them as dividing by 100.
//
// If src contains a rune outside the alphabet, the error is a *CharError whose
// position counts runes of the rewritten input, including whitespace.
func Preprocess(src string) (string, error) {
	if m := percentRE.FindStringSubmatchIndex(src); m != nil {
		a, op, b := src[m[2]:m[3]], src[m[4]:m[5]], src[m[6]:m[7]]
		src = src[:m[0]] + a + " " + op + " (" + b + " / 100 * " + a + ")" + src[m[1]:]
	}
	var s strings.Builder
	s.Grow(len(src))
	col := 0
	for _, r := range src {
		col++
		switch {
		case isSpace(r):
			continue
		case isNumRune(r), r == '(', r == ')', strings.ContainsRune(Operators, r):
			s.WriteRune(r)
		default:
			return "", &CharError{Col: col, Char: r}
		}
	}
	return s.String(), nil
}

// isSpace returns whether r is whitespace to be removed from the input: ASCII
// whitespace, space separators, line and paragraph separators, and the byte
// order mark.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// isNumRune returns whether r may appear in a number literal.
func isNumRune(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}
