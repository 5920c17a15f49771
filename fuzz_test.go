package calc_test

import (
	"math"
	"strings"
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("2+3*4")
	f.Add("√(16)")
	f.Add("100+10%")
	f.Add("5--3")
	f.Add("1.2.3")
	f.Add("(1)(2")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := calc.Evaluate(s)
		if err != nil {
			if _, ok := calc.KindOf(err); !ok {
				t.Errorf("%q: unclassified error %#v", s, err)
			}
			return
		}
		if math.IsNaN(r) || math.IsInf(r, 0) {
			t.Errorf("%q: non-finite result %g", s, r)
		}
	})
}

func FuzzParse(f *testing.F) {
	f.Add("2^3^2")
	f.Add("√(√(16))")
	f.Add("2)+3")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := calc.Parse(s)
		if err != nil {
			return
		}
		if p := e.String(); strings.ContainsAny(p, "()") {
			t.Errorf("%q: parenthesis in postfix %q", s, p)
		}
	})
}
