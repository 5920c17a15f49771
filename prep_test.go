package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocess(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"plain", "1+2", "1+2"},
		{"spaces", " 1 +\t2\n", "1+2"},
		{"increase", "100+10%", "100+(10/100*100)"},
		{"decrease", "100-10%", "100-(10/100*100)"},
		{"decimals", "2.5+50%", "2.5+(50/100*2.5)"},
		{"spaced", "100 + 10%", "100+(10/100*100)"},
		{"spacedpct", "100 + 10 %", "100+10%"},
		{"nbsp", "100\u00a0+\u00a010%", "100+(10/100*100)"},
		{"vtab", "100\v+10%", "100+(10/100*100)"},
		{"ideographic", "100\u3000-\u300010%", "100-(10/100*100)"},
		{"bom", "\uFEFF1+2", "1+2"},
		{"linesep", "1\u2028+2", "1+2"},
		{"once", "1+2%+3+4%", "1+(2/100*1)+3+4%"},
		{"inner", "2*100-10%", "2*100-(10/100*100)"},
		{"standalone", "50%", "50%"},
		{"mulpct", "2*50%", "2*50%"},
		{"glyphs", "√(4)^2", "√(4)^2"},
		{"empty", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Preprocess(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestPreprocessInvalid(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
		char rune
	}{
		{"hash", "5#3", 2, '#'},
		{"letter", "a", 1, 'a'},
		{"afterspace", "1 + e", 5, 'e'},
		{"times", "2×3", 2, '×'},
		{"fullwidth", "１", 1, '１'},
		{"nel", "1\u00852", 2, '\u0085'},
		{"badutf8", "1\xff", 2, '\uFFFD'},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Preprocess(c.src)
			assert.Empty(t, got)
			var ce *CharError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, c.col, ce.Col)
			assert.Equal(t, c.char, ce.Char)
			assert.Equal(t, InvalidCharacter, ce.Kind())
		})
	}
}
