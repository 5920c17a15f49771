package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorTable(t *testing.T) {
	for _, r := range Operators {
		op := opfor(r)
		require.NotEqual(t, opNone, op, "no operator for %c", r)
		p := operators[op]
		assert.NotZero(t, p.prec, "no precedence for %c", r)
		assert.NotZero(t, p.args, "no arity for %c", r)
		assert.Equal(t, string(r), op.String())
	}
}

func TestOperatorYields(t *testing.T) {
	cases := []struct {
		name     string
		cur, top opKind
		want     bool
	}{
		{"add-add", opAdd, opAdd, true},
		{"add-mul", opAdd, opMul, true},
		{"mul-add", opMul, opAdd, false},
		{"mul-pct", opMul, opPct, true},
		{"pow-pow", opPow, opPow, false},
		{"pow-sqrt", opPow, opSqrt, true},
		{"pow-mul", opPow, opMul, false},
		{"sub-sqrt", opSub, opSqrt, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, operators[c.cur].yields(operators[c.top]))
		})
	}
}

func TestParsePostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "42", "42"},
		{"prec", "2+3*4", "2 3 4 * +"},
		{"precdesc", "2*3+4", "2 3 * 4 +"},
		{"paren", "(2+3)*4", "2 3 + 4 *"},
		{"leftassoc", "8-3-2", "8 3 - 2 -"},
		{"rightassoc", "2^3^2", "2 3 2 ^ ^"},
		{"subneg", "5--3", "5 -3 -"},
		{"negpow", "-2^2", "-2 2 ^"},
		{"pownneg", "2^-1", "2 -1 ^"},
		{"sqrtgroup", "√(16)", "16 √"},
		{"sqrtbare", "√16+9", "16 √ 9 +"},
		{"sqrtnested", "√(√(16))", "16 √ √"},
		{"sqrtmul", "2*√(9)+1", "2 9 √ * 1 +"},
		{"powsqrt", "2^√(4)", "2 4 √ ^"},
		{"pct", "50%", "50 %"},
		{"pctmul", "50%*2", "50 % 2 *"},
		{"pctshorthand", "100+10%", "100 10 100 / 100 * +"},
		{"pctshorthandonce", "200+10%+10%", "200 10 100 / 200 * + 10 % +"},
		{"spaces", " 1 +\t2 ", "1 2 +"},
		{"unclosed", "(2+3", "2 3 +"},
		{"stray", "2)+3", "2 3 +"},
		{"multidot", "1.2.3+1", "1.2.3 1 +"},
		{"empty", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, e.String())
			for _, tok := range e.prog {
				assert.NotEqual(t, tokenOpen, tok.kind, "open paren in postfix %v", e)
				assert.NotEqual(t, tokenClose, tok.kind, "close paren in postfix %v", e)
			}
		})
	}
}

func TestParseSource(t *testing.T) {
	e, err := Parse("100 - 10%")
	require.NoError(t, err)
	assert.Equal(t, "100-(10/100*100)", e.Source())
	assert.Equal(t, 7, e.Len())
}

func TestParseInvalidCharacter(t *testing.T) {
	e, err := Parse("2+x")
	assert.Nil(t, e)
	var ce *CharError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 3, ce.Pos())
	assert.Equal(t, 'x', ce.Char)
}
