package calc

import (
	"strconv"
	"strings"
)

// Expr is a parsed expression in postfix order. An Expr is immutable, so it
// can be evaluated concurrently.
type Expr struct {
	// prog is the postfix token sequence. It never contains parentheses.
	prog []lexToken
	// src is the preprocessed text that prog was parsed from.
	src string
}

// opKind is an operator or function from the calculator's fixed set.
type opKind int8

const (
	opNone opKind = iota

	opAdd  // a + b
	opSub  // a - b
	opMul  // a * b
	opDiv  // a / b
	opPct  // a / 100
	opPow  // a ^ b
	opSqrt // √a
)

func (o opKind) String() string {
	switch o {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	case opPct:
		return "%"
	case opPow:
		return "^"
	case opSqrt:
		return "√"
	default:
		return "opKind(" + strconv.Itoa(int(o)) + ")"
	}
}

// opfor gets the operator for a rune. If there is no such operator, then the
// result is opNone.
func opfor(r rune) opKind {
	switch r {
	case '+':
		return opAdd
	case '-':
		return opSub
	case '*':
		return opMul
	case '/':
		return opDiv
	case '%':
		return opPct
	case '^':
		return opPow
	case '√':
		return opSqrt
	default:
		return opNone
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// args is the number of operands the operator pops during evaluation.
	args int8
}

// operators is the precedence table, indexed by opKind.
var operators = [...]operator{
	opAdd:  {1, false, 2},
	opSub:  {1, false, 2},
	opMul:  {2, false, 2},
	opDiv:  {2, false, 2},
	opPct:  {2, false, 1},
	opPow:  {3, true, 2},
	opSqrt: {4, true, 1},
}

// yields returns whether an operator on top of the operator stack must be
// output before p is pushed.
func (p operator) yields(top operator) bool {
	if p.right {
		return p.prec < top.prec
	}
	return p.prec <= top.prec
}

// Parse preprocesses an expression and converts it to postfix order. The only
// errors Parse reports are those from Preprocess; problems with number literals
// and operands surface when the expression is evaluated.
//
// Parse expects parentheses to be balanced, as by Balance. Parentheses that
// are still open at the end of the input are closed implicitly, and a close
// parenthesis with no matching open parenthesis is ignored.
func Parse(src string) (*Expr, error) {
	s, err := Preprocess(src)
	if err != nil {
		return nil, err
	}
	return &Expr{prog: shunt(s), src: s}, nil
}

// shunt converts preprocessed input to postfix order.
func shunt(src string) []lexToken {
	scan := lex(src)
	var out, ops []lexToken
	pop := func() lexToken {
		tok := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		return tok
	}
	for {
		tok, ok := scan.next()
		if !ok {
			break
		}
		switch tok.kind {
		case tokenNum:
			out = append(out, tok)
		case tokenOpen, tokenFunc:
			ops = append(ops, tok)
		case tokenClose:
			for len(ops) > 0 && ops[len(ops)-1].kind != tokenOpen {
				out = append(out, pop())
			}
			if len(ops) > 0 {
				pop()
			}
			// √ applies to the group it precedes.
			if len(ops) > 0 && ops[len(ops)-1].kind == tokenFunc {
				out = append(out, pop())
			}
		case tokenOp:
			cur := operators[tok.op]
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind != tokenOp && top.kind != tokenFunc {
					break
				}
				if !cur.yields(operators[top.op]) {
					break
				}
				out = append(out, pop())
			}
			ops = append(ops, tok)
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
	for len(ops) > 0 {
		if tok := pop(); tok.kind != tokenOpen {
			out = append(out, tok)
		}
	}
	return out
}

// String formats the expression in postfix order with tokens separated by
// spaces.
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.prog {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.text)
	}
	return b.String()
}

// Source returns the preprocessed text the expression was parsed from.
func (e *Expr) Source() string {
	return e.src
}

// Len returns the number of tokens in the postfix form of the expression.
func (e *Expr) Len() int {
	return len(e.prog)
}
