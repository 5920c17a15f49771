package calc

import (
	"errors"
	"math"
	"strconv"
)

// Evaluate parses and evaluates an expression. On success, the result is a
// finite real number. Otherwise, the error implements Error.
func Evaluate(src string) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

// Eval evaluates the expression. It uses no state other than the expression
// itself, so it may be called concurrently.
func (e *Expr) Eval() (float64, error) {
	stack := make([]float64, 0, len(e.prog)/2+1)
	for _, tok := range e.prog {
		switch tok.kind {
		case tokenNum:
			x, err := num(tok)
			if err != nil {
				return 0, err
			}
			stack = append(stack, x)
		case tokenOp, tokenFunc:
			if len(stack) < int(operators[tok.op].args) {
				return 0, &StackError{Op: tok.text, Depth: len(stack)}
			}
			if operators[tok.op].args == 1 {
				r, err := unary(tok.op, stack[len(stack)-1])
				if err != nil {
					return 0, err
				}
				stack[len(stack)-1] = r
				continue
			}
			b := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			r, err := binary(tok.op, stack[len(stack)-1], b)
			if err != nil {
				return 0, err
			}
			stack[len(stack)-1] = r
		default:
			panic("calc: invalid token in postfix program: " + tok.String())
		}
	}
	if len(stack) != 1 {
		return 0, &StackError{Depth: len(stack)}
	}
	r := stack[0]
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, &ResultError{X: r}
	}
	return r, nil
}

// num converts a number token to its value. Literals too large to represent
// become infinities rather than errors.
func num(tok lexToken) (float64, error) {
	x, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return x, nil
		}
		return 0, &NumberError{Col: tok.pos, Text: tok.text, Err: err}
	}
	return x, nil
}

// unary applies a single-operand operator.
func unary(op opKind, a float64) (float64, error) {
	switch op {
	case opSqrt:
		if a < 0 {
			return 0, &DomainError{X: a, Func: "√"}
		}
		return math.Sqrt(a), nil
	case opPct:
		return a / 100, nil
	default:
		panic("calc: " + op.String() + " is not a unary operator")
	}
}

// binary applies a two-operand operator. b is the right-hand operand.
func binary(op opKind, a, b float64) (float64, error) {
	switch op {
	case opAdd:
		return a + b, nil
	case opSub:
		return a - b, nil
	case opMul:
		return a * b, nil
	case opDiv:
		if b == 0 {
			return 0, &DomainError{X: b, Func: "/"}
		}
		return a / b, nil
	case opPow:
		r := math.Pow(a, b)
		if math.IsNaN(r) {
			// E.g. a negative base with a fractional exponent.
			return 0, &ResultError{X: r, Op: "^"}
		}
		return r, nil
	default:
		panic("calc: " + op.String() + " is not a binary operator")
	}
}
