package calc

import (
	"errors"
	"strconv"
)

// Kind classifies evaluation failures.
type Kind int8

const (
	// InvalidCharacter is input containing a character outside the
	// calculator's alphabet.
	InvalidCharacter Kind = iota + 1
	// NumericParse is a number literal that does not convert to a number,
	// e.g. "1.2.3".
	NumericParse
	// NegativeSqrt is a square root of a negative operand.
	NegativeSqrt
	// DivideByZero is a division by exactly zero.
	DivideByZero
	// InvalidResult is a result that is not a finite real number, including
	// malformed expressions that do not reduce to exactly one value.
	InvalidResult
)

func (k Kind) String() string {
	switch k {
	case InvalidCharacter:
		return "InvalidCharacter"
	case NumericParse:
		return "NumericParse"
	case NegativeSqrt:
		return "NegativeSqrt"
	case DivideByZero:
		return "DivideByZero"
	case InvalidResult:
		return "InvalidResult"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is a classified evaluation failure. Every error returned by Evaluate,
// Parse, Preprocess, and Expr.Eval implements Error.
type Error interface {
	error
	Kind() Kind
}

// InputError is an Error with position information.
type InputError interface {
	Error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the offending token.
	Pos() int
}

// KindOf returns the kind of the first Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Kind(), true
}

// CharError indicates a character outside the accepted alphabet. It
// implements InputError.
type CharError struct {
	// Col is the position of the character in the input after percent
	// rewriting, counting whitespace.
	Col int
	// Char is the rejected character.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

func (err *CharError) Kind() Kind {
	return InvalidCharacter
}

// NumberError indicates a number token that cannot be converted to a number.
// It implements InputError and unwraps to the conversion error.
type NumberError struct {
	// Col is the position of the number token in the preprocessed input.
	Col int
	// Text is the literal text of the token, including a leading minus sign.
	Text string
	// Err is the underlying conversion error.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Kind() Kind {
	return NumericParse
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

// DomainError is an operator applied to an operand outside its domain: a
// square root of a negative number or a division by zero. Its Kind is zero if
// Func is neither "√" nor "/".
type DomainError struct {
	// X is the out-of-domain operand.
	X float64
	// Func is the operator, either "√" or "/".
	Func string
}

func (err *DomainError) Error() string {
	if err.Func == "/" {
		return "division by zero"
	}
	return strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Func
}

func (err *DomainError) Kind() Kind {
	switch err.Func {
	case "√":
		return NegativeSqrt
	case "/":
		return DivideByZero
	default:
		return 0
	}
}

// ResultError indicates a value that is not a finite real number.
type ResultError struct {
	// X is the offending value.
	X float64
	// Op is the operator which produced X, or the empty string if X is the
	// final result.
	Op string
}

func (err *ResultError) Error() string {
	x := strconv.FormatFloat(err.X, 'g', -1, 64)
	if err.Op == "" {
		return "invalid result " + x
	}
	return "invalid result " + x + " from " + err.Op
}

func (err *ResultError) Kind() Kind {
	return InvalidResult
}

// StackError indicates a malformed expression whose postfix form does not
// reduce to exactly one value.
type StackError struct {
	// Op is the operator that found too few operands, or the empty string if
	// the whole expression left other than one value.
	Op string
	// Depth is the number of values on the stack when the error was found.
	Depth int
}

func (err *StackError) Error() string {
	switch {
	case err.Op != "":
		return "missing operand for " + err.Op
	case err.Depth == 0:
		return "no expression"
	default:
		return "malformed expression leaves " + strconv.Itoa(err.Depth) + " values"
	}
}

func (err *StackError) Kind() Kind {
	return InvalidResult
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*NumberError)(nil)
	_ Error      = (*DomainError)(nil)
	_ Error      = (*ResultError)(nil)
	_ Error      = (*StackError)(nil)
)
