package calc

import (
	"strconv"
	"strings"
)

type lexToken struct {
	text string
	kind tokenKind
	// op is the operator for tokenOp and tokenFunc.
	op  opKind
	pos int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a number literal, possibly with a leading minus sign.
	tokenNum
	// tokenOp is an operator from the precedence table.
	tokenOp
	// tokenFunc is a prefix function, i.e. √.
	tokenFunc
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenFunc:
		return "Func"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// unaryAfter contains the runes after which a minus sign belongs to the
// number that follows it.
const unaryAfter = "+-*/^%√("

// lexer scans preprocessed input. It holds a cursor into the input which only
// advances by the number of runes each scanned token reports consuming.
type lexer struct {
	src []rune
	pos int
}

func lex(src string) *lexer {
	return &lexer{src: []rune(src)}
}

// next scans the next token from the input. The second result is false at the
// end of the input.
func (l *lexer) next() (lexToken, bool) {
	if l.pos >= len(l.src) {
		return lexToken{}, false
	}
	tok, n := l.scan()
	l.pos += n
	return tok, true
}

// scan scans the token at the cursor and returns it along with the number of
// runes it consumed. Panics if the rune at the cursor starts no token; the
// input must have been preprocessed.
func (l *lexer) scan() (lexToken, int) {
	r := l.src[l.pos]
	tok := lexToken{pos: l.pos + 1}
	switch {
	case isNumRune(r):
		n := l.numlen(l.pos)
		tok.text = string(l.src[l.pos : l.pos+n])
		tok.kind = tokenNum
		return tok, n
	case r == '(':
		tok.text = "("
		tok.kind = tokenOpen
		return tok, 1
	case r == ')':
		tok.text = ")"
		tok.kind = tokenClose
		return tok, 1
	case r == '-' && l.unary():
		// The literal may be just "-" if no digits follow. The evaluator
		// rejects it when it converts the number.
		n := 1 + l.numlen(l.pos+1)
		tok.text = string(l.src[l.pos : l.pos+n])
		tok.kind = tokenNum
		return tok, n
	case r == '√':
		tok.text = "√"
		tok.kind = tokenFunc
		tok.op = opSqrt
		return tok, 1
	}
	if op := opfor(r); op != opNone {
		tok.text = op.String()
		tok.kind = tokenOp
		tok.op = op
		return tok, 1
	}
	panic("calc: unexpected " + strconv.QuoteRune(r) + " at " + strconv.Itoa(tok.pos))
}

// numlen returns the length of the run of digits and dots starting at i.
func (l *lexer) numlen(i int) int {
	n := 0
	for i+n < len(l.src) && isNumRune(l.src[i+n]) {
		n++
	}
	return n
}

// unary returns whether a minus sign at the cursor is a sign rather than
// subtraction.
func (l *lexer) unary() bool {
	return l.pos == 0 || strings.ContainsRune(unaryAfter, l.src[l.pos-1])
}
