// Package calc implements a pocket-calculator expression evaluator.
//
// Expressions are written the way they are typed on a calculator keypad:
// numbers, the operators + - * / ^ %, parentheses, and the square root sign
// √. "2+3*4" is 14 and "2^3^2" is 2^(3^2). A minus at the start of the input
// or right after an operator or open parenthesis is part of the number that
// follows it, so "5--3" is 8.
//
// Percent has two meanings. Alone, "50%" is 50/100. The first "a+b%" or
// "a-b%" in an expression means "a increased or decreased by b percent", so
// "100+10%" is 110.
//
// Evaluation is a pure function of its input. An Expr returned by Parse may be
// evaluated any number of times from any number of goroutines.
//
package calc
