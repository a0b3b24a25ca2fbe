// Package calc evaluates single-line infix arithmetic expressions.
//
// Expressions are made of floating-point numbers, the operators
// + - * / % ^, parentheses, and calls to a fixed catalog of named
// functions such as sqrt(4) or max(1, 2, 3). "2+3*4" evaluates to 14,
// "2^3^2" to 512 (exponentiation is right-associative), and "max()" is
// rejected because max wants at least one argument.
//
// Evaluation runs in three stages: a tokenizer that decides whether a
// + or - is unary or binary from the token before it, a shunting-yard
// conversion to reverse Polish notation that resolves each call site's
// argument count, and a stack machine that replays the RPN sequence.
// Parse produces the intermediate Program so the same expression can be
// evaluated many times, and a Tracer can observe every step of both the
// conversion and the evaluation.
//
// Arithmetic follows IEEE-754 double precision: 1/0 is +Inf and
// sqrt(-1) is NaN, not an error.
package calc
