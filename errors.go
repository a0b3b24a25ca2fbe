package calc

import "strconv"

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the text the lexer was scanning when it gave up.
	Text string
	// Kind is the type of token the lexer was scanning. This may be
	// "number" or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the rune column of the start of the offending token.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// NameError indicates an identifier that names no catalog function. It
// implements InputError.
type NameError struct {
	// Col is the rune column of the identifier.
	Col int
	// Name is the unresolved identifier, after truncation to the catalog's
	// name-length bound.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "undefined function "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// ParenError indicates unbalanced parentheses, found either while draining
// to a close paren or at the end of the input. It implements InputError.
type ParenError struct {
	// Col is the rune column where the mismatch was detected.
	Col int
}

func (err *ParenError) Error() string {
	return errpos(err.Col, "mismatched parentheses")
}

func (err *ParenError) Pos() int {
	return err.Col
}

// SeparatorError indicates a comma outside any open function call. It
// implements InputError.
type SeparatorError struct {
	// Col is the rune column of the comma.
	Col int
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "comma outside of a function call")
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// ArityError indicates a function invoked with an argument count its
// descriptor does not accept. It implements InputError.
type ArityError struct {
	// Col is the rune column of the function name.
	Col int
	// Func is the function name.
	Func string
	// Want is the declared arity, or Variadic.
	Want int
	// Got is the call-site argument count, or ArityUnresolved if the
	// function was never followed by an argument list.
	Got int
}

func (err *ArityError) Error() string {
	if err.Got == ArityUnresolved {
		return errpos(err.Col, err.Func+" used without an argument list")
	}
	if err.Want == Variadic {
		return errpos(err.Col, err.Func+" called with "+strconv.Itoa(err.Got)+" arguments, wants at least 1")
	}
	return errpos(err.Col, err.Func+" called with "+strconv.Itoa(err.Got)+" arguments, wants "+strconv.Itoa(err.Want))
}

func (err *ArityError) Pos() int {
	return err.Col
}

// OverflowError indicates that an expression needed more stack than the
// configured limit allows. It implements InputError.
type OverflowError struct {
	// Col is the rune column of the token that did not fit.
	Col int
	// Limit is the configured stack capacity.
	Limit int
}

func (err *OverflowError) Error() string {
	return errpos(err.Col, "expression too deep: stack limit "+strconv.Itoa(err.Limit)+" exceeded")
}

func (err *OverflowError) Pos() int {
	return err.Col
}

// ProgramError indicates a structurally malformed expression discovered
// while replaying its RPN form: an operator missing an operand, or more
// than one value left when the program ends.
type ProgramError struct {
	// Msg describes the malformation.
	Msg string
}

func (err *ProgramError) Error() string {
	return "malformed expression: " + err.Msg
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error caused by
// invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the input that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*ParenError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*ArityError)(nil)
	_ InputError = (*OverflowError)(nil)
)
