package calc

import "strconv"

// TokenKind identifies the variant of a Token.
type TokenKind int

const (
	// TokenNone is the zero kind. A Token with TokenNone passed as the
	// previous token to Lexer.Next means "start of input".
	TokenNone TokenKind = iota
	// TokenNumber is a floating-point literal.
	TokenNumber
	// TokenOperator is a unary or binary operator.
	TokenOperator
	// TokenFunction is a resolved function name.
	TokenFunction
	// TokenLParen is (.
	TokenLParen
	// TokenRParen is ).
	TokenRParen
	// TokenComma is an argument separator.
	TokenComma
	// TokenEOF indicates the end of the input.
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNumber:
		return "Number"
	case TokenOperator:
		return "Operator"
	case TokenFunction:
		return "Function"
	case TokenLParen:
		return "LParen"
	case TokenRParen:
		return "RParen"
	case TokenComma:
		return "Comma"
	case TokenEOF:
		return "EOF"
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// ArityUnresolved is the Arity of a Function token whose call site has not
// been closed yet. The converter replaces it with the argument count when it
// reaches the matching close paren; a Function token that never gets one
// keeps the sentinel and fails arity validation during evaluation.
const ArityUnresolved = -1

// Token is one lexical element of an expression. Tokens are immutable once
// produced, except that the converter sets a Function token's Arity exactly
// once, at the call's close paren.
type Token struct {
	Kind TokenKind
	// Num is the value of a TokenNumber.
	Num float64
	// Op points into the catalog for a TokenOperator.
	Op *Operator
	// Fn points into the catalog for a TokenFunction.
	Fn *Function
	// Arity is the call-site argument count of a TokenFunction.
	Arity int
	// Pos is the 1-based rune column where the token started.
	Pos int
}

// String renders the token the way trace output shows it: numbers in
// shortest form, unary operators with an @ prefix, functions with their
// resolved arity ("max/2") once the converter has attached it.
func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case TokenOperator:
		if t.Op.Unary {
			return "@" + string(t.Op.Sym)
		}
		return string(t.Op.Sym)
	case TokenFunction:
		if t.Arity == ArityUnresolved {
			return t.Fn.Name
		}
		return t.Fn.Name + "/" + strconv.Itoa(t.Arity)
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenComma:
		return ","
	case TokenEOF:
		return "<eof>"
	}
	return "<" + t.Kind.String() + ">"
}
