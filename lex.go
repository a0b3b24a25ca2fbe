package calc

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Lexer splits an expression into tokens. Whether an operator symbol is
// unary or binary depends only on the token category immediately before it,
// so Next takes the previously produced token as an explicit argument
// instead of keeping it as hidden lexer state.
type Lexer struct {
	src string
	cat *Catalog
	pos int // byte offset of the next rune
	col int // 1-based rune column of the next rune
}

// NewLexer creates a lexer over src resolving names and operator symbols
// against cat.
func NewLexer(src string, cat *Catalog) *Lexer {
	return &Lexer{src: src, cat: cat, col: 1}
}

// Next scans the next token. prev must be the token returned by the
// previous call, or the zero Token at the start of the input; an operator
// symbol is unary exactly when prev is the zero Token, an operator, or an
// open paren. At the end of the input, Next returns a TokenEOF token.
func (l *Lexer) Next(prev Token) (Token, error) {
	for l.pos < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		l.pos += sz
		l.col++
	}
	if l.pos >= len(l.src) {
		return Token{Kind: TokenEOF, Pos: l.col}, nil
	}
	start := l.col
	r, sz := utf8.DecodeRuneInString(l.src[l.pos:])
	switch {
	case '0' <= r && r <= '9':
		return l.scanNum(start)
	case unicode.IsLetter(r):
		return l.scanName(start)
	case r == '(':
		l.pos += sz
		l.col++
		return Token{Kind: TokenLParen, Pos: start}, nil
	case r == ')':
		l.pos += sz
		l.col++
		return Token{Kind: TokenRParen, Pos: start}, nil
	case r == ',':
		l.pos += sz
		l.col++
		return Token{Kind: TokenComma, Pos: start}, nil
	}
	unary := prev.Kind == TokenNone || prev.Kind == TokenOperator || prev.Kind == TokenLParen
	op := l.cat.Operator(r, unary)
	if op == nil {
		return Token{}, &LexError{Text: string(r), Col: start}
	}
	l.pos += sz
	l.col++
	return Token{Kind: TokenOperator, Op: op, Pos: start}, nil
}

// scanNum consumes a maximal numeric literal: integer part, optional
// fraction, optional exponent. A sign is never part of the literal; it
// lexes as a unary operator.
func (l *Lexer) scanNum(start int) (Token, error) {
	begin := l.pos
	digits := func() {
		for l.pos < len(l.src) && '0' <= l.src[l.pos] && l.src[l.pos] <= '9' {
			l.pos++
			l.col++
		}
	}
	digits()
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		l.pos++
		l.col++
		digits()
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		l.pos++
		l.col++
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
			l.col++
		}
		digits()
	}
	text := l.src[begin:l.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, &LexError{Text: text, Kind: "number", Col: start}
	}
	return Token{Kind: TokenNumber, Num: v, Pos: start}, nil
}

// scanName consumes a maximal alphanumeric run and resolves it in the
// function catalog. The lexeme is truncated to the catalog's name-length
// bound before lookup; the excess characters are consumed, not an error.
func (l *Lexer) scanName(start int) (Token, error) {
	begin := l.pos
	for l.pos < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.pos += sz
		l.col++
	}
	name := l.src[begin:l.pos]
	if max := l.cat.MaxNameLen(); utf8.RuneCountInString(name) > max {
		n := 0
		for i := range name {
			if n == max {
				name = name[:i]
				break
			}
			n++
		}
	}
	fn := l.cat.Function(name)
	if fn == nil {
		return Token{}, &NameError{Col: start, Name: name}
	}
	return Token{Kind: TokenFunction, Fn: fn, Arity: ArityUnresolved, Pos: start}, nil
}
