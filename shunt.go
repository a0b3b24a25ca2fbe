package calc

import "strings"

// Program is an expression converted to reverse Polish notation, ready to
// be evaluated. A Program is immutable and safe to evaluate concurrently.
type Program struct {
	toks []Token
}

// argCount tracks one open function call during conversion: the number of
// commas seen at its depth, and whether any argument token has appeared.
// The distinction makes f() resolve to arity 0 while f(x) resolves to
// commas+1.
type argCount struct {
	commas int
	seen   bool
}

func (a argCount) arity() int {
	if a.seen {
		return a.commas + 1
	}
	return a.commas
}

// Parse tokenizes and converts an expression to its RPN form.
func Parse(src string, opts ...Option) (*Program, error) {
	cfg := newConfig(opts)
	return convert(NewLexer(src, cfg.cat), &cfg)
}

func convert(lx *Lexer, cfg *config) (*Program, error) {
	pending := newTokenStack(cfg.depth)
	output := newTokenStack(cfg.depth)
	var calls []argCount
	var prev Token
	for {
		tok, err := lx.Next(prev)
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			break
		}
		prev = tok
		// Any token other than a paren counts as argument material for the
		// innermost open call.
		if tok.Kind != TokenLParen && tok.Kind != TokenRParen && len(calls) > 0 {
			calls[len(calls)-1].seen = true
		}
		switch tok.Kind {
		case TokenNumber:
			if err := output.push(tok); err != nil {
				return nil, err
			}
		case TokenOperator:
			// Unary operators bind tighter than anything already pending,
			// so only binary operators flush the stack. Left-associative
			// operators also flush equal precedence; right-associative ones
			// do not.
			if !tok.Op.Unary {
				for {
					top := pending.top()
					if top == nil || top.Kind != TokenOperator {
						break
					}
					if tok.Op.LAssoc {
						if tok.Op.Prec > top.Op.Prec {
							break
						}
					} else {
						if tok.Op.Prec >= top.Op.Prec {
							break
						}
					}
					if err := output.push(pending.pop()); err != nil {
						return nil, err
					}
				}
			}
			if err := pending.push(tok); err != nil {
				return nil, err
			}
		case TokenFunction:
			if len(calls) >= cfg.depth {
				return nil, &OverflowError{Col: tok.Pos, Limit: cfg.depth}
			}
			calls = append(calls, argCount{})
			if err := pending.push(tok); err != nil {
				return nil, err
			}
		case TokenLParen:
			if err := pending.push(tok); err != nil {
				return nil, err
			}
		case TokenRParen:
			for {
				top := pending.top()
				if top == nil {
					return nil, &ParenError{Col: tok.Pos}
				}
				if top.Kind == TokenLParen {
					break
				}
				if err := output.push(pending.pop()); err != nil {
					return nil, err
				}
			}
			pending.pop() // discard the (
			if top := pending.top(); top != nil && top.Kind == TokenFunction {
				fn := pending.pop()
				fn.Arity = calls[len(calls)-1].arity()
				calls = calls[:len(calls)-1]
				if err := output.push(fn); err != nil {
					return nil, err
				}
			}
		case TokenComma:
			for {
				top := pending.top()
				if top == nil {
					return nil, &SeparatorError{Col: tok.Pos}
				}
				if top.Kind == TokenLParen {
					break
				}
				if err := output.push(pending.pop()); err != nil {
					return nil, err
				}
			}
			if len(calls) == 0 {
				// A paren was open but no call is: "(1,2)".
				return nil, &SeparatorError{Col: tok.Pos}
			}
			calls[len(calls)-1].commas++
		}
		if cfg.tracer != nil {
			cfg.tracer.ConvertStep(tok, pending.snapshot(), output.snapshot(), callCounts(calls))
		}
	}
	for pending.len() > 0 {
		tok := pending.pop()
		if tok.Kind == TokenLParen || tok.Kind == TokenRParen {
			return nil, &ParenError{Col: tok.Pos}
		}
		if err := output.push(tok); err != nil {
			return nil, err
		}
	}
	return &Program{toks: output.toks}, nil
}

func callCounts(calls []argCount) []int {
	if len(calls) == 0 {
		return nil
	}
	v := make([]int, len(calls))
	for i, a := range calls {
		v[i] = a.arity()
	}
	return v
}

// Tokens returns a copy of the program's RPN token sequence.
func (p *Program) Tokens() []Token {
	return append([]Token(nil), p.toks...)
}

// String renders the RPN sequence with one space between tokens, e.g.
// "2 3 4 * +" for the expression 2+3*4.
func (p *Program) String() string {
	var b strings.Builder
	for i, tok := range p.toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}
