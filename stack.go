package calc

// tokenStack is a growable token stack with a hard capacity. The converter
// uses one for pending operators and one for the RPN output; the original
// design used fixed 256-slot arrays, here the cap is configurable and
// exceeding it is a reported error instead of a crash.
type tokenStack struct {
	toks []Token
	max  int
}

func newTokenStack(max int) tokenStack {
	return tokenStack{max: max}
}

func (s *tokenStack) push(tok Token) error {
	if len(s.toks) >= s.max {
		return &OverflowError{Col: tok.Pos, Limit: s.max}
	}
	s.toks = append(s.toks, tok)
	return nil
}

func (s *tokenStack) pop() Token {
	tok := s.toks[len(s.toks)-1]
	s.toks = s.toks[:len(s.toks)-1]
	return tok
}

// top returns a pointer to the top token, or nil if the stack is empty.
func (s *tokenStack) top() *Token {
	if len(s.toks) == 0 {
		return nil
	}
	return &s.toks[len(s.toks)-1]
}

func (s *tokenStack) len() int {
	return len(s.toks)
}

// snapshot returns a copy of the stack contents, bottom first.
func (s *tokenStack) snapshot() []Token {
	return append([]Token(nil), s.toks...)
}

// valueStack is the evaluator's bounded stack of intermediate results.
type valueStack struct {
	vals []float64
	max  int
}

func newValueStack(max int) valueStack {
	return valueStack{max: max}
}

func (s *valueStack) push(v float64, col int) error {
	if len(s.vals) >= s.max {
		return &OverflowError{Col: col, Limit: s.max}
	}
	s.vals = append(s.vals, v)
	return nil
}

func (s *valueStack) pop() (float64, bool) {
	if len(s.vals) == 0 {
		return 0, false
	}
	v := s.vals[len(s.vals)-1]
	s.vals = s.vals[:len(s.vals)-1]
	return v, true
}

func (s *valueStack) len() int {
	return len(s.vals)
}

func (s *valueStack) snapshot() []float64 {
	return append([]float64(nil), s.vals...)
}
