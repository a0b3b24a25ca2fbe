package calc

import "strconv"

// Eval replays the program against a value stack and returns the single
// resulting value. Arithmetic edge cases (division by zero, sqrt of a
// negative, 0^0) follow IEEE-754 and produce Inf or NaN results rather
// than errors. A function invoked with an argument count its descriptor
// rejects fails with ArityError; a structurally incomplete program fails
// with ProgramError.
func (p *Program) Eval(opts ...Option) (float64, error) {
	cfg := newConfig(opts)
	stack := newValueStack(cfg.depth)
	for _, tok := range p.toks {
		switch tok.Kind {
		case TokenNumber:
			if err := stack.push(tok.Num, tok.Pos); err != nil {
				return 0, err
			}
		case TokenOperator:
			rhs, ok := stack.pop()
			if !ok {
				return 0, &ProgramError{Msg: "missing operand for " + tok.String()}
			}
			var lhs float64
			if !tok.Op.Unary {
				if lhs, ok = stack.pop(); !ok {
					return 0, &ProgramError{Msg: "missing operand for " + tok.String()}
				}
			}
			if err := stack.push(tok.Op.apply(lhs, rhs), tok.Pos); err != nil {
				return 0, err
			}
		case TokenFunction:
			fn := tok.Fn
			if fn.Arity == Variadic {
				if tok.Arity < 1 {
					return 0, &ArityError{Col: tok.Pos, Func: fn.Name, Want: fn.Arity, Got: tok.Arity}
				}
			} else if tok.Arity != fn.Arity {
				return 0, &ArityError{Col: tok.Pos, Func: fn.Name, Want: fn.Arity, Got: tok.Arity}
			}
			// Pop in reverse so the last value pushed lands in the last
			// parameter position.
			args := make([]float64, tok.Arity)
			for i := tok.Arity - 1; i >= 0; i-- {
				v, ok := stack.pop()
				if !ok {
					return 0, &ProgramError{Msg: "missing argument for " + tok.String()}
				}
				args[i] = v
			}
			if err := stack.push(fn.apply(args), tok.Pos); err != nil {
				return 0, err
			}
		default:
			// The converter never emits structural tokens into RPN.
			panic("calc: structural token in program: " + tok.String())
		}
		if cfg.tracer != nil {
			cfg.tracer.EvalStep(tok, stack.snapshot())
		}
	}
	if stack.len() != 1 {
		return 0, &ProgramError{Msg: strconv.Itoa(stack.len()) + " values left on the stack"}
	}
	v, _ := stack.pop()
	return v, nil
}

// EvalString parses and evaluates an expression in one call.
func EvalString(src string, opts ...Option) (float64, error) {
	p, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return p.Eval(opts...)
}
