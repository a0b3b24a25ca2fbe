package calc

// Tracer observes the pipeline's intermediate state for diagnostics. All
// slices passed to a tracer are copies ordered bottom of stack first;
// retaining or modifying them cannot affect the evaluation.
type Tracer interface {
	// ConvertStep is called after the converter dispatches one token.
	// pending is the pending-operators stack, output the RPN sequence so
	// far, and calls the per-open-call argument counts seen so far,
	// innermost last.
	ConvertStep(tok Token, pending, output []Token, calls []int)

	// EvalStep is called after the evaluator replays one RPN token.
	// values is the value stack.
	EvalStep(tok Token, values []float64)
}
