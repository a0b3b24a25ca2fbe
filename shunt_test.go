package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRPN(t *testing.T) {
	cases := []struct {
		src string
		rpn string
	}{
		{"2+3*4", "2 3 4 * +"},
		{"2*3+4", "2 3 * 4 +"},
		{"10-3-2", "10 3 - 2 -"},
		{"2^3^2", "2 3 2 ^ ^"},
		{"1+2*3^2", "1 2 3 2 ^ * +"},
		{"(2+3)*4", "2 3 + 4 *"},
		{"-3+4", "3 @- 4 +"},
		{"3+-4", "3 4 @- +"},
		{"3- -4", "3 4 @- -"},
		{"2^-3", "2 3 @- ^"},
		{"+5", "5 @+"},
		{"8%3", "8 3 %"},
		{"max(1,2,3)", "1 2 3 max/3"},
		{"max()", "max/0"},
		{"sqrt(4,9)", "4 9 sqrt/2"},
		{"max(min(1,2), sum(1,2,3))", "1 2 min/2 1 2 3 sum/3 max/2"},
		{"max(-1,2)", "1 @- 2 max/2"},
		{"sum((1),(2),3*4)", "1 2 3 4 * sum/3"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			p, err := Parse(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.rpn, p.String())
		})
	}
}

func TestParseResolvesCallArity(t *testing.T) {
	p, err := Parse("max(min(1,2), sum(1,2,3))")
	require.NoError(t, err)
	var got []int
	for _, tok := range p.Tokens() {
		if tok.Kind == TokenFunction {
			got = append(got, tok.Arity)
		}
	}
	assert.Equal(t, []int{2, 3, 2}, got)
}

func TestParseFunctionWithoutCall(t *testing.T) {
	// A function never followed by its call parens keeps the unresolved
	// arity sentinel; the evaluator rejects it.
	p, err := Parse("max 1")
	require.NoError(t, err)
	assert.Equal(t, "1 max", p.String())
	toks := p.Tokens()
	require.Len(t, toks, 2)
	assert.Equal(t, ArityUnresolved, toks[1].Arity)
}

func TestParseErrors(t *testing.T) {
	t.Run("open paren unclosed", func(t *testing.T) {
		_, err := Parse("(1+2")
		var perr *ParenError
		require.ErrorAs(t, err, &perr)
	})
	t.Run("close paren unopened", func(t *testing.T) {
		_, err := Parse("1+2)")
		var perr *ParenError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 4, perr.Pos())
	})
	t.Run("comma at top level", func(t *testing.T) {
		_, err := Parse("1,2")
		var serr *SeparatorError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, 2, serr.Pos())
	})
	t.Run("comma in plain group", func(t *testing.T) {
		_, err := Parse("(1,2)")
		var serr *SeparatorError
		require.ErrorAs(t, err, &serr)
	})
	t.Run("lex error surfaces", func(t *testing.T) {
		_, err := Parse("2**3")
		var lerr *LexError
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, 3, lerr.Pos())
	})
}

func TestParseDepthLimit(t *testing.T) {
	_, err := Parse("((((1))))", WithMaxDepth(3))
	var oerr *OverflowError
	require.ErrorAs(t, err, &oerr)
	assert.Equal(t, 3, oerr.Limit)

	// The same expression fits with a deeper stack.
	_, err = Parse("((((1))))", WithMaxDepth(16))
	assert.NoError(t, err)
}

type recordingTracer struct {
	converts []string
	evals    []string
}

func (r *recordingTracer) ConvertStep(tok Token, pending, output []Token, calls []int) {
	r.converts = append(r.converts, tok.String())
}

func (r *recordingTracer) EvalStep(tok Token, values []float64) {
	r.evals = append(r.evals, tok.String())
}

func TestTracerSeesEveryStep(t *testing.T) {
	tr := &recordingTracer{}
	p, err := Parse("2+3*4", WithTracer(tr))
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "+", "3", "*", "4"}, tr.converts)

	_, err = p.Eval(WithTracer(tr))
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "4", "*", "+"}, tr.evals)
}

func TestTracerSnapshotsAreCopies(t *testing.T) {
	var pendings [][]Token
	tr := snapshotTracer{&pendings}
	_, err := Parse("1+2+3", WithTracer(tr))
	require.NoError(t, err)
	// The snapshot taken at the first + must still show one pending
	// operator even though conversion went on afterwards.
	require.GreaterOrEqual(t, len(pendings), 2)
	assert.Len(t, pendings[1], 1)
}

type snapshotTracer struct {
	pendings *[][]Token
}

func (s snapshotTracer) ConvertStep(tok Token, pending, output []Token, calls []int) {
	*s.pendings = append(*s.pendings, pending)
}

func (s snapshotTracer) EvalStep(tok Token, values []float64) {}

func TestOperatorCatalogTieBreaks(t *testing.T) {
	// Left-associative operators flush equal precedence; right-associative
	// ones do not.
	for _, c := range []struct{ src, rpn string }{
		{"1-2+3", "1 2 - 3 +"},
		{"8/4/2", "8 4 / 2 /"},
		{"8/4*2", "8 4 / 2 *"},
		{"2^3^2", "2 3 2 ^ ^"},
	} {
		p, err := Parse(c.src)
		require.NoError(t, err)
		assert.Equal(t, c.rpn, p.String(), "src %q", c.src)
	}
}
