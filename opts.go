package calc

// DefaultMaxDepth is the stack capacity used when WithMaxDepth is not
// given. It matches the fixed capacity of the original design.
const DefaultMaxDepth = 256

// Option configures parsing and evaluation. The same options are accepted
// by Parse, Program.Eval, and EvalString.
type Option interface {
	option(*config)
}

type config struct {
	cat    *Catalog
	depth  int
	tracer Tracer
}

func newConfig(opts []Option) config {
	cfg := config{cat: DefaultCatalog(), depth: DefaultMaxDepth}
	for _, o := range opts {
		o.option(&cfg)
	}
	return cfg
}

type (
	catopt   struct{ c *Catalog }
	depthopt int
	traceopt struct{ t Tracer }
)

// WithCatalog selects the operator and function catalog to resolve tokens
// against. The default is DefaultCatalog.
func WithCatalog(c *Catalog) Option {
	return catopt{c}
}

func (o catopt) option(cfg *config) {
	cfg.cat = o.c
}

// WithMaxDepth bounds every stack used by the pipeline: pending operators,
// RPN output, open calls, and intermediate values. An expression that needs
// more fails with OverflowError.
func WithMaxDepth(n int) Option {
	return depthopt(n)
}

func (o depthopt) option(cfg *config) {
	cfg.depth = int(o)
}

// WithTracer registers a tracer that receives a snapshot after every
// conversion and evaluation step.
func WithTracer(t Tracer) Option {
	return traceopt{t}
}

func (o traceopt) option(cfg *config) {
	cfg.tracer = o.t
}
