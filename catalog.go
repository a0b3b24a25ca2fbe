package calc

import (
	"math"
	"unicode/utf8"
)

// Operator describes one entry of the operator table. A symbol may have at
// most one unary and one binary entry; the lexer picks between them from the
// token preceding the symbol.
type Operator struct {
	// Sym is the operator's symbol character.
	Sym rune
	// Prec is the precedence level. Higher binds tighter.
	Prec int
	// LAssoc indicates left-associativity.
	LAssoc bool
	// Unary indicates a unary (prefix) operator.
	Unary bool

	apply func(lhs, rhs float64) float64
}

// Variadic is the declared arity of functions that accept any positive
// number of arguments.
const Variadic = -1

// Function describes one entry of the function table.
type Function struct {
	// Name is the exact, case-sensitive spelling the lexer resolves.
	Name string
	// Arity is the declared argument count, or Variadic.
	Arity int

	apply func(args []float64) float64
}

// Catalog is the set of operators and functions an expression may use. The
// default catalog is read-only and safe to share between concurrent
// evaluations; use Clone before modifying it.
type Catalog struct {
	ops     []*Operator
	fns     map[string]*Function
	maxName int
}

// Operator returns the descriptor for sym in unary or binary position, or
// nil if the catalog has no such entry.
func (c *Catalog) Operator(sym rune, unary bool) *Operator {
	for _, op := range c.ops {
		if op.Sym == sym && op.Unary == unary {
			return op
		}
	}
	return nil
}

// Function returns the descriptor for name, or nil if the catalog has no
// such entry.
func (c *Catalog) Function(name string) *Function {
	return c.fns[name]
}

// MaxNameLen is the length in runes of the longest registered function
// name. The lexer truncates longer identifiers to this bound before lookup.
func (c *Catalog) MaxNameLen() int {
	return c.maxName
}

// Clone returns a modifiable copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	n := &Catalog{
		ops:     append([]*Operator(nil), c.ops...),
		fns:     make(map[string]*Function, len(c.fns)),
		maxName: c.maxName,
	}
	for k, v := range c.fns {
		n.fns[k] = v
	}
	return n
}

// SetFunc registers a function, replacing any existing entry with the same
// name. arity is a fixed argument count or Variadic; fn receives exactly the
// call's arguments in order and returns the result.
func (c *Catalog) SetFunc(name string, arity int, fn func(args []float64) float64) {
	c.fns[name] = &Function{Name: name, Arity: arity, apply: fn}
	if n := utf8.RuneCountInString(name); n > c.maxName {
		c.maxName = n
	}
}

// Remove deletes a function entry. Removing a name that isn't registered is
// a no-op.
func (c *Catalog) Remove(name string) {
	delete(c.fns, name)
	c.maxName = 0
	for k := range c.fns {
		if n := utf8.RuneCountInString(k); n > c.maxName {
			c.maxName = n
		}
	}
}

// DefaultCatalog returns the shared default catalog:
//
//	+ -    binary, precedence 1, left-associative
//	* / %  binary, precedence 2, left-associative
//	^      binary, precedence 3, right-associative
//	+ -    unary, precedence 4, right-associative
//
// and the functions max, min, sum (variadic, at least one argument), sqrt,
// log10, log2, ln, sin, asin, cos, acos, tan, atan, ceil, floor, round (one
// argument). The returned catalog must not be modified; Clone it instead.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

var defaultCatalog = func() *Catalog {
	c := &Catalog{
		ops: []*Operator{
			{Sym: '+', Prec: 1, LAssoc: true, apply: func(l, r float64) float64 { return l + r }},
			{Sym: '-', Prec: 1, LAssoc: true, apply: func(l, r float64) float64 { return l - r }},
			{Sym: '*', Prec: 2, LAssoc: true, apply: func(l, r float64) float64 { return l * r }},
			{Sym: '/', Prec: 2, LAssoc: true, apply: func(l, r float64) float64 { return l / r }},
			{Sym: '%', Prec: 2, LAssoc: true, apply: math.Mod},
			{Sym: '^', Prec: 3, apply: math.Pow},
			{Sym: '+', Prec: 4, Unary: true, apply: func(_, r float64) float64 { return r }},
			{Sym: '-', Prec: 4, Unary: true, apply: func(_, r float64) float64 { return -r }},
		},
		fns: make(map[string]*Function),
	}
	c.SetFunc("max", Variadic, func(args []float64) float64 {
		r := args[0]
		for _, v := range args[1:] {
			r = math.Max(r, v)
		}
		return r
	})
	c.SetFunc("min", Variadic, func(args []float64) float64 {
		r := args[0]
		for _, v := range args[1:] {
			r = math.Min(r, v)
		}
		return r
	})
	c.SetFunc("sum", Variadic, func(args []float64) float64 {
		r := 0.0
		for _, v := range args {
			r += v
		}
		return r
	})
	c.SetFunc("sqrt", 1, monadic(math.Sqrt))
	c.SetFunc("log10", 1, monadic(math.Log10))
	c.SetFunc("log2", 1, monadic(math.Log2))
	c.SetFunc("ln", 1, monadic(math.Log))
	c.SetFunc("sin", 1, monadic(math.Sin))
	c.SetFunc("asin", 1, monadic(math.Asin))
	c.SetFunc("cos", 1, monadic(math.Cos))
	c.SetFunc("acos", 1, monadic(math.Acos))
	c.SetFunc("tan", 1, monadic(math.Tan))
	c.SetFunc("atan", 1, monadic(math.Atan))
	c.SetFunc("ceil", 1, monadic(math.Ceil))
	c.SetFunc("floor", 1, monadic(math.Floor))
	c.SetFunc("round", 1, monadic(math.Round))
	return c
}()

// monadic wraps a function of one variable into a catalog kernel.
func monadic(f func(float64) float64) func(args []float64) float64 {
	return func(args []float64) float64 { return f(args[0]) }
}
