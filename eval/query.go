package eval

import (
	"errors"
	"fmt"

	"github.com/fablekit/tng/debug"
	"github.com/fablekit/tng/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrQuery = errors.New("query error")

// Query is a compiled boolean expression over one thing. It holds no
// per-thing state and may be shared.
type Query struct {
	src string
	prg *vm.Program
}

type CompileOption func(*[]expr.Option)

// CompileSymbol adds a function for this query only.
func CompileSymbol(s Symbol) CompileOption {
	return func(opts *[]expr.Option) {
		*opts = append(*opts, expr.Function(s.String(), s.Func, s.Types()...))
	}
}

// Compile checks src against the names bound by ThingEnv and the
// registered symbols.
func Compile(src string, opts ...CompileOption) (*Query, error) {
	eOpts := []expr.Option{expr.Env(typeEnv), expr.AsBool()}
	for _, opt := range opts {
		opt(&eOpts)
	}
	eOpts = append(eOpts, exprOpts()...)
	prg, err := expr.Compile(src, eOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrQuery, src, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func MustCompile(src string, opts ...CompileOption) *Query {
	q, err := Compile(src, opts...)
	if err != nil {
		panic(err)
	}
	return q
}

func (q *Query) String() string { return q.src }

// Match evaluates q for t.
func (q *Query) Match(t *ir.Thing, ctx Context) (bool, error) {
	res, err := vm.Run(q.prg, ThingEnv(t, ctx))
	if err != nil {
		return false, fmt.Errorf("%w: %q on thing %d.%d: %w", ErrQuery, q.src, ctx.Section, ctx.Index, err)
	}
	ok, _ := res.(bool)
	if debug.Eval() {
		debug.Logf("query %q on %s: %t\n", q.src, t, ok)
	}
	return ok, nil
}
