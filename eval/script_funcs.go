package eval

import (
	"os"
	"path"

	"github.com/expr-lang/expr"
)

var getenvSym = &getenvSymbol{name: "getenv"}

func GetEnv() Symbol {
	return getenvSym
}

type getenvSymbol struct {
	name
}

func (s getenvSymbol) Func(params ...any) (any, error) {
	return os.Getenv(params[0].(string)), nil
}

func (s getenvSymbol) Types() []any {
	return []any{new(func(string) string)}
}

var globSym = &globSymbol{name: "glob"}

// Glob matches its second argument against the shell pattern in its
// first, e.g. glob("TREE_*", get("DefinitionType")).
func Glob() Symbol {
	return globSym
}

type globSymbol struct {
	name
}

func (s globSymbol) Func(params ...any) (any, error) {
	text, ok := params[1].(string)
	if !ok {
		return false, nil
	}
	return path.Match(params[0].(string), text)
}

func (s globSymbol) Types() []any {
	return []any{new(func(string, any) bool)}
}

func exprOpts() []expr.Option {
	syms := Symbols()
	res := make([]expr.Option, 0, len(syms))
	for _, s := range syms {
		res = append(res, expr.Function(s.String(), s.Func, s.Types()...))
	}
	return res
}
