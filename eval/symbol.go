package eval

// Symbol is a function available to every query.
type Symbol interface {
	String() string
	// Func is called with the already checked arguments.
	Func(params ...any) (any, error)
	// Types lists the accepted signatures as pointers to func types, as
	// with expr.Function.
	Types() []any
}

type name string

func (s name) String() string {
	return string(s)
}
