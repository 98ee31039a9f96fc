package gomap

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/fablekit/tng/ir"
	"github.com/fablekit/tng/parse"
)

var (
	ErrMissing = errors.New("missing key")
	ErrType    = errors.New("type mismatch")
	ErrTarget  = errors.New("target must be a non nil pointer to a struct")
)

// ThingFromer is implemented by types that decode themselves.
type ThingFromer interface {
	FromThing(*ir.Thing) error
}

// FromThing fills the struct p points to from the body of t.
func FromThing(t *ir.Thing, p any) error {
	if x, ok := p.(ThingFromer); ok {
		return x.FromThing(t)
	}
	val := reflect.ValueOf(p)
	if val.Kind() != reflect.Pointer || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w, got %T", ErrTarget, p)
	}
	return fillStruct(t.Body, val.Elem())
}

// Load decodes a single thing block and fills p from it.
func Load(d []byte, p any, opts ...parse.ParseOption) error {
	t, err := parse.ParseThing(d, opts...)
	if err != nil {
		return err
	}
	return FromThing(t, p)
}
