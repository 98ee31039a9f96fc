package parse

import (
	"github.com/fablekit/tng/ir"
	"github.com/fablekit/tng/token"
)

// key := property | index | name
//
// The property chain goes first: a bare name would otherwise match the
// head of foo.bar and leave the rest of the path behind.
func key(s state) (*ir.Key, state, error) {
	return alt(s, "key", keyProperty, keyIndex, keyName)
}

func keyName(s state) (*ir.Key, state, error) {
	n, next, err := takeWhile1(s, "name", token.IsNameByte)
	if err != nil {
		return nil, s, err
	}
	return ir.KeyName(string(n)), next, nil
}

// keyIndex reuses the signed number grammar and narrows to uint32.
func keyIndex(s state) (*ir.Key, state, error) {
	v, next, err := valueNumber(s)
	if err != nil {
		return nil, s, err
	}
	if v.Number < 0 {
		return nil, s, s.fail(token.ErrNumberRange, "index", "negative index %d", v.Number)
	}
	return ir.KeyIndex(uint32(v.Number)), next, nil
}

// property := name property_step+
func keyProperty(s state) (*ir.Key, state, error) {
	base, t, err := keyName(s)
	if err != nil {
		return nil, s, err
	}
	parts := []*ir.Key{base}
	for {
		step, next, err := propertyStep(t)
		if err != nil {
			if len(parts) == 1 {
				return nil, s, err
			}
			break
		}
		parts = append(parts, step)
		t = next
	}
	return ir.KeyPath(parts...), t, nil
}

// property_step := "." name | "[" key "]"
func propertyStep(s state) (*ir.Key, state, error) {
	switch s.peek() {
	case '.':
		k, next, err := keyName(s.advance(1))
		if err != nil {
			return nil, s, err
		}
		return k, next, nil
	case '[':
		k, t, err := key(s.advance(1))
		if err != nil {
			return nil, s, err
		}
		t, err = expect(t, "property", "]")
		if err != nil {
			return nil, s, err
		}
		return k, t, nil
	}
	return nil, s, s.fail(token.ErrSyntax, "property", "expected '.' or '[', got %s", describe(s))
}
