package parse

import (
	"github.com/fablekit/tng/ir"
	"github.com/fablekit/tng/token"
)

// instr := blank_line* key " "? value ";" blank_line+
func instr(s state) (*ir.Instr, state, error) {
	t, _ := lineEndings(s)
	keyStart := t
	k, t, err := key(t)
	if err != nil {
		return nil, s, err
	}
	if t.peek() == ' ' {
		t = t.advance(1)
	}
	valueStart := t
	v, t, err := value(t)
	if err != nil {
		return nil, s, err
	}
	if t.peek() != ';' {
		return nil, s, t.fail(token.ErrSyntax, "instruction", "expected ';' after %s, got %s", k, describe(t))
	}
	end := t
	t, n := lineEndings(t.advance(1))
	if n == 0 {
		return nil, s, t.fail(token.ErrSyntax, "instruction", "expected line break after ';', got %s", describe(t))
	}
	in := ir.NewInstr(k, v)
	s.src.record(in, &token.Span{Key: keyStart.pos(), Value: valueStart.pos(), End: end.pos()})
	return in, t, nil
}

// tagged returns a parser for an instruction whose key is the plain name
// n. A mismatch is an ordinary failure, so callers may try something else.
func tagged(n string) parser[*ir.Instr] {
	return func(s state) (*ir.Instr, state, error) {
		in, next, err := instr(s)
		if err != nil {
			return nil, s, err
		}
		if !in.Key.IsName(n) {
			s.src.forget(in)
			at, _ := lineEndings(s)
			return nil, s, at.fail(token.ErrStructure, "tag("+n+")", "expected %s, got %s", n, in.Key)
		}
		return in, next, nil
	}
}
