package parse

import (
	"bytes"

	"github.com/fablekit/tng/ir"
	"github.com/fablekit/tng/token"
)

// source is the shared, read only context of one decoding call.
type source struct {
	d         []byte
	doc       *token.PosDoc
	filename  string
	markers   Markers
	positions map[*ir.Instr]*token.Span
}

// state is an immutable position in a source. Parsers take a state and
// return a new one; a failing parser returns the state it was given, so an
// abandoned alternative never moves the caller.
type state struct {
	src *source
	i   int
}

// parser is the shape of every grammar rule.
type parser[T any] func(s state) (T, state, error)

func (s state) rest() []byte {
	return s.src.d[s.i:]
}

func (s state) eof() bool {
	return s.i >= len(s.src.d)
}

func (s state) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src.d[s.i]
}

func (s state) hasPrefix(p string) bool {
	return bytes.HasPrefix(s.rest(), []byte(p))
}

func (s state) advance(n int) state {
	return state{src: s.src, i: s.i + n}
}

func (s state) pos() *token.Pos {
	return s.src.doc.Pos(s.i)
}

func (src *source) record(in *ir.Instr, sp *token.Span) {
	if src.positions != nil {
		src.positions[in] = sp
	}
}

func (src *source) forget(in *ir.Instr) {
	if src.positions != nil {
		delete(src.positions, in)
	}
}
