package parse

import (
	"github.com/fablekit/tng/ir"
	"github.com/fablekit/tng/token"
)

type parseOpts struct {
	filename  string
	markers   Markers
	positions map[*ir.Instr]*token.Span
}

type ParseOption func(*parseOpts)

// ParseFilename names the input in error messages.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// ParseMarkers overrides the structural marker names. Unset names keep
// their defaults.
func ParseMarkers(m Markers) ParseOption {
	return func(o *parseOpts) { o.markers = m.WithDefaults() }
}

// ParsePositions records the span of every instruction in the result.
func ParsePositions(m map[*ir.Instr]*token.Span) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

func newSource(d []byte, opts []ParseOption) *source {
	pOpts := &parseOpts{markers: DefaultMarkers()}
	for _, f := range opts {
		f(pOpts)
	}
	return &source{
		d:         d,
		doc:       token.NewPosDoc(d),
		filename:  pOpts.filename,
		markers:   pOpts.markers,
		positions: pOpts.positions,
	}
}
