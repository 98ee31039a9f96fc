// Package parse decodes Thing scripts.
//
// The grammar is made of small backtracking rules. Each rule is a function
// from an immutable input position to either a result and a new position
// or a failure; ordered alternation tries rules in turn from the same
// position. Failures of alternatives are ordinary values. Once a whole
// document is being decoded, the first failure that no alternative
// recovers from aborts it, and no partial document is returned.
//
// Parsing holds no state between calls and is safe for concurrent use.
package parse

import (
	"fmt"
	"io"

	"github.com/fablekit/tng/ir"
	"github.com/fablekit/tng/token"
)

// Parse decodes a whole script.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	return whole(d, opts, "document", document)
}

func ParseString(s string, opts ...ParseOption) (*ir.Document, error) {
	return Parse([]byte(s), opts...)
}

// Read decodes a script from r, which is read to the end first.
func Read(r io.Reader, opts ...ParseOption) (*ir.Document, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}
	return Parse(d, opts...)
}

// ParseThing decodes input holding exactly one thing block.
func ParseThing(d []byte, opts ...ParseOption) (*ir.Thing, error) {
	return whole(d, opts, "thing", thing)
}

// ParseSection decodes input holding exactly one section block.
func ParseSection(d []byte, opts ...ParseOption) (*ir.Section, error) {
	return whole(d, opts, "section", section)
}

// ParseInstr decodes input holding exactly one instruction, line break
// included.
func ParseInstr(d []byte, opts ...ParseOption) (*ir.Instr, error) {
	return whole(d, opts, "instruction", instr)
}

// ParseTagged decodes one instruction whose key must be the plain name n.
func ParseTagged(d []byte, n string, opts ...ParseOption) (*ir.Instr, error) {
	return whole(d, opts, "tag("+n+")", tagged(n))
}

// ParseKey decodes the whole of d as a key, e.g. "Pos[0]".
func ParseKey(d []byte) (*ir.Key, error) {
	return whole(d, nil, "key", key)
}

// ParseValue decodes the whole of d as a value.
func ParseValue(d []byte) (*ir.Value, error) {
	return whole(d, nil, "value", value)
}

// Prefix decodes the longest instruction prefix of d and returns the
// number of bytes consumed.
func Prefix(d []byte, opts ...ParseOption) (*ir.Instr, int, error) {
	s := state{src: newSource(d, opts)}
	in, next, err := instr(s)
	if err != nil {
		return nil, 0, err
	}
	return in, next.i, nil
}

func whole[T any](d []byte, opts []ParseOption, rule string, p parser[T]) (T, error) {
	var zero T
	s := state{src: newSource(d, opts)}
	res, next, err := p(s)
	if err != nil {
		return zero, err
	}
	if !next.eof() {
		return zero, next.fail(token.ErrSyntax, rule, "trailing input %s", describe(next))
	}
	return res, nil
}
