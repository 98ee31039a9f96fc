package parse

import (
	"fmt"

	"github.com/fablekit/tng/token"
)

// alt tries each parser from s in order and returns the first success.
// When all fail, the failure that got furthest is returned, or a failure
// of rule itself when none got past s.
func alt[T any](s state, rule string, ps ...parser[T]) (T, state, error) {
	var (
		zero T
		err  error
	)
	for _, p := range ps {
		v, next, perr := p(s)
		if perr == nil {
			return v, next, nil
		}
		if err == nil {
			err = perr
			continue
		}
		// ties keep the earlier alternative unless the later one is more
		// than a syntax failure
		if better(perr, err) {
			err = perr
		}
	}
	if pe, ok := err.(*Error); !ok || (pe.Pos.I <= s.i && pe.Err == token.ErrSyntax) {
		return zero, s, s.fail(token.ErrSyntax, rule, "no alternative matched")
	}
	return zero, s, err
}

func better(a, b error) bool {
	pa, aok := a.(*Error)
	pb, bok := b.(*Error)
	if !aok || !bok {
		return false
	}
	if pa.Pos.I != pb.Pos.I {
		return pa.Pos.I > pb.Pos.I
	}
	return pb.Err == token.ErrSyntax && pa.Err != token.ErrSyntax
}

// takeWhile1 consumes the longest non empty run of bytes satisfying f.
func takeWhile1(s state, rule string, f func(byte) bool) ([]byte, state, error) {
	d := s.rest()
	n := 0
	for n < len(d) && f(d[n]) {
		n++
	}
	if n == 0 {
		return nil, s, s.fail(token.ErrSyntax, rule, "unexpected %s", describe(s))
	}
	return d[:n], s.advance(n), nil
}

// expect consumes the literal lit.
func expect(s state, rule, lit string) (state, error) {
	if !s.hasPrefix(lit) {
		return s, s.fail(token.ErrSyntax, rule, "expected %q, got %s", lit, describe(s))
	}
	return s.advance(len(lit)), nil
}

// spaces skips zero or more ' ' and '\t'.
func spaces(s state) state {
	d := s.rest()
	n := 0
	for n < len(d) && (d[n] == ' ' || d[n] == '\t') {
		n++
	}
	return s.advance(n)
}

// lineEndings skips zero or more line breaks and reports how many it
// skipped.
func lineEndings(s state) (state, int) {
	count := 0
	for {
		n := token.LineEnding(s.rest())
		if n == 0 {
			return s, count
		}
		s = s.advance(n)
		count++
	}
}

func describe(s state) string {
	if s.eof() {
		return "end of input"
	}
	switch c := s.peek(); c {
	case '\n':
		return "line break"
	case '\r':
		return "carriage return"
	default:
		if c < 0x20 || c >= 0x7f {
			return fmt.Sprintf("byte 0x%02x", c)
		}
		return "'" + string(c) + "'"
	}
}
