package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fablekit/tng/token"
)

var (
	errInternal = errors.New("internal parse error")
	ErrParse    = errors.New("parse error")
)

// Error is a decoding failure. Err is one of token.ErrSyntax,
// token.ErrEncoding, token.ErrNumberRange or token.ErrStructure; Rule names
// the grammar rule being attempted at Pos.
//
// errors.Is(err, ErrParse) holds for every *Error.
type Error struct {
	Err      error
	Rule     string
	Msg      string
	Pos      *token.Pos
	Filename string
}

func (e *Error) Error() string {
	buf := &strings.Builder{}
	if e.Filename != "" {
		buf.WriteString(e.Filename)
		buf.WriteString(": ")
	}
	line, col := e.Pos.LineCol()
	fmt.Fprintf(buf, "%s: %s in %s at line %d, col %d (offset %d)",
		ErrParse, e.Err, e.Rule, line+1, col+1, e.Pos.I)
	if e.Msg != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Msg)
	}
	return buf.String()
}

func (e *Error) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// Offset is the byte offset of the failure.
func (e *Error) Offset() int {
	return e.Pos.I
}

// AsError extracts the *Error from err, if there is one.
func AsError(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

func (s state) fail(kind error, rule, msg string, args ...any) *Error {
	return s.failAt(s.i, kind, rule, msg, args...)
}

func (s state) failAt(off int, kind error, rule, msg string, args ...any) *Error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &Error{
		Err:      kind,
		Rule:     rule,
		Msg:      msg,
		Pos:      s.src.doc.Pos(off),
		Filename: s.src.filename,
	}
}

// furthest picks the failure that got further into the input, preferring
// b on ties.
func furthest(a, b error) error {
	pa, aok := a.(*Error)
	pb, bok := b.(*Error)
	switch {
	case !aok:
		return b
	case !bok:
		return a
	case pa.Pos.I > pb.Pos.I:
		return a
	default:
		return b
	}
}
