package parse

import (
	"bytes"
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/fablekit/tng/ir"
	"github.com/fablekit/tng/token"
)

// value tries the value forms in a fixed order; each form is placed so
// that it cannot swallow input meant for a stricter one after it. The
// free text name comes last since it accepts spaces.
func value(s state) (*ir.Value, state, error) {
	return alt(s, "value",
		valueNone,
		valueBool,
		valueFloat,
		valueNumber,
		valueBigNumber,
		valueString,
		valueCall,
		valueName)
}

// valueNone only looks ahead: an instruction with no explicit value is
// directly followed by its terminator.
func valueNone(s state) (*ir.Value, state, error) {
	if s.peek() == ';' || token.LineEnding(s.rest()) > 0 {
		return ir.None(), s, nil
	}
	return nil, s, s.fail(token.ErrSyntax, "none", "expected ';' or line break")
}

func valueBool(s state) (*ir.Value, state, error) {
	switch {
	case s.hasPrefix("TRUE"):
		return ir.FromBool(true), s.advance(4), nil
	case s.hasPrefix("FALSE"):
		return ir.FromBool(false), s.advance(5), nil
	}
	return nil, s, s.fail(token.ErrSyntax, "bool", "expected TRUE or FALSE")
}

// valueFloat accepts an optional '-' and a run of digits and dots. The
// run must hold a dot: plain integers are left to the number forms.
func valueFloat(s state) (*ir.Value, state, error) {
	t := s
	neg := t.peek() == '-'
	if neg {
		t = t.advance(1)
	}
	mag, next, err := takeWhile1(t, "float", token.IsFloatByte)
	if err != nil {
		return nil, s, err
	}
	if bytes.IndexByte(mag, '.') == -1 {
		return nil, s, s.fail(token.ErrSyntax, "float", "no decimal point")
	}
	f, err := strconv.ParseFloat(string(mag), 32)
	if err != nil {
		return nil, s, s.fail(numErrKind(err), "float", "%q", mag)
	}
	if neg {
		f = -f
	}
	return ir.FromFloat(float32(f)), next, nil
}

func valueNumber(s state) (*ir.Value, state, error) {
	t := s
	if t.peek() == '-' {
		t = t.advance(1)
	}
	_, next, err := takeWhile1(t, "number", token.IsDigit)
	if err != nil {
		return nil, s, err
	}
	lit := s.src.d[s.i:next.i]
	n, err := strconv.ParseInt(string(lit), 10, 32)
	if err != nil {
		return nil, s, s.fail(numErrKind(err), "number", "%s does not fit in 32 bits", lit)
	}
	return ir.FromNumber(int32(n)), next, nil
}

func valueBigNumber(s state) (*ir.Value, state, error) {
	lit, next, err := takeWhile1(s, "bignumber", token.IsDigit)
	if err != nil {
		return nil, s, err
	}
	n, err := strconv.ParseUint(string(lit), 10, 64)
	if err != nil {
		return nil, s, s.fail(numErrKind(err), "bignumber", "%s does not fit in 64 bits", lit)
	}
	return ir.FromBigNumber(n), next, nil
}

func numErrKind(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return token.ErrNumberRange
	}
	return token.ErrSyntax
}

// valueString reads a double quoted string. A backslash escapes a
// following '"' or '\'; the escape markers are kept in the result.
func valueString(s state) (*ir.Value, state, error) {
	if s.peek() != '"' {
		return nil, s, s.fail(token.ErrSyntax, "string", "expected '\"'")
	}
	d := s.src.d
	i := s.i + 1
	for i < len(d) {
		switch c := d[i]; {
		case c == '"':
			body := d[s.i+1 : i]
			if !utf8.Valid(body) {
				return nil, s, s.fail(token.ErrEncoding, "string", "string is not valid utf8")
			}
			return ir.FromString(string(body)), s.advance(i + 1 - s.i), nil
		case c == '\\' && i+1 < len(d) && (d[i+1] == '"' || d[i+1] == '\\'):
			i += 2
		default:
			i++
		}
	}
	return nil, s, s.failAt(i, token.ErrSyntax, "string", "unterminated string")
}

// valueCall reads name(arg, ...). At least one argument is required and
// each argument is a full value, so calls nest.
func valueCall(s state) (*ir.Value, state, error) {
	name, t, err := takeWhile1(s, "call", token.IsNameByte)
	if err != nil {
		return nil, s, err
	}
	t, err = expect(t, "call", "(")
	if err != nil {
		return nil, s, err
	}
	var args []*ir.Value
	for {
		arg, next, err := value(spaces(t))
		if err != nil {
			return nil, s, err
		}
		args = append(args, arg)
		t = spaces(next)
		switch t.peek() {
		case ')':
			return ir.FromCall(string(name), args...), t.advance(1), nil
		case ',':
			t = t.advance(1)
		default:
			return nil, s, t.fail(token.ErrSyntax, "call", "expected ',' or ')', got %s", describe(t))
		}
	}
}

// valueName is the catch all free text form.
func valueName(s state) (*ir.Value, state, error) {
	n, next, err := takeWhile1(s, "value name", token.IsValueNameByte)
	if err != nil {
		return nil, s, err
	}
	return ir.FromName(string(n)), next, nil
}
