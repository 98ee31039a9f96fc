package ir

import (
	"strconv"
	"strings"
)

// Value is the right hand side of an instruction.
//
// The field holding the payload depends on Type: Bool, Float, Number and
// BigNumber for the scalar kinds, String for StringType and NameType, and
// String plus Args for CallType, where String is the function name.
//
// String values keep their escape markers: the text between the quotes of
// "a \"b\"" is stored as a \"b\".
type Value struct {
	Type      ValueType `json:"type"`
	Bool      bool      `json:"bool,omitempty"`
	Float     float32   `json:"float,omitempty"`
	Number    int32     `json:"number,omitempty"`
	BigNumber uint64    `json:"bigNumber,omitempty"`
	String    string    `json:"string,omitempty"`
	Args      []*Value  `json:"args,omitempty"`
}

func None() *Value { return &Value{Type: NoneType} }

func FromBool(v bool) *Value { return &Value{Type: BoolType, Bool: v} }

func FromFloat(v float32) *Value { return &Value{Type: FloatType, Float: v} }

func FromNumber(v int32) *Value { return &Value{Type: NumberType, Number: v} }

func FromBigNumber(v uint64) *Value { return &Value{Type: BigNumberType, BigNumber: v} }

func FromString(v string) *Value { return &Value{Type: StringType, String: v} }

func FromName(v string) *Value { return &Value{Type: NameType, String: v} }

func FromCall(name string, args ...*Value) *Value {
	return &Value{Type: CallType, String: name, Args: args}
}

// Text returns the payload of String and Name values and the function
// name of calls. Other types render as in Literal.
func (v *Value) Text() string {
	switch v.Type {
	case StringType, NameType, CallType:
		return v.String
	}
	return v.Literal()
}

// Literal renders the value in script syntax. A None value renders as the
// empty string.
func (v *Value) Literal() string {
	buf := &strings.Builder{}
	v.write(buf)
	return buf.String()
}

func (v *Value) write(buf *strings.Builder) {
	switch v.Type {
	case NoneType:
	case BoolType:
		if v.Bool {
			buf.WriteString("TRUE")
		} else {
			buf.WriteString("FALSE")
		}
	case FloatType:
		s := strconv.FormatFloat(float64(v.Float), 'f', -1, 32)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		buf.WriteString(s)
	case NumberType:
		buf.WriteString(strconv.FormatInt(int64(v.Number), 10))
	case BigNumberType:
		buf.WriteString(strconv.FormatUint(v.BigNumber, 10))
	case StringType:
		buf.WriteByte('"')
		buf.WriteString(v.String)
		buf.WriteByte('"')
	case CallType:
		buf.WriteString(v.String)
		buf.WriteByte('(')
		for i, arg := range v.Args {
			if i > 0 {
				buf.WriteString(", ")
			}
			arg.write(buf)
		}
		buf.WriteByte(')')
	case NameType:
		buf.WriteString(v.String)
	}
}

// Int64 returns the value of integral numbers.
func (v *Value) Int64() (int64, bool) {
	switch v.Type {
	case NumberType:
		return int64(v.Number), true
	case BigNumberType:
		if v.BigNumber > 1<<63-1 {
			return 0, false
		}
		return int64(v.BigNumber), true
	}
	return 0, false
}

// Float64 returns the value of any numeric type.
func (v *Value) Float64() (float64, bool) {
	switch v.Type {
	case FloatType:
		return float64(v.Float), true
	case NumberType:
		return float64(v.Number), true
	case BigNumberType:
		return float64(v.BigNumber), true
	}
	return 0, false
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := *v
	if v.Args != nil {
		res.Args = make([]*Value, len(v.Args))
		for i, a := range v.Args {
			res.Args[i] = a.Clone()
		}
	}
	return &res
}
