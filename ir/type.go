package ir

import "fmt"

type KeyType int

const (
	NameKey KeyType = iota
	IndexKey
	PropertyKey
)

func (t KeyType) String() string {
	s, ok := map[KeyType]string{
		NameKey:     "Name",
		IndexKey:    "Index",
		PropertyKey: "Property",
	}[t]
	if ok {
		return s
	}
	return "<unknown key type>"
}

func (t KeyType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *KeyType) UnmarshalText(d []byte) error {
	tt, ok := map[string]KeyType{
		"Name":     NameKey,
		"Index":    IndexKey,
		"Property": PropertyKey,
	}[string(d)]
	if !ok {
		return fmt.Errorf("%w: unrecognized key type %q", ErrShape, d)
	}
	*t = tt
	return nil
}

type ValueType int

const (
	NoneType ValueType = iota
	BoolType
	FloatType
	NumberType
	BigNumberType
	StringType
	CallType
	NameType
)

func (t ValueType) String() string {
	s, ok := map[ValueType]string{
		NoneType:      "None",
		BoolType:      "Bool",
		FloatType:     "Float",
		NumberType:    "Number",
		BigNumberType: "BigNumber",
		StringType:    "String",
		CallType:      "Call",
		NameType:      "Name",
	}[t]
	if ok {
		return s
	}
	return "<unknown value type>"
}

func (t ValueType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ValueType) UnmarshalText(d []byte) error {
	tt, ok := map[string]ValueType{
		"None":      NoneType,
		"Bool":      BoolType,
		"Float":     FloatType,
		"Number":    NumberType,
		"BigNumber": BigNumberType,
		"String":    StringType,
		"Call":      CallType,
		"Name":      NameType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("%w: unrecognized value type %q", ErrShape, d)
	}
	*t = tt
	return nil
}

// ValueTypes lists the value types in the order the decoder tries them.
func ValueTypes() []ValueType {
	return []ValueType{
		NoneType,
		BoolType,
		FloatType,
		NumberType,
		BigNumberType,
		StringType,
		CallType,
		NameType,
	}
}

func (t ValueType) IsScalar() bool {
	return t != CallType
}
