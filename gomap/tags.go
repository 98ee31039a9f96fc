package gomap

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/fablekit/tng/ir"
)

var (
	valueType    = reflect.TypeOf(ir.Value{})
	valuePtrType = reflect.TypeOf(&ir.Value{})
)

type fieldTag struct {
	key      string
	required bool
	skip     bool
}

func parseTag(f reflect.StructField) fieldTag {
	tag, ok := f.Tag.Lookup("tng")
	if !ok {
		return fieldTag{key: f.Name}
	}
	if tag == "-" {
		return fieldTag{skip: true}
	}
	key, opts, _ := strings.Cut(tag, ",")
	res := fieldTag{key: key}
	if key == "" {
		res.key = f.Name
	}
	for opt := range strings.SplitSeq(opts, ",") {
		if opt == "required" {
			res.required = true
		}
	}
	return res
}

func fillStruct(body []*ir.Instr, val reflect.Value) error {
	ty := val.Type()
	for i := range ty.NumField() {
		f := ty.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		tag := parseTag(f)
		if tag.skip {
			continue
		}
		fVal := val.Field(i)
		if f.Type.Kind() == reflect.Struct && f.Type != valueType {
			sub := under(body, tag.key)
			if len(sub) == 0 {
				if tag.required {
					return fmt.Errorf("%w: %s", ErrMissing, tag.key)
				}
				continue
			}
			if err := fillStruct(sub, fVal); err != nil {
				return fmt.Errorf("%s: %w", tag.key, err)
			}
			continue
		}
		v := lookup(body, tag.key)
		if v == nil {
			if tag.required {
				return fmt.Errorf("%w: %s", ErrMissing, tag.key)
			}
			continue
		}
		if err := setValue(fVal, v); err != nil {
			return fmt.Errorf("%s: %w", tag.key, err)
		}
	}
	return nil
}

func lookup(body []*ir.Instr, key string) *ir.Value {
	for _, in := range body {
		if in.Key.String() == key {
			return in.Value
		}
	}
	return nil
}

// under returns the chains rooted at n with the root dropped.
func under(body []*ir.Instr, n string) []*ir.Instr {
	var res []*ir.Instr
	for _, in := range body {
		if in.Key.Type != ir.PropertyKey || !in.Key.Root().IsName(n) {
			continue
		}
		res = append(res, ir.NewInstr(ir.KeyPath(in.Key.Path[1:]...), in.Value))
	}
	return res
}

func setValue(fVal reflect.Value, v *ir.Value) error {
	switch fVal.Type() {
	case valueType:
		fVal.Set(reflect.ValueOf(*v.Clone()))
		return nil
	case valuePtrType:
		fVal.Set(reflect.ValueOf(v.Clone()))
		return nil
	}
	mismatch := func() error {
		return fmt.Errorf("%w: cannot set %s from %s %s", ErrType, fVal.Type(), v.Type, v.Literal())
	}
	switch fVal.Kind() {
	case reflect.String:
		switch v.Type {
		case ir.StringType, ir.NameType:
			fVal.SetString(v.String)
			return nil
		}
	case reflect.Bool:
		if v.Type == ir.BoolType {
			fVal.SetBool(v.Bool)
			return nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := v.Int64()
		if !ok || fVal.OverflowInt(n) {
			return mismatch()
		}
		fVal.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var n uint64
		switch v.Type {
		case ir.BigNumberType:
			n = v.BigNumber
		case ir.NumberType:
			if v.Number < 0 {
				return mismatch()
			}
			n = uint64(v.Number)
		default:
			return mismatch()
		}
		if fVal.OverflowUint(n) {
			return mismatch()
		}
		fVal.SetUint(n)
		return nil
	case reflect.Float32, reflect.Float64:
		f, ok := v.Float64()
		if !ok {
			return mismatch()
		}
		fVal.SetFloat(f)
		return nil
	case reflect.Slice:
		if v.Type != ir.CallType {
			return mismatch()
		}
		res := reflect.MakeSlice(fVal.Type(), len(v.Args), len(v.Args))
		for i, a := range v.Args {
			if err := setValue(res.Index(i), a); err != nil {
				return fmt.Errorf("argument %d of %s: %w", i, v.String, err)
			}
		}
		fVal.Set(res)
		return nil
	case reflect.Pointer:
		elem := reflect.New(fVal.Type().Elem())
		if err := setValue(elem.Elem(), v); err != nil {
			return err
		}
		fVal.Set(elem)
		return nil
	}
	return mismatch()
}
