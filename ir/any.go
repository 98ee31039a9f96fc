package ir

// ToAny converts a value to plain Go data: nil, bool, float64, int64,
// uint64 or string. Calls become a map with "name" and "args".
func ToAny(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.Type {
	case BoolType:
		return v.Bool
	case FloatType:
		return float64(v.Float)
	case NumberType:
		return int64(v.Number)
	case BigNumberType:
		return v.BigNumber
	case StringType, NameType:
		return v.String
	case CallType:
		args := make([]any, len(v.Args))
		for i, a := range v.Args {
			args[i] = ToAny(a)
		}
		return map[string]any{
			"name": v.String,
			"args": args,
		}
	default:
		return nil
	}
}

// BodyMap maps the rendered key of each body instruction to its plain
// value. Later duplicates overwrite earlier ones.
func (t *Thing) BodyMap() map[string]any {
	res := make(map[string]any, len(t.Body))
	for _, in := range t.Body {
		res[in.Key.String()] = ToAny(in.Value)
	}
	return res
}
