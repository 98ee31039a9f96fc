package ir

func Truth(v *Value) bool {
	switch v.Type {
	case BoolType:
		return v.Bool
	case FloatType:
		return v.Float != 0
	case NumberType:
		return v.Number != 0
	case BigNumberType:
		return v.BigNumber != 0
	case StringType, NameType:
		return v.String != ""
	case CallType:
		return true
	case NoneType:
		return false
	default:
		panic("type")
	}
}
