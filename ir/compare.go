package ir

func KeysEqual(a, b *Key) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NameKey:
		return a.Name == b.Name
	case IndexKey:
		return a.Index == b.Index
	case PropertyKey:
		if len(a.Path) != len(b.Path) {
			return false
		}
		for i := range a.Path {
			if !KeysEqual(a.Path[i], b.Path[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func ValuesEqual(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NoneType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case FloatType:
		return a.Float == b.Float
	case NumberType:
		return a.Number == b.Number
	case BigNumberType:
		return a.BigNumber == b.BigNumber
	case StringType, NameType:
		return a.String == b.String
	case CallType:
		if a.String != b.String || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !ValuesEqual(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func InstrsEqual(a, b *Instr) bool {
	if a == nil || b == nil {
		return a == b
	}
	return KeysEqual(a.Key, b.Key) && ValuesEqual(a.Value, b.Value)
}

func ThingsEqual(a, b *Thing) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !InstrsEqual(a.Opener, b.Opener) || len(a.Body) != len(b.Body) {
		return false
	}
	for i := range a.Body {
		if !InstrsEqual(a.Body[i], b.Body[i]) {
			return false
		}
	}
	return true
}

func SectionsEqual(a, b *Section) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !InstrsEqual(a.Opener, b.Opener) || len(a.Things) != len(b.Things) {
		return false
	}
	for i := range a.Things {
		if !ThingsEqual(a.Things[i], b.Things[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two documents are structurally equal.
func Equal(a, b *Document) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !InstrsEqual(a.Version, b.Version) || len(a.Sections) != len(b.Sections) {
		return false
	}
	for i := range a.Sections {
		if !SectionsEqual(a.Sections[i], b.Sections[i]) {
			return false
		}
	}
	return true
}
