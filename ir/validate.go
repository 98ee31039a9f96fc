package ir

import "fmt"

// Validate checks the invariants that decoded trees always satisfy. It is
// meant for trees that come from elsewhere, e.g. JSON.
func (d *Document) Validate() error {
	if d.Version == nil {
		return fmt.Errorf("%w: missing version", ErrShape)
	}
	if err := d.Version.validate("version"); err != nil {
		return err
	}
	for si, s := range d.Sections {
		if s == nil || s.Opener == nil {
			return fmt.Errorf("%w: section %d has no opener", ErrShape, si)
		}
		if err := s.Opener.validate(fmt.Sprintf("section %d", si)); err != nil {
			return err
		}
		for ti, t := range s.Things {
			if t == nil || t.Opener == nil {
				return fmt.Errorf("%w: section %d thing %d has no opener", ErrShape, si, ti)
			}
			at := fmt.Sprintf("section %d thing %d", si, ti)
			if err := t.Opener.validate(at); err != nil {
				return err
			}
			for ii, in := range t.Body {
				if in == nil {
					return fmt.Errorf("%w: %s instruction %d is missing", ErrShape, at, ii)
				}
				if err := in.validate(fmt.Sprintf("%s instruction %d", at, ii)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (in *Instr) validate(at string) error {
	if in.Key == nil || in.Value == nil {
		return fmt.Errorf("%w: %s: instruction needs a key and a value", ErrShape, at)
	}
	if err := in.Key.validate(); err != nil {
		return fmt.Errorf("%s: %w", at, err)
	}
	if err := in.Value.validate(); err != nil {
		return fmt.Errorf("%s: %w", at, err)
	}
	return nil
}

func (k *Key) validate() error {
	switch k.Type {
	case NameKey:
		if k.Name == "" {
			return fmt.Errorf("%w: empty name key", ErrShape)
		}
	case IndexKey:
	case PropertyKey:
		if len(k.Path) < 2 {
			return fmt.Errorf("%w: property chain of length %d", ErrShape, len(k.Path))
		}
		if k.Path[0] == nil || k.Path[0].Type != NameKey {
			return fmt.Errorf("%w: property chain must start with a name", ErrShape)
		}
		for _, p := range k.Path {
			if p == nil {
				return fmt.Errorf("%w: nil property element", ErrShape)
			}
			if err := p.validate(); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: key type %d", ErrShape, k.Type)
	}
	return nil
}

func (v *Value) validate() error {
	switch v.Type {
	case NoneType, BoolType, FloatType, NumberType, BigNumberType, StringType:
	case NameType:
		if v.String == "" {
			return fmt.Errorf("%w: empty name value", ErrShape)
		}
	case CallType:
		if v.String == "" {
			return fmt.Errorf("%w: call without a name", ErrShape)
		}
		if len(v.Args) == 0 {
			return fmt.Errorf("%w: call %s without arguments", ErrShape, v.String)
		}
		for _, a := range v.Args {
			if a == nil {
				return fmt.Errorf("%w: nil argument to %s", ErrShape, v.String)
			}
			if err := a.validate(); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: value type %d", ErrShape, v.Type)
	}
	return nil
}
