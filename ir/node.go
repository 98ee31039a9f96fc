package ir

// Instr is a single key/value statement.
type Instr struct {
	Key   *Key   `json:"key"`
	Value *Value `json:"value"`
}

func NewInstr(k *Key, v *Value) *Instr {
	return &Instr{Key: k, Value: v}
}

// String renders the instruction as a single script line, without the
// trailing line break.
func (in *Instr) String() string {
	v := in.Value.Literal()
	if v == "" {
		return in.Key.String() + " ;"
	}
	return in.Key.String() + " " + v + ";"
}

func (in *Instr) Clone() *Instr {
	if in == nil {
		return nil
	}
	return &Instr{Key: in.Key.Clone(), Value: in.Value.Clone()}
}

// Thing is an entity block. Opener is the NewThing marker instruction;
// Body excludes the closing EndThing marker.
type Thing struct {
	Opener *Instr   `json:"opener"`
	Body   []*Instr `json:"body"`
}

// Kind is the text of the opener's value, such as Object or Marker.
func (t *Thing) Kind() string {
	if t.Opener == nil || t.Opener.Value == nil {
		return ""
	}
	return t.Opener.Value.Text()
}

// Get returns the value of the first body instruction whose key is the
// plain name n.
func (t *Thing) Get(n string) *Value {
	for _, in := range t.Body {
		if in.Key.IsName(n) {
			return in.Value
		}
	}
	return nil
}

// Lookup returns the value of the first body instruction whose key
// renders as path, e.g. "Pos[0]" or "CTCActionUseScriptedHook.Usable".
func (t *Thing) Lookup(path string) *Value {
	for _, in := range t.Body {
		if in.Key.String() == path {
			return in.Value
		}
	}
	return nil
}

// Under returns the body instructions that are property chains rooted
// at the name n, in order.
func (t *Thing) Under(n string) []*Instr {
	var res []*Instr
	for _, in := range t.Body {
		if in.Key.Type == PropertyKey && in.Key.Root().IsName(n) {
			res = append(res, in)
		}
	}
	return res
}

func (t *Thing) Clone() *Thing {
	if t == nil {
		return nil
	}
	res := &Thing{Opener: t.Opener.Clone(), Body: make([]*Instr, len(t.Body))}
	for i, in := range t.Body {
		res.Body[i] = in.Clone()
	}
	return res
}

// Section is a block of things. Opener is the section start marker;
// the section end marker is not kept.
type Section struct {
	Opener *Instr   `json:"opener"`
	Things []*Thing `json:"things"`
}

// Name is the text of the opener's value.
func (s *Section) Name() string {
	if s.Opener == nil || s.Opener.Value == nil {
		return ""
	}
	return s.Opener.Value.Text()
}

func (s *Section) Clone() *Section {
	if s == nil {
		return nil
	}
	res := &Section{Opener: s.Opener.Clone(), Things: make([]*Thing, len(s.Things))}
	for i, t := range s.Things {
		res.Things[i] = t.Clone()
	}
	return res
}

// Document is a whole decoded script.
type Document struct {
	Version  *Instr     `json:"version"`
	Sections []*Section `json:"sections"`
}

// Things returns the things of all sections in document order.
func (d *Document) Things() []*Thing {
	var res []*Thing
	for _, s := range d.Sections {
		res = append(res, s.Things...)
	}
	return res
}

// Visit calls f for each thing in document order with its section and
// thing indices. Visiting stops at the first error.
func (d *Document) Visit(f func(si, ti int, t *Thing) error) error {
	for si, s := range d.Sections {
		for ti, t := range s.Things {
			if err := f(si, ti, t); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	res := &Document{Version: d.Version.Clone(), Sections: make([]*Section, len(d.Sections))}
	for i, s := range d.Sections {
		res.Sections[i] = s.Clone()
	}
	return res
}
