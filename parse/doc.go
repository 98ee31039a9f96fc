package parse

import (
	"github.com/fablekit/tng/debug"
	"github.com/fablekit/tng/ir"
	"github.com/fablekit/tng/token"
)

// Markers names the structural instructions of a document.
type Markers struct {
	Version      string `json:"version,omitempty" yaml:"version,omitempty"`
	SectionStart string `json:"sectionStart,omitempty" yaml:"sectionStart,omitempty"`
	SectionEnd   string `json:"sectionEnd,omitempty" yaml:"sectionEnd,omitempty"`
	NewThing     string `json:"newThing,omitempty" yaml:"newThing,omitempty"`
	EndThing     string `json:"endThing,omitempty" yaml:"endThing,omitempty"`
}

// DefaultMarkers are the markers of level thing scripts.
func DefaultMarkers() Markers {
	return Markers{
		Version:      "Version",
		SectionStart: "XXXSectionStart",
		SectionEnd:   "XXXSectionEnd",
		NewThing:     "NewThing",
		EndThing:     "EndThing",
	}
}

// WithDefaults fills in unset marker names.
func (m Markers) WithDefaults() Markers {
	def := DefaultMarkers()
	if m.Version == "" {
		m.Version = def.Version
	}
	if m.SectionStart == "" {
		m.SectionStart = def.SectionStart
	}
	if m.SectionEnd == "" {
		m.SectionEnd = def.SectionEnd
	}
	if m.NewThing == "" {
		m.NewThing = def.NewThing
	}
	if m.EndThing == "" {
		m.EndThing = def.EndThing
	}
	return m
}

// thing := NewThing instr* EndThing
func thing(s state) (*ir.Thing, state, error) {
	m := &s.src.markers
	opener, t, err := tagged(m.NewThing)(s)
	if err != nil {
		return nil, s, err
	}
	res := &ir.Thing{Opener: opener}
	closer := tagged(m.EndThing)
	for {
		_, next, endErr := closer(t)
		if endErr == nil {
			t = next
			break
		}
		if atEnd(t) {
			return nil, s, unclosed(s, t, "thing", m.EndThing)
		}
		in, next, err := instr(t)
		if err != nil {
			return nil, s, furthest(endErr, err)
		}
		res.Body = append(res.Body, in)
		t = next
	}
	if debug.Parse() {
		debug.Logf("thing %s at %d-%d\n", res, s.i, t.i)
	}
	return res, t, nil
}

// section := SectionStart thing* SectionEnd
func section(s state) (*ir.Section, state, error) {
	m := &s.src.markers
	opener, t, err := tagged(m.SectionStart)(s)
	if err != nil {
		return nil, s, err
	}
	res := &ir.Section{Opener: opener}
	closer := tagged(m.SectionEnd)
	for {
		_, next, endErr := closer(t)
		if endErr == nil {
			t = next
			break
		}
		if atEnd(t) {
			return nil, s, unclosed(s, t, "section", m.SectionEnd)
		}
		th, next, err := thing(t)
		if err != nil {
			return nil, s, furthest(endErr, err)
		}
		res.Things = append(res.Things, th)
		t = next
	}
	if debug.Parse() {
		debug.Logf("section %s at %d-%d\n", res, s.i, t.i)
	}
	return res, t, nil
}

// document := Version section*, up to the end of input.
func document(s state) (*ir.Document, state, error) {
	version, t, err := tagged(s.src.markers.Version)(s)
	if err != nil {
		return nil, s, err
	}
	res := &ir.Document{Version: version}
	for !atEnd(t) {
		sec, next, err := section(t)
		if err != nil {
			return nil, s, err
		}
		res.Sections = append(res.Sections, sec)
		t = next
	}
	t, _ = lineEndings(t)
	return res, t, nil
}

// atEnd reports whether only line breaks remain.
func atEnd(s state) bool {
	t, _ := lineEndings(s)
	return t.eof()
}

func unclosed(open, at state, what, closer string) error {
	start, _ := lineEndings(open)
	line, _ := start.pos().LineCol()
	return at.fail(token.ErrStructure, what, "%s opened on line %d is not closed by %s", what, line+1, closer)
}
