package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fablekit/tng/format"
	"github.com/fablekit/tng/ir"

	"github.com/goccy/go-yaml"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent int
	format format.Format
	wire   bool

	Color func(ir.ValueType, ColorAttr, string) string
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.wire {
		es.indent = 0
	}
	return es
}

// Encode writes doc to w in the format selected by opts, tree by default.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	if doc == nil || doc.Version == nil {
		return fmt.Errorf("%w: empty document", ErrEncoding)
	}
	es := newState(opts)
	switch es.format {
	case format.JSONFormat:
		return writeJSON(w, doc, es)
	case format.YAMLFormat:
		return writeYAML(w, yamlDoc(doc), es)
	}
	buf := &strings.Builder{}
	buf.WriteString(es.marker("version"))
	buf.WriteByte(' ')
	buf.WriteString(es.value(doc.Version.Value))
	buf.WriteByte('\n')
	for si, s := range doc.Sections {
		buf.WriteString(es.marker("section"))
		buf.WriteByte(' ')
		buf.WriteString(es.index(strconv.Itoa(si)))
		if name := s.Opener.Value; name.Type != ir.NoneType {
			buf.WriteByte(' ')
			buf.WriteString(es.value(name))
		}
		buf.WriteByte('\n')
		for ti, t := range s.Things {
			es.thing(buf, 1, fmt.Sprintf("%d.%d", si, ti), t)
		}
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

// EncodeThing writes a single thing. at labels it in tree output and may
// be empty.
func EncodeThing(t *ir.Thing, at string, w io.Writer, opts ...EncodeOption) error {
	if t == nil || t.Opener == nil {
		return fmt.Errorf("%w: empty thing", ErrEncoding)
	}
	es := newState(opts)
	switch es.format {
	case format.JSONFormat:
		return writeJSON(w, t, es)
	case format.YAMLFormat:
		return writeYAML(w, yamlThing(t), es)
	}
	buf := &strings.Builder{}
	es.thing(buf, 0, at, t)
	_, err := io.WriteString(w, buf.String())
	return err
}

func MustString(doc *ir.Document, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	if err := Encode(doc, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

func (es *EncState) thing(buf *strings.Builder, depth int, at string, t *ir.Thing) {
	pad := strings.Repeat(" ", es.indent*depth)
	buf.WriteString(pad)
	buf.WriteString(es.marker("thing"))
	if at != "" {
		buf.WriteByte(' ')
		buf.WriteString(es.index(at))
	}
	if kind := t.Opener.Value; kind.Type != ir.NoneType {
		buf.WriteByte(' ')
		buf.WriteString(es.value(kind))
	}
	buf.WriteByte('\n')
	width := 0
	if !es.wire {
		for _, in := range t.Body {
			width = max(width, len(in.Key.String()))
		}
	}
	pad += strings.Repeat(" ", es.indent)
	for _, in := range t.Body {
		k := in.Key.String()
		buf.WriteString(pad)
		buf.WriteString(es.color(in.Value.Type, KeyColor, k))
		buf.WriteString(strings.Repeat(" ", max(width-len(k), 0)))
		buf.WriteString(es.color(in.Value.Type, SepColor, " = "))
		buf.WriteString(es.value(in.Value))
		buf.WriteByte('\n')
	}
}

func (es *EncState) color(t ir.ValueType, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) marker(s string) string {
	return es.color(ir.NoneType, MarkerColor, s)
}

func (es *EncState) index(s string) string {
	return es.color(ir.NoneType, IndexColor, s)
}

func (es *EncState) value(v *ir.Value) string {
	if v.Type == ir.NoneType {
		return es.color(v.Type, ValueColor, "-")
	}
	return es.color(v.Type, ValueColor, v.Literal())
}

func writeJSON(w io.Writer, v any, es *EncState) error {
	var (
		d   []byte
		err error
	)
	if es.wire {
		d, err = json.Marshal(v)
	} else {
		d, err = json.MarshalIndent(v, "", strings.Repeat(" ", es.indent))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

func writeYAML(w io.Writer, v any, es *EncState) error {
	var yopts []yaml.EncodeOption
	if es.wire {
		yopts = append(yopts, yaml.Flow(true))
	} else {
		yopts = append(yopts, yaml.Indent(es.indent), yaml.IndentSequence(true))
	}
	d, err := yaml.MarshalWithOptions(v, yopts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

// yamlDoc keeps document order with MapSlice. Bodies are sequences of
// single entry maps since keys may repeat.
func yamlDoc(doc *ir.Document) yaml.MapSlice {
	sections := make([]any, len(doc.Sections))
	for i, s := range doc.Sections {
		things := make([]any, len(s.Things))
		for j, t := range s.Things {
			things[j] = yamlThing(t)
		}
		sections[i] = yaml.MapSlice{
			{Key: "name", Value: ir.ToAny(s.Opener.Value)},
			{Key: "things", Value: things},
		}
	}
	return yaml.MapSlice{
		{Key: "version", Value: ir.ToAny(doc.Version.Value)},
		{Key: "sections", Value: sections},
	}
}

func yamlThing(t *ir.Thing) yaml.MapSlice {
	body := make([]any, len(t.Body))
	for i, in := range t.Body {
		body[i] = yaml.MapSlice{{Key: in.Key.String(), Value: ir.ToAny(in.Value)}}
	}
	return yaml.MapSlice{
		{Key: "kind", Value: ir.ToAny(t.Opener.Value)},
		{Key: "body", Value: body},
	}
}
