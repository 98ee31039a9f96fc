package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fablekit/tng/format"
	"github.com/fablekit/tng/ir"
	"github.com/fablekit/tng/parse"
	"github.com/google/go-cmp/cmp"
)

const script = `Version 1;
XXXSectionStart S;
NewThing Object;
A 1;
Long.key "x";
B ;
EndThing ;
XXXSectionEnd ;
`

func mustDoc(t *testing.T) *ir.Document {
	t.Helper()
	doc, err := parse.ParseString(script)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestEncodeTree(t *testing.T) {
	want := `version 1
section 0 S
  thing 0.0 Object
    A        = 1
    Long.key = "x"
    B        = -
`
	buf := &bytes.Buffer{}
	if err := Encode(mustDoc(t), buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeTreeWire(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(mustDoc(t), buf, EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\nthing 0.0 Object\nA = 1\n") {
		t.Errorf("unexpected wire tree:\n%s", buf.String())
	}
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	doc := mustDoc(t)
	buf := &bytes.Buffer{}
	if err := Encode(doc, buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	back := &ir.Document{}
	if err := json.Unmarshal(buf.Bytes(), back); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(doc, back); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(mustDoc(t), buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, frag := range []string{"version: 1", "name: S", "kind: Object", "A: 1", "Long.key: x"} {
		if !strings.Contains(out, frag) {
			t.Errorf("missing %q in\n%s", frag, out)
		}
	}
	if strings.Index(out, "A: 1") > strings.Index(out, "Long.key") {
		t.Errorf("body order lost:\n%s", out)
	}
}

func TestEncodeThing(t *testing.T) {
	th := mustDoc(t).Sections[0].Things[0]
	buf := &bytes.Buffer{}
	if err := EncodeThing(th, "", buf, EncodeIndent(4)); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "thing Object\n    A ") {
		t.Errorf("got\n%s", buf.String())
	}
}

func TestEncodeColors(t *testing.T) {
	colors := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.NumberType, Attr: ValueColor}: func(s string, _ ...any) string {
				return "<" + s + ">"
			},
		},
	}
	buf := &bytes.Buffer{}
	if err := Encode(mustDoc(t), buf, EncodeColors(colors)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "A        = <1>") {
		t.Errorf("got\n%s", buf.String())
	}
	if NewColors().Get(ir.StringType, ValueColor) == nil {
		t.Error("no string color")
	}
}

func TestEncodeEmpty(t *testing.T) {
	err := Encode(&ir.Document{}, &bytes.Buffer{})
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding, got %v", err)
	}
}

func TestMustString(t *testing.T) {
	got := MustString(mustDoc(t), EncodeWire(true))
	if !strings.HasPrefix(got, "version 1\nsection 0 S\n") || strings.HasSuffix(got, "\n") {
		t.Errorf("unexpected output %q", got)
	}
	if f := FormatFromOpts(EncodeWire(true), EncodeFormat(format.YAMLFormat)); f != format.YAMLFormat {
		t.Errorf("format %s", f)
	}
	if f := FormatFromOpts(); !f.IsTree() {
		t.Errorf("default format %s", f)
	}
}
