package libdiff

import (
	"testing"

	"github.com/fablekit/tng/ir"
	"github.com/fablekit/tng/parse"
	"github.com/google/go-cmp/cmp"
)

const before = `Version 1;
XXXSectionStart S;
NewThing Object;
DefinitionType Oak Tree;
Health 10;
Slot 1;
Slot 2;
EndThing ;
NewThing Marker;
EndThing ;
XXXSectionEnd ;
`

const after = `Version 2;
XXXSectionStart S;
NewThing Object;
DefinitionType Oak Bush;
Slot 1;
Slot 3;
Scale 1.5;
EndThing ;
XXXSectionEnd ;
XXXSectionStart T;
XXXSectionEnd ;
`

func docs(t *testing.T) (*ir.Document, *ir.Document) {
	t.Helper()
	a, err := parse.ParseString(before)
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.ParseString(after)
	if err != nil {
		t.Fatal(err)
	}
	return a, b
}

func TestDiff(t *testing.T) {
	a, b := docs(t)
	want := []Change{
		{Path: "version", Op: Replace, From: ir.FromNumber(1), To: ir.FromNumber(2)},
		{Path: "0.0/DefinitionType", Op: Replace,
			From: ir.FromName("Oak Tree"), To: ir.FromName("Oak Bush"),
			Text: "Oak [-Tree-]{+Bush+}"},
		{Path: "0.0/Health", Op: Delete, From: ir.FromNumber(10)},
		{Path: "0.0/Slot#1", Op: Replace, From: ir.FromNumber(2), To: ir.FromNumber(3)},
		{Path: "0.0/Scale", Op: Insert, To: ir.FromFloat(1.5)},
		{Path: "0.1", Op: Delete, From: ir.FromName("Marker")},
		{Path: "1", Op: Insert, To: ir.FromName("T")},
	}
	got := Diff(a, b)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDiffEqual(t *testing.T) {
	a, _ := docs(t)
	if got := Diff(a, a.Clone()); len(got) != 0 {
		t.Errorf("expected no changes, got %v", got)
	}
}

func TestReverse(t *testing.T) {
	a, b := docs(t)
	rev := Reverse(Diff(a, b))
	back := Diff(b, a)
	byPath := map[string]Change{}
	for _, c := range back {
		byPath[c.Path] = c
	}
	if len(rev) != len(back) {
		t.Fatalf("expected %d changes, got %d", len(back), len(rev))
	}
	for _, c := range rev {
		if diff := cmp.Diff(byPath[c.Path], c); diff != "" {
			t.Errorf("%s (-want +got):\n%s", c.Path, diff)
		}
	}
}

func TestDiffText(t *testing.T) {
	dts := []struct {
		from, to *ir.Value
		want     string
	}{
		{ir.FromString("hello"), ir.FromString("hello world"), "hello{+ world+}"},
		{ir.FromString("abc"), ir.FromString("xyz"), ""},
		{ir.FromNumber(1), ir.FromNumber(2), ""},
		{ir.FromString("a"), ir.FromName("a"), ""},
	}
	for _, dt := range dts {
		if got := DiffText(dt.from, dt.to); got != dt.want {
			t.Errorf("%s -> %s: got %q want %q", dt.from.Literal(), dt.to.Literal(), got, dt.want)
		}
	}
}

func TestChangeString(t *testing.T) {
	c := MakeChange("0.0/A", ir.FromNumber(1), ir.FromNumber(2))
	if c.String() != "~ 0.0/A 1 -> 2" {
		t.Errorf("got %q", c)
	}
	if MakeChange("x", ir.FromNumber(1), ir.FromNumber(1)) != nil {
		t.Error("equal values produced a change")
	}
}
