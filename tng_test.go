package tng

import (
	"errors"
	"testing"

	"github.com/fablekit/tng/eval"
	"github.com/fablekit/tng/ir"
	"github.com/fablekit/tng/parse"
	"github.com/google/go-cmp/cmp"
)

const level = `Version 3;
XXXSectionStart Trees;
NewThing Object;
DefinitionType "TREE_OAK";
Health 80;
EndThing ;
NewThing Object;
DefinitionType "TREE_ASH";
Health 20;
Health 25;
EndThing ;
XXXSectionEnd ;
XXXSectionStart Markers;
NewThing Marker;
Pos Vector(1, 2, 3);
EndThing ;
XXXSectionEnd ;
`

func mustParse(t *testing.T) *ir.Document {
	t.Helper()
	doc, err := parse.ParseString(level)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

type selectTest struct {
	query string
	want  [][2]int
}

func TestSelect(t *testing.T) {
	doc := mustParse(t)
	sts := []selectTest{
		{`kind == "Object"`, [][2]int{{0, 0}, {0, 1}}},
		{`get("Health") > 50`, [][2]int{{0, 0}}},
		{`sectionName == "Markers"`, [][2]int{{1, 0}}},
		{`call("Pos") == "Vector"`, [][2]int{{1, 0}}},
		{`kind == "Building"`, nil},
	}
	for _, st := range sts {
		q, err := eval.Compile(st.query)
		if err != nil {
			t.Fatal(err)
		}
		sel, err := Select(doc, q)
		if err != nil {
			t.Fatal(err)
		}
		var got [][2]int
		for _, s := range sel {
			got = append(got, [2]int{s.Section, s.Index})
			if s.Thing != doc.Sections[s.Section].Things[s.Index] {
				t.Errorf("%s: thing does not match its address", st.query)
			}
		}
		if diff := cmp.Diff(st.want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", st.query, diff)
		}
	}
	all, err := Select(doc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("nil query selected %d things", len(all))
	}
}

func TestPatch(t *testing.T) {
	doc := mustParse(t)
	patch := `[
		{"op": "replace", "path": "/sections/0/things/0/body/1/value/number", "value": 99},
		{"op": "remove", "path": "/sections/1"}
	]`
	res, err := Patch(doc, []byte(patch))
	if err != nil {
		t.Fatal(err)
	}
	if v := res.Sections[0].Things[0].Get("Health"); v == nil || v.Number != 99 {
		t.Errorf("patched value %v", v)
	}
	if len(res.Sections) != 1 {
		t.Errorf("expected 1 section, got %d", len(res.Sections))
	}
	if doc.Sections[0].Things[0].Get("Health").Number != 80 {
		t.Error("input modified")
	}
}

func TestPatchErrors(t *testing.T) {
	doc := mustParse(t)
	for _, patch := range []string{
		`not json`,
		`[{"op": "remove", "path": "/sections/9"}]`,
		`[{"op": "remove", "path": "/version"}]`,
		`[{"op": "replace", "path": "/sections/0/things/0/body/0/value/type", "value": "Bogus"}]`,
	} {
		if _, err := Patch(doc, []byte(patch)); !errors.Is(err, ErrPatch) {
			t.Errorf("%s: expected ErrPatch, got %v", patch, err)
		}
	}
}

func TestKeys(t *testing.T) {
	want := []KeyCount{
		{Key: "DefinitionType", Things: 2, Types: []ir.ValueType{ir.StringType}},
		{Key: "Health", Things: 2, Types: []ir.ValueType{ir.NumberType}},
		{Key: "Pos", Things: 1, Types: []ir.ValueType{ir.CallType}},
	}
	if diff := cmp.Diff(want, Keys(mustParse(t))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
