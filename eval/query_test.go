package eval

import (
	"errors"
	"strings"
	"testing"

	"github.com/fablekit/tng/ir"
	"github.com/fablekit/tng/parse"
)

const thing = `NewThing Object;
DefinitionType "TREE_OAK";
Pos Vector(12.5, 2, -3);
ScriptData.Health 80;
Locked FALSE;
EndThing ;
`

type queryTest struct {
	src  string
	want bool
}

func TestQueryMatch(t *testing.T) {
	th, err := parse.ParseThing([]byte(thing))
	if err != nil {
		t.Fatal(err)
	}
	ctx := Context{Section: 1, Index: 4, SectionName: "Trees"}
	qts := []queryTest{
		{`kind == "Object"`, true},
		{`kind == "Marker"`, false},
		{`get("DefinitionType") == "TREE_OAK"`, true},
		{`has("ScriptData.Health") && get("ScriptData.Health") > 50`, true},
		{`get("ScriptData.Health") > 90`, false},
		{`has("Missing")`, false},
		{`get("Missing") == nil`, true},
		{`call("Pos") == "Vector"`, true},
		{`len(args("Pos")) == 3 && args("Pos")[0] > 10.0`, true},
		{`call("DefinitionType") == ""`, true},
		{`section == 1 && index == 4 && sectionName == "Trees"`, true},
		{`!get("Locked")`, true},
		{`body["Locked"] == false`, true},
		{`glob("TREE_*", get("DefinitionType"))`, true},
		{`glob("ROCK_*", get("DefinitionType"))`, false},
		{`getenv("TNG_EVAL_TEST_UNSET") == ""`, true},
	}
	for _, qt := range qts {
		q, err := Compile(qt.src)
		if err != nil {
			t.Errorf("%s: %v", qt.src, err)
			continue
		}
		got, err := q.Match(th, ctx)
		if err != nil {
			t.Errorf("%s: %v", qt.src, err)
			continue
		}
		if got != qt.want {
			t.Errorf("%s: got %t want %t", qt.src, got, qt.want)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`kind +`, `"not a bool"`, `nosuch("x")`} {
		_, err := Compile(src)
		if !errors.Is(err, ErrQuery) {
			t.Errorf("%s: expected ErrQuery, got %v", src, err)
		}
	}
}

type upper struct{ name }

func (upper) Func(params ...any) (any, error) {
	return strings.ToUpper(params[0].(string)), nil
}

func (upper) Types() []any { return []any{new(func(string) string)} }

func TestCompileSymbol(t *testing.T) {
	q, err := Compile(`shout(kind) == "OBJECT"`, CompileSymbol(upper{name: "shout"}))
	if err != nil {
		t.Fatal(err)
	}
	th := &ir.Thing{Opener: ir.NewInstr(ir.KeyName("NewThing"), ir.FromName("Object"))}
	ok, err := q.Match(th, Context{})
	if err != nil || !ok {
		t.Errorf("got %t, %v", ok, err)
	}
}

func TestRegister(t *testing.T) {
	if err := Register(GetEnv()); !errors.Is(err, ErrSymbolExists) {
		t.Errorf("expected ErrSymbolExists, got %v", err)
	}
	if err := Register(upper{name: "kind"}); !errors.Is(err, ErrSymbolExists) {
		t.Errorf("bound name accepted: %v", err)
	}
	if Lookup("glob") == nil {
		t.Error("glob not registered")
	}
}
