package gomap

import (
	"errors"
	"testing"

	"github.com/fablekit/tng/ir"
	"github.com/google/go-cmp/cmp"
)

const tree = `NewThing Object;
DefinitionType "TREE_OAK";
ScriptData.Health 80;
ScriptData.Owner Villager 3;
Pos Vector(1.5, 2, -3);
Slots Set(1, 2);
Scale 2;
UID 18446744073709551615;
Alive TRUE;
Anim Play(Sway);
EndThing ;
`

type Script struct {
	Health int
	Owner  string
}

type Tree struct {
	Def    string    `tng:"DefinitionType,required"`
	Health int8      `tng:"ScriptData.Health"`
	Script Script    `tng:"ScriptData"`
	Pos    []float64 `tng:"Pos"`
	Slots  []uint
	Scale  float32
	UID    uint64
	Alive  *bool
	Anim   *ir.Value
	Raw    ir.Value `tng:"Pos"`
	Skip   int      `tng:"-"`
	Absent string

	hidden int
}

func TestLoad(t *testing.T) {
	got := &Tree{Skip: 7}
	if err := Load([]byte(tree), got); err != nil {
		t.Fatal(err)
	}
	alive := true
	want := &Tree{
		Def:    "TREE_OAK",
		Health: 80,
		Script: Script{Health: 80, Owner: "Villager 3"},
		Pos:    []float64{1.5, 2, -3},
		Slots:  []uint{1, 2},
		Scale:  2,
		UID:    18446744073709551615,
		Alive:  &alive,
		Anim:   ir.FromCall("Play", ir.FromName("Sway")),
		Raw:    *ir.FromCall("Vector", ir.FromFloat(1.5), ir.FromNumber(2), ir.FromNumber(-3)),
		Skip:   7,
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Tree{})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFromThingErrors(t *testing.T) {
	th := &ir.Thing{
		Opener: ir.NewInstr(ir.KeyName("NewThing"), ir.FromName("Object")),
		Body: []*ir.Instr{
			ir.NewInstr(ir.KeyName("Small"), ir.FromNumber(300)),
			ir.NewInstr(ir.KeyName("Neg"), ir.FromNumber(-1)),
			ir.NewInstr(ir.KeyName("Word"), ir.FromNumber(1)),
			ir.NewInstr(ir.KeyName("Args"), ir.FromCall("F", ir.FromName("x"))),
		},
	}
	ets := []struct {
		p    any
		want error
	}{
		{&struct{ Small int8 }{}, ErrType},
		{&struct{ Neg uint }{}, ErrType},
		{&struct{ Word string }{}, ErrType},
		{&struct{ Args []int }{}, ErrType},
		{&struct {
			Need string `tng:"Need,required"`
		}{}, ErrMissing},
		{struct{}{}, ErrTarget},
		{(*Tree)(nil), ErrTarget},
	}
	for _, et := range ets {
		err := FromThing(th, et.p)
		if !errors.Is(err, et.want) {
			t.Errorf("%T: expected %v, got %v", et.p, et.want, err)
		}
	}
}

type kindOnly struct{ kind string }

func (k *kindOnly) FromThing(t *ir.Thing) error {
	k.kind = t.Kind()
	return nil
}

func TestThingFromer(t *testing.T) {
	k := &kindOnly{}
	if err := Load([]byte(tree), k); err != nil {
		t.Fatal(err)
	}
	if k.kind != "Object" {
		t.Errorf("got %q", k.kind)
	}
}
