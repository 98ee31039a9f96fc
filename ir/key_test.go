package ir

import "testing"

type keyStringTest struct {
	key  *Key
	want string
}

func TestKeyString(t *testing.T) {
	kts := []keyStringTest{
		{key: KeyName("Pos"), want: "Pos"},
		{key: KeyIndex(7), want: "7"},
		{
			key:  KeyPath(KeyName("foo"), KeyName("bar"), KeyIndex(2)),
			want: "foo.bar[2]",
		},
		{
			key:  KeyPath(KeyName("a"), KeyPath(KeyName("b"), KeyName("c"))),
			want: "a[b.c]",
		},
		{
			key:  KeyPath(KeyName("only")),
			want: "only",
		},
	}
	for _, kt := range kts {
		if got := kt.key.String(); got != kt.want {
			t.Errorf("%#v: got %q want %q", kt.key, got, kt.want)
		}
	}
}

func TestKeyPathCollapses(t *testing.T) {
	k := KeyPath(KeyIndex(3))
	if k.Type != IndexKey {
		t.Errorf("single element chain should collapse, got %s", k.Type)
	}
	if d := KeyPath(KeyName("a"), KeyName("b"), KeyName("c")).Depth(); d != 3 {
		t.Errorf("depth %d", d)
	}
}

func TestKeyClone(t *testing.T) {
	k := KeyPath(KeyName("a"), KeyIndex(1))
	c := k.Clone()
	c.Path[1].Index = 9
	if k.Path[1].Index != 1 {
		t.Errorf("clone shares path elements")
	}
	if !KeysEqual(k, KeyPath(KeyName("a"), KeyIndex(1))) {
		t.Errorf("original modified")
	}
}
