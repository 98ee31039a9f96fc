package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"t": TreeFormat, "tree": TreeFormat,
		"y": YAMLFormat, "yaml": YAMLFormat,
		"j": JSONFormat, "json": JSONFormat,
	} {
		f, err := ParseFormat(in)
		if err != nil {
			t.Errorf("%s: %v", in, err)
			continue
		}
		if f != want {
			t.Errorf("%s: got %s", in, f)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFormatText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("yaml")); err != nil {
		t.Fatal(err)
	}
	if f.String() != "yaml" || !f.IsYAML() {
		t.Errorf("got %s", f)
	}
	if Format(9).String() == "" {
		t.Error("expected an error text")
	}
}

func TestForPath(t *testing.T) {
	for path, want := range map[string]Format{
		"out.json":       JSONFormat,
		"dir/level.YAML": YAMLFormat,
		"level.yml":      YAMLFormat,
		"tree.txt":       TreeFormat,
	} {
		if f, ok := ForPath(path); !ok || f != want {
			t.Errorf("%s: got %s %t", path, f, ok)
		}
	}
	for _, path := range []string{"out", "level.tng", "x.toml"} {
		if f, ok := ForPath(path); ok {
			t.Errorf("%s: unexpected %s", path, f)
		}
	}
	for _, f := range Formats() {
		if got, ok := ForPath("out" + f.Suffix()); !ok || got != f {
			t.Errorf("%s: suffix %q maps to %s", f, f.Suffix(), got)
		}
	}
}
