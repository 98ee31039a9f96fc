package libdiff

import (
	"fmt"
	"strconv"

	"github.com/fablekit/tng/debug"
	"github.com/fablekit/tng/ir"
)

// Diff lists the changes taking from to to. Sections and things are
// matched by position, body instructions by key.
func Diff(from, to *ir.Document) []Change {
	var res []Change
	add := func(c *Change) {
		if c == nil {
			return
		}
		if debug.Diff() {
			debug.Logf("diff %s\n", c)
		}
		res = append(res, *c)
	}
	add(MakeChange("version", from.Version.Value, to.Version.Value))
	n := max(len(from.Sections), len(to.Sections))
	for i := range n {
		at := strconv.Itoa(i)
		switch {
		case i >= len(to.Sections):
			add(MakeChange(at, from.Sections[i].Opener.Value, nil))
			continue
		case i >= len(from.Sections):
			add(MakeChange(at, nil, to.Sections[i].Opener.Value))
			continue
		}
		fs, ts := from.Sections[i], to.Sections[i]
		add(MakeChange(at+"/"+nameField, fs.Opener.Value, ts.Opener.Value))
		m := max(len(fs.Things), len(ts.Things))
		for j := range m {
			tat := fmt.Sprintf("%d.%d", i, j)
			switch {
			case j >= len(ts.Things):
				add(MakeChange(tat, fs.Things[j].Opener.Value, nil))
			case j >= len(fs.Things):
				add(MakeChange(tat, nil, ts.Things[j].Opener.Value))
			default:
				for _, c := range DiffThing(tat, fs.Things[j], ts.Things[j]) {
					add(&c)
				}
			}
		}
	}
	return res
}

// DiffThing compares the kinds and bodies of two things at address at.
func DiffThing(at string, from, to *ir.Thing) []Change {
	var res []Change
	if c := MakeChange(at+"/"+kindField, from.Opener.Value, to.Opener.Value); c != nil {
		res = append(res, *c)
	}
	fk, fv := bodyKeys(from)
	tk, tv := bodyKeys(to)
	for _, k := range fk {
		if c := MakeChange(at+"/"+k, fv[k], tv[k]); c != nil {
			res = append(res, *c)
		}
	}
	for _, k := range tk {
		if _, ok := fv[k]; ok {
			continue
		}
		res = append(res, *MakeChange(at+"/"+k, nil, tv[k]))
	}
	return res
}

func bodyKeys(t *ir.Thing) ([]string, map[string]*ir.Value) {
	keys := make([]string, 0, len(t.Body))
	vals := make(map[string]*ir.Value, len(t.Body))
	seen := map[string]int{}
	for _, in := range t.Body {
		k := in.Key.String()
		if n := seen[k]; n > 0 {
			seen[k] = n + 1
			k += "#" + strconv.Itoa(n)
		} else {
			seen[k] = 1
		}
		keys = append(keys, k)
		vals[k] = in.Value
	}
	return keys, vals
}
