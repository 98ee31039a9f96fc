package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fablekit/tng/format"
	"github.com/fablekit/tng/ir"
	"github.com/fablekit/tng/libdiff"
)

func TestWriteChanges(t *testing.T) {
	changes := []libdiff.Change{
		*libdiff.MakeChange("0.0/Health", ir.FromNumber(1), ir.FromNumber(2)),
		*libdiff.MakeChange("0.1", nil, ir.FromName("Marker")),
	}
	for f, want := range map[format.Format]string{
		format.TreeFormat: "~ 0.0/Health 1 -> 2\n+ 0.1 Marker\n",
		format.JSONFormat: `"op": "insert"`,
		format.YAMLFormat: "op: insert",
	} {
		cfg := &MainConfig{OutFormat: &f}
		buf := &bytes.Buffer{}
		if err := writeChanges(cfg, buf, changes); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), want) {
			t.Errorf("%s: missing %q in\n%s", f, want, buf.String())
		}
	}
}
