package main

import (
	"path/filepath"
	"testing"

	"github.com/fablekit/tng/format"

	"github.com/scott-cotton/cli"
)

func TestOutputPathFormat(t *testing.T) {
	cfg := &MainConfig{}
	cc := &cli.Context{}
	if _, err := cfg.outOpt(cc, filepath.Join(t.TempDir(), "level.json")); err != nil {
		t.Fatal(err)
	}
	defer cfg.CloseOut()
	if f := cfg.outFormat(); f != format.JSONFormat {
		t.Errorf("got %s", f)
	}
	cfg.Y = true
	if f := cfg.outFormat(); f != format.YAMLFormat {
		t.Errorf("-y: got %s", f)
	}
}
