package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fablekit/tng/dirload"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	report := func(path string, err error) {
		if err != nil {
			failed++
			fmt.Fprintf(cc.Out, "%s: %v\n", path, err)
			return
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", path)
		}
	}
	for _, arg := range inputs(args) {
		fi, err := os.Stat(arg)
		if arg == "-" || err != nil || !fi.IsDir() {
			_, err := readDoc(cfg.MainConfig, cc, arg)
			report(arg, err)
			continue
		}
		dir, err := dirload.OpenDir(arg)
		if err != nil {
			report(arg, err)
			continue
		}
		files, err := dir.Load()
		if err != nil {
			report(arg, err)
			continue
		}
		for _, f := range files {
			report(filepath.Join(arg, f.Path), f.Err)
		}
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
