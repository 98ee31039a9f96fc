package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fablekit/tng/libdiff"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := readDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	to, err := readDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	changes := libdiff.Diff(from, to)
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	if err := writeChanges(cfg.MainConfig, cc.Out, changes); err != nil {
		return err
	}
	if len(changes) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func writeChanges(cfg *MainConfig, w io.Writer, changes []libdiff.Change) error {
	if f := cfg.outFormat(); f.IsJSON() || f.IsYAML() {
		if changes == nil {
			changes = []libdiff.Change{}
		}
		d, err := json.MarshalIndent(changes, "", "  ")
		if err != nil {
			return err
		}
		if f.IsYAML() {
			d, err = yaml.JSONToYAML(d)
			if err != nil {
				return err
			}
		} else {
			d = append(d, '\n')
		}
		_, err = w.Write(d)
		return err
	}
	for i := range changes {
		if _, err := fmt.Fprintln(w, changes[i].String()); err != nil {
			return err
		}
	}
	return nil
}
