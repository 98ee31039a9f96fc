package main

import (
	"fmt"
	"io"

	"github.com/fablekit/tng"
	"github.com/fablekit/tng/encode"
	"github.com/fablekit/tng/eval"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	q, err := eval.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.encOpts(cc.Out)
	tree := encode.FormatFromOpts(opts...).IsTree()
	files := inputs(args[1:])
	total, written := 0, 0
	for _, file := range files {
		doc, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		sel, err := tng.Select(doc, q)
		if err != nil {
			return err
		}
		total += len(sel)
		if cfg.Count {
			continue
		}
		for _, s := range sel {
			at := fmt.Sprintf("%d.%d", s.Section, s.Index)
			if len(files) > 1 {
				at = file + ":" + at
			}
			if !tree && written > 0 {
				if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
					return err
				}
			}
			if err := encode.EncodeThing(s.Thing, at, cc.Out, opts...); err != nil {
				return err
			}
			written++
		}
	}
	if cfg.Count {
		fmt.Fprintln(cc.Out, total)
	}
	if total == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
