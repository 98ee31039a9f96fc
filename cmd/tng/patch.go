package main

import (
	"fmt"
	"os"

	"github.com/fablekit/tng"
	"github.com/fablekit/tng/encode"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file or, with -s, a patch", cli.ErrUsage)
	}
	var p []byte
	if cfg.String {
		p = []byte(args[0])
	} else {
		p, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("could not read patch: %w", err)
		}
	}
	files := inputs(args[1:])
	opts := cfg.encOpts(cc.Out)
	for i, file := range files {
		doc, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		res, err := tng.Patch(doc, p)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := encode.Encode(res, cc.Out, opts...); err != nil {
			return err
		}
		if err := separate(cc.Out, i, len(files)); err != nil {
			return err
		}
	}
	return nil
}
