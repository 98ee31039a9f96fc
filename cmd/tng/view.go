package main

import (
	"fmt"

	"github.com/fablekit/tng/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	opts := cfg.encOpts(cc.Out)
	for i, file := range files {
		doc, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := encode.Encode(doc, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if err := separate(cc.Out, i, len(files)); err != nil {
			return err
		}
	}
	return nil
}
