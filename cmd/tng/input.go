package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fablekit/tng/ir"
	"github.com/fablekit/tng/parse"

	"github.com/scott-cotton/cli"
)

// readDoc decodes file, or standard input for "-".
func readDoc(cfg *MainConfig, cc *cli.Context, file string) (*ir.Document, error) {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	opts, err := cfg.parseOpts(file)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Read(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return doc, nil
}

// inputs defaults to standard input.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func separate(w io.Writer, i, n int) error {
	if i == n-1 {
		return nil
	}
	_, err := io.WriteString(w, "\n---\n")
	return err
}
