package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fablekit/tng"
	"github.com/fablekit/tng/ir"

	"github.com/scott-cotton/cli"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		return err
	}
	all := &ir.Document{}
	for _, file := range inputs(args) {
		doc, err := readDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		all.Sections = append(all.Sections, doc.Sections...)
	}
	tw := tabwriter.NewWriter(cc.Out, 0, 4, 2, ' ', 0)
	for _, kc := range tng.Keys(all) {
		if !cfg.Types {
			fmt.Fprintf(tw, "%d\t%s\n", kc.Things, kc.Key)
			continue
		}
		types := make([]string, len(kc.Types))
		for i, t := range kc.Types {
			types[i] = t.String()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", kc.Things, kc.Key, strings.Join(types, ","))
	}
	return tw.Flush()
}
