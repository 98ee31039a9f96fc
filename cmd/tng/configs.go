package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fablekit/tng/dirload"
	"github.com/fablekit/tng/encode"
	"github.com/fablekit/tng/format"
	"github.com/fablekit/tng/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	WireOut bool   `cli:"name=wire desc='output in compact format'"`
	Dir     string `cli:"name=C desc='directory holding tng.yaml (default .)'"`

	T bool `cli:"name=t aliases=tree desc='output a tree'"`
	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error
	// format implied by the -o file extension
	pathFormat *format.Format

	Main *cli.Command

	dir *dirload.Dir
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// config opens the tng.yaml directory once.
func (cfg *MainConfig) config() (*dirload.Dir, error) {
	if cfg.dir != nil {
		return cfg.dir, nil
	}
	root := cfg.Dir
	if root == "" {
		root = "."
	}
	dir, err := dirload.OpenDir(root)
	if err != nil {
		return nil, err
	}
	cfg.dir = dir
	return dir, nil
}

func (cfg *MainConfig) parseOpts(filename string) ([]parse.ParseOption, error) {
	dir, err := cfg.config()
	if err != nil {
		return nil, err
	}
	return []parse.ParseOption{
		parse.ParseFilename(filename),
		parse.ParseMarkers(dir.Markers),
	}, nil
}

func (cfg *MainConfig) outFormat() format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.T:
		return format.TreeFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	case cfg.pathFormat != nil:
		return *cfg.pathFormat
	}
	if dir, err := cfg.config(); err == nil {
		if f, ok := dir.OutputFormat(); ok {
			return f
		}
	}
	return format.TreeFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report failures'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Count bool `cli:"name=c desc='only count matches'"`

	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type KeysConfig struct {
	*MainConfig
	Types bool `cli:"name=types desc='show value types'"`

	Keys *cli.Command
}
