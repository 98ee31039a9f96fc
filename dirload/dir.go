// Package dirload loads a directory of Thing scripts described by an
// optional tng.yaml.
package dirload

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fablekit/tng/debug"
	"github.com/fablekit/tng/format"
	"github.com/fablekit/tng/parse"

	"github.com/goccy/go-yaml"
)

const (
	ConfigName = "tng.yaml"
)

var DefaultInclude = []string{"*.tng"}

// Dir is a loaded tng.yaml. All fields are optional:
//
//	include: ["*.tng", "*.txt"]
//	exclude: ["backup/*"]
//	format: yaml
//	markers:
//	  sectionStart: XXXSectionStart
//	patches:
//	  - match: "levels/*.tng"
//	    file: fixes/health.json
type Dir struct {
	Root    string        `yaml:"-"`
	Include []string      `yaml:"include,omitempty"`
	Exclude []string      `yaml:"exclude,omitempty"`
	Format  string        `yaml:"format,omitempty"`
	Markers parse.Markers `yaml:"markers,omitempty"`
	Patches []DirPatch    `yaml:"patches,omitempty"`

	format format.Format
}

// DirPatch applies the RFC 6902 patch in File to every loaded script whose
// path relative to the root matches Match.
type DirPatch struct {
	Match string `yaml:"match"`
	File  string `yaml:"file"`

	data []byte
}

func (p *DirPatch) String() string {
	return p.Match + " <- " + p.File
}

// OpenDir reads path/tng.yaml if it exists. Markers set in $TNG_MARKERS
// take precedence over the file.
func OpenDir(path string) (*Dir, error) {
	dir := &Dir{Root: path}
	cfgPath := filepath.Join(path, ConfigName)
	d, err := os.ReadFile(cfgPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(d, dir); err != nil {
			return nil, fmt.Errorf("could not decode %s: %w", cfgPath, err)
		}
		dir.Root = path
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("could not read %q: %w", cfgPath, err)
	}
	if err := dir.init(); err != nil {
		return nil, fmt.Errorf("%s: %w", cfgPath, err)
	}
	if debug.Load() {
		debug.Logf("opened %s: include %v exclude %v markers %s\n", path, dir.Include, dir.Exclude, debug.JSON{V: dir.Markers})
	}
	return dir, nil
}

func (dir *Dir) init() error {
	if len(dir.Include) == 0 {
		dir.Include = DefaultInclude
	}
	for _, pats := range [][]string{dir.Include, dir.Exclude} {
		for _, pat := range pats {
			if _, err := filepath.Match(pat, ""); err != nil {
				return fmt.Errorf("bad pattern %q: %w", pat, err)
			}
		}
	}
	if dir.Format != "" {
		f, err := format.ParseFormat(dir.Format)
		if err != nil {
			return err
		}
		dir.format = f
	}
	envMarkers, err := LoadEnv()
	if err != nil {
		return err
	}
	dir.Markers = mergeMarkers(dir.Markers, envMarkers).WithDefaults()
	for i := range dir.Patches {
		p := &dir.Patches[i]
		if _, err := filepath.Match(p.Match, ""); err != nil {
			return fmt.Errorf("bad patch pattern %q: %w", p.Match, err)
		}
		file := p.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(dir.Root, file)
		}
		d, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read patch %s: %w", p, err)
		}
		p.data = d
		if debug.Load() {
			debug.Logf("loaded patch %s\n", p)
		}
	}
	return nil
}

// OutputFormat is the format named in tng.yaml, and whether one was.
func (dir *Dir) OutputFormat() (format.Format, bool) {
	return dir.format, dir.Format != ""
}

func mergeMarkers(dst, src parse.Markers) parse.Markers {
	for _, f := range []struct{ d, s *string }{
		{&dst.Version, &src.Version},
		{&dst.SectionStart, &src.SectionStart},
		{&dst.SectionEnd, &src.SectionEnd},
		{&dst.NewThing, &src.NewThing},
		{&dst.EndThing, &src.EndThing},
	} {
		if *f.s != "" {
			*f.d = *f.s
		}
	}
	return dst
}
