package dirload

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/fablekit/tng"
	"github.com/fablekit/tng/debug"
	"github.com/fablekit/tng/ir"
	"github.com/fablekit/tng/parse"
)

// File is one script of a directory. Exactly one of Doc and Err is set.
type File struct {
	Path string
	Doc  *ir.Document
	Err  error
}

// Paths lists the scripts under the root relative to it, sorted.
func (dir *Dir) Paths() ([]string, error) {
	var res []string
	err := filepath.WalkDir(dir.Root, func(p string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir.Root, p)
		if err != nil {
			return err
		}
		if matchAny(dir.Include, rel) && !matchAny(dir.Exclude, rel) {
			res = append(res, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(res)
	return res, nil
}

// matchAny matches rel, and its base name, against the patterns.
func matchAny(pats []string, rel string) bool {
	base := filepath.Base(rel)
	for _, pat := range pats {
		if ok, _ := filepath.Match(pat, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pat, base); ok {
			return true
		}
	}
	return false
}

// Load decodes every script in path order. A script that fails to decode
// or patch gets its error recorded and does not stop the others.
func (dir *Dir) Load() ([]File, error) {
	paths, err := dir.Paths()
	if err != nil {
		return nil, err
	}
	res := make([]File, len(paths))
	for i, rel := range paths {
		res[i].Path = rel
		res[i].Doc, res[i].Err = dir.LoadFile(rel)
		if debug.Load() {
			debug.Logf("loaded %s: %v\n", rel, res[i].Err)
		}
	}
	return res, nil
}

// LoadFile decodes the script at rel with the directory's markers and
// applies the matching patches.
func (dir *Dir) LoadFile(rel string) (*ir.Document, error) {
	d, err := os.ReadFile(filepath.Join(dir.Root, rel))
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d, parse.ParseFilename(rel), parse.ParseMarkers(dir.Markers))
	if err != nil {
		return nil, err
	}
	for i := range dir.Patches {
		p := &dir.Patches[i]
		if !matchAny([]string{p.Match}, rel) {
			continue
		}
		doc, err = tng.Patch(doc, p.data)
		if err != nil {
			return nil, fmt.Errorf("%s: patch %s: %w", rel, p, err)
		}
	}
	return doc, nil
}
