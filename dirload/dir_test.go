package dirload

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fablekit/tng/format"
	"github.com/fablekit/tng/parse"
	"github.com/fablekit/tng/token"
	"github.com/google/go-cmp/cmp"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

const good = "Version 1;\nXXXSectionStart ;\nNewThing Object;\nHealth 5;\nEndThing ;\nXXXSectionEnd ;\n"

func TestOpenDirDefaults(t *testing.T) {
	t.Setenv(EnvMarkers, "")
	root := writeFiles(t, map[string]string{
		"a.tng":       good,
		"sub/b.tng":   good,
		"notes.txt":   "ignored",
		"sub/bad.tng": "Version 1;\nNewThing ;\n",
	})
	dir, err := OpenDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(parse.DefaultMarkers(), dir.Markers); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, ok := dir.OutputFormat(); ok {
		t.Error("unexpected format")
	}
	files, err := dir.Load()
	if err != nil {
		t.Fatal(err)
	}
	var paths []string
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	want := []string{"a.tng", filepath.Join("sub", "b.tng"), filepath.Join("sub", "bad.tng")}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if files[0].Err != nil || files[0].Doc == nil {
		t.Errorf("a.tng: %v", files[0].Err)
	}
	if !errors.Is(files[2].Err, token.ErrStructure) {
		t.Errorf("bad.tng: %v", files[2].Err)
	}
	if files[2].Doc != nil {
		t.Error("bad.tng produced a document")
	}
}

func TestOpenDirConfig(t *testing.T) {
	t.Setenv(EnvMarkers, "{sectionEnd: Fin}")
	root := writeFiles(t, map[string]string{
		ConfigName: `include: ["*.txt"]
exclude: ["old/*"]
format: json
markers:
  sectionStart: Begin
  sectionEnd: End
patches:
  - match: "*.txt"
    file: fix.json
`,
		"fix.json":    `[{"op": "replace", "path": "/version/value/number", "value": 7}]`,
		"level.txt":   "Version 1;\nBegin ;\nFin ;\n",
		"old/old.txt": "garbage",
	})
	dir, err := OpenDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if f, ok := dir.OutputFormat(); !ok || f != format.JSONFormat {
		t.Errorf("format %s %t", f, ok)
	}
	if dir.Markers.SectionStart != "Begin" || dir.Markers.SectionEnd != "Fin" || dir.Markers.NewThing != "NewThing" {
		t.Errorf("markers %+v", dir.Markers)
	}
	files, err := dir.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].Path != "level.txt" {
		t.Fatalf("files %+v", files)
	}
	if files[0].Err != nil {
		t.Fatal(files[0].Err)
	}
	if n := files[0].Doc.Version.Value.Number; n != 7 {
		t.Errorf("patched version %d", n)
	}
}

func TestOpenDirErrors(t *testing.T) {
	t.Setenv(EnvMarkers, "")
	for name, cfg := range map[string]string{
		"pattern": `include: ["[x"]`,
		"format":  `format: toml`,
		"patch":   "patches:\n  - match: \"*\"\n    file: missing.json\n",
		"yaml":    "include: [",
	} {
		root := writeFiles(t, map[string]string{ConfigName: cfg})
		if _, err := OpenDir(root); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	t.Setenv(EnvMarkers, "[not a map")
	if _, err := OpenDir(t.TempDir()); err == nil {
		t.Error("expected env error")
	}
}
