package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is how encode renders a document.
type Format int

const (
	TreeFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

type formatNames struct {
	name   string
	short  string
	suffix string
	// more file extensions recognized by ForPath
	alt []string
}

var names = map[Format]formatNames{
	TreeFormat: {name: "tree", short: "t", suffix: ".txt"},
	YAMLFormat: {name: "yaml", short: "y", suffix: ".yaml", alt: []string{".yml"}},
	JSONFormat: {name: "json", short: "j", suffix: ".json"},
}

// Formats lists the formats in the order the -O help text gives them.
func Formats() []Format {
	return []Format{TreeFormat, JSONFormat, YAMLFormat}
}

// ParseFormat accepts a format's name or its one letter short form.
func ParseFormat(v string) (Format, error) {
	for _, f := range Formats() {
		if n := names[f]; v == n.name || v == n.short {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// ForPath picks the format an output file's extension implies.
func ForPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return 0, false
	}
	for _, f := range Formats() {
		if ext == f.Suffix() {
			return f, true
		}
		for _, a := range names[f].alt {
			if ext == a {
				return f, true
			}
		}
	}
	return 0, false
}

// Suffix is the file extension written for f, dot included.
func (f Format) Suffix() string {
	return names[f].suffix
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	n, ok := names[f]
	if !ok {
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
	return []byte(n.name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }
func (f Format) IsTree() bool { return f == TreeFormat }
