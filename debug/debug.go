// Package debug gates diagnostic output on environment variables.
//
// Each flag is read once at startup with strconv.ParseBool, e.g.
// TNG_DEBUG_PARSE=1 traces section and thing boundaries while decoding.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Eval  bool
	Diff  bool
	Load  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TNG_DEBUG_PARSE")
	d.Eval = boolEnv("TNG_DEBUG_EVAL")
	d.Diff = boolEnv("TNG_DEBUG_DIFF")
	d.Load = boolEnv("TNG_DEBUG_LOAD")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}
func Diff() bool {
	return d.Diff
}
func Load() bool {
	return d.Load
}
