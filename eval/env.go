package eval

import (
	"github.com/fablekit/tng/ir"
)

type Env map[string]any

// Context locates a thing in its document.
type Context struct {
	Section     int
	Index       int
	SectionName string
}

var boundNames = map[string]struct{}{
	"kind": {}, "section": {}, "sectionName": {}, "index": {}, "body": {},
	"get": {}, "has": {}, "call": {}, "args": {},
}

// ThingEnv binds the names a query sees for t:
//
//	kind         the thing's kind, e.g. "Object"
//	section      index of the section
//	sectionName  name of the section
//	index        index of the thing within its section
//	body         map from rendered key to plain value
//	get(key)     plain value of key, or nil
//	has(key)     whether key is set
//	call(key)    function name if key holds a call, else ""
//	args(key)    plain call arguments of key, or nil
//
// Keys are written as in scripts, e.g. "Pos" or "ScriptData.Health".
func ThingEnv(t *ir.Thing, ctx Context) Env {
	return Env{
		"kind":        t.Kind(),
		"section":     ctx.Section,
		"sectionName": ctx.SectionName,
		"index":       ctx.Index,
		"body":        t.BodyMap(),
		"get": func(key string) any {
			return ir.ToAny(t.Lookup(key))
		},
		"has": func(key string) bool {
			return t.Lookup(key) != nil
		},
		"call": func(key string) string {
			v := t.Lookup(key)
			if v == nil || v.Type != ir.CallType {
				return ""
			}
			return v.String
		},
		"args": func(key string) []any {
			v := t.Lookup(key)
			if v == nil || v.Type != ir.CallType {
				return nil
			}
			res := make([]any, len(v.Args))
			for i, a := range v.Args {
				res[i] = ir.ToAny(a)
			}
			return res
		},
	}
}

// typeEnv has the shape of every ThingEnv, for checking queries.
var typeEnv = ThingEnv(&ir.Thing{Opener: ir.NewInstr(ir.KeyName("NewThing"), ir.None())}, Context{})
