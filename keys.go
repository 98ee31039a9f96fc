package tng

import (
	"sort"

	"github.com/fablekit/tng/ir"
)

// KeyCount is a body key with the number of things that set it and the
// value types seen for it.
type KeyCount struct {
	Key    string
	Things int
	Types  []ir.ValueType
}

// Keys summarizes the body keys of doc, most common first and then by
// key.
func Keys(doc *ir.Document) []KeyCount {
	idx := map[string]*KeyCount{}
	types := map[string]map[ir.ValueType]bool{}
	for _, t := range doc.Things() {
		seen := map[string]bool{}
		for _, in := range t.Body {
			k := in.Key.String()
			kc := idx[k]
			if kc == nil {
				kc = &KeyCount{Key: k}
				idx[k] = kc
				types[k] = map[ir.ValueType]bool{}
			}
			if !seen[k] {
				seen[k] = true
				kc.Things++
			}
			types[k][in.Value.Type] = true
		}
	}
	res := make([]KeyCount, 0, len(idx))
	for k, kc := range idx {
		for _, vt := range ir.ValueTypes() {
			if types[k][vt] {
				kc.Types = append(kc.Types, vt)
			}
		}
		res = append(res, *kc)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Things != res[j].Things {
			return res[i].Things > res[j].Things
		}
		return res[i].Key < res[j].Key
	})
	return res
}
