// Package gomap fills Go structs from decoded things.
//
// Fields are matched to body keys by their tng tag, or by field name when
// untagged:
//
//	type Tree struct {
//		Def    string    `tng:"DefinitionType,required"`
//		Health int       `tng:"ScriptData.Health"`
//		Pos    []float64 `tng:"Pos"`
//		Script Script    `tng:"ScriptData"`
//		Skip   int       `tng:"-"`
//	}
//
// A struct valued field collects the property chains rooted at its key,
// so Script above sees ScriptData.Health as Health. Slices are filled from
// the arguments of a call.
package gomap
