// Package ir holds the decoded form of a Thing script.
//
// A [Document] is a version instruction followed by [Section]s, each of
// which holds [Thing]s, each of which holds [Instr]s. An [Instr] pairs a
// [Key] with a [Value]; both are tagged unions discriminated by their Type
// field, in the manner of a tree node whose meaningful fields depend on
// its type.
//
// Trees produced by the parse package are fully owned top down and are
// not modified after construction.
package ir
