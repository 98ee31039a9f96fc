// Package token provides the byte-level vocabulary shared by the Thing script
// decoder: source positions, character classes and decoding errors.
//
// [PosDoc] maps byte offsets of a script to line and column numbers, and
// [Span] locates the parts of a single instruction.
package token
