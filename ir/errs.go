package ir

import "errors"

var (
	// ErrShape reports a tree that violates the invariants of the decoded
	// form, such as a one element property chain or a call without
	// arguments. Decoded trees never have this problem; trees built by
	// hand or read back from JSON may.
	ErrShape = errors.New("malformed tree")
)
