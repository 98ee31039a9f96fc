package token

import (
	"errors"
)

var (
	ErrSyntax      = errors.New("syntax error")
	ErrEncoding    = errors.New("bad utf8")
	ErrNumberRange = errors.New("number out of range")
	ErrStructure   = errors.New("structural mismatch")
)
