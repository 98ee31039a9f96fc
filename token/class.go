package token

// IsDigit reports an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func IsAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsNameByte reports the bytes allowed in a key name or call name.
func IsNameByte(c byte) bool {
	return IsAlpha(c) || IsDigit(c) || c == '_'
}

// IsValueNameByte is IsNameByte plus the space, which free-text values
// may contain.
func IsValueNameByte(c byte) bool {
	return IsNameByte(c) || c == ' '
}

// IsFloatByte reports the bytes of a float magnitude.
func IsFloatByte(c byte) bool {
	return IsDigit(c) || c == '.'
}

// LineEnding returns the length of the line break at the start of d, or 0.
func LineEnding(d []byte) int {
	switch {
	case len(d) > 0 && d[0] == '\n':
		return 1
	case len(d) > 1 && d[0] == '\r' && d[1] == '\n':
		return 2
	}
	return 0
}
