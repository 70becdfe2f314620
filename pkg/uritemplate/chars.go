package uritemplate

// Character classes from RFC 3986 section 2 and RFC 6570 section 1.5.
// All predicates take a single code point. Only isUcschar and isIprivate
// match outside ASCII.

func isAlpha(r rune) bool {
	return ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z')
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || ('A' <= r && r <= 'F') || ('a' <= r && r <= 'f')
}

func isUnreserved(r rune) bool {
	return isAlpha(r) || isDigit(r) || r == '-' || r == '.' || r == '_' || r == '~'
}

func isGenDelim(r rune) bool {
	return r == ':' || r == '/' || r == '?' || r == '#' || r == '[' || r == ']' || r == '@'
}

func isSubDelim(r rune) bool {
	switch r {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

func isReserved(r rune) bool {
	return isGenDelim(r) || isSubDelim(r)
}

// isLiteral reports whether an ASCII code point may appear verbatim in
// the literal text of a template (RFC 6570 section 2.1). Excludes
// CTL, SP, ", ', %, <, >, \, ^, `, {, |, }.
func isLiteral(r rune) bool {
	return r == 0x21 ||
		(0x23 <= r && r <= 0x24) ||
		r == 0x26 ||
		(0x28 <= r && r <= 0x3B) ||
		r == 0x3D ||
		(0x3F <= r && r <= 0x5B) ||
		r == 0x5D ||
		r == 0x5F ||
		(0x61 <= r && r <= 0x7A) ||
		r == 0x7E
}

// isUcschar matches the non-ASCII printable scalar values a template may
// carry in literals (percent-encoded on output). Surrogates and most
// non-characters are excluded.
func isUcschar(r rune) bool {
	return (0xA0 <= r && r <= 0xD7FF) ||
		(0xF900 <= r && r <= 0xFDCF) ||
		(0xFDF0 <= r && r <= 0xFFEF) ||
		(0x10000 <= r && r <= 0x1FFFD) ||
		(0x20000 <= r && r <= 0x2FFFD) ||
		(0x30000 <= r && r <= 0x3FFFD) ||
		(0x40000 <= r && r <= 0x4FFFD) ||
		(0x50000 <= r && r <= 0x5FFFD) ||
		(0x60000 <= r && r <= 0x6FFFD) ||
		(0x70000 <= r && r <= 0x7FFFD) ||
		(0x80000 <= r && r <= 0x8FFFD) ||
		(0x90000 <= r && r <= 0x9FFFD) ||
		(0xA0000 <= r && r <= 0xAFFFD) ||
		(0xB0000 <= r && r <= 0xBFFFD) ||
		(0xC0000 <= r && r <= 0xCFFFD) ||
		(0xD0000 <= r && r <= 0xDFFFD) ||
		(0xE1000 <= r && r <= 0xEFFFD)
}

// isIprivate matches the Unicode private-use ranges.
func isIprivate(r rune) bool {
	return (0xE000 <= r && r <= 0xF8FF) ||
		(0xF0000 <= r && r <= 0xFFFFD) ||
		(0x100000 <= r && r <= 0x10FFFD)
}
