package uritemplate

import (
	"strings"
	"unicode/utf8"
)

const hexUpper = "0123456789ABCDEF"

// pctEncodeRune appends r to b as one percent-triplet per UTF-8 byte,
// with uppercase hex digits.
func pctEncodeRune(r rune, b *strings.Builder) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	for _, c := range buf[:n] {
		b.WriteByte('%')
		b.WriteByte(hexUpper[c>>4])
		b.WriteByte(hexUpper[c&0x0F])
	}
}

// encodeRune appends r verbatim when the allowed set admits it, and
// percent-encoded otherwise.
func encodeRune(r rune, allowed func(rune) bool, b *strings.Builder) {
	if allowed(r) {
		b.WriteRune(r)
	} else {
		pctEncodeRune(r, b)
	}
}

// encodeString appends s to b, percent-encoding every code point the
// allowed set rejects. When allowPct is set, a syntactically valid
// percent-triplet in s is copied through unchanged instead of having its
// '%' re-encoded.
func encodeString(s string, allowed func(rune) bool, allowPct bool, b *strings.Builder) {
	for i := 0; i < len(s); {
		if allowPct && s[i] == '%' && i+2 < len(s) &&
			isHexDigit(rune(s[i+1])) && isHexDigit(rune(s[i+2])) {
			b.WriteString(s[i : i+3])
			i += 3
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		encodeRune(r, allowed, b)
		i += size
	}
}

func hexValue(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}

// decodePctTriplet decodes the run of percent-triplets starting at pos
// into a single code point, consuming as many consecutive triplets as the
// UTF-8 sequence needs. It returns the decoded code point and the
// position after the consumed triplets. A returned position equal to pos
// means no triplet starts there; callers treat that as end-of-token, not
// as an error.
func decodePctTriplet(s string, pos int) (rune, int) {
	var buf [utf8.UTFMax]byte
	n := 0
	for i := pos; i+2 < len(s) && n < len(buf); i += 3 {
		if s[i] != '%' || !isHexDigit(rune(s[i+1])) || !isHexDigit(rune(s[i+2])) {
			break
		}
		buf[n] = hexValue(s[i+1])<<4 | hexValue(s[i+2])
		n++
		if utf8.FullRune(buf[:n]) {
			r, _ := utf8.DecodeRune(buf[:n])
			return r, i + 3
		}
	}
	return 0, pos
}
