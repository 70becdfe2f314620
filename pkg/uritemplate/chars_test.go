package uritemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(rune) bool
		in   []rune
		out  []rune
	}{
		{
			name: "alpha",
			fn:   isAlpha,
			in:   []rune{'A', 'Z', 'a', 'z', 'm'},
			out:  []rune{'0', '_', ' ', '@', '['},
		},
		{
			name: "digit",
			fn:   isDigit,
			in:   []rune{'0', '5', '9'},
			out:  []rune{'a', '/', ':'},
		},
		{
			name: "hexdig",
			fn:   isHexDigit,
			in:   []rune{'0', '9', 'A', 'F', 'a', 'f'},
			out:  []rune{'G', 'g', ' ', '%'},
		},
		{
			name: "unreserved",
			fn:   isUnreserved,
			in:   []rune{'A', 'z', '0', '-', '.', '_', '~'},
			out:  []rune{'/', '?', '%', ' ', '€'},
		},
		{
			name: "gen-delims",
			fn:   isGenDelim,
			in:   []rune{':', '/', '?', '#', '[', ']', '@'},
			out:  []rune{'!', '$', 'a', '-'},
		},
		{
			name: "sub-delims",
			fn:   isSubDelim,
			in:   []rune{'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '='},
			out:  []rune{':', '/', 'a', '~'},
		},
		{
			name: "reserved",
			fn:   isReserved,
			in:   []rune{':', '#', '@', '!', '=', ';'},
			out:  []rune{'a', '0', '-', '%', '{', '}'},
		},
		{
			name: "literal",
			fn:   isLiteral,
			in:   []rune{'!', '#', '$', '&', '(', ';', '=', '?', 'A', '[', ']', '_', 'a', 'z', '~'},
			out:  []rune{' ', '"', '%', '\'', '<', '>', '\\', '^', '`', '{', '|', '}', 0x00, 0x7F},
		},
		{
			name: "ucschar",
			fn:   isUcschar,
			in:   []rune{0xA0, 'é', '€', 0xD7FF, 0xF900, 0x10000, 0x2FFFD, 0xE1000},
			out:  []rune{0x9F, 'a', 0xE000, 0xFFFE, 0x1FFFE},
		},
		{
			name: "iprivate",
			fn:   isIprivate,
			in:   []rune{0xE000, 0xF8FF, 0xF0000, 0x100000, 0x10FFFD},
			out:  []rune{0xDFFF, 0xF900, '€', 'a'},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, r := range tt.in {
				assert.Truef(t, tt.fn(r), "expected %U to match", r)
			}
			for _, r := range tt.out {
				assert.Falsef(t, tt.fn(r), "expected %U not to match", r)
			}
		})
	}
}
