// Package devanagari maps Devanagari numerals to their ASCII equivalents.
// Shared by the pattern normalizers so that numeric parsing only ever
// sees ASCII digits.
package devanagari

import (
	"strings"
	"unicode"
)

// digitToASCII maps the Devanagari digit runes ०–९ to ASCII 0–9.
var digitToASCII = map[rune]rune{
	'०': '0', '१': '1', '२': '2', '३': '3', '४': '4',
	'५': '5', '६': '6', '७': '7', '८': '8', '९': '9',
}

// ToASCII replaces every Devanagari digit in s with its ASCII equivalent.
// All other runes pass through unchanged. Returns s itself when no
// replacement is needed.
func ToASCII(s string) string {
	if !strings.ContainsFunc(s, isDigit) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if a, ok := digitToASCII[r]; ok {
			b.WriteRune(a)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Contains reports whether s has any rune from the Devanagari block.
func Contains(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return unicode.Is(unicode.Devanagari, r)
	})
}

// isDigit reports whether r is a Devanagari digit (०–९).
func isDigit(r rune) bool {
	return r >= '०' && r <= '९'
}
