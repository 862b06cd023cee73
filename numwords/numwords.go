// Package numwords converts numeric magnitudes to spoken words in
// English and Hindi.
//
// The package provides the conversions the speech verbalizer composes
// from:
//
//   - Cardinal converts an integer to cardinal words.
//   - Indian converts using the Indian grouping (thousand/lakh/crore),
//     the English reading of rupee amounts.
//   - Year phrases a 4-digit year as two 2-digit groups
//     ("twenty twenty-five", not "two thousand and twenty-five").
//   - Ordinal produces ordinal forms ("twenty-first"; Hindi cardinal + वां).
//   - Decimal reads an integer part followed by fractional digits spoken
//     individually after the locale's point word.
//   - Digit and DigitRun read digits individually, for identifiers.
//
// English cardinals at or above one hundred delegate to the num2words
// library; magnitudes beyond its range degrade to the literal digit
// string. Hindi conversion is fully self-contained.
//
// All functions are safe for concurrent use by multiple goroutines.
package numwords

import (
	"strconv"
	"strings"

	"github.com/az-ai-labs/tts-preproc/locale"
)

// Cardinal returns the cardinal words for n in the given locale.
// Zero is "zero"/"शून्य"; negatives are prefixed with "minus"/"ऋण".
func Cardinal(n int64, loc locale.Locale) string {
	if loc == locale.Hindi {
		return hindiCardinal(n)
	}
	return englishCardinal(n)
}

// Indian returns the English words for n using the Indian numbering
// scale: 2_150_000 → "twenty-one lakh fifty thousand". Hindi output never
// needs this variant because its cardinals already use the Indian scale.
func Indian(n int64) string {
	return englishIndian(n)
}

// Year returns the natural spoken form of a calendar year.
// Years outside [1000, 9999] fall back to Cardinal.
func Year(y int64, loc locale.Locale) string {
	if y < 1000 || y > 9999 {
		return Cardinal(y, loc)
	}
	if loc == locale.Hindi {
		return hindiYear(y)
	}
	return englishYear(y)
}

// Ordinal returns the ordinal words for n: native English ordinal forms,
// or the Hindi cardinal followed by the ordinal suffix word.
func Ordinal(n int64, loc locale.Locale) string {
	if loc == locale.Hindi {
		return hindiCardinal(n) + " " + wordOrdinalHi
	}
	return englishOrdinal(n)
}

// Decimal reads intPart as a cardinal followed by the locale's point word
// and the digits of frac spoken individually: (3, "14") → "three point
// one four". An empty frac returns the bare cardinal.
func Decimal(intPart int64, frac string, loc locale.Locale) string {
	words := Cardinal(intPart, loc)
	if frac == "" {
		return words
	}
	point := wordPointEn
	if loc == locale.Hindi {
		point = wordPointHi
	}
	return words + " " + point + " " + DigitRun(frac, loc)
}

// Digit returns the word for a single digit d in [0, 9].
// Out-of-range values return the decimal string of d.
func Digit(d int, loc locale.Locale) string {
	if d < 0 || d > 9 {
		return strconv.Itoa(d)
	}
	if loc == locale.Hindi {
		return hindiDigit(d)
	}
	return enOnes[d]
}

// DigitRun reads every ASCII digit of s individually, space-joined,
// skipping non-digit bytes: "02904" → "zero two nine zero four".
func DigitRun(s string, loc locale.Locale) string {
	if loc == locale.Hindi {
		return hindiDigitRun(s)
	}
	var b strings.Builder
	b.Grow(len(s) * 6)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(enOnes[c-'0'])
	}
	return b.String()
}
