// English conversion functions. Numbers up to 99 use the word tables
// directly; larger cardinals delegate to the num2words library, with the
// Indian-grouping variant implemented locally for rupee amounts.
package numwords

import (
	"math"
	"strconv"
	"strings"

	"github.com/divan/num2words"
)

// maxEnglishAbs is the largest magnitude passed to the num2words library
// (four three-digit groups: up to 999 billion). Larger values degrade to
// the literal digit string.
const maxEnglishAbs int64 = 999_999_999_999

// englishSmall returns the English words for n in [0, 99].
// Compound forms are hyphenated: 42 → "forty-two".
func englishSmall(n int64) string {
	switch {
	case n < 10:
		return enOnes[n]
	case n < 20:
		return enTeens[n-10]
	default:
		t, o := n/10, n%10
		if o == 0 {
			return enTens[t]
		}
		return enTens[t] + "-" + enOnes[o]
	}
}

// englishCardinal returns the English cardinal words for n.
// 0–99 come from the local tables; larger values go through num2words
// ("one hundred and twenty-five"). Magnitudes beyond the library's range
// fall back to the digit string.
func englishCardinal(n int64) string {
	// MinInt64 has no positive counterpart to negate into.
	if n == math.MinInt64 {
		return strconv.FormatInt(n, 10)
	}
	neg := n < 0
	abs := n
	if neg {
		abs = -n
	}
	if abs < 100 {
		if neg {
			return wordMinus + " " + englishSmall(abs)
		}
		return englishSmall(abs)
	}
	if abs > maxEnglishAbs {
		return strconv.FormatInt(n, 10)
	}
	if neg {
		return wordMinus + " " + num2words.ConvertAnd(int(abs))
	}
	return num2words.ConvertAnd(int(abs))
}

// englishIndian returns English words for n using the Indian numbering
// scale (thousand, lakh, crore). Used for rupee-denominated amounts.
func englishIndian(n int64) string {
	if n == math.MinInt64 {
		return strconv.FormatInt(n, 10)
	}
	if n < 0 {
		return wordMinus + " " + englishIndian(-n)
	}
	if n == 0 {
		return wordZeroEn
	}
	switch {
	case n < 1000:
		if n < 100 {
			return englishSmall(n)
		}
		return englishCardinal(n)
	case n < lakh:
		th, rest := n/1000, n%1000
		out := englishIndian(th) + " " + wordThousandEn
		if rest > 0 {
			out += " " + englishIndian(rest)
		}
		return out
	case n < crore:
		l, rest := n/lakh, n%lakh
		out := englishIndian(l) + " " + wordLakhEn
		if rest > 0 {
			out += " " + englishIndian(rest)
		}
		return out
	default:
		c, rest := n/crore, n%crore
		out := englishIndian(c) + " " + wordCroreEn
		if rest > 0 {
			out += " " + englishIndian(rest)
		}
		return out
	}
}

// englishYear phrases a year in [1000, 9999] as two two-digit groups:
// 2025 → "twenty twenty-five", 1900 → "nineteen hundred",
// 2004 → "twenty oh four". 2000 is the whole-word "two thousand".
func englishYear(y int64) string {
	if y == 2000 {
		return "two thousand"
	}
	a, b := y/100, y%100
	first := englishSmall(a)
	switch {
	case b == 0:
		return first + " " + wordHundredEn
	case b < 10:
		return first + " " + wordOh + " " + englishSmall(b)
	default:
		return first + " " + englishSmall(b)
	}
}

// englishOrdinal converts the cardinal words of n into their ordinal form
// by transforming the final word: irregulars from the table, "-y" endings
// to "-ieth", everything else takes "th".
func englishOrdinal(n int64) string {
	cardinal := englishCardinal(n)

	// The final word may follow a space or a hyphen ("twenty-one").
	cut := strings.LastIndexAny(cardinal, " -")
	head, last := "", cardinal
	if cut >= 0 {
		head, last = cardinal[:cut+1], cardinal[cut+1:]
	}

	if irr, ok := enOrdinalIrregular[last]; ok {
		return head + irr
	}
	if strings.HasSuffix(last, "y") {
		return head + last[:len(last)-1] + "ieth"
	}
	return head + last + "th"
}
