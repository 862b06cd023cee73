// Hindi conversion functions. The converter is fully self-contained:
// irregular fused forms for 21–99, a hundreds table, and recursion over
// the Indian scale (हज़ार, लाख, करोड़) for everything larger.
package numwords

import (
	"math"
	"strconv"
)

// maxHindiAbs bounds the recursive converter (just under one arab).
// Larger magnitudes are read digit by digit.
const maxHindiAbs int64 = 999_999_999

// hindiCardinal returns the Hindi cardinal words for n.
func hindiCardinal(n int64) string {
	if n == 0 {
		return wordZeroHi
	}
	// MinInt64 has no positive counterpart to negate into.
	if n == math.MinInt64 {
		return wordNegHi + " " + hindiDigitRun(strconv.FormatInt(n, 10))
	}
	if n < 0 {
		return wordNegHi + " " + hindiCardinal(-n)
	}
	switch {
	case n < 10:
		return hiOnes[n]
	case n < 20:
		return hiTeens[n-10]
	case n < 100:
		if w, ok := hiIrregular[n]; ok {
			return w
		}
		t, o := n/10, n%10
		if o == 0 {
			return hiTens[t]
		}
		return hiTens[t] + " " + hiOnes[o]
	case n < 1000:
		h, rest := n/100, n%100
		out := hiHundreds[h]
		if rest > 0 {
			out += " " + hindiCardinal(rest)
		}
		return out
	case n < lakh:
		th, rest := n/1000, n%1000
		out := hindiCardinal(th) + " " + wordThousandHi
		if rest > 0 {
			out += " " + hindiCardinal(rest)
		}
		return out
	case n < crore:
		l, rest := n/lakh, n%lakh
		out := hindiCardinal(l) + " " + wordLakhHi
		if rest > 0 {
			out += " " + hindiCardinal(rest)
		}
		return out
	case n <= maxHindiAbs:
		c, rest := n/crore, n%crore
		out := hindiCardinal(c) + " " + wordCroreHi
		if rest > 0 {
			out += " " + hindiCardinal(rest)
		}
		return out
	default:
		return hindiDigitRun(strconv.FormatInt(n, 10))
	}
}

// hindiDigit returns the Hindi word for a single digit 0–9.
func hindiDigit(d int) string {
	if d == 0 {
		return wordZeroHi
	}
	return hiOnes[d]
}

// hindiDigitRun reads the digits of s individually, space-joined.
// Non-digit bytes are skipped.
func hindiDigitRun(s string) string {
	out := make([]byte, 0, len(s)*8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			continue
		}
		if len(out) > 0 {
			out = append(out, ' ')
		}
		out = append(out, hindiDigit(int(c-'0'))...)
	}
	return string(out)
}

// hindiYear phrases a year in [1000, 9999] as two two-digit groups:
// 2022 → "बीस बाईस", 1900 → "उन्नीस सौ", 2001 → "बीस शून्य एक".
func hindiYear(y int64) string {
	a, b := y/100, y%100
	first := hindiCardinal(a)
	switch {
	case b == 0:
		return first + " " + wordHundredHi
	case b < 10:
		return first + " " + wordZeroHi + " " + hindiCardinal(b)
	default:
		return first + " " + hindiCardinal(b)
	}
}
