package speech

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/az-ai-labs/tts-preproc/locale"
	"github.com/az-ai-labs/tts-preproc/numwords"
	"github.com/az-ai-labs/tts-preproc/pattern"
)

// verbalize renders a Record as speakable words in the given locale.
// Records whose structural variant is absent fall back to their raw text,
// so a parse miss never loses content.
func verbalize(rec Record, loc locale.Locale) (string, error) {
	switch rec.Kind {
	case pattern.Email:
		if rec.Email == nil {
			return rec.Raw, nil
		}
		return emailWords(*rec.Email, loc), nil
	case pattern.Date:
		if rec.Date == nil {
			return rec.Raw, nil
		}
		return dateWords(*rec.Date, loc), nil
	case pattern.Time:
		if rec.Clock == nil {
			return rec.Raw, nil
		}
		return timeWords(*rec.Clock, loc), nil
	case pattern.Phone:
		if rec.Digits == nil {
			return rec.Raw, nil
		}
		return numwords.DigitRun(strings.TrimPrefix(rec.Digits.Digits, "+"), loc), nil
	case pattern.ID, pattern.Pincode, pattern.AlphanumericID:
		if rec.Digits == nil {
			return rec.Raw, nil
		}
		core := numwords.DigitRun(rec.Digits.Digits, loc)
		if rec.Digits.Prefix != "" {
			return rec.Digits.Prefix + " " + core, nil
		}
		return core, nil
	case pattern.Currency:
		if rec.Money == nil {
			return rec.Raw, nil
		}
		return currencyWordsFor(*rec.Money, loc), nil
	case pattern.Percentage:
		if rec.Percent == nil {
			return rec.Raw, nil
		}
		percent := "percent"
		if loc == locale.Hindi {
			percent = "प्रतिशत"
		}
		return decimalWords(*rec.Percent, loc) + " " + percent, nil
	case pattern.Ratio:
		if rec.Ratio == nil || len(rec.Ratio.Values) == 0 {
			return rec.Raw, nil
		}
		sep := " is to "
		if loc == locale.Hindi {
			sep = " है "
		}
		parts := make([]string, len(rec.Ratio.Values))
		for i, v := range rec.Ratio.Values {
			parts[i] = numwords.Cardinal(v, loc)
		}
		return strings.Join(parts, sep), nil
	case pattern.Range:
		if rec.Span == nil {
			return rec.Raw, nil
		}
		sep := " to "
		if loc == locale.Hindi {
			sep = " से "
		}
		return decimalWords(rec.Span.Start, loc) + sep + decimalWords(rec.Span.End, loc), nil
	case pattern.Measurement, pattern.Duration:
		if rec.Measure == nil {
			return rec.Raw, nil
		}
		unit := rec.Measure.Unit
		if loc == locale.Hindi {
			if name, ok := hiUnitNames[unit]; ok {
				unit = name
			}
		} else if name, ok := enUnitNames[unit]; ok {
			unit = name
		}
		return decimalWords(rec.Measure.Value, loc) + " " + unit, nil
	case pattern.Vehicle:
		return vehicleWords(rec.Raw, loc), nil
	case pattern.Alphanumeric:
		if rec.Alnum == nil {
			return rec.Raw, nil
		}
		prefix := rec.Alnum.Prefix
		if loc == locale.Hindi {
			if p, ok := hiLocationPrefix[prefix]; ok {
				prefix = p
			}
		}
		out := prefix + " " + numwords.Cardinal(rec.Alnum.Number, loc)
		if rec.Alnum.Suffix != "" {
			out += " " + rec.Alnum.Suffix
		}
		return out, nil
	case pattern.Decimal:
		if rec.Decimal == nil {
			return rec.Raw, nil
		}
		return decimalWords(*rec.Decimal, loc), nil
	case pattern.Ordinal:
		if rec.Ordinal == nil {
			return rec.Raw, nil
		}
		return numwords.Ordinal(rec.Ordinal.Value, loc), nil
	case pattern.Number:
		if rec.Number == nil {
			return rec.Raw, nil
		}
		return numwords.Cardinal(*rec.Number, loc), nil
	}
	return "", fmt.Errorf("speech: unknown kind %v", rec.Kind)
}

// decimalWords speaks a DecimalValue, omitting the point when there is
// no fractional part.
func decimalWords(v DecimalValue, loc locale.Locale) string {
	return numwords.Decimal(v.Int, v.Frac, loc)
}

func dateWords(d DateParts, loc locale.Locale) string {
	month := monthNamesEn[d.Month-1]
	if loc == locale.Hindi {
		month = monthNamesHi[d.Month-1]
	}
	var day string
	if d.Format == DateOrdinalDay || d.Format == DateMonthDayOrdinal {
		day = numwords.Ordinal(int64(d.Day), loc)
	} else {
		day = numwords.Cardinal(int64(d.Day), loc)
	}
	year := numwords.Year(int64(d.Year), loc)
	if d.Format == DateMonthDay || d.Format == DateMonthDayOrdinal {
		return month + " " + day + " " + year
	}
	return day + " " + month + " " + year
}

func timeWords(t TimeParts, loc locale.Locale) string {
	hour, meridiem := t.Hour, t.Meridiem
	if meridiem == "" && !t.Colloquial {
		// Bare clock times get a default meridiem from the hour value.
		switch {
		case hour == 0:
			hour, meridiem = 12, "am"
		case hour < 12:
			meridiem = "am"
		case hour == 12:
			meridiem = "pm"
		default:
			hour, meridiem = hour-12, "pm"
		}
	}
	hourWords := numwords.Cardinal(int64(hour), loc)
	if loc == locale.Hindi {
		var out string
		if t.Minute == 0 {
			out = hourWords + " बजे"
		} else {
			out = hourWords + " बजकर " + numwords.Cardinal(int64(t.Minute), loc) + " मिनट"
		}
		if meridiem == "am" {
			out = "सुबह " + out
		} else if meridiem == "pm" {
			out = "शाम " + out
		}
		return out
	}
	var out string
	if t.Minute == 0 {
		out = hourWords + " o'clock"
	} else {
		out = hourWords + " " + numwords.Cardinal(int64(t.Minute), loc)
	}
	if meridiem != "" {
		out += " " + strings.ToUpper(meridiem)
	}
	return out
}

func currencyWordsFor(m CurrencyAmount, loc locale.Locale) string {
	var major string
	if m.Rupee && loc == locale.English {
		// Rupee amounts use the Indian scale, never thousand/million.
		major = numwords.Indian(m.Major)
	} else {
		major = numwords.Cardinal(m.Major, loc)
	}
	unit, subunit := m.Unit, m.Subunit
	connector := "and"
	if loc == locale.Hindi {
		connector = "और"
		if u, ok := hiCurrencyUnit[unit]; ok {
			unit = u
		}
		if s, ok := hiCurrencySubunit[subunit]; ok {
			subunit = s
		}
	}
	out := major + " " + unit
	if m.Minor > 0 {
		out += " " + connector + " " + numwords.Cardinal(int64(m.Minor), loc) + " " + subunit
	}
	return out
}

// vehicleWords spells a registration plate character by character:
// digits become words, letters are uppercased.
func vehicleWords(text string, loc locale.Locale) string {
	parts := make([]string, 0, len(text))
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			parts = append(parts, numwords.Digit(int(r-'0'), loc))
		case unicode.IsLetter(r):
			parts = append(parts, string(unicode.ToUpper(r)))
		default:
			parts = append(parts, string(r))
		}
	}
	return strings.Join(parts, " ")
}

// emailWords speaks an address: digit runs become digit words separated
// from surrounding letters, dots become "dot" and the at sign "at".
func emailWords(e EmailParts, loc locale.Locale) string {
	out := spellDigits(e.Local, loc) + " at " + spellDigits(e.Domain, loc)
	out = strings.ReplaceAll(out, ".", " dot ")
	return strings.Join(strings.Fields(out), " ")
}

// spellDigits replaces every digit run in s with space-separated digit
// words, padding a space on either side so words never fuse with the
// surrounding characters.
func spellDigits(s string, loc locale.Locale) string {
	var b strings.Builder
	var run strings.Builder
	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteByte(' ')
		b.WriteString(numwords.DigitRun(run.String(), loc))
		b.WriteByte(' ')
		run.Reset()
	}
	for _, r := range s {
		if r >= '0' && r <= '9' {
			run.WriteRune(r)
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()
	return b.String()
}
