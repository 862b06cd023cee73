// Structural parsers that turn a matched span into a typed Record.
// Every parser degrades to a raw-only record when the span does not fit
// its kind's expected shape; normalization itself never fails.
package speech

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/az-ai-labs/tts-preproc/internal/devanagari"
	"github.com/az-ai-labs/tts-preproc/pattern"
)

const monthAlt = `january|february|march|april|may|june|july|august|september|october|november|december`

// monthNumber maps lowercase English month names and their 3-letter
// abbreviations to month numbers.
var monthNumber = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4,
	"may": 5, "june": 6, "july": 7, "august": 8,
	"september": 9, "october": 10, "november": 11, "december": 12,
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

var (
	reDateYear4    = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4})`)
	reDateYear2    = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2})`)
	reDateDayText  = regexp.MustCompile(`(?i)^(\d{1,2})\s+(` + monthAlt + `)\s+(\d{4})`)
	reDateOrdinal  = regexp.MustCompile(`(?i)^(\d{1,2})(?:st|nd|rd|th)\s+(` + monthAlt + `)\s+(\d{4})`)
	reDateMonthDay = regexp.MustCompile(`(?i)^(` + monthAlt + `)\s+(\d{1,2})(st|nd|rd|th)?\s+(\d{4})`)
	reDateCompact  = regexp.MustCompile(`(?i)^(\d{1,2})\s*(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z.]*\s*,\s*(\d{4})$`)

	reClock   = regexp.MustCompile(`(?i)^(\d{1,2})[:.](\d{2})\s*(am|pm)?`)
	reBajKar  = regexp.MustCompile(`(?i)^(\d{1,2})\s*baj\s+kar\s+(\d{1,2})\s*(?:min|mins|minute|minutes)`)
	reBajOnly = regexp.MustCompile(`(?i)^(\d{1,2})\s*baj`)

	rePhoneJunk   = regexp.MustCompile(`[^\d+]`)
	reLabelDigits = regexp.MustCompile(`^(.*?)([\d\s]+)$`)

	reCurrencyWord = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*(dollars?|rupees?|euros?|pounds?)`)
	reRupeeWord    = regexp.MustCompile(`(?i)\b(?:rs\.?|rupees?)\b`)
	reAmount       = regexp.MustCompile(`[\d,]+(?:\.\d+)?`)

	reRangeParts = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)`)
	reNumeric    = regexp.MustCompile(`\d+(?:\.\d+)?`)
	reMeasure    = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([a-zA-Z°]+)`)
	reAlnum      = regexp.MustCompile(`^(\w+)\s+(\d+)([A-Za-z]?)`)
	reOrdinalNum = regexp.MustCompile(`(?i)^(\d+)(st|nd|rd|th)`)
)

// currencySymbols is scanned in order against the lowercased span when no
// "amount unit-word" form matched. First hit selects the unit names.
var currencySymbols = []struct {
	symbol  string
	unit    string
	subunit string
}{
	{"₹", "rupees", "paise"},
	{"rs.", "rupees", "paise"},
	{"rs", "rupees", "paise"},
	{"$", "dollars", "cents"},
	{"usd", "dollars", "cents"},
	{"eur", "euros", "cents"},
	{"€", "euros", "cents"},
	{"gbp", "pounds", "pence"},
	{"£", "pounds", "pence"},
}

// currencyWords maps the singular unit word to its unit/subunit names.
var currencyWords = map[string][2]string{
	"dollar": {"dollars", "cents"},
	"rupee":  {"rupees", "paise"},
	"euro":   {"euros", "cents"},
	"pound":  {"pounds", "pence"},
}

// normalize parses the trimmed text of a match into a typed Record.
func normalize(text string, kind pattern.Kind) Record {
	rec := Record{Kind: kind, Raw: text}
	switch kind {
	case pattern.Email:
		normalizeEmail(&rec, text)
	case pattern.Date:
		normalizeDate(&rec, devanagari.ToASCII(text))
	case pattern.Time:
		normalizeTime(&rec, devanagari.ToASCII(text))
	case pattern.Phone:
		digits := rePhoneJunk.ReplaceAllString(text, "")
		if digits != "" {
			rec.Digits = &DigitSeq{Digits: digits}
		}
	case pattern.ID, pattern.Pincode:
		normalizeLabeled(&rec, devanagari.ToASCII(text))
	case pattern.Currency:
		normalizeCurrency(&rec, devanagari.ToASCII(text))
	case pattern.Percentage:
		if v, ok := parseDecimal(reNumeric.FindString(text)); ok {
			rec.Percent = &v
		}
	case pattern.Ratio:
		normalizeRatio(&rec, devanagari.ToASCII(text))
	case pattern.Range:
		normalizeRange(&rec, devanagari.ToASCII(text))
	case pattern.Measurement, pattern.Duration:
		if m := reMeasure.FindStringSubmatch(text); m != nil {
			if v, ok := parseDecimal(m[1]); ok {
				rec.Measure = &MeasureParts{Value: v, Unit: m[2]}
			}
		}
	case pattern.Alphanumeric:
		if m := reAlnum.FindStringSubmatch(text); m != nil {
			if n, err := strconv.ParseInt(m[2], 10, 64); err == nil {
				rec.Alnum = &AlnumParts{Prefix: m[1], Number: n, Suffix: m[3]}
			}
		}
	case pattern.Vehicle:
		// Verbalized straight from the raw text, character by character.
	case pattern.AlphanumericID:
		normalizeAlnumID(&rec, text)
	case pattern.Decimal:
		s := strings.ReplaceAll(devanagari.ToASCII(text), ",", "")
		if v, ok := parseDecimal(s); ok {
			rec.Decimal = &v
		}
	case pattern.Ordinal:
		if m := reOrdinalNum.FindStringSubmatch(text); m != nil {
			if n, err := strconv.ParseInt(m[1], 10, 64); err == nil {
				rec.Ordinal = &OrdinalParts{Value: n, Suffix: strings.ToLower(m[2])}
			}
		}
	case pattern.Number:
		s := strings.ReplaceAll(devanagari.ToASCII(text), ",", "")
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			rec.Number = &n
		}
	}
	return rec
}

func normalizeEmail(rec *Record, text string) {
	local, domain, ok := strings.Cut(text, "@")
	if !ok {
		return
	}
	rec.Email = &EmailParts{Local: local, Domain: domain}
}

func normalizeDate(rec *Record, text string) {
	if m := reDateYear4.FindStringSubmatch(text); m != nil {
		rec.Date = dateParts(m[1], m[2], m[3], DateNumeric)
		return
	}
	if m := reDateYear2.FindStringSubmatch(text); m != nil {
		yy, _ := strconv.Atoi(m[3])
		// Two-digit year pivot: 00–30 → 2000s, 31–99 → 1900s.
		year := 1900 + yy
		if yy <= 30 {
			year = 2000 + yy
		}
		d := dateParts(m[1], m[2], strconv.Itoa(year), DateNumeric)
		rec.Date = d
		return
	}
	if m := reDateDayText.FindStringSubmatch(text); m != nil {
		rec.Date = dateParts(m[1], strconv.Itoa(monthNumber[strings.ToLower(m[2])]), m[3], DateText)
		return
	}
	if m := reDateOrdinal.FindStringSubmatch(text); m != nil {
		rec.Date = dateParts(m[1], strconv.Itoa(monthNumber[strings.ToLower(m[2])]), m[3], DateOrdinalDay)
		return
	}
	if m := reDateMonthDay.FindStringSubmatch(text); m != nil {
		format := DateMonthDay
		if m[3] != "" {
			format = DateMonthDayOrdinal
		}
		rec.Date = dateParts(m[2], strconv.Itoa(monthNumber[strings.ToLower(m[1])]), m[4], format)
		return
	}
	if m := reDateCompact.FindStringSubmatch(text); m != nil {
		rec.Date = dateParts(m[1], strconv.Itoa(monthNumber[strings.ToLower(m[2])]), m[3], DateText)
	}
}

// dateParts builds DateParts from decimal strings; returns nil when the
// month is out of range (a failed abbreviation lookup yields month 0).
func dateParts(day, month, year string, format DateFormat) *DateParts {
	d, _ := strconv.Atoi(day)
	m, _ := strconv.Atoi(month)
	y, _ := strconv.Atoi(year)
	if m < 1 || m > 12 {
		return nil
	}
	return &DateParts{Day: d, Month: m, Year: y, Format: format}
}

func normalizeTime(rec *Record, text string) {
	if m := reClock.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		rec.Clock = &TimeParts{Hour: h, Minute: min, Meridiem: strings.ToLower(m[3])}
		return
	}
	if m := reBajKar.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		rec.Clock = &TimeParts{Hour: h, Minute: min, Colloquial: true}
		return
	}
	if m := reBajOnly.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		rec.Clock = &TimeParts{Hour: h, Colloquial: true}
	}
}

// normalizeLabeled splits a labeled identifier ("Aadhaar number is 1234
// 5678 9012", "PIN code 110001") into its textual prefix and digit run.
func normalizeLabeled(rec *Record, text string) {
	m := reLabelDigits.FindStringSubmatch(text)
	if m == nil {
		return
	}
	var digits strings.Builder
	for i := 0; i < len(m[2]); i++ {
		if c := m[2][i]; c >= '0' && c <= '9' {
			digits.WriteByte(c)
		}
	}
	if digits.Len() == 0 {
		return
	}
	rec.Digits = &DigitSeq{Digits: digits.String(), Prefix: strings.TrimSpace(m[1])}
}

func normalizeAlnumID(rec *Record, text string) {
	var letters, digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		} else {
			letters.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return
	}
	rec.Digits = &DigitSeq{Digits: digits.String(), Prefix: strings.TrimSpace(letters.String())}
}

func normalizeCurrency(rec *Record, text string) {
	// "150 rupees" form first so a bare number does not default to dollars.
	if m := reCurrencyWord.FindStringSubmatch(text); m != nil {
		names := currencyWords[strings.TrimSuffix(strings.ToLower(m[2]), "s")]
		major, minor, ok := parseAmount(m[1])
		if !ok {
			return
		}
		rec.Money = &CurrencyAmount{
			Major:   major,
			Minor:   minor,
			Unit:    names[0],
			Subunit: names[1],
			Rupee:   names[0] == "rupees",
		}
		return
	}

	var unit, subunit string
	lower := strings.ToLower(text)
	for _, c := range currencySymbols {
		if strings.Contains(lower, c.symbol) {
			unit, subunit = c.unit, c.subunit
			break
		}
	}
	if unit == "" && reRupeeWord.MatchString(lower) {
		unit, subunit = "rupees", "paise"
	}
	if unit == "" {
		unit, subunit = "dollars", "cents"
	}

	amount := reAmount.FindString(text)
	if amount == "" {
		return
	}
	major, minor, ok := parseAmount(strings.ReplaceAll(amount, ",", ""))
	if !ok {
		return
	}
	rec.Money = &CurrencyAmount{
		Major:   major,
		Minor:   minor,
		Unit:    unit,
		Subunit: subunit,
		Rupee:   unit == "rupees",
	}
}

// parseAmount splits a decimal amount string into integer major units and
// two-digit minor units, rounding the fraction; 0.996 carries over.
func parseAmount(s string) (major int64, minor int, ok bool) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil || math.Abs(amount) >= math.MaxInt64 {
		return 0, 0, false
	}
	major = int64(amount)
	minor = int(math.Round((amount - float64(major)) * 100))
	if minor >= 100 {
		major++
		minor = 0
	}
	return major, minor, true
}

func normalizeRatio(rec *Record, text string) {
	parts := strings.Split(text, ":")
	values := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return
		}
		values = append(values, n)
	}
	rec.Ratio = &RatioParts{Values: values}
}

func normalizeRange(rec *Record, text string) {
	m := reRangeParts.FindStringSubmatch(text)
	if m == nil {
		return
	}
	start, ok1 := parseDecimal(m[1])
	end, ok2 := parseDecimal(m[2])
	if !ok1 || !ok2 {
		return
	}
	rec.Span = &RangeParts{Start: start, End: end}
}

// parseDecimal splits "12.50" into integer part 12 and the fraction
// digits "50" kept verbatim, so trailing zeros stay audible.
func parseDecimal(s string) (DecimalValue, bool) {
	if s == "" {
		return DecimalValue{}, false
	}
	intPart, frac, _ := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return DecimalValue{}, false
	}
	for i := 0; i < len(frac); i++ {
		if frac[i] < '0' || frac[i] > '9' {
			return DecimalValue{}, false
		}
	}
	return DecimalValue{Int: n, Frac: frac}, true
}
