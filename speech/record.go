package speech

import "github.com/az-ai-labs/tts-preproc/pattern"

// DateFormat records which textual shape a date match had. It decides
// word order (day-first vs month-first) and ordinal day forms during
// verbalization.
type DateFormat int

const (
	DateNumeric         DateFormat = iota // 12-11-2026
	DateText                              // 12 November 2026, 13Nov,2025
	DateOrdinalDay                        // 3rd November 2026
	DateMonthDay                          // November 12 2026
	DateMonthDayOrdinal                   // May 3rd 2022
)

// DateParts is a parsed calendar date.
type DateParts struct {
	Day    int
	Month  int // 1–12
	Year   int
	Format DateFormat
}

// TimeParts is a parsed clock time. Meridiem is "am", "pm", or empty.
// Colloquial marks Hinglish "baj" forms, which never receive a default
// meridiem.
type TimeParts struct {
	Hour       int
	Minute     int
	Meridiem   string
	Colloquial bool
}

// DigitSeq is a digit sequence read digit by digit, with any textual
// label kept verbatim as a prefix ("Aadhaar number is", "PIN code").
type DigitSeq struct {
	Digits string // may keep a leading '+' for phone numbers
	Prefix string
}

// CurrencyAmount is a parsed monetary amount. Rupee selects the Indian
// numbering scale for the English reading of Major.
type CurrencyAmount struct {
	Major   int64
	Minor   int // 0–99, rounded
	Unit    string
	Subunit string
	Rupee   bool
}

// DecimalValue is a number split into its integer part and the
// fractional digits verbatim from the text, so "3.50" keeps both digits.
type DecimalValue struct {
	Int  int64
	Frac string
}

// RatioParts is an ordered ratio such as 16:9 or 2:3:5.
type RatioParts struct {
	Values []int64
}

// RangeParts is a numeric range; either endpoint may carry fraction digits.
type RangeParts struct {
	Start DecimalValue
	End   DecimalValue
}

// MeasureParts is a measured quantity with its raw unit token.
type MeasureParts struct {
	Value DecimalValue
	Unit  string
}

// AlnumParts is a labeled number like "Room 123" or "Gate 4B".
type AlnumParts struct {
	Prefix string
	Number int64
	Suffix string
}

// OrdinalParts is an ordinal numeral with its textual suffix.
type OrdinalParts struct {
	Value  int64
	Suffix string
}

// EmailParts is an email address split at the '@'.
type EmailParts struct {
	Local  string
	Domain string
}

// Record is the normalized form of one matched span. Raw always carries
// the original matched text; on successful parsing exactly one variant
// pointer is non-nil (Vehicle and unparsed spans use Raw alone).
// Verbalization falls back to Raw whenever the variant is missing.
type Record struct {
	Kind pattern.Kind
	Raw  string

	Date    *DateParts
	Clock   *TimeParts
	Digits  *DigitSeq
	Money   *CurrencyAmount
	Percent *DecimalValue
	Ratio   *RatioParts
	Span    *RangeParts
	Measure *MeasureParts
	Alnum   *AlnumParts
	Decimal *DecimalValue
	Ordinal *OrdinalParts
	Number  *int64
	Email   *EmailParts
}
