// Package locale identifies the target speech locale for verbalization.
//
// Two locales are supported: English and Hindi. Detection is heuristic:
// any Devanagari code point marks the text as Hindi, and romanized
// colloquial Hindi ("Hinglish") is recognized through a fixed list of
// marker words matched on word boundaries.
//
// All functions are safe for concurrent use by multiple goroutines.
package locale

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// Locale identifies a target speech locale.
type Locale int

const (
	English Locale = iota // English phrasing, Western numbering scale
	Hindi                 // Hindi phrasing, Indian numbering scale
)

// localeNames maps Locale values to their string names.
var localeNames = [...]string{
	English: "English",
	Hindi:   "Hindi",
}

// localeCodes maps Locale values to ISO 639-1 codes.
var localeCodes = [...]string{
	English: "en",
	Hindi:   "hi",
}

// localeFromCode maps ISO 639-1 codes back to Locale values.
var localeFromCode = map[string]Locale{
	"en": English,
	"hi": Hindi,
}

// String returns the name of the locale.
func (l Locale) String() string {
	if int(l) >= 0 && int(l) < len(localeNames) {
		return localeNames[l]
	}
	return fmt.Sprintf("Locale(%d)", int(l))
}

// Code returns the ISO 639-1 code of the locale ("en" or "hi").
func (l Locale) Code() string {
	if int(l) >= 0 && int(l) < len(localeCodes) {
		return localeCodes[l]
	}
	return ""
}

// MarshalJSON encodes the locale as a JSON string (e.g. "en").
func (l Locale) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Code())
}

// UnmarshalJSON decodes a JSON string (e.g. "en") into a Locale.
func (l *Locale) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	loc, err := Parse(s)
	if err != nil {
		return err
	}
	*l = loc
	return nil
}

// Parse converts an ISO 639-1 code ("en" or "hi") into a Locale.
// Returns an error for any other input.
func Parse(code string) (Locale, error) {
	loc, ok := localeFromCode[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		const maxErrLen = 20
		if len(code) > maxErrLen {
			code = code[:maxErrLen] + "..."
		}
		return English, fmt.Errorf("locale: unknown code: %q", code)
	}
	return loc, nil
}

// hinglishMarkers lists romanized Hindi words that mark colloquial
// "Hinglish" input. Matched case-insensitively on whole words.
var hinglishMarkers = map[string]bool{
	"maine": true, "ko": true, "par": true, "rupaye": true,
	"paise": true, "pay": true, "kiye": true, "kiya": true,
	"hai": true, "baj": true, "num": true, "ki": true,
	"ka": true, "ke": true, "me": true, "ne": true,
	"se": true, "liye": true, "bhut": true, "ye": true,
	"mera": true, "apna": true, "kya": true, "bahut": true,
}

// Detect classifies s as Hindi or English.
// Text containing any Devanagari code point is Hindi. Otherwise the text
// is split into words and checked against the Hinglish marker list;
// a single marker word is enough. Everything else is English.
func Detect(s string) Locale {
	for _, r := range s {
		if unicode.Is(unicode.Devanagari, r) {
			return Hindi
		}
	}
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		if hinglishMarkers[w] {
			return Hindi
		}
	}
	return English
}
