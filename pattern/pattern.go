// Package pattern detects numeric and quasi-numeric spans in free-form
// text using rule-based matching.
//
// Eighteen pattern kinds compete for spans: emails, dates, durations,
// clock times (including colloquial Hinglish "5 baj" forms), phone
// numbers, labeled pincodes and IDs, currency amounts, percentages,
// ratios, ranges, measurements, labeled alphanumerics, vehicle plates,
// compact alphanumeric IDs, decimals, ordinals, and plain numbers.
// Each kind carries a fixed priority; overlapping candidates are resolved
// so that the result set is pairwise non-overlapping. Every match is
// returned with byte offsets satisfying s[m.Start:m.End] == m.Text.
//
// Plain numbers have the lowest priority, so any more specific kind
// claims overlapping text first; a bare number survives only when
// nothing else wants its span.
//
// All functions are safe for concurrent use by multiple goroutines.
package pattern

import (
	"encoding/json"
	"fmt"
)

// Kind classifies a detected span. Declaration order is the catalogue
// order and serves as the deterministic tie-break when two candidates
// share start offset, priority, and length.
type Kind int

const (
	Email Kind = iota
	Date
	Duration
	Time
	Phone
	Pincode
	ID
	Currency
	Percentage
	Ratio
	Range
	Measurement
	Alphanumeric
	Vehicle
	AlphanumericID
	Decimal
	Ordinal
	Number
)

// kindNames maps Kind values to their string names.
var kindNames = [...]string{
	Email:          "Email",
	Date:           "Date",
	Duration:       "Duration",
	Time:           "Time",
	Phone:          "Phone",
	Pincode:        "Pincode",
	ID:             "ID",
	Currency:       "Currency",
	Percentage:     "Percentage",
	Ratio:          "Ratio",
	Range:          "Range",
	Measurement:    "Measurement",
	Alphanumeric:   "Alphanumeric",
	Vehicle:        "Vehicle",
	AlphanumericID: "AlphanumericID",
	Decimal:        "Decimal",
	Ordinal:        "Ordinal",
	Number:         "Number",
}

// kindFromName maps string names back to Kind values.
var kindFromName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// kindPriorities holds the fixed priority of each kind. Higher wins when
// spans overlap.
var kindPriorities = [...]int{
	Email:          15,
	Date:           10,
	Duration:       10,
	Time:           9,
	Phone:          8,
	Pincode:        8,
	ID:             8,
	Currency:       7,
	Percentage:     6,
	Ratio:          6,
	Range:          6,
	Measurement:    6,
	Alphanumeric:   5,
	Vehicle:        5,
	AlphanumericID: 4,
	Decimal:        4,
	Ordinal:        3,
	Number:         1,
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Priority returns the kind's fixed overlap-resolution priority.
func (k Kind) Priority() int {
	if int(k) >= 0 && int(k) < len(kindPriorities) {
		return kindPriorities[k]
	}
	return 0
}

// MarshalJSON encodes the kind as a JSON string (e.g. "Currency").
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "Currency") into a Kind.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kk, ok := kindFromName[s]
	if !ok {
		const maxErrLen = 50
		if len(s) > maxErrLen {
			s = s[:maxErrLen] + "..."
		}
		return fmt.Errorf("pattern: unknown kind: %q", s)
	}
	*k = kk
	return nil
}

// Match represents a detected span with its position in the source text.
type Match struct {
	Text     string `json:"text"`     // The matched text
	Start    int    `json:"start"`    // Byte offset in the original string (inclusive)
	End      int    `json:"end"`      // Byte offset in the original string (exclusive)
	Kind     Kind   `json:"kind"`     // Classification of the span
	Priority int    `json:"priority"` // Fixed priority of the kind
}

// String returns a debug representation, e.g. Currency("₹500")[10:17].
func (m Match) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", m.Kind, m.Text, m.Start, m.End)
}

// maxInputBytes is the maximum input length DetectAll will process.
// Inputs exceeding this are returned with no results.
const maxInputBytes = 1 << 20 // 1 MiB

// DetectAll finds all pattern spans in s. Every rule of every kind is
// applied, then overlaps are resolved by priority with longer spans
// winning ties. The result is pairwise non-overlapping and sorted
// ascending by Start.
func DetectAll(s string) []Match {
	if s == "" || len(s) > maxInputBytes {
		return nil
	}
	return detectAll(s)
}

// Emails returns all email texts found in s after overlap resolution.
func Emails(s string) []string {
	return filterTexts(DetectAll(s), Email)
}

// Phones returns all phone number texts found in s after overlap resolution.
func Phones(s string) []string {
	return filterTexts(DetectAll(s), Phone)
}

// filterTexts returns the Text field of matches with the given kind.
func filterTexts(matches []Match, kind Kind) []string {
	var out []string
	for _, m := range matches {
		if m.Kind == kind {
			out = append(out, m.Text)
		}
	}
	return out
}
