package pattern

import (
	"encoding/json"
	"testing"
)

// kindTexts maps the detection result to kind/text pairs for comparison.
type kindText struct {
	kind Kind
	text string
}

func detectKindTexts(t *testing.T, in string) []kindText {
	t.Helper()
	matches := DetectAll(in)
	checkInvariants(t, in, matches)
	out := make([]kindText, len(matches))
	for i, m := range matches {
		out[i] = kindText{m.Kind, m.Text}
	}
	return out
}

// checkInvariants verifies offsets, ordering, and non-overlap.
func checkInvariants(t *testing.T, in string, matches []Match) {
	t.Helper()
	prevEnd := 0
	for i, m := range matches {
		if m.Start < 0 || m.End > len(in) || m.Start >= m.End {
			t.Fatalf("match %d has bad offsets: %v", i, m)
		}
		if in[m.Start:m.End] != m.Text {
			t.Fatalf("match %d text mismatch: %q != s[%d:%d]=%q", i, m.Text, m.Start, m.End, in[m.Start:m.End])
		}
		if m.Start < prevEnd {
			t.Fatalf("match %d overlaps or is unsorted: %v", i, m)
		}
		if m.Priority != m.Kind.Priority() {
			t.Fatalf("match %d priority %d != kind priority %d", i, m.Priority, m.Kind.Priority())
		}
		prevEnd = m.End
	}
}

func TestDetectAll(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want []kindText
	}{
		{
			name: "date and time",
			in:   "The meeting is on 12-11-2026 at 2:30pm",
			want: []kindText{{Date, "12-11-2026"}, {Time, "2:30pm"}},
		},
		{
			name: "compact date",
			in:   "delivered 13Nov,2025 evening",
			want: []kindText{{Date, "13Nov,2025"}},
		},
		{
			name: "month day ordinal date",
			in:   "due May 3rd 2022",
			want: []kindText{{Date, "May 3rd 2022"}},
		},
		{
			name: "two digit year date",
			in:   "archived on 01-01-99",
			want: []kindText{{Date, "01-01-99"}},
		},
		{
			name: "international phone",
			in:   "Call me at +91-9876543210",
			want: []kindText{{Phone, "+91-9876543210"}},
		},
		{
			name: "bare ten digit phone",
			in:   "My phone number is 9876543210",
			want: []kindText{{Phone, "9876543210"}},
		},
		{
			name: "aadhaar id",
			in:   "Aadhaar number is 1234 5678 9012",
			want: []kindText{{ID, "Aadhaar number is 1234 5678 9012"}},
		},
		{
			name: "otp id",
			in:   "Your OTP is 456789",
			want: []kindText{{ID, "OTP is 456789"}},
		},
		{
			name: "pincode beats id on same span",
			in:   "ATM PIN is 110001",
			want: []kindText{{Pincode, "PIN is 110001"}},
		},
		{
			name: "rupee symbol and dollar",
			in:   "The price is ₹500 or $50",
			want: []kindText{{Currency, "₹500"}, {Currency, "$50"}},
		},
		{
			name: "rs prefix currency",
			in:   "Down payment is Rs 21000",
			want: []kindText{{Currency, "Rs 21000"}},
		},
		{
			name: "currency word suffix",
			in:   "Price is 150 rupees only",
			want: []kindText{{Currency, "150 rupees"}},
		},
		{
			name: "percentage and currency",
			in:   "Discount: 25% off on items worth $99.99",
			want: []kindText{{Percentage, "25%"}, {Currency, "$99.99"}},
		},
		{
			name: "ratio",
			in:   "mixed 3:1 for priming",
			want: []kindText{{Ratio, "3:1"}},
		},
		{
			// The optional meridiem makes the clock rule consume the
			// following space; the preprocessor restores it on splice.
			name: "time beats ratio",
			in:   "arrive by 2:30 sharp",
			want: []kindText{{Time, "2:30 "}},
		},
		{
			name: "range keeps unit separate",
			in:   "Range is 125-140 km per full charge",
			want: []kindText{{Range, "125-140"}},
		},
		{
			name: "measurement with decimal",
			in:   "Today's temperature is 25.5°C",
			want: []kindText{{Measurement, "25.5°C"}},
		},
		{
			name: "duration hours",
			in:   "Fast charge takes 1.5 hours",
			want: []kindText{{Duration, "1.5 hours"}},
		},
		{
			name: "alphanumeric room and floor",
			in:   "Room 123, Floor 5",
			want: []kindText{{Alphanumeric, "Room 123"}, {Alphanumeric, "Floor 5"}},
		},
		{
			name: "vehicle plate",
			in:   "parked DL01CA1234 outside",
			want: []kindText{{Vehicle, "DL01CA1234"}},
		},
		{
			name: "compact alphanumeric id",
			in:   "My employee id is bfrs02904",
			want: []kindText{{AlphanumericID, "bfrs02904"}},
		},
		{
			name: "decimal three fraction digits",
			in:   "pi is roughly 3.145 here",
			want: []kindText{{Decimal, "3.145"}},
		},
		{
			name: "ordinal",
			in:   "He came 1st in the race",
			want: []kindText{{Ordinal, "1st"}},
		},
		{
			name: "plain number",
			in:   "we counted 42 boxes",
			want: []kindText{{Number, "42"}},
		},
		{
			name: "email beats inner patterns",
			in:   "write to sajalmadan09@gmail.com today",
			want: []kindText{{Email, "sajalmadan09@gmail.com"}},
		},
		{
			name: "colloquial time wins over parts",
			in:   "5 baj kar 30 min",
			want: []kindText{{Time, "5 baj kar 30 min"}},
		},
		{
			name: "bare baj time",
			in:   "milte hain 5 baj",
			want: []kindText{{Time, "5 baj"}},
		},
		{
			name: "devanagari currency",
			in:   "कीमत ₹५०० है",
			want: []kindText{{Currency, "₹५००"}},
		},
		{
			name: "devanagari pincode",
			in:   "पिनकोड ११०००१",
			want: []kindText{{Pincode, "पिनकोड ११०००१"}},
		},
		{
			name: "devanagari aadhaar",
			in:   "आधार संख्या १२३४ ५६७८ ९०१२",
			want: []kindText{{ID, "आधार संख्या १२३४ ५६७८ ९०१२"}},
		},
		{
			name: "devanagari number",
			in:   "कुल ४२ लोग",
			want: []kindText{{Number, "४२"}},
		},
		{
			name: "no patterns",
			in:   "nothing numeric in here",
			want: nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := detectKindTexts(t, tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("DetectAll(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("DetectAll(%q)[%d] = %v/%q, want %v/%q",
						tt.in, i, got[i].kind, got[i].text, tt.want[i].kind, tt.want[i].text)
				}
			}
		})
	}
}

func TestDetectAllEmpty(t *testing.T) {
	t.Parallel()
	if got := DetectAll(""); got != nil {
		t.Errorf("DetectAll(\"\") = %v, want nil", got)
	}
}

func TestEmailsAndPhones(t *testing.T) {
	t.Parallel()
	in := "mail a1@b.co or c2@d.org, call 9876543210"
	if got := Emails(in); len(got) != 2 || got[0] != "a1@b.co" || got[1] != "c2@d.org" {
		t.Errorf("Emails(%q) = %v", in, got)
	}
	if got := Phones(in); len(got) != 1 || got[0] != "9876543210" {
		t.Errorf("Phones(%q) = %v", in, got)
	}
}

func TestKindJSON(t *testing.T) {
	t.Parallel()
	for k := Email; k <= Number; k++ {
		data, err := json.Marshal(k)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", k, err)
		}
		var back Kind
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if back != k {
			t.Errorf("roundtrip %v: got %v", k, back)
		}
	}
	var k Kind
	if err := json.Unmarshal([]byte(`"NoSuchKind"`), &k); err == nil {
		t.Error("Unmarshal unknown kind: want error, got nil")
	}
}
