package pattern

import "testing"

func FuzzDetectAll(f *testing.F) {
	seeds := []string{
		"",
		"The meeting is on 12-11-2026 at 2:30pm",
		"Call me at +91-9876543210",
		"The price is ₹500 or $50",
		"Aadhaar number is 1234 5678 9012",
		"Room 123, Floor 5",
		"Discount: 25% off on items worth $99.99",
		"bfrs02904 DL01CA1234 3.145 1st",
		"5 baj kar 30 min",
		"कीमत ₹५०० है, पिन कोड 110045",
		"a@b.co 3:1 125-140 25.5°C 1.5 hours",
		"::::....----%%%%",
		"\x00\xff\xfe",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		matches := DetectAll(s)
		prevEnd := 0
		for i, m := range matches {
			if m.Start < 0 || m.End > len(s) || m.Start >= m.End {
				t.Fatalf("match %d has bad offsets: %+v", i, m)
			}
			if s[m.Start:m.End] != m.Text {
				t.Fatalf("match %d text %q != s[%d:%d]", i, m.Text, m.Start, m.End)
			}
			if m.Start < prevEnd {
				t.Fatalf("match %d unsorted or overlapping: %+v", i, m)
			}
			prevEnd = m.End
		}
	})
}
