package numwords

import (
	"math"
	"strings"
	"testing"

	"github.com/az-ai-labs/tts-preproc/locale"
)

func TestCardinalEnglish(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int64
		want string
	}{
		{0, "zero"},
		{5, "five"},
		{13, "thirteen"},
		{20, "twenty"},
		{42, "forty-two"},
		{99, "ninety-nine"},
		{-7, "minus seven"},
		{125, "one hundred and twenty-five"},
		{500, "five hundred"},
		{21000, "twenty-one thousand"},
	}
	for _, tt := range tests {
		if got := Cardinal(tt.n, locale.English); got != tt.want {
			t.Errorf("Cardinal(%d, en) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestCardinalHindi(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int64
		want string
	}{
		{0, "शून्य"},
		{5, "पांच"},
		{14, "चौदह"},
		{21, "इक्कीस"},
		{30, "तीस"},
		{99, "निन्यानवे"},
		{-3, "ऋण तीन"},
		{100, "एक सौ"},
		{125, "एक सौ पच्चीस"},
		{4500, "चार हज़ार पाँच सौ"},
		{21000, "इक्कीस हज़ार"},
		{150000, "एक लाख पचास हज़ार"},
		{10000000, "एक करोड़"},
	}
	for _, tt := range tests {
		if got := Cardinal(tt.n, locale.Hindi); got != tt.want {
			t.Errorf("Cardinal(%d, hi) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestCardinalHindiBeyondRange(t *testing.T) {
	t.Parallel()
	// Past the crore recursion limit the number is read digit by digit.
	got := Cardinal(1_000_000_000, locale.Hindi)
	want := "एक शून्य शून्य शून्य शून्य शून्य शून्य शून्य शून्य शून्य"
	if got != want {
		t.Errorf("Cardinal(1e9, hi) = %q, want %q", got, want)
	}
}

func TestCardinalMinInt64(t *testing.T) {
	t.Parallel()
	// The magnitude cannot be negated, so conversion degrades to digits.
	if got, want := Cardinal(math.MinInt64, locale.English), "-9223372036854775808"; got != want {
		t.Errorf("Cardinal(MinInt64, en) = %q, want %q", got, want)
	}
	want := "ऋण नौ दो दो तीन तीन सात दो शून्य तीन छह आठ पांच चार सात सात पांच आठ शून्य आठ"
	if got := Cardinal(math.MinInt64, locale.Hindi); got != want {
		t.Errorf("Cardinal(MinInt64, hi) = %q, want %q", got, want)
	}
	if got, want := Indian(math.MinInt64), "-9223372036854775808"; got != want {
		t.Errorf("Indian(MinInt64) = %q, want %q", got, want)
	}
}

func TestIndian(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int64
		want string
	}{
		{0, "zero"},
		{42, "forty-two"},
		{4500, "four thousand five hundred"},
		{21000, "twenty-one thousand"},
		{150000, "one lakh fifty thousand"},
		{2150000, "twenty-one lakh fifty thousand"},
		{12345678, "one crore twenty-three lakh forty-five thousand six hundred and seventy-eight"},
	}
	for _, tt := range tests {
		if got := Indian(tt.n); got != tt.want {
			t.Errorf("Indian(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestYear(t *testing.T) {
	t.Parallel()
	tests := []struct {
		y    int64
		loc  locale.Locale
		want string
	}{
		{2026, locale.English, "twenty twenty-six"},
		{1999, locale.English, "nineteen ninety-nine"},
		{2000, locale.English, "two thousand"},
		{1900, locale.English, "nineteen hundred"},
		{2004, locale.English, "twenty oh four"},
		{2022, locale.Hindi, "बीस बाईस"},
		{1900, locale.Hindi, "उन्नीस सौ"},
		{2001, locale.Hindi, "बीस शून्य एक"},
		// Outside the 4-digit range years read as plain cardinals.
		{800, locale.English, "eight hundred"},
	}
	for _, tt := range tests {
		if got := Year(tt.y, tt.loc); got != tt.want {
			t.Errorf("Year(%d, %v) = %q, want %q", tt.y, tt.loc, got, tt.want)
		}
	}
}

func TestOrdinal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int64
		loc  locale.Locale
		want string
	}{
		{1, locale.English, "first"},
		{2, locale.English, "second"},
		{3, locale.English, "third"},
		{4, locale.English, "fourth"},
		{12, locale.English, "twelfth"},
		{20, locale.English, "twentieth"},
		{21, locale.English, "twenty-first"},
		{30, locale.English, "thirtieth"},
		{100, locale.English, "one hundredth"},
		{5, locale.Hindi, "पांच वां"},
		{3, locale.Hindi, "तीन वां"},
	}
	for _, tt := range tests {
		if got := Ordinal(tt.n, tt.loc); got != tt.want {
			t.Errorf("Ordinal(%d, %v) = %q, want %q", tt.n, tt.loc, got, tt.want)
		}
	}
}

func TestDecimal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		intPart int64
		frac    string
		loc     locale.Locale
		want    string
	}{
		{3, "145", locale.English, "three point one four five"},
		{25, "5", locale.English, "twenty-five point five"},
		{99, "99", locale.English, "ninety-nine point nine nine"},
		{12, "", locale.English, "twelve"},
		{25, "5", locale.Hindi, "पच्चीस दशमलव पांच"},
		{0, "50", locale.English, "zero point five zero"},
	}
	for _, tt := range tests {
		if got := Decimal(tt.intPart, tt.frac, tt.loc); got != tt.want {
			t.Errorf("Decimal(%d, %q, %v) = %q, want %q", tt.intPart, tt.frac, tt.loc, got, tt.want)
		}
	}
}

func TestDigitRun(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		loc  locale.Locale
		want string
	}{
		{"02904", locale.English, "zero two nine zero four"},
		{"9876543210", locale.English, "nine eight seven six five four three two one zero"},
		{"+91-98", locale.English, "nine one nine eight"},
		{"102", locale.Hindi, "एक शून्य दो"},
		{"", locale.English, ""},
		{"abc", locale.English, ""},
	}
	for _, tt := range tests {
		if got := DigitRun(tt.in, tt.loc); got != tt.want {
			t.Errorf("DigitRun(%q, %v) = %q, want %q", tt.in, tt.loc, got, tt.want)
		}
	}
}

func TestDigit(t *testing.T) {
	t.Parallel()
	if got := Digit(0, locale.English); got != "zero" {
		t.Errorf("Digit(0, en) = %q, want %q", got, "zero")
	}
	if got := Digit(7, locale.Hindi); got != "सात" {
		t.Errorf("Digit(7, hi) = %q, want %q", got, "सात")
	}
	if got := Digit(12, locale.English); got != "12" {
		t.Errorf("Digit(12, en) = %q, want %q", got, "12")
	}
}

func TestOrdinalSuffixNeverEmpty(t *testing.T) {
	t.Parallel()
	for n := int64(1); n <= 120; n++ {
		got := Ordinal(n, locale.English)
		if got == "" {
			t.Fatalf("Ordinal(%d, en) is empty", n)
		}
		if strings.HasSuffix(got, "y") {
			t.Errorf("Ordinal(%d, en) = %q still ends in a cardinal -y", n, got)
		}
	}
}
