package numwords

import (
	"math"
	"strings"
	"testing"

	"github.com/az-ai-labs/tts-preproc/locale"
)

func FuzzCardinal(f *testing.F) {
	seeds := []int64{0, 1, -1, 9, 10, 19, 20, 21, 99, 100, 101, 999, 1000,
		4500, 21000, 99999, 100000, 2150000, 10000000, 999999999,
		1000000000, 999999999999, 1000000000000, -999999999999,
		math.MinInt64, math.MaxInt64}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, n int64) {
		for _, loc := range []locale.Locale{locale.English, locale.Hindi} {
			got := Cardinal(n, loc)
			if got == "" {
				t.Fatalf("Cardinal(%d, %v) is empty", n, loc)
			}
			if strings.Contains(got, "  ") {
				t.Errorf("Cardinal(%d, %v) = %q has a double space", n, loc, got)
			}
		}
	})
}

func FuzzDigitRun(f *testing.F) {
	for _, s := range []string{"", "0", "9876543210", "+91-98", "abc", "१२३"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		for _, loc := range []locale.Locale{locale.English, locale.Hindi} {
			got := DigitRun(s, loc)
			if strings.HasPrefix(got, " ") || strings.HasSuffix(got, " ") {
				t.Errorf("DigitRun(%q, %v) = %q has edge spaces", s, loc, got)
			}
		}
	})
}
