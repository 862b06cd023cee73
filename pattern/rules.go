package pattern

import (
	"cmp"
	"regexp"
	"slices"
)

// monthsFull and monthsAbbr are the month alternations shared by the
// date rules.
const (
	monthsFull = `January|February|March|April|May|June|July|August|September|October|November|December`
	monthsAbbr = `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec`
)

// rule is one matching rule of a pattern kind. The span is taken from
// capture group `group` (0 = the whole match); RE2 has no lookaround, so
// rules that need context either re-anchor the span with a capture group
// or reject matches by inspecting the text that follows the span.
type rule struct {
	re     *regexp.Regexp
	group  int
	reject *regexp.Regexp // skip the match when the following text matches
}

// reNotClockDuration rejects h.mm time candidates that are actually
// durations ("1.30 hours"), which the Duration kind owns.
var reNotClockDuration = regexp.MustCompile(`(?i)^\s*(?:hours?|hrs?|hr)\b`)

// catalogue lists every kind with its matching rules, in priority order.
// A span may be produced by several rules of the same kind; duplicates
// are harmless once overlaps are resolved.
var catalogue = []struct {
	kind  Kind
	rules []rule
}{
	{Email, []rule{
		{re: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
	}},
	{Date, []rule{
		// Compact ddMon,yyyy first so it wins over Number matching the year.
		{re: regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:` + monthsAbbr + `)[a-z.]*\s*,\s*(\d{4})\b`)},
		{re: regexp.MustCompile(`\b(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4})\b`)},
		// Two-digit year, day-month-year order.
		{re: regexp.MustCompile(`\b(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2})\b`)},
		{re: regexp.MustCompile(`(?i)\b(\d{1,2})\s+(?:` + monthsFull + `)\s+(\d{4})\b`)},
		{re: regexp.MustCompile(`(?i)\b(?:` + monthsFull + `)\s+(\d{1,2})(?:st|nd|rd|th)?\s+(\d{4})\b`)},
		{re: regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)\s+(?:` + monthsFull + `)\s+(\d{4})\b`)},
		{re: regexp.MustCompile(`[०-९]{1,2}[/-][०-९]{1,2}[/-][०-९]{4}`)},
	}},
	{Duration, []rule{
		// "1.30 hours" is a duration, not clock time — no meridiem.
		{re: regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:hour|hours|hr|hrs)\b`)},
	}},
	{Time, []rule{
		{re: regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*(?:am|pm)?\b`)},
		{re: regexp.MustCompile(`(?i)\b(\d{1,2})\.(\d{2})\s*(?:am|pm)?\b`), reject: reNotClockDuration},
		{re: regexp.MustCompile(`[०-९]{1,2}:[०-९]{2}`)},
		// Hinglish "N baj kar M min" = N o'clock M minutes; listed before
		// bare "N baj" so the longer span is available to win ties.
		{re: regexp.MustCompile(`(?i)\b(\d{1,2})\s*baj\s+kar\s+(\d{1,2})\s*(?:min|mins|minute|minutes)\b`)},
		{re: regexp.MustCompile(`(?i)\b(\d{1,2})\s*baj\b`)},
	}},
	{Phone, []rule{
		{re: regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{3,4}[-.\s]?\d{6,10}`)},
		{re: regexp.MustCompile(`\(?\d{3,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{4}`)},
		{re: regexp.MustCompile(`\b\d{10}\b`)},
	}},
	{Pincode, []rule{
		{re: regexp.MustCompile(`(?i)\b(?:PIN\s*code|Pincode|PIN)\b[^\d]{0,10}\d{6}\b`)},
		// \b is ASCII-only, so the Devanagari rules carry explicit digit
		// classes covering both scripts and no trailing boundary.
		{re: regexp.MustCompile(`(?:पिन\s*कोड|पिनकोड)[^0-9०-९]{0,10}[0-9०-९]{6}`)},
	}},
	{ID, []rule{
		{re: regexp.MustCompile(`(?i)\b(?:Aadhaar|Aadhar)\b[^\d]{0,20}[\d\s]{4,}`)},
		{re: regexp.MustCompile(`आधार[^0-9०-९]{0,20}[0-9०-९\s]{4,}`)},
		{re: regexp.MustCompile(`(?i)\b(?:OTP|PIN)\b[^\d]{0,10}\d{3,8}\b`)},
		{re: regexp.MustCompile(`(?:ओटीपी|पिन)[^0-9०-९]{0,10}[0-9०-९]{3,8}`)},
	}},
	{Currency, []rule{
		// Symbol or code before the amount. The span is re-anchored with a
		// capture group so a preceding letter or digit disqualifies the match.
		{re: regexp.MustCompile(`(?i)(^|[^a-z0-9])((?:Rs\.?|₹|\$|USD|EUR|GBP|€|£)\s*[\d,]+(?:\.\d{1,2})?)`), group: 2},
		{re: regexp.MustCompile(`(?i)\b[\d,]+(?:\.\d{1,2})?\s*(?:dollars?|rupees?|euros?|pounds?)\b`)},
		// Amount then symbol; the span must be followed by space,
		// punctuation, or end of input.
		{re: regexp.MustCompile(`\b([\d,]+(?:\.\d{1,2})?\s*[$₹€])(?:[\s.,;!?]|$)`), group: 1},
		{re: regexp.MustCompile(`(?i)\b[\d,]+(?:\.\d{1,2})?\s+Rs\.?\b`)},
		{re: regexp.MustCompile(`₹\s*[०-९]+(?:[.,][०-९]+)?`)},
	}},
	{Percentage, []rule{
		{re: regexp.MustCompile(`\b\d+(?:\.\d+)?%`)},
		{re: regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*percent\b`)},
	}},
	{Ratio, []rule{
		{re: regexp.MustCompile(`\b\d+(?:\s*:\s*\d+)+\b`)},
	}},
	{Range, []rule{
		{re: regexp.MustCompile(`\b\d+(?:\.\d+)?\s*-\s*\d+(?:\.\d+)?\b`)},
	}},
	{Measurement, []rule{
		{re: regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:kg|g|mg|km|m|cm|mm|l|ml|°C|°F|mph|kmph|h|hr|hrs|hour|hours|min|mins|minute|minutes|sec|secs|second|seconds)\b`)},
	}},
	{Alphanumeric, []rule{
		{re: regexp.MustCompile(`(?i)\b(?:Room|Section|Gate|Floor|Block|Unit|Flat|Plot)\s+\d+[A-Za-z]?\b`)},
	}},
	{Vehicle, []rule{
		// Indian registration: state code + RTO district + series + number.
		{re: regexp.MustCompile(`\b[A-Za-z]{2}\d{2}[A-Za-z]{1,2}\d{1,4}\b`)},
	}},
	{AlphanumericID, []rule{
		// Compact IDs with letters and digits stuck together, e.g. bfrs02904.
		{re: regexp.MustCompile(`\b[A-Za-z]+[A-Za-z0-9]*\d+[A-Za-z0-9]*\b`)},
	}},
	{Decimal, []rule{
		{re: regexp.MustCompile(`[०-९]+[.,][०-९]+`)},
		{re: regexp.MustCompile(`\b\d+[.,]\d+\b`)},
	}},
	{Ordinal, []rule{
		{re: regexp.MustCompile(`(?i)\b\d+(?:st|nd|rd|th)\b`)},
	}},
	{Number, []rule{
		{re: regexp.MustCompile(`[०-९]+`)},
		{re: regexp.MustCompile(`\b\d{1,3}(?:,\d{3})*\b`)},
		{re: regexp.MustCompile(`\b\d+\b`)},
	}},
}

// maxMatches is the maximum number of matches returned per call.
const maxMatches = 10000

// detectAll is the internal implementation of DetectAll.
func detectAll(s string) []Match {
	const minCap = 8
	all := make([]Match, 0, len(s)/50+minCap)

	for _, e := range catalogue {
		prio := e.kind.Priority()
		for _, r := range e.rules {
			if r.group == 0 && r.reject == nil {
				for _, m := range r.re.FindAllStringIndex(s, -1) {
					all = append(all, Match{
						Text:     s[m[0]:m[1]],
						Start:    m[0],
						End:      m[1],
						Kind:     e.kind,
						Priority: prio,
					})
				}
				continue
			}
			for _, sub := range r.re.FindAllStringSubmatchIndex(s, -1) {
				lo, hi := sub[2*r.group], sub[2*r.group+1]
				if lo < 0 {
					continue
				}
				if r.reject != nil && r.reject.MatchString(s[hi:]) {
					continue
				}
				all = append(all, Match{
					Text:     s[lo:hi],
					Start:    lo,
					End:      hi,
					Kind:     e.kind,
					Priority: prio,
				})
			}
		}
	}

	if len(all) == 0 {
		return nil
	}
	return resolveOverlaps(all)
}

// resolveOverlaps selects a pairwise non-overlapping subset of matches.
// Candidates are ordered by (start ascending, priority descending, span
// length descending, kind declaration order) and accepted greedily, so a
// higher-priority kind wins at the same start and, at equal priority, the
// longer span wins ("5 baj kar 30 min" over "5 baj"). Returns matches
// sorted by Start offset.
func resolveOverlaps(matches []Match) []Match {
	if len(matches) <= 1 {
		return matches
	}

	slices.SortFunc(matches, func(a, b Match) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		la := a.End - a.Start
		lb := b.End - b.Start
		if c := cmp.Compare(lb, la); c != 0 {
			return c
		}
		return cmp.Compare(a.Kind, b.Kind)
	})

	result := make([]Match, 0, len(matches))
	maxEnd := 0

	for _, m := range matches {
		if m.Start >= maxEnd {
			result = append(result, m)
			if len(result) >= maxMatches {
				break
			}
			maxEnd = m.End
		}
	}

	return result
}
