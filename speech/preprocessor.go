// Package speech turns detected numeric spans into speakable words.
//
// The Preprocessor is the main entry point: it detects every pattern in
// the input, renders each span in the requested locale, and splices the
// words back at the original byte offsets.
package speech

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/az-ai-labs/tts-preproc/locale"
	"github.com/az-ai-labs/tts-preproc/pattern"
)

// Preprocessor rewrites numeric and quasi-numeric substrings of free text
// into words. Safe for concurrent use.
type Preprocessor struct {
	def locale.Locale
}

// New returns a Preprocessor whose default output locale is def.
func New(def locale.Locale) *Preprocessor {
	return &Preprocessor{def: def}
}

// Preprocess rewrites every detected pattern in text into words for the
// given locale code ("en", "hi", "auto", or "" for the default). Text
// with no detected patterns is returned unchanged, byte for byte. A span
// that fails to render is left as it appeared in the input.
func (p *Preprocessor) Preprocess(text, loc string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	composed := norm.NFC.String(text)
	matches := pattern.DetectAll(composed)
	if len(matches) == 0 {
		return text
	}
	lang := p.resolveLocale(composed, loc)

	// Splice right to left so earlier offsets stay valid.
	out := composed
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		words, err := verbalize(normalize(strings.TrimSpace(m.Text), m.Kind), lang)
		if err != nil {
			continue
		}
		if strings.HasPrefix(m.Text, " ") {
			words = " " + words
		}
		if strings.HasSuffix(m.Text, " ") {
			words += " "
		}
		out = out[:m.Start] + words + out[m.End:]
	}
	return out
}

// PreprocessBatch applies Preprocess to each text in order.
func (p *Preprocessor) PreprocessBatch(texts []string, loc string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = p.Preprocess(t, loc)
	}
	return out
}

// Patterns reports the spans Preprocess would rewrite, without
// rewriting. Offsets refer to the NFC-composed form of text, the same
// form Preprocess detects against and splices.
func (p *Preprocessor) Patterns(text string) []pattern.Match {
	return pattern.DetectAll(norm.NFC.String(text))
}

func (p *Preprocessor) resolveLocale(text, code string) locale.Locale {
	switch code {
	case "":
		return p.def
	case "auto":
		return locale.Detect(text)
	}
	loc, err := locale.Parse(code)
	if err != nil {
		return p.def
	}
	return loc
}
