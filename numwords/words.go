// Word tables for English and Hindi number verbalization.
package numwords

const (
	wordMinus  = "minus"
	wordOh     = "oh" // filler for year groups under ten: 2004 → "twenty oh four"
	wordZeroEn = "zero"
	wordZeroHi = "शून्य"
	wordNegHi  = "ऋण"

	wordPointEn = "point"
	wordPointHi = "दशमलव"

	wordHundredEn  = "hundred"
	wordHundredHi  = "सौ"
	wordThousandEn = "thousand"
	wordThousandHi = "हज़ार"
	wordLakhEn     = "lakh"
	wordLakhHi     = "लाख"
	wordCroreEn    = "crore"
	wordCroreHi    = "करोड़"
)

// Indian numbering-scale groupings.
const (
	lakh  int64 = 100_000
	crore int64 = 10_000_000
)

var enOnes = [10]string{
	"zero",
	"one",
	"two",
	"three",
	"four",
	"five",
	"six",
	"seven",
	"eight",
	"nine",
}

var enTeens = [10]string{
	"ten",
	"eleven",
	"twelve",
	"thirteen",
	"fourteen",
	"fifteen",
	"sixteen",
	"seventeen",
	"eighteen",
	"nineteen",
}

// enTens is indexed by tens digit (2–9); indexes 0 and 1 are unused.
var enTens = [10]string{
	"", "",
	"twenty",
	"thirty",
	"forty",
	"fifty",
	"sixty",
	"seventy",
	"eighty",
	"ninety",
}

// enOrdinalIrregular maps cardinal words to their irregular ordinal forms.
// Regular cardinals take a plain "th" suffix; "-y" endings become "-ieth".
var enOrdinalIrregular = map[string]string{
	"one":    "first",
	"two":    "second",
	"three":  "third",
	"five":   "fifth",
	"eight":  "eighth",
	"nine":   "ninth",
	"twelve": "twelfth",
}

// wordOrdinalHi is appended to a Hindi cardinal to form the ordinal.
const wordOrdinalHi = "वां"

// hiOnes is indexed by digit 1–9; index 0 is unused (zero is शून्य).
var hiOnes = [10]string{
	"",
	"एक",
	"दो",
	"तीन",
	"चार",
	"पांच",
	"छह",
	"सात",
	"आठ",
	"नौ",
}

var hiTeens = [10]string{
	"दस",
	"ग्यारह",
	"बारह",
	"तेरह",
	"चौदह",
	"पंद्रह",
	"सोलह",
	"सत्रह",
	"अठारह",
	"उन्नीस",
}

// hiTens is indexed by tens digit (2–9); indexes 0 and 1 are unused.
var hiTens = [10]string{
	"", "",
	"बीस",
	"तीस",
	"चालीस",
	"पचास",
	"साठ",
	"सत्तर",
	"अस्सी",
	"नब्बे",
}

// hiHundreds is indexed by hundreds digit (1–9); index 0 is unused.
var hiHundreds = [10]string{
	"",
	"एक सौ",
	"दो सौ",
	"तीन सौ",
	"चार सौ",
	"पाँच सौ",
	"छह सौ",
	"सात सौ",
	"आठ सौ",
	"नौ सौ",
}

// hiIrregular lists the fused Hindi forms for 21–99 that cannot be
// composed from tens and ones words.
var hiIrregular = map[int64]string{
	21: "इक्कीस", 22: "बाईस", 23: "तेईस", 24: "चौबीस", 25: "पच्चीस",
	26: "छब्बीस", 27: "सत्ताईस", 28: "अट्ठाईस", 29: "उनतीस",
	31: "इकतीस", 32: "बत्तीस", 33: "तैंतीस", 34: "चौंतीस", 35: "पैंतीस",
	36: "छत्तीस", 37: "सैंतीस", 38: "अड़तीस", 39: "उनतालीस",
	41: "इकतालीस", 42: "बयालीस", 43: "तैंतालीस", 44: "चवालीस", 45: "पैंतालीस",
	46: "छियालीस", 47: "सैंतालीस", 48: "अड़तालीस", 49: "उनचास",
	51: "इक्यावन", 52: "बावन", 53: "तिरपन", 54: "चौवन", 55: "पचपन",
	56: "छप्पन", 57: "सत्तावन", 58: "अट्ठावन", 59: "उनसठ",
	61: "इकसठ", 62: "बासठ", 63: "तिरसठ", 64: "चौंसठ", 65: "पैंसठ",
	66: "छियासठ", 67: "सड़सठ", 68: "अड़सठ", 69: "उनहत्तर",
	71: "इकहत्तर", 72: "बहत्तर", 73: "तिहत्तर", 74: "चौहत्तर", 75: "पचहत्तर",
	76: "छिहत्तर", 77: "सतहत्तर", 78: "अठहत्तर", 79: "उनासी",
	81: "इक्यासी", 82: "बयासी", 83: "तिरासी", 84: "चौरासी", 85: "पचासी",
	86: "छियासी", 87: "सतासी", 88: "अट्ठासी", 89: "नवासी",
	91: "इक्यानवे", 92: "बानवे", 93: "तिरानवे", 94: "चौरानवे", 95: "पचानवे",
	96: "छियानवे", 97: "सत्तानवे", 98: "अट्ठानवे", 99: "निन्यानवे",
}
