package speech

var monthNamesEn = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthNamesHi = [12]string{
	"जनवरी", "फ़रवरी", "मार्च", "अप्रैल", "मई", "जून",
	"जुलाई", "अगस्त", "सितंबर", "अक्टूबर", "नवंबर", "दिसंबर",
}

// Measurement units are looked up by the exact token matched; an
// unlisted unit passes through unchanged.
var enUnitNames = map[string]string{
	"kg":      "kilograms",
	"g":       "grams",
	"mg":      "milligrams",
	"m":       "meters",
	"cm":      "centimeters",
	"mm":      "millimeters",
	"km":      "kilometers",
	"l":       "liters",
	"ml":      "milliliters",
	"°C":      "degrees Celsius",
	"°F":      "degrees Fahrenheit",
	"hour":    "hours",
	"hours":   "hours",
	"hr":      "hours",
	"hrs":     "hours",
	"h":       "hours",
	"minute":  "minutes",
	"minutes": "minutes",
	"min":     "minutes",
	"mins":    "minutes",
	"second":  "seconds",
	"seconds": "seconds",
	"sec":     "seconds",
	"secs":    "seconds",
}

var hiUnitNames = map[string]string{
	"kg":      "किलोग्राम",
	"g":       "ग्राम",
	"m":       "मीटर",
	"km":      "किलोमीटर",
	"l":       "लीटर",
	"°C":      "डिग्री सेल्सियस",
	"°F":      "डिग्री फारेनहाइट",
	"hour":    "घंटे",
	"hours":   "घंटे",
	"hr":      "घंटे",
	"hrs":     "घंटे",
	"h":       "घंटे",
	"minute":  "मिनट",
	"minutes": "मिनट",
	"min":     "मिनट",
	"mins":    "मिनट",
	"second":  "सेकंड",
	"seconds": "सेकंड",
	"sec":     "सेकंड",
	"secs":    "सेकंड",
}

var hiCurrencyUnit = map[string]string{
	"dollars": "डॉलर",
	"rupees":  "रुपये",
	"euros":   "यूरो",
	"pounds":  "पाउंड",
}

var hiCurrencySubunit = map[string]string{
	"cents": "सेंट",
	"paise": "पैसे",
	"pence": "पेंस",
}

// Location prefixes ("Room 123") translated in Hindi output.
var hiLocationPrefix = map[string]string{
	"Room":    "कमरा",
	"Floor":   "मंजिल",
	"Gate":    "गेट",
	"Section": "सेक्शन",
	"Block":   "ब्लॉक",
}
