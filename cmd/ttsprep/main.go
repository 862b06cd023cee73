// Command ttsprep rewrites numeric patterns in text into speakable words.
//
// Text is taken from the arguments, or line by line from stdin when no
// arguments are given:
//
//	go run ./cmd/ttsprep -lang hi "Down payment is Rs 21000"
//	echo "Call me at 9876543210" | go run ./cmd/ttsprep
//
// -list prints the detected spans as JSON instead of rewriting, and
// -demo runs a built-in set of sample sentences in both locales.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/az-ai-labs/tts-preproc/locale"
	"github.com/az-ai-labs/tts-preproc/speech"
)

var demoSamples = []string{
	"The meeting is on 12-11-2026 at 2:30pm",
	"Call me at +91-9876543210",
	"The price is ₹500 or $50",
	"Room 123, Floor 5",
	"Today's temperature is 25.5°C",
	"Discount: 25% off on items worth $99.99",
	"He came 1st in the race",
	"My employee id is bfrs02904",
	"Down payment is Rs 21000",
	"Range is 125-140 km per full charge",
	"Aadhaar number is 1234 5678 9012",
	"Your OTP is 456789",
	"Fast charge takes 1.5 hours",
}

func main() {
	lang := flag.String("lang", "auto", "output locale: en, hi or auto")
	list := flag.Bool("list", false, "print detected patterns as JSON instead of rewriting")
	demo := flag.Bool("demo", false, "run built-in sample sentences in both locales")
	flag.Parse()

	pre := speech.New(locale.English)

	if *demo {
		for _, s := range demoSamples {
			fmt.Printf("original: %s\n", s)
			fmt.Printf("english:  %s\n", pre.Preprocess(s, "en"))
			fmt.Printf("hindi:    %s\n\n", pre.Preprocess(s, "hi"))
		}
		return
	}

	if flag.NArg() > 0 {
		process(pre, strings.Join(flag.Args(), " "), *lang, *list)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		process(pre, scanner.Text(), *lang, *list)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "ttsprep: read stdin: %v\n", err)
		os.Exit(1)
	}
}

func process(pre *speech.Preprocessor, text, lang string, list bool) {
	if list {
		out, err := json.MarshalIndent(pre.Patterns(text), "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "ttsprep: marshal patterns: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}
	fmt.Println(pre.Preprocess(text, lang))
}
