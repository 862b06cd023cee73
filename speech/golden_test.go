package speech

import (
	"encoding/json"
	"flag"
	"os"
	"testing"

	"github.com/az-ai-labs/tts-preproc/locale"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

// goldenCase is a single recorded preprocessing example.
type goldenCase struct {
	Name  string `json:"name"`
	Input string `json:"input"`
	Lang  string `json:"lang"`
	Want  string `json:"want"`
}

const goldenPath = "../data/golden/preprocess.json"

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("preprocess.json not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	pre := New(locale.English)
	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			if got := pre.Preprocess(tc.Input, tc.Lang); got != tc.Want {
				t.Errorf("Preprocess(%q, %s):\n  got  %q\n  want %q", tc.Input, tc.Lang, got, tc.Want)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	pre := New(locale.English)
	for i := range cases {
		cases[i].Want = pre.Preprocess(cases[i].Input, cases[i].Lang)
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden cases: %v", err)
	}
	out = append(out, '\n')
	if err := os.WriteFile(goldenPath, out, 0o644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}
	t.Logf("updated %s with %d cases", goldenPath, len(cases))
}
