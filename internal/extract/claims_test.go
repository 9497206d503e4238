package extract

import (
	"strings"
	"testing"

	"github.com/factguard/factguard/internal/model"
)

func newTestExtractor() *Extractor {
	cfg := model.DefaultConfig()
	return NewExtractor(cfg.Lexicon, cfg.Extraction)
}

func TestExtractor_Extract_ShortInput(t *testing.T) {
	e := newTestExtractor()

	for _, input := range []string{"", "hi", "123456789"} {
		if claims := e.Extract(input); len(claims) != 0 {
			t.Errorf("Expected no claims for %q, got %v", input, claims)
		}
	}
}

func TestExtractor_Extract_SingleFact(t *testing.T) {
	e := newTestExtractor()

	claims := e.Extract("Gold prices increased to $3000 per ounce today")

	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d: %v", len(claims), claims)
	}
	if claims[0].Heuristic != "sentence" {
		t.Errorf("Expected heuristic \"sentence\", got %q", claims[0].Heuristic)
	}
}

func TestExtractor_Extract_OpinionYieldsNothing(t *testing.T) {
	e := newTestExtractor()

	claims := e.Extract("I think this policy will destroy the economy")
	if len(claims) != 0 {
		t.Errorf("Expected no claims for opinion, got %v", claims)
	}
}

func TestExtractor_Extract_MergedHeuristic(t *testing.T) {
	e := newTestExtractor()

	text := "The US military invaded Venezuela on Friday morning. captured President Nicolas Maduro at the palace."
	claims := e.Extract(text)

	if len(claims) != 1 {
		t.Fatalf("Expected 1 merged claim, got %d: %v", len(claims), claims)
	}
	if claims[0].Heuristic != "merged" {
		t.Errorf("Expected heuristic \"merged\", got %q", claims[0].Heuristic)
	}
	if !strings.Contains(claims[0].Text, "captured President Nicolas Maduro") {
		t.Errorf("Merged claim missing second fragment: %q", claims[0].Text)
	}
}

func TestExtractor_Extract_CapsClaims(t *testing.T) {
	e := newTestExtractor()

	var b strings.Builder
	facts := []string{
		"Gold prices increased to $3000 per ounce in January",
		"Silver prices reached $40 per ounce in February",
		"Copper output in Chile grew 12 percent in March",
		"Oil exports from Norway fell 8 percent in April",
		"Wheat yields in France rose 5 percent during May",
		"Steel production in Germany dropped 3 percent in June",
		"Coal imports in Poland increased 9 percent in July",
	}
	for _, f := range facts {
		b.WriteString(f)
		b.WriteString(". ")
	}

	claims := e.Extract(b.String())
	if len(claims) > 5 {
		t.Errorf("Expected at most 5 claims, got %d", len(claims))
	}
	if len(claims) == 0 {
		t.Error("Expected some claims from factual text")
	}
}

func TestExtractor_Extract_Dedupes(t *testing.T) {
	e := newTestExtractor()

	text := "wheat yields rose 5 percent during the spring season. wheat yields rose 5 percent during the spring season."
	claims := e.Extract(text)

	if len(claims) != 1 {
		t.Errorf("Expected duplicates collapsed to 1 claim, got %d: %v", len(claims), claims)
	}
}
