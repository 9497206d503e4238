package extract

import (
	"strings"
	"testing"

	"github.com/factguard/factguard/internal/model"
)

func TestMerger_Merge_NarrativeFragments(t *testing.T) {
	m := NewMerger(model.DefaultLexicon())

	sentences := []string{
		"The US military invaded Venezuela",
		"captured President Nicolas Maduro",
		"took him to a secure location",
	}

	merged := m.Merge(sentences)

	if len(merged) != 1 {
		t.Fatalf("Expected 1 merged claim, got %d: %v", len(merged), merged)
	}

	claim := merged[0]
	for _, fragment := range sentences {
		if !strings.Contains(claim, fragment) {
			t.Errorf("Merged claim missing fragment %q: %q", fragment, claim)
		}
	}

	// Original order must be preserved
	invaded := strings.Index(claim, "invaded Venezuela")
	captured := strings.Index(claim, "captured President")
	took := strings.Index(claim, "took him")
	if !(invaded < captured && captured < took) {
		t.Errorf("Fragments out of order in merged claim: %q", claim)
	}
}

func TestMerger_Merge_SharedProperNoun(t *testing.T) {
	m := NewMerger(model.DefaultLexicon())

	merged := m.Merge([]string{
		"Venezuela exported record oil volumes in March",
		"Venezuela also expanded its refinery capacity",
	})

	if len(merged) != 1 {
		t.Fatalf("Expected 1 merged claim, got %d: %v", len(merged), merged)
	}
}

func TestMerger_Merge_UnrelatedStayApart(t *testing.T) {
	m := NewMerger(model.DefaultLexicon())

	merged := m.Merge([]string{
		"Gold prices reached $3000 per ounce on Tuesday",
		"Canada signed a new trade agreement with Japan",
	})

	if len(merged) != 2 {
		t.Errorf("Expected 2 independent claims, got %d: %v", len(merged), merged)
	}
}

func TestMerger_Merge_Pronoun(t *testing.T) {
	m := NewMerger(model.DefaultLexicon())

	merged := m.Merge([]string{
		"Maria Corina won the national election on Sunday",
		"she claimed victory before official results were announced",
	})

	if len(merged) != 1 {
		t.Fatalf("Expected pronoun continuation to merge, got %d: %v", len(merged), merged)
	}
}

func TestMerger_Merge_SingleSentenceUntouched(t *testing.T) {
	m := NewMerger(model.DefaultLexicon())

	input := []string{"Gold prices reached $3000 per ounce on Tuesday"}
	merged := m.Merge(input)

	if len(merged) != 1 || merged[0] != input[0] {
		t.Errorf("Expected single sentence unchanged, got %v", merged)
	}
}
