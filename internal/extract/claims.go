package extract

import (
	"strings"

	"github.com/factguard/factguard/internal/model"
	"github.com/factguard/factguard/internal/validate"
)

// Extractor runs the full claim extraction pipeline over raw text:
// segment, filter, merge, then gate for completeness
type Extractor struct {
	segmenter *Segmenter
	merger    *Merger
	gate      *validate.Gate
	maxClaims int
}

// NewExtractor creates an extractor from the given configuration
func NewExtractor(lexicon model.Lexicon, extraction model.ExtractionConfig) *Extractor {
	maxClaims := extraction.MaxClaims
	if maxClaims <= 0 {
		maxClaims = 5
	}
	return &Extractor{
		segmenter: NewSegmenter(lexicon, extraction.MinSentenceLength, extraction.MinFactualLength),
		merger:    NewMerger(lexicon),
		gate:      validate.NewGate(lexicon),
		maxClaims: maxClaims,
	}
}

// Extract derives validated claims from raw text. Inputs under 10
// characters yield an empty set; this never fails.
func (e *Extractor) Extract(text string) []model.Claim {
	if len(strings.TrimSpace(text)) < 10 {
		return nil
	}

	sentences := e.segmenter.Sentences(text)
	originals := make(map[string]bool, len(sentences))
	for _, s := range sentences {
		originals[s] = true
	}
	merged := e.merger.Merge(sentences)

	var claims []model.Claim
	for i, candidate := range merged {
		if admission := e.gate.Check(candidate); !admission.OK {
			continue
		}
		heuristic := "sentence"
		if !originals[candidate] {
			heuristic = "merged"
		}
		claims = append(claims, model.Claim{
			Text:      strings.TrimSpace(candidate),
			Heuristic: heuristic,
			Sentence:  i,
		})
		if len(claims) >= e.maxClaims {
			break
		}
	}

	return dedupeClaims(claims)
}

// Texts is a convenience wrapper returning only the claim strings
func (e *Extractor) Texts(text string) []string {
	claims := e.Extract(text)
	out := make([]string, 0, len(claims))
	for _, c := range claims {
		out = append(out, c.Text)
	}
	return out
}

// dedupeClaims removes duplicate claims, case-insensitively
func dedupeClaims(claims []model.Claim) []model.Claim {
	seen := make(map[string]bool)
	var unique []model.Claim

	for _, claim := range claims {
		key := strings.ToLower(strings.TrimSpace(claim.Text))
		if !seen[key] {
			seen[key] = true
			unique = append(unique, claim)
		}
	}

	return unique
}
