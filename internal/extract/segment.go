// Package extract implements the rule-based claim extraction pipeline:
// sentence segmentation, factuality filtering, and fragment merging.
// All components are pure functions over immutable input strings.
package extract

import (
	"strings"

	"github.com/factguard/factguard/internal/model"
	"github.com/factguard/factguard/internal/util"
)

// Segmenter splits raw text into candidate sentences and filters them to
// those likely to express a checkable fact
type Segmenter struct {
	lexicon     model.Lexicon
	minSentence int
	minFactual  int
}

// NewSegmenter creates a segmenter with the given vocabulary and length
// thresholds. Zero thresholds fall back to the defaults (25 and 30).
func NewSegmenter(lexicon model.Lexicon, minSentence, minFactual int) *Segmenter {
	if minSentence <= 0 {
		minSentence = 25
	}
	if minFactual <= 0 {
		minFactual = 30
	}
	return &Segmenter{
		lexicon:     lexicon,
		minSentence: minSentence,
		minFactual:  minFactual,
	}
}

// Split splits raw text into candidate sentences on terminal punctuation
// and line breaks, discarding results below the minimum length.
// Original order is preserved for downstream merging.
func (s *Segmenter) Split(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		if len(sentence) > s.minSentence {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	for _, r := range text {
		switch r {
		case '.', '!', '?', '\n':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return sentences
}

// FilterFactual keeps only sentences that pass every negative lexical
// filter AND exhibit at least one supporting signal (numeral, 4-digit
// year, or proper-noun token). Absence of red flags alone is not enough.
func (s *Segmenter) FilterFactual(sentences []string) []string {
	var factual []string
	for _, sentence := range sentences {
		if s.isFactual(sentence) {
			factual = append(factual, sentence)
		}
	}
	return factual
}

// Sentences runs Split and FilterFactual in sequence
func (s *Segmenter) Sentences(text string) []string {
	return s.FilterFactual(s.Split(text))
}

func (s *Segmenter) isFactual(sentence string) bool {
	if len(sentence) < s.minFactual {
		return false
	}

	// Questions are never checkable facts
	if strings.HasSuffix(strings.TrimSpace(sentence), "?") {
		return false
	}

	if util.ContainsAnyWord(sentence, s.lexicon.OpinionWords) {
		return false
	}
	if util.ContainsAnyWord(sentence, s.lexicon.PredictionWords) {
		return false
	}
	if util.ContainsAnyWord(sentence, s.lexicon.PhilosophyWords) {
		return false
	}

	// Subjective comparatives are allowed when backed by a numeral:
	// comparison with data is treated as factual
	if !util.HasNumber(sentence) && util.ContainsAnyWord(sentence, s.lexicon.SubjectiveWords) {
		return false
	}

	if util.ContainsAnyWord(sentence, s.lexicon.RhetoricWords) {
		return false
	}

	// Positive evidence of factual shape is required
	return util.HasNumber(sentence) || util.HasYear(sentence) || util.HasProperNoun(sentence)
}
