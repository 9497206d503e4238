// Package validate implements the completeness gate: the last line of
// defense before verification. It is deliberately conservative - fragment
// verification produces misleading results, so obvious truncation is
// hard-blocked while well-formed public-interest statements pass.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/factguard/factguard/internal/model"
	"github.com/factguard/factguard/internal/util"
)

// Gate classifies candidate claims as admissible or not, with a
// human-readable reason on rejection. Check never returns an error:
// rejection is a value.
type Gate struct {
	lexicon model.Lexicon
	verbs   []*regexp.Regexp
}

// NewGate creates a completeness gate with the given vocabulary
func NewGate(lexicon model.Lexicon) *Gate {
	verbs := make([]*regexp.Regexp, 0, len(lexicon.VerbPatterns))
	for _, pattern := range lexicon.VerbPatterns {
		if re, err := regexp.Compile(pattern); err == nil {
			verbs = append(verbs, re)
		}
	}
	return &Gate{lexicon: lexicon, verbs: verbs}
}

// Check runs the two-stage completeness check, short-circuiting at the
// first failure. Text beginning with a URI scheme is always admitted;
// completeness of linked content is the fetcher's responsibility.
func (g *Gate) Check(claim string) model.Admission {
	claim = strings.TrimSpace(claim)

	lower := strings.ToLower(claim)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "www.") {
		return model.Admit()
	}

	// Stage 1: truncation gate (hard fail)
	if truncated, reason := g.isTruncated(claim); truncated {
		return model.Reject("text appears incomplete: " + reason)
	}

	// Stage 2: structural gate
	if util.WordCount(claim) < 3 {
		return model.Reject("claim is too short")
	}

	if !g.hasVerb(lower) {
		return model.Reject("missing action verb - appears to be a fragment")
	}

	first := util.FirstWord(claim)
	for _, conj := range g.lexicon.FragmentStarters {
		if first == conj {
			return model.Reject("appears to be a sentence fragment, not a complete claim")
		}
	}

	return model.Admit()
}

// isTruncated detects mid-phrase truncation, the common failure mode of
// OCR and clipped copy-paste
func (g *Gate) isTruncated(claim string) (bool, string) {
	lower := strings.ToLower(claim)

	for _, ending := range g.lexicon.MidPhraseEndings {
		if strings.HasSuffix(lower, ending) {
			return true, fmt.Sprintf("ends with %q", ending)
		}
	}

	if util.WordCount(claim) < 3 && !strings.HasSuffix(claim, ".") &&
		!strings.HasSuffix(claim, "!") && !strings.HasSuffix(claim, "?") &&
		!strings.HasSuffix(claim, "%") {
		return true, "too short and lacks semantic closure"
	}

	return false, ""
}

func (g *Gate) hasVerb(lower string) bool {
	for _, re := range g.verbs {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}
