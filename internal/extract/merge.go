package extract

import (
	"strings"

	"github.com/factguard/factguard/internal/model"
	"github.com/factguard/factguard/internal/util"
)

// Merger recombines sentence fragments that continue the same narrative
// into single claims, preserving original left-to-right order
type Merger struct {
	lexicon model.Lexicon
}

// NewMerger creates a merger with the given vocabulary
func NewMerger(lexicon model.Lexicon) *Merger {
	return &Merger{lexicon: lexicon}
}

// Merge processes sentences left to right. Each unconsumed sentence
// becomes an anchor that greedily collects every later unconsumed
// sentence directly related to it. Consumed continuations are never
// re-examined as anchors; relation is not chained transitively.
func (m *Merger) Merge(sentences []string) []string {
	if len(sentences) <= 1 {
		return sentences
	}

	var merged []string
	consumed := make(map[int]bool)

	for i, anchor := range sentences {
		if consumed[i] {
			continue
		}

		related := []string{anchor}
		for j := i + 1; j < len(sentences); j++ {
			if consumed[j] {
				continue
			}
			if m.related(anchor, sentences[j]) {
				related = append(related, sentences[j])
				consumed[j] = true
			}
		}

		if len(related) > 1 {
			merged = append(merged, m.join(related))
		} else {
			merged = append(merged, anchor)
		}
	}

	return merged
}

// related reports whether later plausibly continues the narrative of
// earlier: shared proper-noun token, an anaphoric third-person pronoun,
// or a subject-less continuation opening (conjunction or narrative verb).
func (m *Merger) related(earlier, later string) bool {
	nouns := make(map[string]bool)
	for _, n := range util.ProperNouns(earlier) {
		nouns[n] = true
	}
	for _, n := range util.ProperNouns(later) {
		if nouns[n] {
			return true
		}
	}

	for _, p := range m.lexicon.Pronouns {
		if util.ContainsWord(later, p) {
			return true
		}
	}

	// A fragment opening with a conjunction or a bare narrative verb has
	// no subject of its own and refers back to the anchor
	first := util.FirstWord(later)
	for _, w := range m.lexicon.ContinuationWords {
		if first == w {
			return true
		}
	}
	for _, v := range m.lexicon.ContinuationVerbs {
		if first == v {
			return true
		}
	}

	return false
}

// join concatenates related fragments in original order into one claim.
// Continuations that already open with a conjunction or narrative verb
// are appended directly; everything else is joined with "and".
func (m *Merger) join(fragments []string) string {
	base := fragments[0]

	for _, frag := range fragments[1:] {
		first := util.FirstWord(frag)
		direct := false
		for _, w := range m.lexicon.ContinuationWords {
			if first == w {
				direct = true
				break
			}
		}
		if !direct {
			for _, v := range m.lexicon.ContinuationVerbs {
				if first == v {
					direct = true
					break
				}
			}
		}

		if direct {
			base = strings.TrimRight(base, ".") + " " + frag
		} else {
			base = strings.TrimRight(base, ".") + " and " + frag
		}
	}

	return base
}
