// Package intent classifies OCR text from screenshots and rebuilds
// fragmented lines into checkable claims.
package intent

import (
	"strings"

	"github.com/factguard/factguard/internal/model"
	"github.com/factguard/factguard/internal/util"
)

// Classifier assigns an image intent category to OCR text using
// keyword scoring. Rules are ordered so that stronger signals win.
type Classifier struct {
	lexicon model.Lexicon
	minLen  int
}

// NewClassifier creates a new Classifier
func NewClassifier(lexicon model.Lexicon, minReadableLen int) *Classifier {
	if minReadableLen <= 0 {
		minReadableLen = 10
	}
	return &Classifier{lexicon: lexicon, minLen: minReadableLen}
}

// Classify determines what kind of content the OCR text represents
func (c *Classifier) Classify(ocrText string) model.ImageIntent {
	text := strings.TrimSpace(ocrText)
	if len(text) < c.minLen {
		return model.IntentUnreadableText
	}

	lower := strings.ToLower(text)

	newsScore := util.CountMatches(lower, c.lexicon.NewsKeywords)
	priceScore := util.CountMatches(lower, c.lexicon.PriceIndicators)
	opinionScore := util.CountMatches(lower, c.lexicon.OpinionIndicators)
	adScore := util.CountMatches(lower, c.lexicon.AdIndicators)

	hasProperNoun := util.HasProperNoun(text)
	hasStrongNews := util.ContainsAnyWord(lower, c.lexicon.StrongNewsKeywords)
	isQuoting := util.ContainsAnyWord(lower, c.lexicon.QuotingVerbs)

	// Multiple news markers plus a named entity is the clearest signal
	if newsScore >= 2 && hasProperNoun {
		return model.IntentNewsOrViralClaim
	}

	// A single strong keyword (breaking, exclusive, ...) with a name
	// is enough on its own
	if hasStrongNews && hasProperNoun {
		return model.IntentNewsOrViralClaim
	}

	if priceScore >= 2 {
		return model.IntentTimeSensitiveData
	}

	// Pure opinion only when nobody is being quoted and no named
	// entity appears: "Trump said X" is a checkable claim about a
	// statement, not commentary. One first-person marker is decisive
	// once the news and price rules have not fired.
	if opinionScore >= 1 && !isQuoting && !hasProperNoun {
		return model.IntentOpinionCommentary
	}

	if adScore >= 2 {
		return model.IntentAdvertisementOther
	}

	// Substantial text about a named entity defaults to news
	if hasProperNoun && len(text) > 30 {
		return model.IntentNewsOrViralClaim
	}

	return model.IntentAdvertisementOther
}
