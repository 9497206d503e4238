package intent

import (
	"testing"

	"github.com/factguard/factguard/internal/model"
)

func newTestClassifier() *Classifier {
	return NewClassifier(model.DefaultLexicon(), 10)
}

func TestClassifier_Classify_News(t *testing.T) {
	c := newTestClassifier()

	got := c.Classify("US attacked Venezuela yesterday and captured President Maduro")
	if got != model.IntentNewsOrViralClaim {
		t.Errorf("Expected news intent, got %s", got)
	}
}

func TestClassifier_Classify_StrongKeywordWithName(t *testing.T) {
	c := newTestClassifier()

	// one strong keyword plus a named entity is enough
	got := c.Classify("Nicolas Maduro arrested in dramatic overnight raid")
	if got != model.IntentNewsOrViralClaim {
		t.Errorf("Expected news intent, got %s", got)
	}
}

func TestClassifier_Classify_Opinion(t *testing.T) {
	c := newTestClassifier()

	got := c.Classify("I think this government is evil")
	if got != model.IntentOpinionCommentary {
		t.Errorf("Expected opinion intent, got %s", got)
	}
}

func TestClassifier_Classify_QuotedOpinionIsNews(t *testing.T) {
	c := newTestClassifier()

	// A quoted statement is checkable even when it contains opinion
	// markers
	got := c.Classify("Trump said the border wall must be finished this year")
	if got == model.IntentOpinionCommentary {
		t.Error("Expected quoted statement not to classify as opinion")
	}
}

func TestClassifier_Classify_TimeSensitive(t *testing.T) {
	c := newTestClassifier()

	got := c.Classify("Gold price today: $3000/oz")
	if got != model.IntentTimeSensitiveData {
		t.Errorf("Expected time-sensitive intent, got %s", got)
	}
}

func TestClassifier_Classify_Advertisement(t *testing.T) {
	c := newTestClassifier()

	got := c.Classify("buy now limited time offer on all winter jackets")
	if got != model.IntentAdvertisementOther {
		t.Errorf("Expected advertisement intent, got %s", got)
	}
}

func TestClassifier_Classify_Unreadable(t *testing.T) {
	c := newTestClassifier()

	for _, input := range []string{"", "xq3#", "ab cd"} {
		if got := c.Classify(input); got != model.IntentUnreadableText {
			t.Errorf("Expected unreadable for %q, got %s", input, got)
		}
	}
}
