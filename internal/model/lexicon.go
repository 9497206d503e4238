package model

// Lexicon holds the word lists driving the rule-based text pipeline.
// It is immutable configuration data injected into each component at
// construction, so tests can substitute vocabularies in isolation.
type Lexicon struct {
	// Factuality filter
	OpinionWords    []string `yaml:"opinion_words"`
	PredictionWords []string `yaml:"prediction_words"`
	PhilosophyWords []string `yaml:"philosophy_words"`
	SubjectiveWords []string `yaml:"subjective_words"`
	RhetoricWords   []string `yaml:"rhetoric_words"`

	// Fragment merger
	Pronouns          []string `yaml:"pronouns"`
	ContinuationWords []string `yaml:"continuation_words"`
	ContinuationVerbs []string `yaml:"continuation_verbs"`

	// Completeness gate
	MidPhraseEndings []string `yaml:"mid_phrase_endings"`
	VerbPatterns     []string `yaml:"verb_patterns"`
	FragmentStarters []string `yaml:"fragment_starters"`

	// Image intent classifier
	NewsKeywords       []string `yaml:"news_keywords"`
	StrongNewsKeywords []string `yaml:"strong_news_keywords"`
	PriceIndicators    []string `yaml:"price_indicators"`
	OpinionIndicators  []string `yaml:"opinion_indicators"`
	QuotingVerbs       []string `yaml:"quoting_verbs"`
	AdIndicators       []string `yaml:"ad_indicators"`

	// Routing fallback
	FinanceVocab []string `yaml:"finance_vocab"`
	NewsVocab    []string `yaml:"news_vocab"`
	RecencyVocab []string `yaml:"recency_vocab"`
}

// DefaultLexicon returns the built-in vocabulary lists
func DefaultLexicon() Lexicon {
	return Lexicon{
		OpinionWords: []string{
			"think", "believe", "feel", "should", "must", "best", "worst",
			"opinion", "suggests", "may", "could", "might",
		},
		PredictionWords: []string{
			"will", "going to", "shall", "would", "won't", "gonna",
		},
		PhilosophyWords: []string{
			"existence", "consciousness", "reality", "truth", "meaning",
			"purpose", "ethics", "morality", "justice", "virtue",
			"what is life", "why do we", "human nature",
		},
		SubjectiveWords: []string{
			"better", "worse", "superior", "inferior", "greatest", "worst",
		},
		RhetoricWords: []string{
			"fight", "destroy", "evil", "hero", "enemy",
		},

		Pronouns: []string{
			"he", "she", "they", "it", "them", "him", "her",
		},
		ContinuationWords: []string{
			"and", "or", "but",
		},
		ContinuationVerbs: []string{
			"captured", "took", "said", "arrested",
		},

		MidPhraseEndings: []string{
			"was born in", "according to", "said that", "reported that",
			"announced that", "stated that", "claims that", "believes that",
			"increased by", "decreased by",
			"in the", "on the", "at the", "from the", "by the", "to the",
			"of the", "and the", "with a", "for a", "as a", "is a", "was a",
		},
		VerbPatterns: []string{
			`\b(is|are|was|were|has|have|had|will|would|can|could|did|does)\b`,
			`\b(announced|reported|confirmed|denied|stated|claimed)\b`,
			`\b(increased|decreased|rose|fell|reached|hit|surged)\b`,
			`\b(attacked|invaded|captured|arrested|killed|injured)\b`,
			`\b(signed|passed|approved|rejected|banned|authorized)\b`,
		},
		FragmentStarters: []string{
			"and", "or", "but", "because", "since", "while", "although",
		},

		NewsKeywords: []string{
			"attacked", "arrested", "captured", "killed", "injured", "shot",
			"announced", "confirmed", "reported", "breaking", "news",
			"filed case", "charged", "convicted", "sentenced",
			"president", "minister", "government", "military", "army",
			"police", "court", "department", "official",
			"yesterday", "today", "just in", "alert",
			"incident", "case", "investigation",
		},
		StrongNewsKeywords: []string{
			"attacked", "arrested", "captured", "killed", "breaking news",
		},
		PriceIndicators: []string{
			"price", "stock", "rate", "₹", "$", "€", "gold", "silver",
			"market", "trading", "high:", "low:", "open:", "close:",
		},
		OpinionIndicators: []string{
			"i think", "i believe", "in my opinion", "i feel",
			"this is evil", "this is good", "this is bad",
			"will destroy", "will save", "should", "must",
		},
		QuotingVerbs: []string{
			"said", "stated", "announced", "reported",
		},
		AdIndicators: []string{
			"buy now", "sale", "offer", "discount", "limited time",
			"call now", "visit", "www.", ".com", "download app",
		},

		FinanceVocab: []string{
			"stock", "price", "gold", "silver", "forex", "market", "financial",
		},
		NewsVocab: []string{
			"news", "announced", "reported", "article", "publication",
		},
		RecencyVocab: []string{
			"yesterday", "today", "recent", "latest", "current", "now",
		},
	}
}
