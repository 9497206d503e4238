package model

// ImageIntent classifies the purpose of OCR-derived text.
// Classification is total: every input maps to exactly one value.
type ImageIntent string

const (
	IntentNewsOrViralClaim   ImageIntent = "news_or_viral_claim"
	IntentOpinionCommentary  ImageIntent = "opinion_or_commentary"
	IntentTimeSensitiveData  ImageIntent = "time_sensitive_data"
	IntentAdvertisementOther ImageIntent = "advertisement_or_other"
	IntentUnreadableText     ImageIntent = "unreadable_or_insufficient_text"
)

func (i ImageIntent) String() string {
	return string(i)
}

// Verifiable reports whether content with this intent may proceed to
// verification. Only news/viral content is eligible.
func (i ImageIntent) Verifiable() bool {
	return i == IntentNewsOrViralClaim
}

// Known routing intents produced by the planner or its keyword fallback.
const (
	RoutingIntentFinance = "finance"
	RoutingIntentNews    = "news"
	RoutingIntentEvents  = "events"
	RoutingIntentMixed   = "mixed"
	RoutingIntentGeneral = "general"
)

// Agent identifiers used in RoutingDecision.RequiredAgents.
const (
	AgentFinance = "finance_agent"
	AgentNews    = "news_agent"
)

// RoutingDecision is the structured dispatch instruction derived from the
// planner's free-text output. Produced once per claim, consumed once.
type RoutingDecision struct {
	Intent         string   `json:"intent"`
	TimeSensitive  bool     `json:"time_sensitive"`
	RequiredAgents []string `json:"required_agents"`
	Reasoning      string   `json:"reasoning"`
}

// ValidRoutingIntent reports whether s is one of the known routing intents.
func ValidRoutingIntent(s string) bool {
	switch s {
	case RoutingIntentFinance, RoutingIntentNews, RoutingIntentEvents,
		RoutingIntentMixed, RoutingIntentGeneral:
		return true
	}
	return false
}

// Verdict labels extracted from the consensus output.
const (
	VerdictSupported    = "SUPPORTED"
	VerdictFalse        = "FALSE"
	VerdictContradicted = "CONTRADICTED"
	VerdictUnsupported  = "UNSUPPORTED"
	VerdictUnverifiable = "UNVERIFIABLE"
	VerdictNotFactual   = "NOT FACTUAL"
	VerdictCannotVerify = "CANNOT VERIFY" // fallback when no label is found
)

// VerdictResult is the structured final outcome of a verification cycle.
// Immutable after formatting; every field has a non-empty default so a
// fully-defaulted result is still well-formed.
type VerdictResult struct {
	Verdict    string `json:"verdict"`
	Confidence string `json:"confidence"` // free-form label+score, or "N/A"
	Summary    string `json:"summary"`
	Sources    string `json:"sources"`
}
