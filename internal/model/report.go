package model

import "time"

// VerificationReport is the complete outcome of one verification request.
// Claims, routing decisions and verdicts are created, consumed, and
// discarded per request; nothing here is persisted.
type VerificationReport struct {
	Input     string        `json:"input"`
	InputType string        `json:"input_type"` // "text", "url", "image"
	Source    string        `json:"source,omitempty"`
	Title     string        `json:"title,omitempty"`
	Claims    []ClaimResult `json:"claims,omitempty"`

	// Message carries the friendly explanation when nothing was verifiable
	// (rejected claim, non-news image, empty extraction). Empty otherwise.
	Message string `json:"message,omitempty"`

	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// Verified reports whether at least one claim reached a verdict
func (r *VerificationReport) Verified() bool {
	return len(r.Claims) > 0
}

// ClaimResult holds the per-claim verification trail
type ClaimResult struct {
	Claim    string           `json:"claim"`
	Routing  RoutingDecision  `json:"routing"`
	Evidence []EvidenceSource `json:"evidence,omitempty"`
	Verdict  VerdictResult    `json:"verdict"`
	Rendered string           `json:"rendered,omitempty"` // display-ready text block
}

// EvidenceSource describes a single piece of gathered evidence
type EvidenceSource struct {
	SourceName  string `json:"source_name"`           // e.g. "Reuters", "Alpha Vantage"
	SourceType  string `json:"source_type"`           // e.g. "News", "Market Data"
	Content     string `json:"content"`               // relevant excerpt or data
	URL         string `json:"url,omitempty"`
	Date        string `json:"date,omitempty"` // publication or data date
	Credibility string `json:"credibility,omitempty"`
}
