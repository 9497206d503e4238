package model

// Claim represents a factual assertion extracted from raw text
type Claim struct {
	Text      string `json:"text"`                // The claim text itself
	Heuristic string `json:"heuristic,omitempty"` // Which extraction rule produced it (e.g., "merged:pronoun")
	Sentence  int    `json:"sentence,omitempty"`  // Index of the first source sentence (0-based)
}

// Admission is the outcome of the completeness gate for a candidate claim.
// Rejection is a value, not an error: callers use Reason to build a
// user-facing explanation instead of failing.
type Admission struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// Admit returns a positive admission
func Admit() Admission {
	return Admission{OK: true}
}

// Reject returns a negative admission with the given reason
func Reject(reason string) Admission {
	return Admission{OK: false, Reason: reason}
}
