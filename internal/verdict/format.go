package verdict

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/factguard/factguard/internal/model"
	"github.com/factguard/factguard/internal/util"
)

// ConfidenceBand converts a confidence value into a coarse label.
// Free-form text that contains no score maps to Unknown.
func ConfidenceBand(confidence string) string {
	dec := util.FirstDecimal(confidence)
	if dec == "" {
		return "Unknown"
	}
	score, err := strconv.ParseFloat(dec, 64)
	if err != nil {
		return "Unknown"
	}
	switch {
	case score >= 0.8:
		return "High"
	case score >= 0.5:
		return "Medium"
	default:
		return "Low"
	}
}

// Format renders a verdict result as a display block
func Format(claim string, result model.VerdictResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", verdictEmoji(result.Verdict), result.Verdict)
	fmt.Fprintf(&b, "Claim: %s\n\n", claim)
	fmt.Fprintf(&b, "Confidence: %s (%s)\n\n", result.Confidence, ConfidenceBand(result.Confidence))
	fmt.Fprintf(&b, "Summary:\n%s\n", result.Summary)
	if result.Sources != defaultSources {
		fmt.Fprintf(&b, "\nSources:\n%s\n", result.Sources)
	}

	return b.String()
}

func verdictEmoji(verdict string) string {
	switch verdict {
	case model.VerdictSupported:
		return "✅"
	case model.VerdictFalse, model.VerdictContradicted:
		return "❌"
	case model.VerdictNotFactual:
		return "💬"
	default:
		return "⚠️"
	}
}
