// Package respond selects user-facing copy for non-verifiable
// outcomes. Rejection reasons and intent categories map to fixed
// templates so wording stays consistent across entry points.
package respond

import (
	"fmt"
	"strings"

	"github.com/factguard/factguard/internal/model"
)

// ForIntent returns the message shown when image content cannot be
// verified because of its classification
func ForIntent(intent model.ImageIntent) string {
	switch intent {
	case model.IntentOpinionCommentary:
		return "This looks like an opinion or commentary rather than a factual claim. " +
			"Opinions can't be fact-checked, but if there's a specific factual statement in it, send that on its own."
	case model.IntentTimeSensitiveData:
		return "This appears to be live data (prices, scores, weather). " +
			"Values like these change by the minute, so a point-in-time check would mislead more than help. " +
			"Check an official live source instead."
	case model.IntentAdvertisementOther:
		return "This looks like an advertisement or promotional content, which isn't something we fact-check. " +
			"If there's a factual claim inside it, send that as text."
	case model.IntentUnreadableText:
		return "We couldn't read enough text from this image to check anything. " +
			"Try a sharper screenshot, or type the claim out directly."
	default:
		return "We couldn't determine what kind of content this is. Try sending the claim as plain text."
	}
}

// ForRejection turns a completeness-gate rejection into user copy
func ForRejection(reason string) string {
	return fmt.Sprintf(
		"This doesn't look like a complete, checkable claim (%s). "+
			"Try sending a full sentence, for example: \"The US captured President Maduro yesterday\".",
		reason)
}

// NoClaims is shown when input passed every gate but produced no
// verifiable claims
func NoClaims() string {
	return "We couldn't find a verifiable factual claim in this text. " +
		"Statements of opinion, predictions, and questions can't be fact-checked."
}

// TooShort is shown for inputs below the minimum length
func TooShort() string {
	return "That's too short to contain a checkable claim. Send a complete sentence describing what you'd like verified."
}

// ForURLIssue maps a fetch problem to user copy
func ForURLIssue(kind URLIssueKind, host string) string {
	switch kind {
	case URLIssueSocialMedia:
		return fmt.Sprintf("Links from %s can't be fetched directly — the content usually requires a login. "+
			"Screenshot the post or paste its text instead.", host)
	case URLIssueMessaging:
		return "Messaging-app links point to private conversations we can't access. " +
			"Forward the message text instead."
	case URLIssuePaywall:
		return fmt.Sprintf("The article on %s appears to be behind a paywall. "+
			"Paste the claim you'd like checked as text.", host)
	case URLIssueLoginRequired:
		return fmt.Sprintf("%s requires a login to view this page. Paste the relevant text instead.", host)
	default:
		return fmt.Sprintf("We couldn't fetch readable content from %s. "+
			"The page may be down or blocking automated access. Paste the claim as text instead.", host)
	}
}

// Summarize renders a short header for a multi-claim report
func Summarize(total, supported, refuted int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Checked %d claim", total)
	if total != 1 {
		b.WriteString("s")
	}
	fmt.Fprintf(&b, ": %d supported, %d refuted, %d inconclusive.",
		supported, refuted, total-supported-refuted)
	return b.String()
}
