// Package verdict extracts a structured result from free-form
// verification output and renders it for display.
package verdict

import (
	"regexp"
	"strings"

	"github.com/factguard/factguard/internal/model"
	"github.com/factguard/factguard/internal/util"
)

var (
	verdictRe = regexp.MustCompile(`(?i)(?:VERDICT|CONCLUSION|RESULT)[:\s\*]+(SUPPORTED|FALSE|CONTRADICTED|UNSUPPORTED|NOT FACTUAL|UNVERIFIABLE|CANNOT VERIFY|VERIFIED|PARTIALLY TRUE)`)
	confidenceRe = regexp.MustCompile(`(?i)(?:CONFIDENCE|SCORE)[:\s\*]+([^\n]+)`)
	summaryRe    = regexp.MustCompile(`(?i)(?:SUMMARY OF FINDINGS|EXPLANATION|SUMMARY)[:\s\*]+`)
	sourcesRe    = regexp.MustCompile(`(?i)(?:EVIDENCE SOURCES|SOURCES|REFERENCES)[:\s\*]+`)
	notesRe      = regexp.MustCompile(`(?i)(?:ADDITIONAL NOTES|NOTES)[:\s\*]+`)
	headerLineRe = regexp.MustCompile(`(?i)^\s*(?:Verdict|Conclusion|Result|Confidence|Score|Summary)[:\*]`)

	sourcesBlockRe = regexp.MustCompile(`(?im)^\s*\**(?:EVIDENCE SOURCES|SOURCES|REFERENCES)[:\*]`)
)

// Defaults used when a field cannot be recovered from the text.
const (
	defaultConfidence = "N/A"
	defaultSummary    = "No summary provided."
	defaultSources    = "No sources cited."
)

// Extract recovers a structured verdict from raw verification text.
// Extraction is total: every field falls back to a safe default, so
// garbage input yields a well-formed CANNOT VERIFY result rather than
// an error.
func Extract(raw string) model.VerdictResult {
	return model.VerdictResult{
		Verdict:    extractVerdict(raw),
		Confidence: extractConfidence(raw),
		Summary:    extractSummary(raw),
		Sources:    extractSources(raw),
	}
}

func extractVerdict(raw string) string {
	m := verdictRe.FindStringSubmatch(raw)
	if m == nil {
		return model.VerdictCannotVerify
	}
	return canonicalVerdict(m[1])
}

// canonicalVerdict folds synonym labels into the canonical set
func canonicalVerdict(label string) string {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "VERIFIED", "PARTIALLY TRUE", model.VerdictSupported:
		return model.VerdictSupported
	case model.VerdictFalse:
		return model.VerdictFalse
	case model.VerdictContradicted:
		return model.VerdictContradicted
	case model.VerdictUnsupported:
		return model.VerdictUnsupported
	case model.VerdictUnverifiable:
		return model.VerdictUnverifiable
	case model.VerdictNotFactual:
		return model.VerdictNotFactual
	default:
		return model.VerdictCannotVerify
	}
}

func extractConfidence(raw string) string {
	if m := confidenceRe.FindStringSubmatch(raw); m != nil {
		value := strings.TrimSpace(strings.Trim(m[1], "* "))
		if value != "" {
			return value
		}
	}
	// A bare decimal anywhere in the text is better than nothing
	if dec := util.FirstDecimal(raw); dec != "" {
		return dec
	}
	return defaultConfidence
}

func extractSummary(raw string) string {
	parts := summaryRe.Split(raw, 2)
	if len(parts) == 2 {
		summary := parts[1]
		// Stop at the sources section if one follows
		if tail := sourcesRe.Split(summary, 2); len(tail) == 2 {
			summary = tail[0]
		}
		if summary = cleanSection(summary); summary != "" {
			return summary
		}
	}

	// No labelled section: take the first substantial paragraph that
	// is not itself a sources block
	for _, para := range strings.Split(raw, "\n\n") {
		if sourcesBlockRe.MatchString(para) {
			continue
		}
		para = cleanSection(para)
		if len(para) > 50 {
			return para
		}
	}
	return defaultSummary
}

func extractSources(raw string) string {
	parts := sourcesRe.Split(raw, 2)
	if len(parts) != 2 {
		return defaultSources
	}
	sources := parts[1]
	if tail := notesRe.Split(sources, 2); len(tail) == 2 {
		sources = tail[0]
	}
	if sources = cleanSection(sources); sources != "" {
		return sources
	}
	return defaultSources
}

// cleanSection trims a section body and drops lines that merely
// restate a header from elsewhere in the output
func cleanSection(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if headerLineRe.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
