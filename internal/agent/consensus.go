package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/factguard/factguard/internal/model"
	"github.com/factguard/factguard/internal/verdict"
)

const consensusSystem = "You are a fact-verification judge. Weigh the gathered evidence " +
	"against the claim and deliver a verdict. Cite only the evidence provided."

const maxEvidenceChars = 2000

// Consensus produces a final verdict from a claim and its gathered
// evidence. With no provider configured it returns a conservative
// CANNOT VERIFY result built from the evidence it has.
type Consensus struct {
	provider Provider
}

// NewConsensus creates a new Consensus agent. provider may be nil.
func NewConsensus(provider Provider) *Consensus {
	return &Consensus{provider: provider}
}

// Conclude renders a verdict for the claim. The raw provider output is
// run through the verdict extractor, so malformed responses still
// yield a well-formed result.
func (c *Consensus) Conclude(ctx context.Context, claim string, evidence []model.EvidenceSource) (model.VerdictResult, error) {
	if c.provider == nil {
		return offlineVerdict(evidence), nil
	}

	resp, err := c.provider.Complete(ctx, CompletionRequest{
		System: consensusSystem,
		Prompt: buildConsensusPrompt(claim, evidence),
	})
	if err != nil {
		return offlineVerdict(evidence), fmt.Errorf("consensus: %w", err)
	}

	return verdict.Extract(resp.Text), nil
}

func buildConsensusPrompt(claim string, evidence []model.EvidenceSource) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Claim to verify:\n\"%s\"\n\nEvidence gathered:\n", claim)

	if len(evidence) == 0 {
		b.WriteString("(no evidence could be gathered)\n")
	}
	for i, ev := range evidence {
		content := ev.Content
		if len(content) > maxEvidenceChars {
			content = content[:maxEvidenceChars] + "..."
		}
		fmt.Fprintf(&b, "\n[%d] %s (%s", i+1, ev.SourceName, ev.SourceType)
		if ev.Credibility != "" {
			fmt.Fprintf(&b, ", credibility %s", ev.Credibility)
		}
		fmt.Fprintf(&b, ")\n%s\n", content)
		if ev.URL != "" {
			fmt.Fprintf(&b, "URL: %s\n", ev.URL)
		}
	}

	b.WriteString(`
Respond in exactly this format:

VERDICT: [SUPPORTED|FALSE|CONTRADICTED|UNSUPPORTED|UNVERIFIABLE|NOT FACTUAL]
CONFIDENCE: [0.0-1.0]
SUMMARY OF FINDINGS: [2-3 sentences weighing the evidence]
EVIDENCE SOURCES: [the sources above that informed your verdict]
`)

	return b.String()
}

// offlineVerdict is the degraded result when no reasoning provider is
// available. It never claims support or refutation.
func offlineVerdict(evidence []model.EvidenceSource) model.VerdictResult {
	summary := "No reasoning provider is configured, so the evidence could not be weighed."
	sources := "No sources cited."
	if len(evidence) > 0 {
		var names []string
		for _, ev := range evidence {
			names = append(names, ev.SourceName)
		}
		summary = fmt.Sprintf("Evidence was gathered from %d source(s) but no reasoning provider is configured to weigh it.", len(evidence))
		sources = strings.Join(names, ", ")
	}
	return model.VerdictResult{
		Verdict:    model.VerdictCannotVerify,
		Confidence: "N/A",
		Summary:    summary,
		Sources:    sources,
	}
}
