package agent

import (
	"context"
	"fmt"
	"os"

	"github.com/factguard/factguard/internal/model"
	"github.com/factguard/factguard/internal/route"
)

const plannerSystem = "You are a routing planner for a fact-verification system. " +
	"Given a claim, decide which evidence agents must check it."

const plannerPromptTemplate = `Analyze this claim and decide how to route it:

"%s"

Respond with a JSON object:
{"intent": "finance|news|events|mixed|general", "time_sensitive": true|false, "required_agents": ["finance_agent", "news_agent"], "reasoning": "one sentence"}

Use finance_agent for market prices, stocks, and commodities. Use news_agent for events, statements, and anything reported by media. Use both when the claim spans domains.`

// Planner produces a routing decision for a claim. With no provider
// configured it falls back to keyword analysis of the claim itself.
type Planner struct {
	provider Provider
	parser   *route.Parser
	verbose  bool
}

// NewPlanner creates a new Planner. provider may be nil.
func NewPlanner(provider Provider, parser *route.Parser, verbose bool) *Planner {
	return &Planner{provider: provider, parser: parser, verbose: verbose}
}

// Plan decides which agents should verify the claim. Provider errors
// degrade to the keyword fallback rather than failing the claim.
func (p *Planner) Plan(ctx context.Context, claim string) model.RoutingDecision {
	if p.provider == nil {
		return p.parser.Parse(claim)
	}

	resp, err := p.provider.Complete(ctx, CompletionRequest{
		System: plannerSystem,
		Prompt: fmt.Sprintf(plannerPromptTemplate, claim),
	})
	if err != nil {
		if p.verbose {
			fmt.Fprintf(os.Stderr, "Planner fell back to keyword routing: %v\n", err)
		}
		return p.parser.Parse(claim)
	}

	decision := p.parser.Parse(resp.Text)

	// A planner response with no recognizable routing signal means the
	// parser analyzed the model's prose, not the claim; re-anchor on
	// the claim text itself
	if decision.Reasoning == "" {
		return p.parser.Parse(claim)
	}
	return decision
}
