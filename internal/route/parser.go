// Package route turns planner output into a routing decision that
// names the agents a claim needs.
package route

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/factguard/factguard/internal/model"
	"github.com/factguard/factguard/internal/util"
)

var jsonBlockRe = regexp.MustCompile(`\{[^{}]*\}`)

const maxReasoningLen = 200

// Parser extracts a routing decision from free-form planner text.
// A well-formed JSON object wins; otherwise keyword matching over the
// raw text produces a best-effort decision.
type Parser struct {
	lexicon model.Lexicon
}

// NewParser creates a new Parser
func NewParser(lexicon model.Lexicon) *Parser {
	return &Parser{lexicon: lexicon}
}

// Parse never fails: unparseable input falls through to the keyword
// heuristic, and the zero case yields a general decision that still
// consults every agent
func (p *Parser) Parse(raw string) model.RoutingDecision {
	if decision, ok := p.parseJSON(raw); ok {
		return decision
	}
	return p.parseKeywords(raw)
}

func (p *Parser) parseJSON(raw string) (model.RoutingDecision, bool) {
	block := jsonBlockRe.FindString(raw)
	if block == "" {
		return model.RoutingDecision{}, false
	}

	var decision model.RoutingDecision
	if err := json.Unmarshal([]byte(block), &decision); err != nil {
		return model.RoutingDecision{}, false
	}
	if !model.ValidRoutingIntent(decision.Intent) {
		return model.RoutingDecision{}, false
	}

	decision.RequiredAgents = dedupeAgents(decision.RequiredAgents)
	if len(decision.RequiredAgents) == 0 {
		decision.RequiredAgents = agentsForIntent(decision.Intent)
	}
	decision.Reasoning = truncate(decision.Reasoning, maxReasoningLen)
	return decision, true
}

// parseKeywords scans the raw text for domain vocabulary. Financial
// and news signals together escalate to mixed; no signal at all routes
// everywhere so the claim is never silently dropped.
func (p *Parser) parseKeywords(raw string) model.RoutingDecision {
	lower := strings.ToLower(raw)

	hasFinance := util.ContainsAnyWord(lower, p.lexicon.FinanceVocab)
	hasNews := util.ContainsAnyWord(lower, p.lexicon.NewsVocab)
	hasRecency := util.ContainsAnyWord(lower, p.lexicon.RecencyVocab)

	decision := model.RoutingDecision{
		TimeSensitive: hasRecency,
		Reasoning:     truncate(strings.TrimSpace(raw), maxReasoningLen),
	}

	switch {
	case hasFinance && hasNews:
		decision.Intent = model.RoutingIntentMixed
		decision.RequiredAgents = []string{model.AgentFinance, model.AgentNews}
	case hasFinance:
		decision.Intent = model.RoutingIntentFinance
		decision.RequiredAgents = []string{model.AgentFinance}
	case hasNews:
		decision.Intent = model.RoutingIntentNews
		decision.RequiredAgents = []string{model.AgentNews}
	default:
		// Unknown territory: label it honestly, but still consult both
		// agents and mark the claim time-sensitive so stale evidence is
		// not trusted
		decision.Intent = model.RoutingIntentGeneral
		decision.TimeSensitive = true
		decision.RequiredAgents = []string{model.AgentFinance, model.AgentNews}
	}

	return decision
}

func agentsForIntent(intent string) []string {
	switch intent {
	case model.RoutingIntentFinance:
		return []string{model.AgentFinance}
	case model.RoutingIntentNews:
		return []string{model.AgentNews}
	default:
		return []string{model.AgentFinance, model.AgentNews}
	}
}

func dedupeAgents(agents []string) []string {
	seen := make(map[string]bool, len(agents))
	var out []string
	for _, a := range agents {
		a = strings.TrimSpace(a)
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
