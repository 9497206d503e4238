package route

import (
	"testing"

	"github.com/factguard/factguard/internal/model"
)

func newTestParser() *Parser {
	return NewParser(model.DefaultLexicon())
}

func containsAgent(agents []string, want string) bool {
	for _, a := range agents {
		if a == want {
			return true
		}
	}
	return false
}

func TestParser_Parse_JSON(t *testing.T) {
	p := newTestParser()

	raw := `Here is my analysis:
{"intent": "finance", "time_sensitive": true, "required_agents": ["finance_agent"], "reasoning": "commodity price claim"}`

	decision := p.Parse(raw)

	if decision.Intent != model.RoutingIntentFinance {
		t.Errorf("Expected finance intent, got %q", decision.Intent)
	}
	if !decision.TimeSensitive {
		t.Error("Expected time_sensitive true")
	}
	if len(decision.RequiredAgents) != 1 || decision.RequiredAgents[0] != model.AgentFinance {
		t.Errorf("Unexpected agents: %v", decision.RequiredAgents)
	}
	if decision.Reasoning != "commodity price claim" {
		t.Errorf("Unexpected reasoning: %q", decision.Reasoning)
	}
}

func TestParser_Parse_JSONInvalidIntent(t *testing.T) {
	p := newTestParser()

	// An unknown intent invalidates the JSON; keyword fallback applies
	raw := `{"intent": "weather", "required_agents": ["weather_agent"]}`
	decision := p.Parse(raw)

	if !model.ValidRoutingIntent(decision.Intent) {
		t.Errorf("Expected a valid fallback intent, got %q", decision.Intent)
	}
}

func TestParser_Parse_JSONMissingAgents(t *testing.T) {
	p := newTestParser()

	decision := p.Parse(`{"intent": "news", "reasoning": "event claim"}`)

	if !containsAgent(decision.RequiredAgents, model.AgentNews) {
		t.Errorf("Expected news agent to be filled in, got %v", decision.RequiredAgents)
	}
}

func TestParser_Parse_KeywordFallbackMixed(t *testing.T) {
	p := newTestParser()

	decision := p.Parse("The gold price forecast was reported yesterday by several outlets")

	if decision.Intent != model.RoutingIntentMixed {
		t.Errorf("Expected mixed intent, got %q", decision.Intent)
	}
	if !decision.TimeSensitive {
		t.Error("Expected time_sensitive true")
	}
	if !containsAgent(decision.RequiredAgents, model.AgentFinance) || !containsAgent(decision.RequiredAgents, model.AgentNews) {
		t.Errorf("Expected both agents, got %v", decision.RequiredAgents)
	}
}

func TestParser_Parse_KeywordFallbackFinance(t *testing.T) {
	p := newTestParser()

	decision := p.Parse("silver is trading above the historical market average")

	if decision.Intent != model.RoutingIntentFinance {
		t.Errorf("Expected finance intent, got %q", decision.Intent)
	}
	if containsAgent(decision.RequiredAgents, model.AgentNews) {
		t.Errorf("Did not expect news agent: %v", decision.RequiredAgents)
	}
}

func TestParser_Parse_NoSignal(t *testing.T) {
	p := newTestParser()

	// Nothing recognizable: label it general, consult everything,
	// assume recency matters
	decision := p.Parse("the sky over the lake looked unusual")

	if decision.Intent != model.RoutingIntentGeneral {
		t.Errorf("Expected general intent, got %q", decision.Intent)
	}
	if !decision.TimeSensitive {
		t.Error("Expected time_sensitive true for unknown claims")
	}
	if len(decision.RequiredAgents) != 2 {
		t.Errorf("Expected both agents, got %v", decision.RequiredAgents)
	}
}

func TestParser_Parse_ReasoningTruncated(t *testing.T) {
	p := newTestParser()

	long := make([]byte, 500)
	for i := range long {
		long[i] = 'a'
	}
	decision := p.Parse("news reported: " + string(long))

	if len(decision.Reasoning) > 200 {
		t.Errorf("Expected reasoning capped at 200 chars, got %d", len(decision.Reasoning))
	}
}
