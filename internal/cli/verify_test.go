package cli

import (
	"testing"

	"github.com/factguard/factguard/internal/model"
)

func TestCountVerdicts(t *testing.T) {
	claims := []model.ClaimResult{
		{Verdict: model.VerdictResult{Verdict: model.VerdictSupported}},
		{Verdict: model.VerdictResult{Verdict: model.VerdictFalse}},
		{Verdict: model.VerdictResult{Verdict: model.VerdictContradicted}},
		{Verdict: model.VerdictResult{Verdict: model.VerdictCannotVerify}},
	}

	supported, refuted := countVerdicts(claims)

	if supported != 1 {
		t.Errorf("Expected 1 supported, got %d", supported)
	}
	if refuted != 2 {
		t.Errorf("Expected 2 refuted, got %d", refuted)
	}
}
