package intent

import (
	"strings"
	"testing"

	"github.com/factguard/factguard/internal/model"
)

func newTestReconstructor() *Reconstructor {
	return NewReconstructor(model.DefaultLexicon(), 10, 30)
}

func TestReconstructor_Reconstruct_JoinsFragmentedLines(t *testing.T) {
	r := newTestReconstructor()

	ocr := "US military attacked Venezuela\nand captured President Maduro\nyesterday during a dawn raid"
	claims := r.Reconstruct(ocr)

	if len(claims) != 1 {
		t.Fatalf("Expected 1 reconstructed claim, got %d: %v", len(claims), claims)
	}
	if !strings.Contains(claims[0], "captured President Maduro") {
		t.Errorf("Claim missing continuation line: %q", claims[0])
	}
}

func TestReconstructor_Reconstruct_DropsNoiseLines(t *testing.T) {
	r := newTestReconstructor()

	ocr := "9:41 AM\nUS military attacked Venezuela and captured President Maduro\n88%"
	claims := r.Reconstruct(ocr)

	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d: %v", len(claims), claims)
	}
	if strings.Contains(claims[0], "9:41") {
		t.Errorf("Noise line leaked into claim: %q", claims[0])
	}
}

func TestReconstructor_Reconstruct_SeparateHeadlines(t *testing.T) {
	r := newTestReconstructor()

	ocr := "Gold prices reached $3000 per ounce on Tuesday\nCanada signed a new trade agreement with Japan"
	claims := r.Reconstruct(ocr)

	if len(claims) != 2 {
		t.Errorf("Expected 2 separate claims, got %d: %v", len(claims), claims)
	}
}

func TestReconstructor_Reconstruct_FallbackRespectsClaimFloor(t *testing.T) {
	r := newTestReconstructor()

	// The longest line is still shorter than a full claim; captions
	// and fragments must not flow on to verification
	ocr := "BREAKING NEWS\nMaduro captured today"
	if claims := r.Reconstruct(ocr); len(claims) != 0 {
		t.Errorf("Expected no claims for fragment-only input, got %v", claims)
	}

	ocr = "LIVE\nGold hit $3000\nMarkets react"
	if claims := r.Reconstruct(ocr); len(claims) != 0 {
		t.Errorf("Expected no claims when every line is below the floor, got %v", claims)
	}
}

func TestReconstructor_Reconstruct_Empty(t *testing.T) {
	r := newTestReconstructor()

	if claims := r.Reconstruct("   \n  "); claims != nil {
		t.Errorf("Expected nil for blank input, got %v", claims)
	}
}

func TestEvaluator_Evaluate_Fixtures(t *testing.T) {
	e := NewEvaluator(model.DefaultLexicon(), model.DefaultConfig().Extraction)

	tests := []struct {
		input      string
		intent     model.ImageIntent
		wantClaims bool
	}{
		{"US attacked Venezuela yesterday and captured President Maduro", model.IntentNewsOrViralClaim, true},
		{"I think this government is evil", model.IntentOpinionCommentary, false},
		{"Gold price today: $3000/oz", model.IntentTimeSensitiveData, false},
	}

	for _, tt := range tests {
		result := e.Evaluate(tt.input)
		if result.Intent != tt.intent {
			t.Errorf("Evaluate(%q) intent = %s, want %s", tt.input, result.Intent, tt.intent)
		}
		if tt.wantClaims && len(result.Claims) == 0 {
			t.Errorf("Evaluate(%q) expected reconstructed claims", tt.input)
		}
		if !tt.wantClaims && len(result.Claims) != 0 {
			t.Errorf("Evaluate(%q) expected no claims, got %v", tt.input, result.Claims)
		}
	}
}
