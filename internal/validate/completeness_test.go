package validate

import (
	"strings"
	"testing"

	"github.com/factguard/factguard/internal/model"
)

func newTestGate() *Gate {
	return NewGate(model.DefaultLexicon())
}

func TestGate_Check_TruncatedEndings(t *testing.T) {
	g := newTestGate()

	for _, claim := range []string{"was born in", "according to", "increased by"} {
		admission := g.Check(claim)
		if admission.OK {
			t.Errorf("Expected %q to be rejected", claim)
			continue
		}
		if !strings.Contains(admission.Reason, "incomplete") {
			t.Errorf("Expected truncation reason for %q, got %q", claim, admission.Reason)
		}
	}
}

func TestGate_Check_CompleteSentence(t *testing.T) {
	g := newTestGate()

	admission := g.Check("The president was born in California.")
	if !admission.OK {
		t.Errorf("Expected admission, got rejection: %q", admission.Reason)
	}
}

func TestGate_Check_Idempotent(t *testing.T) {
	g := newTestGate()

	claim := "Gold prices increased to $3000 per ounce today"
	first := g.Check(claim)
	second := g.Check(claim)

	if !first.OK || !second.OK {
		t.Errorf("Expected admission both times, got %v then %v", first, second)
	}
}

func TestGate_Check_TooShort(t *testing.T) {
	g := newTestGate()

	admission := g.Check("Maduro captured")
	if admission.OK {
		t.Error("Expected two-word claim to be rejected")
	}
}

func TestGate_Check_MissingVerb(t *testing.T) {
	g := newTestGate()

	admission := g.Check("The new government policy framework")
	if admission.OK {
		t.Error("Expected verbless fragment to be rejected")
	}
	if !strings.Contains(admission.Reason, "verb") {
		t.Errorf("Expected verb reason, got %q", admission.Reason)
	}
}

func TestGate_Check_FragmentStarter(t *testing.T) {
	g := newTestGate()

	admission := g.Check("because the president was traveling abroad")
	if admission.OK {
		t.Error("Expected conjunction-led fragment to be rejected")
	}
}

func TestGate_Check_URLBypass(t *testing.T) {
	g := newTestGate()

	for _, claim := range []string{
		"https://example.com/article",
		"http://example.com",
		"www.example.com/news",
	} {
		if admission := g.Check(claim); !admission.OK {
			t.Errorf("Expected URL %q to bypass the gate, got %q", claim, admission.Reason)
		}
	}
}

func TestGate_Check_ShortWithTerminalPunctuation(t *testing.T) {
	g := newTestGate()

	// Two words but terminal punctuation marks it deliberate, so it
	// falls through to the structural checks instead of the truncation
	// heuristic
	admission := g.Check("Maduro captured.")
	if admission.OK {
		t.Error("Expected rejection on word count")
	}
	if strings.Contains(admission.Reason, "incomplete") {
		t.Errorf("Expected structural reason, got truncation: %q", admission.Reason)
	}
}
