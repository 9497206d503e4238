package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/factguard/factguard/internal/model"
)

func TestVerifier_Verify_SchemelessWWWRoutesAsURL(t *testing.T) {
	v := NewVerifier(model.DefaultConfig(), nil)

	report, err := v.Verify(context.Background(), "www.facebook.com/groups/12345/posts/678")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if report.InputType != "url" {
		t.Errorf("Expected url input type, got %q", report.InputType)
	}
	if !strings.Contains(report.Message, "facebook.com") {
		t.Errorf("Expected social-media guidance naming the host, got %q", report.Message)
	}
	if strings.Contains(report.Message, "couldn't fetch") {
		t.Errorf("Schemeless www URL misreported as broken: %q", report.Message)
	}
}

func TestVerifier_VerifyURL_PaywallPrecheck(t *testing.T) {
	v := NewVerifier(model.DefaultConfig(), nil)

	report, err := v.VerifyURL(context.Background(), "www.wsj.com/articles/some-story")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(report.Message, "paywall") {
		t.Errorf("Expected paywall guidance, got %q", report.Message)
	}
}
