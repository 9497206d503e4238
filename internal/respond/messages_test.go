package respond

import (
	"strings"
	"testing"

	"github.com/factguard/factguard/internal/model"
)

func TestForIntent_CoversAllCategories(t *testing.T) {
	intents := []model.ImageIntent{
		model.IntentOpinionCommentary,
		model.IntentTimeSensitiveData,
		model.IntentAdvertisementOther,
		model.IntentUnreadableText,
	}

	seen := make(map[string]bool)
	for _, intent := range intents {
		msg := ForIntent(intent)
		if msg == "" {
			t.Errorf("Empty message for intent %s", intent)
		}
		if seen[msg] {
			t.Errorf("Duplicate message for intent %s", intent)
		}
		seen[msg] = true
	}
}

func TestForRejection_IncludesReason(t *testing.T) {
	msg := ForRejection("missing action verb - appears to be a fragment")
	if !strings.Contains(msg, "missing action verb") {
		t.Errorf("Expected rejection reason in message, got %q", msg)
	}
}

func TestClassifyURL(t *testing.T) {
	tests := []struct {
		url  string
		kind URLIssueKind
		ok   bool
	}{
		{"https://twitter.com/user/status/123", URLIssueSocialMedia, false},
		{"https://x.com/user/status/123", URLIssueSocialMedia, false},
		{"https://t.me/channel/456", URLIssueMessaging, false},
		{"https://chat.whatsapp.com/invite", URLIssueMessaging, false},
		{"https://www.wsj.com/articles/markets", URLIssuePaywall, false},
		{"https://mobile.twitter.com/user", URLIssueSocialMedia, false},
		{"https://example.com/news/article", "", true},
		{"not a url at all", URLIssueBroken, false},
	}

	for _, tt := range tests {
		kind, _, ok := ClassifyURL(tt.url)
		if ok != tt.ok {
			t.Errorf("ClassifyURL(%q) ok = %v, want %v", tt.url, ok, tt.ok)
			continue
		}
		if !ok && kind != tt.kind {
			t.Errorf("ClassifyURL(%q) kind = %s, want %s", tt.url, kind, tt.kind)
		}
	}
}

func TestForURLIssue_MentionsHost(t *testing.T) {
	msg := ForURLIssue(URLIssueSocialMedia, "twitter.com")
	if !strings.Contains(msg, "twitter.com") {
		t.Errorf("Expected host in message, got %q", msg)
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize(3, 1, 1)
	if !strings.Contains(got, "3 claims") || !strings.Contains(got, "1 supported") || !strings.Contains(got, "1 inconclusive") {
		t.Errorf("Unexpected summary: %q", got)
	}

	got = Summarize(1, 1, 0)
	if !strings.Contains(got, "1 claim:") {
		t.Errorf("Expected singular form, got %q", got)
	}
}
