package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/factguard/factguard/internal/cache"
)

const newsJSON = `{
	"status": "ok",
	"articles": [
		{
			"source": {"name": "Reuters"},
			"title": "Venezuela conflict escalates",
			"description": "Military operation confirmed by officials",
			"url": "https://example.com/a1",
			"publishedAt": "2026-08-28T10:00:00Z"
		},
		{
			"source": {"name": "AP"},
			"title": "Regional reaction to Venezuela events",
			"description": "",
			"url": "https://example.com/a2",
			"publishedAt": "2026-08-28T12:00:00Z"
		}
	]
}`

func TestNewsAPI_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if !strings.Contains(query, "Venezuela") {
			t.Errorf("Expected proper noun in query, got %q", query)
		}
		if got := r.URL.Query().Get("pageSize"); got != "5" {
			t.Errorf("Expected pageSize 5, got %q", got)
		}
		_, _ = w.Write([]byte(newsJSON))
	}))
	defer server.Close()

	n := NewNewsAPI("test-key", server.URL, 5*time.Second, 7, 5, nil, nil)
	evidence, err := n.Search(context.Background(), "The US military invaded Venezuela yesterday")

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(evidence) != 2 {
		t.Fatalf("Expected 2 evidence entries, got %d", len(evidence))
	}
	if evidence[0].SourceName != "Reuters" {
		t.Errorf("Unexpected source: %q", evidence[0].SourceName)
	}
	if !strings.Contains(evidence[0].Content, "Military operation") {
		t.Errorf("Expected description in content: %q", evidence[0].Content)
	}
	if evidence[1].Content != "Regional reaction to Venezuela events" {
		t.Errorf("Expected bare title without separator: %q", evidence[1].Content)
	}
}

func TestNewsAPI_Search_DateWindow(t *testing.T) {
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("from"); got != "2026-08-23" {
			t.Errorf("Expected from=2026-08-23, got %q", got)
		}
		_, _ = w.Write([]byte(newsJSON))
	}))
	defer server.Close()

	n := NewNewsAPI("test-key", server.URL, 5*time.Second, 7, 5, nil, nil)
	n.nowFunc = func() time.Time { return fixed }

	if _, err := n.Search(context.Background(), "Venezuela conflict"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestNewsAPI_Search_CacheHit(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(newsJSON))
	}))
	defer server.Close()

	c := cache.NewMemoryCache(time.Minute, time.Minute)
	n := NewNewsAPI("test-key", server.URL, 5*time.Second, 7, 5, c, nil)

	for i := 0; i < 3; i++ {
		if _, err := n.Search(context.Background(), "Venezuela conflict"); err != nil {
			t.Fatalf("Unexpected error on call %d: %v", i, err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Errorf("Expected 1 upstream call, got %d", got)
	}
}

func TestNewsAPI_Search_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "error", "code": "apiKeyInvalid", "message": "bad key"}`))
	}))
	defer server.Close()

	n := NewNewsAPI("test-key", server.URL, 5*time.Second, 7, 5, nil, nil)
	_, err := n.Search(context.Background(), "Venezuela conflict")

	if err == nil || !strings.Contains(err.Error(), "apiKeyInvalid") {
		t.Errorf("Expected API error, got %v", err)
	}
}

func TestNewsAPI_NotConfigured(t *testing.T) {
	n := NewNewsAPI("", "http://unused.invalid", 5*time.Second, 7, 5, nil, nil)

	if n.Available() {
		t.Error("Expected unavailable without API key")
	}
	if _, err := n.Search(context.Background(), "anything at all"); err == nil {
		t.Error("Expected error without API key")
	}
}

func TestBuildQuery(t *testing.T) {
	got := buildQuery("The US military invaded Venezuela and captured President Nicolas Maduro")
	if !strings.Contains(got, "Venezuela") {
		t.Errorf("Expected proper nouns in query, got %q", got)
	}

	got = buildQuery("wheat yields rose five percent this season")
	if got != "wheat yields rose five percent this season" {
		t.Errorf("Expected full-claim fallback, got %q", got)
	}
}
