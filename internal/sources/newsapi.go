package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/factguard/factguard/internal/cache"
	"github.com/factguard/factguard/internal/model"
	"github.com/factguard/factguard/internal/util"
	"github.com/factguard/factguard/internal/worker"
)

// NewsAPI is a client for the NewsAPI.org everything endpoint
type NewsAPI struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      cache.Cache
	limiter    *worker.Limiter
	windowDays int
	maxResults int
	cacheTTL   time.Duration

	// injectable for deterministic date-window tests
	nowFunc func() time.Time
}

// NewNewsAPI creates a new NewsAPI client
func NewNewsAPI(apiKey, baseURL string, timeout time.Duration, windowDays, maxResults int, c cache.Cache, limiter *worker.Limiter) *NewsAPI {
	if baseURL == "" {
		baseURL = "https://newsapi.org/v2/everything"
	}
	if windowDays <= 0 {
		windowDays = 7
	}
	if maxResults <= 0 {
		maxResults = 5
	}
	if c == nil {
		c = cache.Noop{}
	}

	return &NewsAPI{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		cache:      c,
		limiter:    limiter,
		windowDays: windowDays,
		maxResults: maxResults,
		cacheTTL:   15 * time.Minute,
		nowFunc:    time.Now,
	}
}

// Available reports whether the client is configured with an API key
func (n *NewsAPI) Available() bool {
	return n.apiKey != ""
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message,omitempty"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Search queries recent coverage related to a claim. The query is
// built from the claim's proper nouns so headline phrasing does not
// have to match exactly.
func (n *NewsAPI) Search(ctx context.Context, claim string) ([]model.EvidenceSource, error) {
	if !n.Available() {
		return nil, fmt.Errorf("news API key not configured")
	}

	query := buildQuery(claim)
	if query == "" {
		return nil, fmt.Errorf("no searchable terms in claim")
	}

	key := cache.Key("newsapi:search", query)
	if data, found := n.cache.Get(key); found {
		var cached []model.EvidenceSource
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	from := n.nowFunc().AddDate(0, 0, -n.windowDays).Format("2006-01-02")

	params := url.Values{}
	params.Set("q", query)
	params.Set("from", from)
	params.Set("sortBy", "relevancy")
	params.Set("language", "en")
	params.Set("pageSize", fmt.Sprintf("%d", n.maxResults))
	params.Set("apiKey", n.apiKey)

	body, err := n.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var resp newsAPIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode news response: %w", err)
	}
	if resp.Status != "ok" {
		return nil, fmt.Errorf("news API error (%s): %s", resp.Code, resp.Message)
	}

	var evidence []model.EvidenceSource
	for _, article := range resp.Articles {
		content := article.Title
		if article.Description != "" {
			content += " — " + article.Description
		}
		evidence = append(evidence, model.EvidenceSource{
			SourceName: article.Source.Name,
			SourceType: "News",
			Content:    content,
			URL:        article.URL,
			Date:       article.PublishedAt,
		})
	}

	if data, err := json.Marshal(evidence); err == nil {
		_ = n.cache.Set(key, data, n.cacheTTL)
	}

	return evidence, nil
}

// buildQuery selects the claim's proper nouns as search terms,
// falling back to the whole claim when no names are present
func buildQuery(claim string) string {
	nouns := util.ProperNouns(claim)
	if len(nouns) == 0 {
		return strings.TrimSpace(claim)
	}
	if len(nouns) > 4 {
		nouns = nouns[:4]
	}
	return strings.Join(nouns, " ")
}

func (n *NewsAPI) get(ctx context.Context, params url.Values) ([]byte, error) {
	reqURL := n.baseURL + "?" + params.Encode()

	if n.limiter != nil {
		if err := n.limiter.Wait(ctx, reqURL); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news API HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return body, nil
}
