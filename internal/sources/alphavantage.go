// Package sources implements the evidence-gathering API clients used
// by the verification agents.
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
	"github.com/factguard/factguard/internal/worker"
)

// commodity claims name the material, not the ticker; ETF proxies
// track the underlying price closely enough for verification
var commodityProxies = map[string]string{
	"gold":   "GLD",
	"silver": "SLV",
	"oil":    "USO",
	"crude":  "USO",
}

// AlphaVantage is a client for the Alpha Vantage market data API
type AlphaVantage struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      cache.Cache
	limiter    *worker.Limiter
	cacheTTL   time.Duration
}

// NewAlphaVantage creates a new Alpha Vantage client
func NewAlphaVantage(apiKey, baseURL string, timeout time.Duration, c cache.Cache, limiter *worker.Limiter) *AlphaVantage {
	if baseURL == "" {
		baseURL = "https://www.alphavantage.co/query"
	}
	if c == nil {
		c = cache.Noop{}
	}

	return &AlphaVantage{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		cache:      c,
		limiter:    limiter,
		cacheTTL:   5 * time.Minute, // quotes go stale fast
	}
}

// Available reports whether the client is configured with an API key
func (a *AlphaVantage) Available() bool {
	return a.apiKey != ""
}

type globalQuoteResponse struct {
	GlobalQuote struct {
		Symbol        string `json:"01. symbol"`
		Price         string `json:"05. price"`
		Change        string `json:"09. change"`
		ChangePercent string `json:"10. change percent"`
		TradingDay    string `json:"07. latest trading day"`
	} `json:"Global Quote"`
	Note         string `json:"Note,omitempty"`
	ErrorMessage string `json:"Error Message,omitempty"`
}

// Quote fetches the latest quote for a symbol
func (a *AlphaVantage) Quote(ctx context.Context, symbol string) (*model.EvidenceSource, error) {
	if !a.Available() {
		return nil, fmt.Errorf("alpha vantage API key not configured")
	}

	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	key := cache.Key("alphavantage:quote", symbol)

	if data, found := a.cache.Get(key); found {
		var ev model.EvidenceSource
		if err := json.Unmarshal(data, &ev); err == nil {
			return &ev, nil
		}
	}

	params := url.Values{}
	params.Set("function", "GLOBAL_QUOTE")
	params.Set("symbol", symbol)
	params.Set("apikey", a.apiKey)

	body, err := a.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var resp globalQuoteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode quote response: %w", err)
	}
	if resp.ErrorMessage != "" {
		return nil, fmt.Errorf("alpha vantage: %s", resp.ErrorMessage)
	}
	if resp.Note != "" {
		return nil, fmt.Errorf("alpha vantage rate limit: %s", resp.Note)
	}
	if resp.GlobalQuote.Symbol == "" {
		return nil, fmt.Errorf("no quote data for %s", symbol)
	}

	q := resp.GlobalQuote
	ev := &model.EvidenceSource{
		SourceName:  "Alpha Vantage",
		SourceType:  "Market Data",
		Content:     fmt.Sprintf("%s: $%s (change %s, %s) as of %s", q.Symbol, q.Price, q.Change, q.ChangePercent, q.TradingDay),
		Date:        q.TradingDay,
		Credibility: "high",
	}

	if data, err := json.Marshal(ev); err == nil {
		_ = a.cache.Set(key, data, a.cacheTTL)
	}

	return ev, nil
}

// Search inspects a claim for a tradeable subject and fetches its
// quote. Commodity names map to ETF proxies; otherwise the first
// all-caps token is treated as a ticker.
func (a *AlphaVantage) Search(ctx context.Context, claim string) (*model.EvidenceSource, error) {
	lower := strings.ToLower(claim)

	for name, proxy := range commodityProxies {
		if strings.Contains(lower, name) {
			ev, err := a.Quote(ctx, proxy)
			if err != nil {
				return nil, err
			}
			ev.Content = fmt.Sprintf("%s price via ETF proxy %s. %s", name, proxy, ev.Content)
			return ev, nil
		}
	}

	if ticker := findTicker(claim); ticker != "" {
		return a.Quote(ctx, ticker)
	}

	return nil, fmt.Errorf("no tradeable subject found in claim")
}

// findTicker returns the first token that looks like a stock symbol
func findTicker(claim string) string {
	for _, field := range strings.Fields(claim) {
		field = strings.Trim(field, ".,;:!?()\"'")
		if len(field) < 2 || len(field) > 5 {
			continue
		}
		if field == strings.ToUpper(field) && isAlpha(field) {
			return field
		}
	}
	return ""
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func (a *AlphaVantage) get(ctx context.Context, params url.Values) ([]byte, error) {
	reqURL := a.baseURL + "?" + params.Encode()

	if a.limiter != nil {
		if err := a.limiter.Wait(ctx, reqURL); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alpha vantage HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return body, nil
}
