package model

import "time"

// Config is the complete FactGuard runtime configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	LLM         LLMConfig         `yaml:"llm"`
	Sources     SourcesConfig     `yaml:"sources"`
	Extraction  ExtractionConfig  `yaml:"extraction"`
	Lexicon     Lexicon           `yaml:"lexicon"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig controls outbound HTTP behavior (article fetch, evidence APIs)
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy"`
}

// CacheConfig controls evidence and article caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig controls worker counts and per-domain rate limits
type ConcurrencyConfig struct {
	Workers        int     `yaml:"workers"`
	RatePerSecond  float64 `yaml:"rate_per_second"`
	RateBurst      int     `yaml:"rate_burst"`
	RequestTimeout int     `yaml:"request_timeout_seconds"`
}

// LLMConfig configures the reasoning providers (planner + consensus)
type LLMConfig struct {
	Provider    string  `yaml:"provider"` // "openai", "ollama", "" (disabled)
	Model       string  `yaml:"model"`
	APIKey      string  `yaml:"-"` // from environment only, never persisted
	BaseURL     string  `yaml:"base_url"`
	Timeout     int     `yaml:"timeout_seconds"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	HTTPProxy   string  `yaml:"http_proxy"`
	HTTPSProxy  string  `yaml:"https_proxy"`
	NoProxy     string  `yaml:"no_proxy"`
}

// SourcesConfig configures the evidence-gathering APIs
type SourcesConfig struct {
	AlphaVantageKey     string `yaml:"-"` // from environment only
	AlphaVantageBaseURL string `yaml:"alpha_vantage_base_url"`
	NewsAPIKey          string `yaml:"-"` // from environment only
	NewsAPIBaseURL      string `yaml:"news_api_base_url"`
	MaxArticles         int    `yaml:"max_articles"`
	NewsWindowDays      int    `yaml:"news_window_days"`
}

// ExtractionConfig controls claim extraction thresholds
type ExtractionConfig struct {
	MaxClaims          int `yaml:"max_claims"`
	MinSentenceLength  int `yaml:"min_sentence_length"`
	MinFactualLength   int `yaml:"min_factual_length"`
	MinImageLineLength int `yaml:"min_image_line_length"`
	MinImageClaimLen   int `yaml:"min_image_claim_length"`
}

// OutputConfig controls rendering behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "FactGuard/0.1 (+https://github.com/factguard/factguard)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // resolved to ~/.factguard/cache at startup
			MemoryTTL: 5 * time.Minute,
			DiskTTL:   1 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers:        4,
			RatePerSecond:  2,
			RateBurst:      5,
			RequestTimeout: 30,
		},
		LLM: LLMConfig{
			Provider:    "", // disabled by default
			Timeout:     60,
			MaxTokens:   1000,
			Temperature: 0.3,
		},
		Sources: SourcesConfig{
			AlphaVantageBaseURL: "https://www.alphavantage.co/query",
			NewsAPIBaseURL:      "https://newsapi.org/v2/everything",
			MaxArticles:         5,
			NewsWindowDays:      7,
		},
		Extraction: ExtractionConfig{
			MaxClaims:          5,
			MinSentenceLength:  25,
			MinFactualLength:   30,
			MinImageLineLength: 10,
			MinImageClaimLen:   30,
		},
		Lexicon: DefaultLexicon(),
		Output:  OutputConfig{},
	}
}
