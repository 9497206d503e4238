package cli

import (
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/factguard/factguard/internal/model"
)

func TestApplyEnvOverrides(t *testing.T) {
	viper.Reset()
	viper.SetEnvPrefix("FACTGUARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	t.Setenv("FACTGUARD_LLM_PROVIDER", "ollama")
	t.Setenv("FACTGUARD_LLM_MODEL", "llama3")
	t.Setenv("FACTGUARD_CACHE_DIR", "/tmp/factguard-test-cache")
	t.Setenv("FACTGUARD_SOURCES_MAX_ARTICLES", "9")

	cfg := model.DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.LLM.Provider != "ollama" {
		t.Errorf("Expected provider ollama, got %q", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "llama3" {
		t.Errorf("Expected model llama3, got %q", cfg.LLM.Model)
	}
	if cfg.Cache.Dir != "/tmp/factguard-test-cache" {
		t.Errorf("Expected cache dir override, got %q", cfg.Cache.Dir)
	}
	if cfg.Sources.MaxArticles != 9 {
		t.Errorf("Expected 9 max articles, got %d", cfg.Sources.MaxArticles)
	}
}

func TestApplyEnvOverrides_KeepsDefaultsWithoutEnv(t *testing.T) {
	viper.Reset()
	viper.SetEnvPrefix("FACTGUARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	cfg := model.DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.LLM.Provider != "" {
		t.Errorf("Expected provider unset, got %q", cfg.LLM.Provider)
	}
	if cfg.Sources.MaxArticles != 5 {
		t.Errorf("Expected default 5 max articles, got %d", cfg.Sources.MaxArticles)
	}
}
