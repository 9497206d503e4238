package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/factguard/factguard/internal/cache"
	"github.com/factguard/factguard/internal/model"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage FactGuard configuration",
	Long: `Manage FactGuard configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (FACTGUARD_*, OPENAI_API_KEY, ALPHAVANTAGE_API_KEY, NEWS_API_KEY)
3. Config file (~/.factguard/config.yaml)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}

		if configFile := viper.ConfigFileUsed(); configFile != "" {
			fmt.Fprintf(os.Stderr, "Configuration file: %s\n\n", configFile)
		} else {
			fmt.Fprintf(os.Stderr, "No configuration file found (using defaults)\n\n")
		}

		yamlData, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}

		fmt.Println(string(yamlData))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	Long:  `Create a default configuration file at ~/.factguard/config.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error finding home directory: %w", err)
		}

		configDir := filepath.Join(home, ".factguard")
		configPath := filepath.Join(configDir, "config.yaml")

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config file already exists: %s\nUse 'factguard config show' to view it, or delete it first to recreate", configPath)
		}

		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("error creating config directory: %w", err)
		}

		yamlData, err := yaml.Marshal(model.DefaultConfig())
		if err != nil {
			return fmt.Errorf("error marshaling defaults: %w", err)
		}

		header := "# FactGuard configuration file\n" +
			"# Environment variables (FACTGUARD_*) and CLI flags override these values.\n" +
			"# API keys are read from OPENAI_API_KEY, ALPHAVANTAGE_API_KEY, and NEWS_API_KEY.\n\n"

		if err := os.WriteFile(configPath, append([]byte(header), yamlData...), 0644); err != nil {
			return fmt.Errorf("error writing config file: %w", err)
		}

		fmt.Printf("Created %s\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

// buildConfig layers the config file, environment, and flags over the
// built-in defaults
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	// The config file is plain YAML matching the Config field tags;
	// viper handles discovery, yaml.v3 handles decoding
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	// FACTGUARD_* environment values override the file; flags win
	applyEnvOverrides(cfg)

	// Flags override the file
	cfg.Output.Verbose = verbose
	if timeout > 0 {
		cfg.HTTP.Timeout = timeout
	}
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}
	if maxBytes > 0 {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	cfg.HTTP.InsecureTLS = insecureTLS
	if httpProxy != "" {
		cfg.HTTP.HTTPProxy = httpProxy
	}
	if httpsProxy != "" {
		cfg.HTTP.HTTPSProxy = httpsProxy
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}

	// API keys come from the environment only
	cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Sources.AlphaVantageKey = os.Getenv("ALPHAVANTAGE_API_KEY")
	cfg.Sources.NewsAPIKey = os.Getenv("NEWS_API_KEY")
	if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" && cfg.LLM.Provider == "ollama" {
		cfg.LLM.BaseURL = baseURL
	}

	if cfg.LLM.Provider == "openai" && cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	if cfg.Cache.Dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Cache.Dir = filepath.Join(home, ".factguard", "cache")
		}
	}

	return cfg, nil
}

// applyEnvOverrides layers FACTGUARD_* environment values over the
// file-derived configuration. Settings that also have a CLI flag keep
// the flag as the final word; API keys stay on their own variables.
func applyEnvOverrides(cfg *model.Config) {
	if v := viper.GetString("llm.provider"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := viper.GetString("llm.model"); v != "" {
		cfg.LLM.Model = v
	}
	if v := viper.GetString("llm.base_url"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := viper.GetString("cache.dir"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := viper.GetInt("concurrency.workers"); v > 0 {
		cfg.Concurrency.Workers = v
	}
	if v := viper.GetInt("sources.max_articles"); v > 0 {
		cfg.Sources.MaxArticles = v
	}
	if v := viper.GetInt("sources.news_window_days"); v > 0 {
		cfg.Sources.NewsWindowDays = v
	}
}

// buildCache creates the evidence cache per configuration
func buildCache(cfg *model.Config) cache.Cache {
	if !cfg.Cache.Enabled {
		return cache.Noop{}
	}
	if cfg.Cache.Dir == "" {
		return cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*cfg.Cache.MemoryTTL)
	}
	return cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
}
