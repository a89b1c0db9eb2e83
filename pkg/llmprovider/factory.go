package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"textbook-rag/config"
	"textbook-rag/pkg/gemini"
	"textbook-rag/pkg/openaicompat"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped and reported in the second return value.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, []error, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []error

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Errorf("failed to initialize provider %s (priority %d): %w", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		msgs := make([]string, len(initErrors))
		for i, e := range initErrors {
			msgs[i] = e.Error()
		}
		return nil, initErrors, fmt.Errorf("no providers successfully initialized: %s", strings.Join(msgs, "; "))
	}

	return providers, initErrors, nil
}

// ManagerConfig converts config.LLMConfig into the Manager's Config.
func ManagerConfig(cfg config.LLMConfig) *Config {
	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      cfg.RetryDelay,
		MaxTotalTimeout: cfg.MaxTotalTimeout,
	}
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	var timeout time.Duration
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("provider %s: invalid timeout %q: %w", cfg.Name, cfg.Timeout, err)
		}
		timeout = d
	}

	switch name := strings.ToLower(cfg.Name); name {
	case "openai", "qwen", "alibaba", "deepseek":
		vendor := name
		if vendor == "alibaba" {
			vendor = "qwen"
		}
		occfg := openaicompat.Config{
			Vendor:  vendor,
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		}
		if timeout > 0 {
			occfg.HTTPClient = &http.Client{Timeout: timeout}
		}
		client, err := openaicompat.New(occfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", vendor, err)
		}
		return NewOpenAICompatAdapter(vendor, client), nil

	case "gemini":
		gcfg := gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		}
		if timeout > 0 {
			gcfg.HTTPClient = &http.Client{Timeout: timeout}
		}
		client, err := gemini.New(gcfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
