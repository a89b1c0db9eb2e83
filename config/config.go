package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Retrieval
	VectorStore VectorStoreConfig
	Qdrant      QdrantConfig
	Chromem     ChromemConfig
	Voyage      VoyageConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Chat core
	Session SessionConfig
	Chat    ChatConfig
	Search  SearchConfig
	Chapter ChapterConfig

	// Accounts
	Postgres PostgresConfig
	Auth     AuthConfig

	// Offline indexing
	Ingest IngestConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	CacheSize         int
	TTL               time.Duration
}

const (
	BackendQdrant  = "qdrant"
	BackendChromem = "chromem"
)

type VectorStoreConfig struct {
	Backend string
}

type QdrantConfig struct {
	URL            string
	APIKey         string
	CollectionName string
	VectorSize     int
}

type ChromemConfig struct {
	Path     string
	Compress bool
}

type VoyageConfig struct {
	APIKey string
	Model  string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      time.Duration    `yaml:"retry_delay"`
	MaxTotalTimeout time.Duration    `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type SessionConfig struct {
	MaxTurns int
	Timeout  time.Duration
}

type ChatConfig struct {
	MaxMessageLength int
	TopK             int
	Temperature      float64
	MaxTokens        int
	SlowThreshold    time.Duration
}

type SearchConfig struct {
	DefaultTopK    int
	MaxTopK        int
	MaxQueryLength int
}

type ChapterConfig struct {
	MaxContentChars int
	ValidSlugs      []string
}

type PostgresConfig struct {
	DSN string
}

type AuthConfig struct {
	JWTSecret    string
	TokenTTL     time.Duration
	CookieName   string
	CookieSecure bool
}

type IngestConfig struct {
	DocsDir      string
	BatchSize    int
	Concurrency  int
	ChunkSize    int
	ChunkOverlap int
}

// Load loads configuration for the API service using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/.
// A .env file in the working directory is loaded into the environment first.
func Load() (*Config, error) {
	return load(true)
}

// LoadForIngest loads the same configuration without requiring LLM providers.
func LoadForIngest() (*Config, error) {
	return load(false)
}

func load(requireLLM bool) (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = getList("cors.allowed_origins")

	cfg.RateLimit.RequestsPerSecond = viper.GetFloat64("rate_limit.requests_per_second")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.CacheSize = viper.GetInt("rate_limit.cache_size")
	cfg.RateLimit.TTL = viper.GetDuration("rate_limit.ttl")

	// Retrieval
	cfg.VectorStore.Backend = strings.ToLower(viper.GetString("vector_store.backend"))
	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.APIKey = viper.GetString("qdrant.api_key")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	cfg.Chromem.Path = viper.GetString("chromem.path")
	cfg.Chromem.Compress = viper.GetBool("chromem.compress")

	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	cfg.Voyage.Model = viper.GetString("voyage.model")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetDuration("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetDuration("llm.max_total_timeout")
	cfg.LLM.Providers = loadProviders()

	// Chat core
	cfg.Session.MaxTurns = viper.GetInt("session.max_turns")
	cfg.Session.Timeout = viper.GetDuration("session.timeout")
	cfg.Chat.MaxMessageLength = viper.GetInt("chat.max_message_length")
	cfg.Chat.TopK = viper.GetInt("chat.top_k")
	cfg.Chat.Temperature = viper.GetFloat64("chat.temperature")
	cfg.Chat.MaxTokens = viper.GetInt("chat.max_tokens")
	cfg.Chat.SlowThreshold = viper.GetDuration("chat.slow_threshold")
	cfg.Search.DefaultTopK = viper.GetInt("search.default_top_k")
	cfg.Search.MaxTopK = viper.GetInt("search.max_top_k")
	cfg.Search.MaxQueryLength = viper.GetInt("search.max_query_length")
	cfg.Chapter.MaxContentChars = viper.GetInt("chapter.max_content_chars")
	cfg.Chapter.ValidSlugs = getList("chapter.valid_slugs")

	// Accounts
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	cfg.Auth.TokenTTL = viper.GetDuration("auth.token_ttl")
	cfg.Auth.CookieName = viper.GetString("auth.cookie_name")
	cfg.Auth.CookieSecure = viper.GetBool("auth.cookie_secure")

	// Offline indexing
	cfg.Ingest.DocsDir = viper.GetString("ingest.docs_dir")
	cfg.Ingest.BatchSize = viper.GetInt("ingest.batch_size")
	cfg.Ingest.Concurrency = viper.GetInt("ingest.concurrency")
	cfg.Ingest.ChunkSize = viper.GetInt("ingest.chunk_size")
	cfg.Ingest.ChunkOverlap = viper.GetInt("ingest.chunk_overlap")

	if err := cfg.validate(requireLLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})

	viper.SetDefault("rate_limit.requests_per_second", 5)
	viper.SetDefault("rate_limit.burst", 10)
	viper.SetDefault("rate_limit.cache_size", 1000)
	viper.SetDefault("rate_limit.ttl", "5m")

	viper.SetDefault("vector_store.backend", BackendQdrant)
	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.collection_name", "book_vectors")
	viper.SetDefault("qdrant.vector_size", 1024)
	viper.SetDefault("chromem.path", "./data/vectors")
	viper.SetDefault("chromem.compress", false)
	viper.SetDefault("voyage.model", "voyage-3")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")

	viper.SetDefault("session.max_turns", 10)
	viper.SetDefault("session.timeout", "30m")
	viper.SetDefault("chat.max_message_length", 500)
	viper.SetDefault("chat.top_k", 5)
	viper.SetDefault("chat.temperature", 0.7)
	viper.SetDefault("chat.max_tokens", 1000)
	viper.SetDefault("chat.slow_threshold", "5s")
	viper.SetDefault("search.default_top_k", 5)
	viper.SetDefault("search.max_top_k", 20)
	viper.SetDefault("search.max_query_length", 500)
	viper.SetDefault("chapter.max_content_chars", 24000)
	viper.SetDefault("chapter.valid_slugs", []string{
		"intro", "chapter-1", "chapter-2", "chapter-3", "chapter-4", "chapter-5", "chapter-6",
	})

	viper.SetDefault("auth.token_ttl", "168h")
	viper.SetDefault("auth.cookie_name", "session_token")
	viper.SetDefault("auth.cookie_secure", false)

	viper.SetDefault("ingest.docs_dir", "./docs")
	viper.SetDefault("ingest.batch_size", 64)
	viper.SetDefault("ingest.concurrency", 4)
	viper.SetDefault("ingest.chunk_size", 2000)
	viper.SetDefault("ingest.chunk_overlap", 200)
}

// loadProviders reads llm.providers. When none are configured but
// OPENAI_API_KEY is set, a single openai provider is synthesised.
func loadProviders() []ProviderConfig {
	var providers []ProviderConfig
	if viper.IsSet("llm.providers") {
		if providersList, ok := viper.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					providers = append(providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	if len(providers) == 0 {
		if key := viper.GetString("openai_api_key"); key != "" {
			providers = append(providers, ProviderConfig{
				Name:     "openai",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    "gpt-4o-mini",
			})
		}
	}
	return providers
}

func (cfg *Config) validate(requireLLM bool) error {
	if requireLLM {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return err
		}
	}
	switch cfg.VectorStore.Backend {
	case BackendQdrant:
		if cfg.Qdrant.URL == "" {
			return errors.New("qdrant.url is required")
		}
	case BackendChromem:
		if cfg.Chromem.Path == "" {
			return errors.New("chromem.path is required")
		}
	default:
		return fmt.Errorf("unknown vector_store.backend %q", cfg.VectorStore.Backend)
	}
	if cfg.Session.MaxTurns <= 0 {
		return errors.New("session.max_turns must be positive")
	}
	if cfg.Session.Timeout <= 0 {
		return errors.New("session.timeout must be positive")
	}
	if cfg.Search.DefaultTopK < 1 || cfg.Search.DefaultTopK > cfg.Search.MaxTopK {
		return errors.New("search.default_top_k must be within [1, search.max_top_k]")
	}
	if cfg.Postgres.DSN != "" && cfg.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required when postgres is configured")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set OPENAI_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// getList reads a list key that may also arrive as a comma separated env var.
func getList(key string) []string {
	var out []string
	for _, item := range viper.GetStringSlice(key) {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
