package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderWatsonx    = "watsonx"
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
	ProviderNone       = "none"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which backend generates challenge questions.
	Provider string

	Watsonx    WatsonxConfig
	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	// Timeout bounds a single generation request. Zero disables it.
	Timeout time.Duration
}

// WatsonxConfig holds IBM watsonx.ai configuration.
type WatsonxConfig struct {
	APIKey    string
	ProjectID string
	Model     string // Default: "llama-3.3-70b"
	BaseURL   string // Default: "https://us-south.ml.cloud.ibm.com"
	TokenURL  string // Default: "https://iam.cloud.ibm.com/identity/token"
	Version   string // API version date. Default: "2024-01-15"
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "meta-llama/llama-3.3-70b-instruct"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderWatsonx,
		Watsonx: WatsonxConfig{
			Model:    "llama-3.3-70b",
			BaseURL:  defaultWatsonxBaseURL,
			TokenURL: defaultIAMTokenURL,
			Version:  defaultWatsonxVersion,
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "meta-llama/llama-3.3-70b-instruct",
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from TASKGENE_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setFromEnv(&cfg.Provider, "TASKGENE_LLM_PROVIDER")

	setFromEnv(&cfg.Watsonx.APIKey, "TASKGENE_WATSONX_API_KEY")
	setFromEnv(&cfg.Watsonx.ProjectID, "TASKGENE_WATSONX_PROJECT_ID")
	setFromEnv(&cfg.Watsonx.Model, "TASKGENE_WATSONX_MODEL")
	setFromEnv(&cfg.Watsonx.BaseURL, "TASKGENE_WATSONX_URL")
	setFromEnv(&cfg.Watsonx.TokenURL, "TASKGENE_WATSONX_TOKEN_URL")

	setFromEnv(&cfg.Anthropic.APIKey, "TASKGENE_ANTHROPIC_API_KEY")
	setFromEnv(&cfg.Anthropic.Model, "TASKGENE_ANTHROPIC_MODEL")

	setFromEnv(&cfg.OpenAI.APIKey, "TASKGENE_OPENAI_API_KEY")
	setFromEnv(&cfg.OpenAI.Model, "TASKGENE_OPENAI_MODEL")
	setFromEnv(&cfg.OpenAI.BaseURL, "TASKGENE_OPENAI_BASE_URL")

	setFromEnv(&cfg.Gemini.APIKey, "TASKGENE_GEMINI_API_KEY")
	setFromEnv(&cfg.Gemini.Model, "TASKGENE_GEMINI_MODEL")

	setFromEnv(&cfg.OpenRouter.APIKey, "TASKGENE_OPENROUTER_API_KEY")
	setFromEnv(&cfg.OpenRouter.Model, "TASKGENE_OPENROUTER_MODEL")

	if t := os.Getenv("TASKGENE_LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.Timeout = d
		}
	}

	return cfg
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes the vendors' standard credential variables in
// priority order (watsonx → Gemini → OpenAI → Anthropic → OpenRouter) and
// returns a Config for the first provider whose key is found.
// Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("WATSONX_APIKEY"); k != "" {
		if p := os.Getenv("WATSONX_PROJECT_ID"); p != "" {
			cfg.Provider = ProviderWatsonx
			cfg.Watsonx.APIKey = k
			cfg.Watsonx.ProjectID = p
			setFromEnv(&cfg.Watsonx.BaseURL, "WATSONX_URL")
			return cfg, true
		}
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required settings.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderWatsonx:
		if c.Watsonx.APIKey == "" {
			return fmt.Errorf("TASKGENE_WATSONX_API_KEY is required for the watsonx provider")
		}
		if c.Watsonx.ProjectID == "" {
			return fmt.Errorf("TASKGENE_WATSONX_PROJECT_ID is required for the watsonx provider")
		}
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("TASKGENE_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("TASKGENE_OPENAI_API_KEY is required for the openai provider")
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("TASKGENE_GEMINI_API_KEY is required for the gemini provider")
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("TASKGENE_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case ProviderMock:
	case ProviderNone:
		return ErrNotConfigured
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
