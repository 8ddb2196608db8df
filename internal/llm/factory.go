package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/taskgene/arena/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with event
// logging. Returns ErrNotConfigured for the "none" provider.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderWatsonx:
		base, err = NewWatsonxProvider(cfg.Watsonx, &http.Client{Timeout: cfg.Timeout})
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderMock:
		base = NewMockProvider(TextResponse(demoReply)).Repeating()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if eventRepo == nil {
		return base, nil
	}
	return WithLogging(base, cfg.Provider, eventRepo), nil
}

// ResolveConfig reads TASKGENE_* variables, falling back to vendor
// credential discovery when the configured provider is missing its
// credentials.
func ResolveConfig() Config {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil && cfg.Provider != ProviderNone {
		if discovered, ok := DiscoverConfig(); ok {
			discovered.Timeout = cfg.Timeout
			cfg = discovered
		}
	}
	return cfg
}

// NewProviderFromEnv builds a provider from the resolved environment config.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	return NewProvider(ctx, ResolveConfig(), eventRepo)
}

// DisplayName is the vendor name shown to the learner, e.g. "IBM watsonx".
func DisplayName(provider string) string {
	switch provider {
	case ProviderWatsonx:
		return "IBM watsonx"
	case ProviderAnthropic:
		return "Anthropic"
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderGemini:
		return "Google Gemini"
	case ProviderOpenRouter:
		return "OpenRouter"
	case ProviderMock:
		return "Offline demo"
	default:
		return provider
	}
}
