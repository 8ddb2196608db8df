package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "question-gen")
	if p := PurposeFrom(ctx); p != "question-gen" {
		t.Fatalf("expected 'question-gen', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "watsonx without project",
			cfg:     Config{Provider: "watsonx", Watsonx: WatsonxConfig{APIKey: "k"}},
			wantErr: true,
		},
		{
			name:    "watsonx with key and project",
			cfg:     Config{Provider: "watsonx", Watsonx: WatsonxConfig{APIKey: "k", ProjectID: "p"}},
			wantErr: false,
		},
		{
			name:    "none is not configured",
			cfg:     Config{Provider: "none"},
			wantErr: true,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewProvider_None(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: ProviderNone}, nil)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TASKGENE_LLM_PROVIDER", "mock")
	t.Setenv("TASKGENE_LLM_TIMEOUT", "5s")
	t.Setenv("TASKGENE_WATSONX_PROJECT_ID", "proj-1")

	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderMock {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if cfg.Watsonx.ProjectID != "proj-1" {
		t.Errorf("project = %q", cfg.Watsonx.ProjectID)
	}
	if cfg.Watsonx.Model != "llama-3.3-70b" {
		t.Errorf("default watsonx model = %q", cfg.Watsonx.Model)
	}
}

func TestDiscoverConfig_PrefersWatsonx(t *testing.T) {
	t.Setenv("WATSONX_APIKEY", "key")
	t.Setenv("WATSONX_PROJECT_ID", "proj")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != ProviderWatsonx {
		t.Fatalf("expected watsonx, got %q (ok=%v)", cfg.Provider, ok)
	}
}

func TestResolveConfig_FallsBackToDiscovery(t *testing.T) {
	t.Setenv("TASKGENE_LLM_PROVIDER", "watsonx")
	t.Setenv("TASKGENE_WATSONX_API_KEY", "")
	t.Setenv("TASKGENE_LLM_TIMEOUT", "7s")
	t.Setenv("WATSONX_APIKEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := ResolveConfig()
	if cfg.Provider != ProviderOpenAI {
		t.Fatalf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.Timeout != 7*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if got := DisplayName(cfg.Provider); got != "OpenAI" {
		t.Errorf("DisplayName = %q", got)
	}
}

func TestResolveConfig_NoneStaysNone(t *testing.T) {
	t.Setenv("TASKGENE_LLM_PROVIDER", "none")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	if cfg := ResolveConfig(); cfg.Provider != ProviderNone {
		t.Errorf("provider = %q, want none", cfg.Provider)
	}
}
