package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/taskgene/arena/internal/challenge"
	"github.com/taskgene/arena/internal/llm"
)

// Purpose labels generation requests in the event log.
const Purpose = "question-gen"

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

type questionSetOutput struct {
	Questions []struct {
		Prompt  string   `json:"prompt"`
		Options []string `json:"options"`
		Answer  string   `json:"answer"`
	} `json:"questions"`
}

// Generate makes one request. Every failure is a *GenerationError.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Generated, error) {
	ctx = llm.WithPurpose(ctx, Purpose)
	if input.Count <= 0 {
		input.Count = g.config.Count
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}
	if g.config.Structured {
		req.Schema = QuestionSetSchema
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Stage: StageRequest, Err: err}
	}

	out := &Generated{Raw: resp.Text()}
	if !g.config.Structured {
		return out, nil
	}

	var raw questionSetOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Stage: StageParse, Err: fmt.Errorf("decode question set: %w", err)}
	}

	qs := make([]challenge.Question, len(raw.Questions))
	for i, rq := range raw.Questions {
		qs[i] = normalizeQuestion(rq.Prompt, rq.Options, rq.Answer)
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(qs, input); verr != nil {
			return nil, &GenerationError{Stage: StageValidate, Err: verr}
		}
	}

	out.Questions = qs
	return out, nil
}
