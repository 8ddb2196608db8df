// Package questiongen asks an LLM provider for a challenge question set and
// guards the quiz against its failures with the built-in questions.
package questiongen

import "context"

// Generator produces a challenge question set using an LLM provider.
type Generator interface {
	// Generate makes a single generation request. When the generator is
	// configured for structured output the returned questions have passed
	// every configured validator.
	Generate(ctx context.Context, input GenerateInput) (*Generated, error)
}
