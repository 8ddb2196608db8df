package questiongen

import "github.com/taskgene/arena/internal/challenge"

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Structured requests schema-conforming JSON and parses it into
	// questions. When false the reply is kept as opaque text.
	Structured bool

	// Validators run in order on structured output; the first failure
	// rejects the whole set.
	Validators []Validator

	// Count is the number of questions requested.
	Count int

	// MaxTokens is the token budget for the reply.
	MaxTokens int

	// Temperature controls output randomness. Zero selects greedy decoding.
	Temperature float64
}

// DefaultConfig returns an unstructured Config with the standard
// validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&CountValidator{},
			&StructuralValidator{},
			&AnswerValidator{},
		},
		Count:     challenge.QuestionCount,
		MaxTokens: 800,
	}
}
