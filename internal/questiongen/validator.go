package questiongen

import (
	"fmt"

	"github.com/taskgene/arena/internal/challenge"
)

// Validator checks a generated question set.
type Validator interface {
	// Name returns a short identifier for error messages, e.g. "count".
	Name() string

	// Validate returns nil if the set passes.
	Validate(qs []challenge.Question, input GenerateInput) *ValidationError
}

// ValidationError describes why a generated set was rejected.
type ValidationError struct {
	Validator string
	Index     int // Offending question, or -1 for the whole set
	Message   string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
	}
	return fmt.Sprintf("validator %q: question %d: %s", e.Validator, e.Index+1, e.Message)
}

// CountValidator requires exactly the requested number of questions.
type CountValidator struct{}

func (v *CountValidator) Name() string { return "count" }

func (v *CountValidator) Validate(qs []challenge.Question, input GenerateInput) *ValidationError {
	if len(qs) != input.Count {
		return &ValidationError{
			Validator: v.Name(),
			Index:     -1,
			Message:   fmt.Sprintf("got %d questions, want %d", len(qs), input.Count),
		}
	}
	return nil
}

// StructuralValidator checks prompt and option shape.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(qs []challenge.Question, _ GenerateInput) *ValidationError {
	for i, q := range qs {
		if q.Prompt == "" {
			return &ValidationError{Validator: v.Name(), Index: i, Message: "prompt is empty"}
		}
		if len(q.Prompt) > 300 {
			return &ValidationError{Validator: v.Name(), Index: i, Message: "prompt exceeds 300 characters"}
		}
		if len(q.Options) != challenge.OptionsPerQuestion {
			return &ValidationError{
				Validator: v.Name(),
				Index:     i,
				Message:   fmt.Sprintf("has %d options, want %d", len(q.Options), challenge.OptionsPerQuestion),
			}
		}
		seen := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if seen[opt] {
				return &ValidationError{Validator: v.Name(), Index: i, Message: fmt.Sprintf("duplicate option %q", opt)}
			}
			seen[opt] = true
		}
	}
	return nil
}

// AnswerValidator requires each answer to be one of its options.
type AnswerValidator struct{}

func (v *AnswerValidator) Name() string { return "answer" }

func (v *AnswerValidator) Validate(qs []challenge.Question, _ GenerateInput) *ValidationError {
	for i, q := range qs {
		if !q.HasOption(q.Answer) {
			return &ValidationError{
				Validator: v.Name(),
				Index:     i,
				Message:   fmt.Sprintf("answer %q is not one of the options", q.Answer),
			}
		}
	}
	return nil
}
