package questiongen

import "fmt"

// Generation stages reported by GenerationError.
const (
	StageRequest  = "request"
	StageParse    = "parse"
	StageValidate = "validate"
)

// GenerationError reports a failed generation attempt.
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("question generation failed at %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
