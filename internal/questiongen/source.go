package questiongen

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/taskgene/arena/internal/challenge"
	"github.com/taskgene/arena/internal/learner"
	"github.com/taskgene/arena/internal/llm"
)

// Origin says where a Result's questions came from.
type Origin string

const (
	OriginStatic    Origin = "static"
	OriginGenerated Origin = "generated"
)

// FallbackNotice is the Raw text reported when generation fails.
const FallbackNotice = "Question generation failed or quota exceeded."

// Result is what the quiz receives from the Source. Questions is always a
// usable list.
type Result struct {
	Questions []challenge.Question
	Origin    Origin

	// Attempted is true when a remote generation request was made.
	Attempted bool

	// Raw is the generated text, or FallbackNotice after a failure.
	Raw string

	// Err is the generation failure, if any. It is informational only.
	Err error
}

// Fallback reports whether a generation attempt failed.
func (r Result) Fallback() bool {
	return r.Err != nil
}

// Source supplies the challenge questions, trying the generator first when
// one is configured.
type Source struct {
	gen     Generator
	input   GenerateInput
	adopt   bool
	timeout time.Duration
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithAdoptGenerated replaces the built-in questions with validated
// generated ones. Without it generated text is only reported as Raw.
func WithAdoptGenerated(adopt bool) SourceOption {
	return func(s *Source) { s.adopt = adopt }
}

// WithTimeout bounds the generation request.
func WithTimeout(d time.Duration) SourceOption {
	return func(s *Source) { s.timeout = d }
}

// NewSource creates a Source for the learner. gen may be nil, in which case
// only the built-in questions are served.
func NewSource(gen Generator, p learner.Profile, opts ...SourceOption) *Source {
	s := &Source{
		gen: gen,
		input: GenerateInput{
			LearnerName: p.Name,
			Topic:       p.LastTask(),
			Count:       challenge.QuestionCount,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Input returns the generation context derived from the profile.
func (s *Source) Input() GenerateInput { return s.input }

// Load returns the challenge questions. It never fails: any generation
// error yields the built-in questions with Err set.
func (s *Source) Load(ctx context.Context) (res Result) {
	res = Result{Questions: challenge.ListQuestions(), Origin: OriginStatic}
	if s.gen == nil {
		return res
	}
	res.Attempted = true

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	gen, err := s.generate(ctx)
	if err != nil {
		log.Printf("question generation failed, using built-in questions: %v", err)
		res.Raw = FallbackNotice
		res.Err = err
		return res
	}

	res.Raw = gen.Raw
	if s.adopt && len(gen.Questions) > 0 {
		res.Questions = challenge.CloneAll(gen.Questions)
		res.Origin = OriginGenerated
	}
	return res
}

// generate shields Load from a panicking provider.
func (s *Source) generate(ctx context.Context) (gen *Generated, err error) {
	defer func() {
		if r := recover(); r != nil {
			gen = nil
			err = &GenerationError{Stage: StageRequest, Err: fmt.Errorf("provider panic: %v", r)}
		}
	}()
	gen, err = s.gen.Generate(ctx, s.input)
	if err == nil && gen == nil {
		err = &GenerationError{Stage: StageRequest, Err: &llm.ErrInvalidResponse{Err: fmt.Errorf("empty reply")}}
	}
	return gen, err
}
