// Package session implements the challenge session state machine: it gates
// entry into the quiz, collects answers and freezes them at submission.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/taskgene/arena/internal/challenge"
	"github.com/taskgene/arena/internal/scoring"
)

// Session tracks one learner's pass through a challenge. It is not safe for
// concurrent use; the view drives it from a single goroutine.
type Session struct {
	id        string
	state     State
	questions []challenge.Question
	answers   challenge.AnswerSet
	before    scoring.MetricTriple
	threshold int
	outcome   *scoring.Outcome

	// thresholdSet is true when the cutoff came from WithThreshold and must
	// survive a question swap.
	thresholdSet bool
}

// Option configures a Session.
type Option func(*Session)

// WithBaseline overrides the "before" metrics.
func WithBaseline(m scoring.MetricTriple) Option {
	return func(s *Session) { s.before = m }
}

// WithThreshold overrides the High tier cutoff.
func WithThreshold(n int) Option {
	return func(s *Session) {
		s.threshold = n
		s.thresholdSet = true
	}
}

// WithID sets the session ID instead of generating one.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// New creates a session in StateNotStarted over a copy of questions.
// The default threshold scales the 5-of-7 cutoff to len(questions).
func New(questions []challenge.Question, opts ...Option) *Session {
	s := &Session{
		id:        uuid.New().String(),
		state:     StateNotStarted,
		questions: challenge.CloneAll(questions),
		answers:   make(challenge.AnswerSet, len(questions)),
		before:    scoring.Baseline,
		threshold: scoring.ThresholdFor(len(questions)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start moves the session from NotStarted to AwaitingSubmission.
func (s *Session) Start() error {
	if s.state != StateNotStarted {
		return &InvalidTransitionError{Op: "start", From: s.state}
	}
	s.state = StateAwaitingSubmission
	return nil
}

// ReplaceQuestions swaps the question list before the session is scored.
// Used when a generated question set is adopted after the session exists.
func (s *Session) ReplaceQuestions(questions []challenge.Question) error {
	if s.state == StateScored {
		return &InvalidTransitionError{Op: "replace questions", From: s.state}
	}
	s.questions = challenge.CloneAll(questions)
	s.answers = make(challenge.AnswerSet, len(questions))
	if !s.thresholdSet {
		s.threshold = scoring.ThresholdFor(len(questions))
	}
	return nil
}

// RecordAnswer stores choice for question i, overwriting any earlier choice.
func (s *Session) RecordAnswer(i int, choice string) error {
	if s.state != StateAwaitingSubmission {
		return &InvalidTransitionError{Op: "record answer", From: s.state}
	}
	if i < 0 || i >= len(s.questions) {
		return fmt.Errorf("record answer %d: %w", i, ErrIndexOutOfRange)
	}
	if !s.questions[i].HasOption(choice) {
		return fmt.Errorf("record answer %d %q: %w", i, choice, ErrUnknownOption)
	}
	s.answers[i] = choice
	return nil
}

// Submit grades the answer set and moves the session to Scored. It fails
// with *IncompleteAnswerError, leaving the state unchanged, when any
// question is unanswered. The outcome is computed exactly once.
func (s *Session) Submit() (*scoring.Outcome, error) {
	if s.state != StateAwaitingSubmission {
		return nil, &InvalidTransitionError{Op: "submit", From: s.state}
	}
	if missing := s.Missing(); len(missing) > 0 {
		return nil, &IncompleteAnswerError{Missing: missing}
	}

	out := scoring.Evaluate(s.questions, s.answers, s.before, s.threshold)
	s.outcome = &out
	s.state = StateScored
	return s.Outcome(), nil
}

// ID returns the session's UUID.
func (s *Session) ID() string { return s.id }

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Before returns the "before" metrics.
func (s *Session) Before() scoring.MetricTriple { return s.before }

// Threshold returns the High tier cutoff in use.
func (s *Session) Threshold() int { return s.threshold }

// Questions returns a copy of the session's questions.
func (s *Session) Questions() []challenge.Question {
	return challenge.CloneAll(s.questions)
}

// Answers returns a copy of the recorded answers.
func (s *Session) Answers() challenge.AnswerSet {
	return s.answers.Clone()
}

// Answer returns the recorded choice for question i.
func (s *Session) Answer(i int) (string, bool) {
	a, ok := s.answers[i]
	return a, ok
}

// Outcome returns a copy of the graded result, or nil before Submit succeeds.
func (s *Session) Outcome() *scoring.Outcome {
	if s.outcome == nil {
		return nil
	}
	out := *s.outcome
	return &out
}

// Missing returns the unanswered question indices in ascending order.
func (s *Session) Missing() []int {
	var missing []int
	for i := range s.questions {
		if _, ok := s.answers[i]; !ok {
			missing = append(missing, i)
		}
	}
	return missing
}
