package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrIndexOutOfRange is returned when an answer targets a question
	// index outside [0, N).
	ErrIndexOutOfRange = errors.New("question index out of range")

	// ErrUnknownOption is returned when a choice is not one of the
	// question's options.
	ErrUnknownOption = errors.New("choice is not an option of the question")
)

// InvalidTransitionError is returned when an operation is invoked in a state
// that does not allow it. The view is expected to prevent these.
type InvalidTransitionError struct {
	Op   string
	From State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("session: %s not allowed in state %s", e.Op, e.From)
}

// IncompleteAnswerError is returned by Submit when some questions have no
// recorded answer. Missing lists the unanswered indices in ascending order.
type IncompleteAnswerError struct {
	Missing []int
}

func (e *IncompleteAnswerError) Error() string {
	idx := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		idx[i] = strconv.Itoa(m + 1)
	}
	return fmt.Sprintf("please answer all questions (missing: %s)", strings.Join(idx, ", "))
}
