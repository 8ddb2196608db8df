package session

// State is the phase of a challenge session. Transitions only move forward.
type State int

const (
	StateNotStarted         State = iota // Created, waiting for start
	StateAwaitingSubmission              // Questions shown, answers being recorded
	StateScored                          // Submission graded; read-only
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateAwaitingSubmission:
		return "awaiting-submission"
	case StateScored:
		return "scored"
	default:
		return "unknown"
	}
}
