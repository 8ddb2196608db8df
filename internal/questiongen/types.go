package questiongen

import "github.com/taskgene/arena/internal/challenge"

// GenerateInput holds the context the prompt is built from.
type GenerateInput struct {
	// LearnerName is who the questions are for, e.g. "Priya".
	LearnerName string

	// Topic is the learner's most recent task.
	Topic string

	// Count is the number of questions requested.
	Count int
}

// Generated is one provider reply.
type Generated struct {
	// Raw is the model's text as returned.
	Raw string

	// Questions is populated only for structured generation.
	Questions []challenge.Question
}
