package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You write short multiple choice quizzes that refresh office workers' spreadsheet skills.

Rules:
- Questions must be answerable in a few seconds by someone who uses Excel at work.
- Every question has exactly 4 options labeled "A. ", "B. ", "C. " and "D. ".
- Exactly one option is correct. The answer must repeat the correct option text exactly, label included.
- Distractors should be plausible mistakes, not jokes.`

// buildUserMessage constructs the request from the learner context.
func buildUserMessage(input GenerateInput) string {
	name := input.LearnerName
	if name == "" {
		name = "The learner"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s has spent hours on %s. ", name, input.Topic)
	fmt.Fprintf(&b, "Generate %d multiple choice questions relevant to that kind of Excel work. ", input.Count)
	b.WriteString("Each question should have 4 options and indicate the correct answer.")
	return b.String()
}
