package questiongen

import (
	"fmt"
	"strings"

	"github.com/taskgene/arena/internal/challenge"
)

var optionLabels = []string{"A", "B", "C", "D"}

// normalizeQuestion relabels options as "A. ", "B. ", ... in order and maps
// an answer given as a bare letter or unlabeled text onto its option.
// Answers that match nothing are left alone for the validators to reject.
func normalizeQuestion(prompt string, options []string, answer string) challenge.Question {
	q := challenge.Question{
		Prompt:  strings.TrimSpace(prompt),
		Options: make([]string, len(options)),
		Answer:  strings.TrimSpace(answer),
	}

	bare := make([]string, len(options))
	for i, opt := range options {
		bare[i] = stripLabel(strings.TrimSpace(opt))
		if i < len(optionLabels) {
			q.Options[i] = fmt.Sprintf("%s. %s", optionLabels[i], bare[i])
		} else {
			q.Options[i] = bare[i]
		}
	}

	if q.HasOption(q.Answer) {
		return q
	}
	letter := strings.TrimSuffix(q.Answer, ".")
	for i := range q.Options {
		if i < len(optionLabels) && strings.EqualFold(letter, optionLabels[i]) {
			q.Answer = q.Options[i]
			return q
		}
	}
	answerBare := stripLabel(q.Answer)
	for i := range q.Options {
		if answerBare == bare[i] {
			q.Answer = q.Options[i]
			return q
		}
	}
	return q
}

// stripLabel removes a leading "X. " or "X) " option label.
func stripLabel(opt string) string {
	if len(opt) < 3 || (opt[1] != '.' && opt[1] != ')') || opt[2] != ' ' {
		return opt
	}
	switch opt[0] {
	case 'A', 'B', 'C', 'D', 'a', 'b', 'c', 'd':
		return strings.TrimSpace(opt[3:])
	}
	return opt
}
