// Package challenge holds the micro-challenge question model and the fixed
// spreadsheet-skills question set.
package challenge

import "slices"

// OptionsPerQuestion is the number of choices every question offers.
const OptionsPerQuestion = 4

// Question is a single multiple-choice prompt. Options carry their label
// prefix ("B. VLOOKUP") and Answer is one of them, byte for byte.
type Question struct {
	Prompt  string
	Options []string
	Answer  string
}

// HasOption reports whether choice is one of the question's options.
func (q Question) HasOption(choice string) bool {
	return slices.Contains(q.Options, choice)
}

// AnswerIndex returns the position of the correct option, or -1.
func (q Question) AnswerIndex() int {
	return q.AnswerIndexOf(q.Answer)
}

// Clone returns a deep copy so callers cannot alias the option slice.
func (q Question) Clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}

// CloneAll deep-copies a question list.
func CloneAll(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q.Clone()
	}
	return out
}

// AnswerSet maps a question index to the option text the learner chose.
type AnswerSet map[int]string

// Clone returns an independent copy of the set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// AnswerIndexOf returns the position of choice among the options, or -1.
func (q Question) AnswerIndexOf(choice string) int {
	return slices.Index(q.Options, choice)
}
