package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskgene/arena/internal/challenge"
	"github.com/taskgene/arena/internal/learner"
	"github.com/taskgene/arena/internal/scoring"
	"github.com/taskgene/arena/internal/session"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 0, true},
		{" 4 ", 3, true},
		{"b", 1, true},
		{"D", 3, true},
		{"5", 0, false},
		{"0", 0, false},
		{"E", 0, false},
		{"", 0, false},
		{"VLOOKUP", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseChoice(tt.in, challenge.OptionsPerQuestion)
		assert.Equal(t, tt.ok, ok, "parseChoice(%q)", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "parseChoice(%q)", tt.in)
		}
	}
}

func TestPlaySession_AllCorrect(t *testing.T) {
	sess := session.New(challenge.ListQuestions())

	// Correct answers are B B B C C A B; the first line is rejected and re-asked.
	in := strings.NewReader("x\nB\n2\nb\n3\nC\n1\nB\n")
	var out bytes.Buffer

	outcome, err := playSession(in, &out, sess)
	require.NoError(t, err)
	assert.Equal(t, 7, outcome.Score)
	assert.Equal(t, scoring.TierHigh, outcome.Tier)
	assert.Contains(t, out.String(), "Pick 1-4 or A-D.")

	var report bytes.Buffer
	printOutcome(&report, *outcome, learner.Default())
	for _, want := range []string{"You scored 7 out of 7 (High)", "Data Viz Basics", "Monotony Score      70%  (-5%)", "+10%"} {
		assert.Contains(t, report.String(), want)
	}
}

func TestPlaySession_InputClosedIsIncomplete(t *testing.T) {
	sess := session.New(challenge.ListQuestions())

	_, err := playSession(strings.NewReader("1\n1\n"), &bytes.Buffer{}, sess)

	var incomplete *session.IncompleteAnswerError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, []int{2, 3, 4, 5, 6}, incomplete.Missing)
	assert.Equal(t, session.StateAwaitingSubmission, sess.State())
}

func TestPrintQuestions_MarksAnswers(t *testing.T) {
	var out bytes.Buffer
	printQuestions(&out, challenge.ListQuestions())
	assert.Contains(t, out.String(), "1. Which Excel function is best for looking up a value in a table?")
	assert.Contains(t, out.String(), "* B. VLOOKUP")
	assert.Contains(t, out.String(), "  A. SUM")
}
