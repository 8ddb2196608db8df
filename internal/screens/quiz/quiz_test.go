package quiz

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/taskgene/arena/internal/challenge"
	"github.com/taskgene/arena/internal/learner"
	"github.com/taskgene/arena/internal/questiongen"
	"github.com/taskgene/arena/internal/router"
	"github.com/taskgene/arena/internal/screens/results"
	"github.com/taskgene/arena/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, questiongen.GenerateInput) (*questiongen.Generated, error) {
	return nil, &questiongen.GenerationError{Stage: questiongen.StageRequest, Err: errors.New("dial tcp: connection refused")}
}

func startedScreen(t *testing.T, source *questiongen.Source) (*QuizScreen, *session.Session) {
	t.Helper()
	sess := session.New(challenge.ListQuestions())
	if err := sess.Start(); err != nil {
		t.Fatal(err)
	}
	q := New(sess, source, learner.Default(), "IBM watsonx (test)")
	return q, sess
}

// load delivers the Source result the way the program would.
func load(t *testing.T, q *QuizScreen) {
	t.Helper()
	var msg tea.Msg
	if q.source == nil {
		msg = q.Init()()
	} else {
		msg = q.loadQuestions()()
	}
	q.Update(msg)
}

func TestLoad_FallbackShowsBeforeDashboard(t *testing.T) {
	src := questiongen.NewSource(failingGenerator{}, learner.Default())
	q, sess := startedScreen(t, src)

	if !strings.Contains(q.View(100, 30), "Generating questions using IBM watsonx (test)") {
		t.Error("loading view should name the generator")
	}

	load(t, q)
	if q.phase != phaseBefore {
		t.Fatalf("phase = %d, want before", q.phase)
	}
	if !q.result.Fallback() {
		t.Error("expected a fallback result")
	}
	if len(q.forms) != len(sess.Questions()) {
		t.Errorf("forms = %d", len(q.forms))
	}

	view := q.View(100, 60)
	for _, want := range []string{"Monotony Score", "75%", "built-in challenge"} {
		if !strings.Contains(view, want) {
			t.Errorf("before view missing %q", want)
		}
	}
}

func TestForm_AnswerAndSubmit(t *testing.T) {
	q, sess := startedScreen(t, nil)
	load(t, q)
	q.Update(specialKey(tea.KeyEnter)) // begin

	if q.phase != phaseForm {
		t.Fatalf("phase = %d, want form", q.phase)
	}

	// Answer every question correctly by number key; each choice advances.
	for i, question := range sess.Questions() {
		if q.Current() != i {
			t.Fatalf("current = %d, want %d", q.Current(), i)
		}
		q.Update(keyPress(rune('1' + question.AnswerIndex())))
	}
	if len(sess.Answers()) != 7 {
		t.Fatalf("answers = %d", len(sess.Answers()))
	}

	_, cmd := q.Update(keyPress('s'))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	rs, ok := msg.Screen.(*results.ResultsScreen)
	if !ok {
		t.Fatalf("expected results screen, got %T", msg.Screen)
	}
	if !rs.Summary().Celebrate {
		t.Error("7/7 should celebrate")
	}
	if sess.State() != session.StateScored {
		t.Errorf("State = %s", sess.State())
	}
}

func TestForm_IncompleteSubmitShowsNotice(t *testing.T) {
	q, sess := startedScreen(t, nil)
	load(t, q)
	q.Update(specialKey(tea.KeyEnter))

	// Answer the first six with the cursor option.
	for range 6 {
		q.Update(specialKey(tea.KeyEnter))
	}
	q.current = 0

	_, cmd := q.Update(keyPress('s'))
	if cmd != nil {
		t.Error("incomplete submit should not navigate")
	}
	if !strings.HasPrefix(q.Notice(), "please answer all questions") {
		t.Errorf("notice = %q", q.Notice())
	}
	if q.Current() != 6 {
		t.Errorf("current = %d, want the missing question 6", q.Current())
	}
	if sess.State() != session.StateAwaitingSubmission {
		t.Errorf("State = %s", sess.State())
	}
	if !strings.Contains(q.View(100, 40), "please answer all questions") {
		t.Error("form should show the notice")
	}

	// Answering clears the notice.
	q.Update(keyPress('2'))
	if q.Notice() != "" {
		t.Errorf("notice not cleared: %q", q.Notice())
	}
}

func TestForm_Navigation(t *testing.T) {
	q, sess := startedScreen(t, nil)
	load(t, q)
	q.Update(specialKey(tea.KeyEnter))

	q.Update(specialKey(tea.KeyRight))
	q.Update(specialKey(tea.KeyRight))
	if q.Current() != 2 {
		t.Errorf("current = %d", q.Current())
	}
	q.Update(specialKey(tea.KeyLeft))
	if q.Current() != 1 {
		t.Errorf("current = %d", q.Current())
	}

	q.Update(specialKey(tea.KeyDown))
	q.Update(specialKey(tea.KeyEnter))
	if got, _ := sess.Answer(1); got != "B. Joins text strings" {
		t.Errorf("Answer(1) = %q", got)
	}

	// Out of range option keys are ignored.
	q.current = 3
	q.Update(keyPress('9'))
	if _, ok := sess.Answer(3); ok {
		t.Error("unexpected answer for question 3")
	}

	q.Update(keyPress('d'))
	if q.phase != phaseBefore {
		t.Error("d should show the dashboard")
	}
}
