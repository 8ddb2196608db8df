package arena

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/taskgene/arena/internal/learner"
	"github.com/taskgene/arena/internal/router"
	"github.com/taskgene/arena/internal/screens/quiz"
	"github.com/taskgene/arena/internal/session"
)

func TestView_GreetsLearner(t *testing.T) {
	a := New(Config{Profile: learner.Default(), PoweredBy: "IBM watsonx (granite)"})
	view := a.View(100, 30)
	for _, want := range []string{"TaskGene Challenge Arena", "Welcome, Priya!", "45 minutes into Q2 Sales Data", "IBM watsonx (granite)", "Generate Challenge Questions"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	plain := New(Config{Profile: learner.Default()}).View(100, 30)
	if !strings.Contains(plain, "Start Challenge") {
		t.Error("without a generator the button should just start")
	}
}

func TestStart_TransitionsSession(t *testing.T) {
	a := New(Config{Profile: learner.Default()})
	if a.Session().State() != session.StateNotStarted {
		t.Fatalf("State = %s", a.Session().State())
	}

	_, cmd := a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*quiz.QuizScreen); !ok {
		t.Errorf("expected quiz screen, got %T", msg.Screen)
	}
	if a.Session().State() != session.StateAwaitingSubmission {
		t.Errorf("State = %s", a.Session().State())
	}

	// A second start is a contract violation and is ignored.
	if _, cmd := a.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("second start should not navigate")
	}
}

func TestQuit(t *testing.T) {
	a := New(Config{Profile: learner.Default()})
	_, cmd := a.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}
