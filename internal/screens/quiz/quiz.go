// Package quiz runs a started challenge: it loads the questions, shows the
// "before" dashboard and collects the learner's answers.
package quiz

import (
	"context"
	"errors"
	"log"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/taskgene/arena/internal/learner"
	"github.com/taskgene/arena/internal/llm"
	"github.com/taskgene/arena/internal/questiongen"
	"github.com/taskgene/arena/internal/router"
	"github.com/taskgene/arena/internal/screen"
	"github.com/taskgene/arena/internal/screens/results"
	"github.com/taskgene/arena/internal/session"
	"github.com/taskgene/arena/internal/ui/components"
	"github.com/taskgene/arena/internal/ui/layout"
	"github.com/taskgene/arena/internal/ui/theme"
)

type phase int

const (
	phaseLoading phase = iota
	phaseBefore
	phaseForm
)

// QuizScreen implements screen.Screen for an AwaitingSubmission session.
type QuizScreen struct {
	sess      *session.Session
	source    *questiongen.Source
	profile   learner.Profile
	poweredBy string

	phase   phase
	spinner spinner.Model
	result  questiongen.Result

	forms   []components.MultiChoice
	current int
	scroll  int
	notice  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the screen for a started session. source may be nil, in which
// case the session's own questions are used as they are.
func New(sess *session.Session, source *questiongen.Source, profile learner.Profile, poweredBy string) *QuizScreen {
	return &QuizScreen{
		sess:      sess,
		source:    source,
		profile:   profile,
		poweredBy: poweredBy,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	if q.source == nil {
		return func() tea.Msg {
			return questionsLoadedMsg{Result: questiongen.Result{
				Questions: q.sess.Questions(),
				Origin:    questiongen.OriginStatic,
			}}
		}
	}
	return tea.Batch(q.spinner.Tick, q.loadQuestions())
}

func (q *QuizScreen) Title() string {
	switch q.phase {
	case phaseBefore:
		return "Before Test"
	case phaseForm:
		return "Micro-Challenge"
	default:
		return "Preparing"
	}
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseBefore:
		return []layout.KeyHint{
			{Key: keys.Begin.Help().Key, Description: keys.Begin.Help().Desc},
			{Key: "↑↓", Description: "Scroll"},
		}
	case phaseForm:
		return []layout.KeyHint{
			{Key: keys.Up.Help().Key, Description: keys.Up.Help().Desc},
			{Key: keys.Choose.Help().Key, Description: keys.Choose.Help().Desc},
			{Key: keys.Next.Help().Key, Description: keys.Next.Help().Desc},
			{Key: keys.Submit.Help().Key, Description: keys.Submit.Help().Desc},
			{Key: keys.Dashboard.Help().Key, Description: keys.Dashboard.Help().Desc},
		}
	default:
		return nil
	}
}

// loadQuestions runs the Source off the UI goroutine.
func (q *QuizScreen) loadQuestions() tea.Cmd {
	source, id := q.source, q.sess.ID()
	return func() tea.Msg {
		ctx := llm.WithSession(context.Background(), id)
		return questionsLoadedMsg{Result: source.Load(ctx)}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		return q.handleLoaded(msg)

	case spinner.TickMsg:
		if q.phase != phaseLoading {
			return q, nil
		}
		var cmd tea.Cmd
		q.spinner, cmd = q.spinner.Update(msg)
		return q, cmd

	case tea.KeyMsg:
		switch q.phase {
		case phaseBefore:
			return q.handleBeforeKey(msg)
		case phaseForm:
			return q.handleFormKey(msg)
		}
	}
	return q, nil
}

func (q *QuizScreen) handleLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	q.result = msg.Result
	if msg.Result.Origin == questiongen.OriginGenerated {
		if err := q.sess.ReplaceQuestions(msg.Result.Questions); err != nil {
			log.Printf("quiz: %v", err)
		}
	}

	qs := q.sess.Questions()
	q.forms = make([]components.MultiChoice, len(qs))
	for i, question := range qs {
		q.forms[i] = components.NewMultiChoice(i+1, question.Prompt, question.Options)
		if a, ok := q.sess.Answer(i); ok {
			if idx := question.AnswerIndexOf(a); idx >= 0 {
				q.forms[i].Choose(idx)
			}
		}
	}

	q.phase = phaseBefore
	q.scroll = 0
	return q, nil
}

func (q *QuizScreen) handleBeforeKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Begin), key.Matches(msg, keys.Dashboard):
		q.phase = phaseForm
	case key.Matches(msg, keys.Up):
		q.scroll--
	case key.Matches(msg, keys.Down):
		q.scroll++
	}
	return q, nil
}

func (q *QuizScreen) handleFormKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if len(q.forms) == 0 {
		return q, nil
	}
	form := &q.forms[q.current]

	if i, ok := optionKeys[msg.String()]; ok {
		q.choose(i)
		return q, nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		form.Up()
	case key.Matches(msg, keys.Down):
		form.Down()
	case key.Matches(msg, keys.Choose):
		q.choose(-1)
	case key.Matches(msg, keys.Next):
		q.current = min(q.current+1, len(q.forms)-1)
	case key.Matches(msg, keys.Prev):
		q.current = max(q.current-1, 0)
	case key.Matches(msg, keys.Dashboard):
		q.phase = phaseBefore
	case key.Matches(msg, keys.Submit):
		return q.submit()
	}
	return q, nil
}

// choose records option i (or the cursor) for the current question and
// moves on to the next question.
func (q *QuizScreen) choose(i int) {
	form := &q.forms[q.current]
	if i >= len(form.Options) {
		return
	}
	prev := form.Chosen
	choice, ok := form.Choose(i)
	if !ok {
		return
	}
	if err := q.sess.RecordAnswer(q.current, choice); err != nil {
		log.Printf("quiz: %v", err)
		form.Chosen = prev
		return
	}
	q.notice = ""
	if q.current < len(q.forms)-1 {
		q.current++
	}
}

func (q *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	out, err := q.sess.Submit()
	if err != nil {
		var incomplete *session.IncompleteAnswerError
		if errors.As(err, &incomplete) {
			q.notice = incomplete.Error()
			q.current = incomplete.Missing[0]
			return q, nil
		}
		log.Printf("quiz: %v", err)
		return q, nil
	}

	next := results.New(q.sess, *out, q.profile)
	return q, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// Current returns the index of the question on screen.
func (q *QuizScreen) Current() int { return q.current }

// Notice returns the message shown above the form, if any.
func (q *QuizScreen) Notice() string { return q.notice }
