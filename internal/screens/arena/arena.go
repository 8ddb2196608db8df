// Package arena is the entry screen: it greets the learner and starts the
// challenge session.
package arena

import (
	"fmt"
	"log"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/taskgene/arena/internal/challenge"
	"github.com/taskgene/arena/internal/learner"
	"github.com/taskgene/arena/internal/questiongen"
	"github.com/taskgene/arena/internal/router"
	"github.com/taskgene/arena/internal/screen"
	"github.com/taskgene/arena/internal/screens/quiz"
	"github.com/taskgene/arena/internal/session"
	"github.com/taskgene/arena/internal/ui/components"
	"github.com/taskgene/arena/internal/ui/layout"
	"github.com/taskgene/arena/internal/ui/theme"
)

// Config is everything the arena needs to run a challenge.
type Config struct {
	Profile learner.Profile
	Source  *questiongen.Source

	// PoweredBy names the generation backend, e.g. "IBM watsonx
	// (llama-3.3-70b)". Empty when only built-in questions are used.
	PoweredBy string

	SessionOptions []session.Option
}

type keyMap struct {
	Start key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Start: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Start challenge")),
	Quit:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
}

// ArenaScreen holds a session in the NotStarted state until the learner
// starts it.
type ArenaScreen struct {
	cfg  Config
	sess *session.Session
}

var _ screen.Screen = (*ArenaScreen)(nil)
var _ screen.KeyHintProvider = (*ArenaScreen)(nil)

// New creates the arena with a fresh session over the built-in questions.
func New(cfg Config) *ArenaScreen {
	return &ArenaScreen{
		cfg:  cfg,
		sess: session.New(challenge.ListQuestions(), cfg.SessionOptions...),
	}
}

// Session exposes the session the arena will start.
func (a *ArenaScreen) Session() *session.Session { return a.sess }

func (a *ArenaScreen) Init() tea.Cmd { return nil }

func (a *ArenaScreen) Title() string { return "Challenge Arena" }

func (a *ArenaScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: keys.Start.Help().Key, Description: keys.Start.Help().Desc},
		{Key: keys.Quit.Help().Key, Description: keys.Quit.Help().Desc},
	}
}

func (a *ArenaScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch {
	case key.Matches(kmsg, keys.Start):
		if err := a.sess.Start(); err != nil {
			log.Printf("arena: %v", err)
			return a, nil
		}
		next := quiz.New(a.sess, a.cfg.Source, a.cfg.Profile, a.cfg.PoweredBy)
		return a, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	case key.Matches(kmsg, keys.Quit):
		return a, tea.Quit
	}
	return a, nil
}

func (a *ArenaScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	p := a.cfg.Profile

	title := theme.Title.Width(cw).Render("🎯 TaskGene Challenge Arena")

	var body strings.Builder
	fmt.Fprintf(&body, "Welcome, %s! 💼\n", p.Name)
	if p.CurrentTask != "" {
		fmt.Fprintf(&body, "You're %d minutes into %s work. Feeling the monotony?\n\n", p.MinutesIn, p.CurrentTask)
	} else {
		body.WriteString("Feeling the monotony?\n\n")
	}
	if a.cfg.PoweredBy != "" {
		body.WriteString("🧠 Powered by " + lipgloss.NewStyle().Bold(true).Render(a.cfg.PoweredBy) + "\n")
	} else {
		body.WriteString("🧠 Using the built-in spreadsheet challenge\n")
	}
	body.WriteString("Ready to refresh your skills?")

	card := components.Card(theme.Body.Render(body.String()), cw)

	label := "Generate Challenge Questions"
	if a.cfg.PoweredBy == "" {
		label = "Start Challenge"
	}
	button := components.NewButton("🚀", label, true).View(cw)

	return components.Panel(strings.Join([]string{title, card, button}, "\n\n"), width, height)
}
