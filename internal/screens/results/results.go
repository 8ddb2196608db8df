// Package results shows a scored session: the score, any rewards, the
// "after" dashboard and the learner's progress timeline.
package results

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/taskgene/arena/internal/dashboard"
	"github.com/taskgene/arena/internal/learner"
	"github.com/taskgene/arena/internal/rewards"
	"github.com/taskgene/arena/internal/screen"
	"github.com/taskgene/arena/internal/scoring"
	"github.com/taskgene/arena/internal/session"
	"github.com/taskgene/arena/internal/ui/components"
	"github.com/taskgene/arena/internal/ui/layout"
	"github.com/taskgene/arena/internal/ui/theme"
)

// RestartMsg asks the app for a fresh arena and session.
type RestartMsg struct{}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k", "pgup"), key.WithHelp("↑↓", "Scroll")),
	Down:    key.NewBinding(key.WithKeys("down", "j", "pgdown")),
	Restart: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "New challenge")),
	Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
}

// ResultsScreen is read-only; the session is already Scored.
type ResultsScreen struct {
	sess    *session.Session
	outcome scoring.Outcome
	profile learner.Profile
	summary rewards.Summary
	scroll  int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for a scored session.
func New(sess *session.Session, out scoring.Outcome, profile learner.Profile) *ResultsScreen {
	return &ResultsScreen{
		sess:    sess,
		outcome: out,
		profile: profile,
		summary: rewards.For(out, profile),
	}
}

// Session returns the scored session.
func (r *ResultsScreen) Session() *session.Session { return r.sess }

// Summary returns the rewards being shown.
func (r *ResultsScreen) Summary() rewards.Summary { return r.summary }

func (r *ResultsScreen) Init() tea.Cmd { return nil }

func (r *ResultsScreen) Title() string { return "After Test" }

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: keys.Up.Help().Key, Description: keys.Up.Help().Desc},
		{Key: keys.Restart.Help().Key, Description: keys.Restart.Help().Desc},
		{Key: keys.Quit.Help().Key, Description: keys.Quit.Help().Desc},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	switch {
	case key.Matches(kmsg, keys.Up):
		r.scroll--
	case key.Matches(kmsg, keys.Down):
		r.scroll++
	case key.Matches(kmsg, keys.Restart):
		return r, func() tea.Msg { return RestartMsg{} }
	case key.Matches(kmsg, keys.Quit):
		return r, tea.Quit
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	sections := []string{r.renderBanner(cw)}

	if len(r.summary.Badges) > 0 {
		sections = append(sections, renderBadges(r.summary.Badges))
	}
	if r.summary.Suggestion != "" {
		sections = append(sections,
			theme.SectionTitle.Render("💡 Smart Workflow Suggestion")+"\n\n"+
				theme.Notice.Width(cw).Render(r.summary.Suggestion))
	}

	after := r.outcome.After
	sections = append(sections,
		dashboard.Render("Skill & Productivity Dashboard", r.outcome.Before, &after, cw),
		renderTimeline(r.profile.Name, r.summary.Timeline),
	)

	content, offset := layout.Window(strings.Join(sections, "\n\n"), r.scroll, height)
	r.scroll = offset
	return lipgloss.NewStyle().Padding(0, 2).Render(content)
}

func (r *ResultsScreen) renderBanner(cw int) string {
	score := fmt.Sprintf("🎉 You scored %d out of %d", r.outcome.Score, r.outcome.Total)
	style := lipgloss.NewStyle().Bold(true).Foreground(theme.Success)
	if !r.outcome.Passed() {
		style = style.Foreground(theme.Accent)
	}
	banner := style.Render(score)
	if r.summary.Celebrate {
		confetti := lipgloss.NewStyle().Foreground(theme.Accent).
			Render(strings.Repeat("🎈 🎊 ", max(cw/6, 1)))
		banner = confetti + "\n" + banner + "\n" + confetti
	}
	return banner
}

func renderBadges(badges []rewards.Badge) string {
	var b strings.Builder
	b.WriteString(theme.SectionTitle.Render("🏅 Achievement Unlocked"))
	b.WriteString("\n")
	for _, badge := range badges {
		line := fmt.Sprintf("\n  %s %s", badge.Icon, lipgloss.NewStyle().Bold(true).Render(badge.Name))
		if badge.New {
			line += " " + lipgloss.NewStyle().Foreground(theme.Accent).Render("🆕")
		}
		b.WriteString(line)
	}
	return b.String()
}

func renderTimeline(name string, entries []rewards.TimelineEntry) string {
	whenWidth := 0
	for _, e := range entries {
		whenWidth = max(whenWidth, lipgloss.Width(e.When))
	}

	var b strings.Builder
	b.WriteString(theme.SectionTitle.Render(fmt.Sprintf("📊 %s's Progress Timeline", name)))
	b.WriteString("\n")
	for _, e := range entries {
		when := lipgloss.NewStyle().Foreground(theme.TextDim).Width(whenWidth).Render(e.When)
		fmt.Fprintf(&b, "\n  %s  │  %s %s", when, e.Icon, e.Label)
	}
	return b.String()
}
