package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/taskgene/arena/internal/dashboard"
	"github.com/taskgene/arena/internal/questiongen"
	"github.com/taskgene/arena/internal/ui/components"
	"github.com/taskgene/arena/internal/ui/layout"
	"github.com/taskgene/arena/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	switch q.phase {
	case phaseBefore:
		return q.renderBefore(width, height)
	case phaseForm:
		return q.renderForm(width, height)
	default:
		return q.renderLoading(width, height)
	}
}

func (q *QuizScreen) renderLoading(width, height int) string {
	what := "Preparing your challenge..."
	if q.poweredBy != "" {
		what = fmt.Sprintf("⏳ Generating questions using %s...", q.poweredBy)
	}
	content := q.spinner.View() + " " + theme.Body.Render(what) + "\n\n" +
		theme.Hint.Render("Preparing your challenge...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (q *QuizScreen) renderBefore(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(dashboard.Render("Skill & Productivity Dashboard", q.sess.Before(), nil, cw))
	if note := q.sourceNote(); note != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(note))
	}
	b.WriteString("\n\n")
	b.WriteString(components.NewButton("✅", fmt.Sprintf("Take the %d-question challenge", len(q.forms)), true).View(cw))

	content, offset := layout.Window(b.String(), q.scroll, height-1)
	q.scroll = offset
	return lipgloss.NewStyle().Padding(0, 2).Render(content)
}

// sourceNote explains where the questions came from.
func (q *QuizScreen) sourceNote() string {
	r := q.result
	switch {
	case r.Origin == questiongen.OriginGenerated:
		return "🧠 Questions generated for " + q.profile.Name + " by " + q.poweredBy
	case r.Fallback():
		return "Question generation was unavailable, so the built-in challenge is used."
	case r.Attempted:
		return "🧠 " + q.poweredBy + " drafted questions; the verified built-in challenge is used."
	default:
		return ""
	}
}

func (q *QuizScreen) renderForm(width, height int) string {
	if len(q.forms) == 0 {
		return ""
	}
	cw := components.ContentWidth(width)

	var b strings.Builder

	answered := 0
	for _, f := range q.forms {
		if f.Answered() {
			answered++
		}
	}
	info := theme.SectionTitle.Render(fmt.Sprintf("Question %d of %d", q.current+1, len(q.forms))) +
		theme.Hint.Render(fmt.Sprintf("   answered %d/%d", answered, len(q.forms)))
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(renderDots(q.forms, q.current))
	b.WriteString("\n\n")

	b.WriteString(components.Card(q.forms[q.current].View(cw-6), cw))
	b.WriteString("\n\n")

	if q.notice != "" {
		b.WriteString(theme.Warning.Render("⚠ " + q.notice))
		b.WriteString("\n\n")
	}

	active := answered == len(q.forms)
	b.WriteString(components.NewButton("✅", "Submit All", active).View(cw))

	content, _ := layout.Window(b.String(), 0, height)
	return lipgloss.NewStyle().Padding(0, 2).Render(content)
}

// renderDots shows one marker per question: filled once answered, bracketed
// for the current one.
func renderDots(forms []components.MultiChoice, current int) string {
	parts := make([]string, len(forms))
	for i, f := range forms {
		mark := "○"
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if f.Answered() {
			mark = "●"
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		if i == current {
			mark = "[" + mark + "]"
			style = style.Bold(true)
		} else {
			mark = " " + mark + " "
		}
		parts[i] = style.Render(mark)
	}
	return strings.Join(parts, "")
}
