package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/taskgene/arena/internal/ui/theme"
)

// MultiChoice is one question of an answer form. Moving the cursor does not
// change the answer; Choose does.
type MultiChoice struct {
	Number   int
	Question string
	Options  []string
	Cursor   int
	Chosen   int // -1 until an option is chosen
}

// NewMultiChoice creates an unanswered question.
func NewMultiChoice(number int, question string, options []string) MultiChoice {
	return MultiChoice{
		Number:   number,
		Question: question,
		Options:  options,
		Chosen:   -1,
	}
}

// Up moves the cursor to the previous option.
func (m *MultiChoice) Up() {
	if m.Cursor > 0 {
		m.Cursor--
	}
}

// Down moves the cursor to the next option.
func (m *MultiChoice) Down() {
	if m.Cursor < len(m.Options)-1 {
		m.Cursor++
	}
}

// Choose marks the option at i, or at the cursor when i is negative, and
// returns its text. It returns false for an out-of-range index.
func (m *MultiChoice) Choose(i int) (string, bool) {
	if i < 0 {
		i = m.Cursor
	}
	if i >= len(m.Options) {
		return "", false
	}
	m.Cursor = i
	m.Chosen = i
	return m.Options[i], true
}

// Answered reports whether an option has been chosen.
func (m MultiChoice) Answered() bool {
	return m.Chosen >= 0
}

// View renders the question and its options.
func (m MultiChoice) View(width int) string {
	var b strings.Builder

	q := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width).
		Render(fmt.Sprintf("%d. %s", m.Number, m.Question))
	b.WriteString(q)
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := "○"
		if i == m.Chosen {
			mark = "◉"
		}
		line := fmt.Sprintf("%s%s %s", cursor, mark, opt)

		switch {
		case i == m.Chosen:
			b.WriteString(theme.Chosen.Render(line))
		case i == m.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
