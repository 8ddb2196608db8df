// Package screen defines what the app frame needs from each step of the
// challenge flow.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/taskgene/arena/internal/ui/layout"
)

// Screen is one step of the flow, drawn inside the header and footer.
type Screen interface {
	Init() tea.Cmd

	// Update returns the screen that should stay active, usually itself.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the area between header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens that list their keys in the
// footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
