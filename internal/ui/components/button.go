package components

import (
	"charm.land/lipgloss/v2"

	"github.com/taskgene/arena/internal/ui/theme"
)

// Button is a styled call-to-action label.
type Button struct {
	Label  string
	Icon   string
	Active bool
}

// NewButton creates a new button.
func NewButton(icon, label string, active bool) Button {
	return Button{Label: label, Icon: icon, Active: active}
}

// View renders the button centered in width.
func (b Button) View(width int) string {
	label := b.Label
	if b.Icon != "" {
		label = b.Icon + " " + label
	}
	style := theme.ButtonInactive
	if b.Active {
		label = "▸ " + label
		style = theme.ButtonActive
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(label))
}
