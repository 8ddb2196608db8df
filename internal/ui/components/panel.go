package components

import (
	"charm.land/lipgloss/v2"

	"github.com/taskgene/arena/internal/ui/theme"
)

// ContentWidth returns the inner width used for stacked cards, so boxes of
// different content line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 84)
}

// Panel centers content in the given area inside a single primary border.
func Panel(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Primary).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded card of content width cw.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw).
		Render(content)
}
