// Package router holds the active screen. The challenge flow only moves
// forward (arena, quiz, results), so screens are swapped rather than stacked.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/taskgene/arena/internal/screen"
)

// ReplaceScreenMsg asks the router to swap the active screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router forwards messages to the active screen.
type Router struct {
	active screen.Screen
	swaps  int
}

// New creates a Router showing initial. initial.Init is left to the caller.
func New(initial screen.Screen) *Router {
	return &Router{active: initial}
}

// Replace makes s the active screen and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.active = s
	r.swaps++
	return s.Init()
}

// Active returns the screen being shown.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Swaps counts the replacements since the router was created.
func (r *Router) Swaps() int {
	return r.swaps
}

// Update handles ReplaceScreenMsg and passes everything else to the active
// screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(ReplaceScreenMsg); ok {
		return r.Replace(msg.Screen)
	}
	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
