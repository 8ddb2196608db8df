package quiz

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Choose    key.Binding
	Next      key.Binding
	Prev      key.Binding
	Submit    key.Binding
	Dashboard key.Binding
	Begin     key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Move")),
	Down:      key.NewBinding(key.WithKeys("down", "j")),
	Choose:    key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Choose")),
	Next:      key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("←→", "Question")),
	Prev:      key.NewBinding(key.WithKeys("left", "h", "shift+tab")),
	Submit:    key.NewBinding(key.WithKeys("s", "ctrl+s"), key.WithHelp("s", "Submit all")),
	Dashboard: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "Dashboard")),
	Begin:     key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Begin")),
}

// optionKeys pick an option directly.
var optionKeys = map[string]int{"1": 0, "2": 1, "3": 2, "4": 3}
