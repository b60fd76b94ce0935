package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings the backend interprets itself.
// Every other key is forwarded as a plain key event.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}
