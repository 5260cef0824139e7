package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds terminal keys to editor keys.
type KeyMap struct {
	Left, Right, Up, Down key.Binding

	Backspace key.Binding
	Enter     key.Binding

	SelectAll key.Binding
	LineEnd   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		LineEnd:   key.NewBinding(key.WithKeys("ctrl+e", "end"), key.WithHelp("ctrl+e", "line end")),
	}
}
