package tui

import "github.com/charmbracelet/lipgloss"

// Style controls how the model draws text, the selection and the caret.
type Style struct {
	Text      lipgloss.Style
	Selection lipgloss.Style
	Caret     lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:      lipgloss.NewStyle(),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Caret:     lipgloss.NewStyle().Reverse(true),
	}
}
