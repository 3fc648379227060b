package demo

import "github.com/charmbracelet/bubbles/key"

type formKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
}

func defaultFormKeys() formKeyMap {
	return formKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "down"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open"),
		),
	}
}
