package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type globalKeyMap struct {
	Back key.Binding
	Quit key.Binding
	Help key.Binding
}

func defaultGlobalKeys() globalKeyMap {
	return globalKeyMap{
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
}

// footerKeys merges the visible screen's bindings with the global ones.
type footerKeys struct {
	screen help.KeyMap
	global globalKeyMap
}

func (f footerKeys) ShortHelp() []key.Binding {
	var out []key.Binding
	if f.screen != nil {
		out = append(out, f.screen.ShortHelp()...)
	}
	return append(out, f.global.Back, f.global.Quit)
}

func (f footerKeys) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	if f.screen != nil {
		out = append(out, f.screen.FullHelp()...)
	}
	return append(out, []key.Binding{f.global.Back, f.global.Quit, f.global.Help})
}
