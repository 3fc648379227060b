package ui

import (
	"github.com/atomicstack/custom-picker/internal/logging/events"
	"github.com/atomicstack/custom-picker/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit()
	case key.Matches(keyMsg, m.keys.Back):
		return m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}
	return m.forward(keyMsg)
}

// handleEscapeKey pops the visible screen, or quits from the root.
func (m *Model) handleEscapeKey() tea.Cmd {
	if !m.stack.Pop(nav.ReasonBack) {
		return m.quit()
	}
	m.errMsg = ""
	return nil
}

func (m *Model) quit() tea.Cmd {
	id := ""
	if top := m.stack.Top(); top != nil {
		id = top.ID()
	}
	events.Nav.Quit(id)
	m.quitting = true
	return tea.Quit
}
