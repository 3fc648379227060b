package ui

import (
	"github.com/atomicstack/custom-picker/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeScreen struct {
	id      string
	title   string
	body    string
	got     []tea.Msg
	reasons []nav.Reason
	push    nav.Screen
}

func newFakeScreen(id, title string) *fakeScreen {
	return &fakeScreen{id: id, title: title, body: title + " body"}
}

func (f *fakeScreen) ID() string    { return f.id }
func (f *fakeScreen) Title() string { return f.title }

func (f *fakeScreen) Update(msg tea.Msg, n nav.Navigator) tea.Cmd {
	f.got = append(f.got, msg)
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter && f.push != nil {
		n.Push(f.push)
	}
	return nil
}

func (f *fakeScreen) View(width, height int) string {
	return f.body
}

func (f *fakeScreen) Closed(reason nav.Reason) {
	f.reasons = append(f.reasons, reason)
}
