package picker

import (
	"fmt"
	"strings"

	"github.com/atomicstack/custom-picker/internal/binding"
	"github.com/atomicstack/custom-picker/internal/logging/events"
	"github.com/atomicstack/custom-picker/internal/nav"
	"github.com/atomicstack/custom-picker/internal/theme"
	"github.com/atomicstack/custom-picker/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const emptyListText = "(no options)"

// List is the pushed screen showing every option of an open picker. Selected
// state is recomputed from the binding on each render.
type List[V comparable] struct {
	id        string
	title     string
	options   []Option[V]
	selection binding.Binding[V]
	checkmark string
	styles    *theme.Styles
	keys      listKeyMap
	level     *state.Level
	viewport  viewport.Model
	pageRows  int

	onDismissRequested func()
	onClosed           func(nav.Reason)
}

func newList[V comparable](id, title string, options []Option[V], selection binding.Binding[V], checkmark string, styles *theme.Styles) *List[V] {
	l := &List[V]{
		id:        id,
		title:     title,
		options:   options,
		selection: selection,
		checkmark: checkmark,
		styles:    styles,
		keys:      defaultListKeys(),
		level:     state.NewLevel(id, title, len(options)),
		viewport:  viewport.New(0, 0),
	}
	for _, row := range l.Rows() {
		if row.Selected {
			l.level.Cursor = row.Index
			break
		}
	}
	return l
}

func (l *List[V]) ID() string    { return l.id }
func (l *List[V]) Title() string { return l.title }

// Cursor returns the focused row index.
func (l *List[V]) Cursor() int {
	return l.level.Cursor
}

// Rows derives the current rows against the bound selection. Without a
// binding no row is selected.
func (l *List[V]) Rows() []Row[V] {
	if !binding.Bound(l.selection) {
		return UnselectedRows(l.options)
	}
	return BuildRows(l.options, l.selection.Get())
}

// Semantics lists the accessible element of every row.
func (l *List[V]) Semantics() []Semantics {
	rows := l.Rows()
	out := make([]Semantics, len(rows))
	for i, row := range rows {
		out[i] = row.Semantics()
	}
	return out
}

// Describe narrates the focused row for assistive output.
func (l *List[V]) Describe() string {
	rows := l.Rows()
	if len(rows) == 0 {
		return emptyListText
	}
	return fmt.Sprintf("%d of %d: %s", l.level.Cursor+1, len(rows), rows[l.level.Cursor].Semantics())
}

func (l *List[V]) ShortHelp() []key.Binding {
	return l.keys.ShortHelp()
}

func (l *List[V]) FullHelp() [][]key.Binding {
	return l.keys.FullHelp()
}

// Update moves the cursor or activates the focused row.
func (l *List[V]) Update(msg tea.Msg, n nav.Navigator) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	moved := false
	switch {
	case key.Matches(keyMsg, l.keys.Up):
		moved = l.level.MoveCursorUp()
	case key.Matches(keyMsg, l.keys.Down):
		moved = l.level.MoveCursorDown()
	case key.Matches(keyMsg, l.keys.PageUp):
		moved = l.level.MoveCursorPageUp(l.pageRows)
	case key.Matches(keyMsg, l.keys.PageDown):
		moved = l.level.MoveCursorPageDown(l.pageRows)
	case key.Matches(keyMsg, l.keys.Home):
		moved = l.level.MoveCursorHome()
	case key.Matches(keyMsg, l.keys.End):
		moved = l.level.MoveCursorEnd()
	case key.Matches(keyMsg, l.keys.Choose):
		l.choose()
	}
	if moved {
		events.Picker.Cursor(l.id, l.level.Cursor)
	}
	return nil
}

// Choose activates the row at idx as if it had been focused and confirmed.
func (l *List[V]) Choose(idx int) {
	if !l.level.SetCursor(idx) && idx != l.level.Cursor {
		return
	}
	l.choose()
}

func (l *List[V]) choose() {
	rows := l.Rows()
	if len(rows) == 0 {
		return
	}
	row := rows[l.level.Cursor]
	if v, ok := row.Tag.Value(); ok {
		events.Picker.Select(l.id, row.Index, fmt.Sprint(v))
	} else {
		events.Picker.Inert(l.id, row.Index)
	}
	Activate(row, l.selection, l.onDismissRequested)
}

// Closed is called by the navigator once the list leaves the stack.
func (l *List[V]) Closed(reason nav.Reason) {
	if l.onClosed != nil {
		l.onClosed(reason)
	}
}

// View renders every row and scrolls so the focused row stays visible.
func (l *List[V]) View(width, height int) string {
	rows := l.Rows()
	if len(rows) == 0 {
		return theme.Render(l.styles.Empty, emptyListText)
	}
	lines := make([]string, 0, len(rows))
	start, end := 0, 0
	for i, row := range rows {
		rendered := renderRow(row, i == l.level.Cursor, width, l.checkmark, l.styles)
		if i == l.level.Cursor {
			start, end = len(lines), len(lines)+len(rendered)
		}
		lines = append(lines, rendered...)
	}
	l.pageRows = height
	if height <= 0 || len(lines) <= height {
		l.level.ViewportOffset = 0
		return strings.Join(lines, "\n")
	}
	l.level.ViewportOffset = state.Reveal(l.level.ViewportOffset, start, end, len(lines), height)
	l.viewport.Width = width
	l.viewport.Height = height
	l.viewport.SetContent(strings.Join(lines, "\n"))
	l.viewport.SetYOffset(l.level.ViewportOffset)
	return l.viewport.View()
}
