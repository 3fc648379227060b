// Package demo is the screen exercising the picker: a form with a single
// "Pick something" row backed by the catalog.
package demo

import (
	"strings"

	"github.com/atomicstack/custom-picker/internal/binding"
	"github.com/atomicstack/custom-picker/internal/catalog"
	"github.com/atomicstack/custom-picker/internal/format/table"
	"github.com/atomicstack/custom-picker/internal/logging/events"
	"github.com/atomicstack/custom-picker/internal/nav"
	"github.com/atomicstack/custom-picker/internal/picker"
	"github.com/atomicstack/custom-picker/internal/theme"
	"github.com/atomicstack/custom-picker/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	FormID        = "form"
	DefaultTitle  = "Custom Picker"
	ListTitle     = "Pick an item"
	PickerLabel   = "Pick something"
	NoItemLabel   = "No item"
	ClearLabel    = "Clear selection"
	nothingChosen = "none"
)

// Selection is the value the demo picker is bound to.
type Selection = picker.Optional[catalog.Item]

const (
	rowPicker = iota
	rowClear
	rowCount
)

// Form is the root screen of the demo.
type Form struct {
	title     string
	items     []catalog.Item
	selection *binding.Value[Selection]
	picker    *picker.Picker[Selection]
	level     *state.Level
	keys      formKeyMap
	styles    *theme.Styles
	width     int
	shown     Selection
	unbind    binding.Unbind
}

// NewForm builds the demo form over items. notify receives a short message
// whenever the selection changes; writing the current value again is silent.
// notify may be nil.
func NewForm(title string, items []catalog.Item, notify func(string)) *Form {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	f := &Form{
		title:     title,
		items:     items,
		selection: binding.New(picker.None[catalog.Item]()),
		level:     state.NewLevel(FormID, title, rowCount),
		keys:      defaultFormKeys(),
		styles:    theme.Default(),
	}
	f.picker = picker.New[Selection](f.selection, f.options, f.label,
		picker.WithID("items"),
		picker.WithTitle(ListTitle),
		picker.WithStyles(f.styles),
	)
	f.shown = f.selection.Get()
	f.unbind = f.selection.Bind(func(sel Selection) {
		if sel == f.shown {
			return
		}
		f.shown = sel
		msg := "Selected " + selectedName(sel)
		events.Action.Success(msg)
		if notify != nil {
			notify(msg)
		}
	})
	return f
}

func (f *Form) options() picker.Content[Selection] {
	return picker.Build[Selection](
		picker.WithTag(picker.Text(NoItemLabel), picker.None[catalog.Item]()),
		picker.ForEach(f.items, func(it catalog.Item) picker.Option[Selection] {
			return picker.WithTag(ItemView{Item: it, Styles: f.styles}, picker.Some(it))
		}),
	)
}

func (f *Form) label() picker.Renderable {
	value := theme.Render(f.styles.LabelValue, selectedName(f.selection.Get()))
	return picker.Text(table.Spread(theme.Render(f.styles.Label, PickerLabel), value, f.width-2))
}

func selectedName(sel Selection) string {
	if it, ok := sel.Get(); ok {
		return it.Name
	}
	return nothingChosen
}

func (f *Form) ID() string    { return FormID }
func (f *Form) Title() string { return f.title }

// Selection exposes the bound value.
func (f *Form) Selection() *binding.Value[Selection] {
	return f.selection
}

// Picker exposes the form's picker.
func (f *Form) Picker() *picker.Picker[Selection] {
	return f.picker
}

// Cursor returns the focused form row.
func (f *Form) Cursor() int {
	return f.level.Cursor
}

// Close drops the form's observer on the selection.
func (f *Form) Close() {
	if f.unbind != nil {
		f.unbind()
		f.unbind = nil
	}
}

func (f *Form) ShortHelp() []key.Binding {
	return []key.Binding{f.keys.Up, f.keys.Down, f.keys.Activate}
}

func (f *Form) FullHelp() [][]key.Binding {
	return [][]key.Binding{f.ShortHelp()}
}

// Update moves between rows and activates the focused one.
func (f *Form) Update(msg tea.Msg, n nav.Navigator) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, f.keys.Up):
		if f.level.MoveCursorUp() {
			events.Form.Cursor(FormID, f.level.Cursor)
		}
	case key.Matches(keyMsg, f.keys.Down):
		if f.level.MoveCursorDown() {
			events.Form.Cursor(FormID, f.level.Cursor)
		}
	case key.Matches(keyMsg, f.keys.Activate):
		f.activate(n)
	}
	return nil
}

func (f *Form) activate(n nav.Navigator) {
	switch f.level.Cursor {
	case rowPicker:
		events.Form.Activate(FormID, "picker")
		f.level.RememberCursor()
		f.picker.Activate(n)
	case rowClear:
		events.Form.Activate(FormID, "clear")
		if f.selection.Get() != picker.None[catalog.Item]() {
			f.selection.Set(picker.None[catalog.Item]())
		}
	}
}

// View draws the rows followed by the details of the current selection.
func (f *Form) View(width, height int) string {
	if f.picker.Phase() == picker.Closed {
		f.level.RestoreCursor()
	}
	f.width = width
	lines := []string{
		f.renderRow(f.picker.View(), f.level.Cursor == rowPicker, width),
		f.renderRow(ClearLabel, f.level.Cursor == rowClear, width),
		"",
	}
	lines = append(lines, f.details()...)
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (f *Form) details() []string {
	it, ok := f.selection.Get().Get()
	if !ok {
		return []string{theme.Render(f.styles.Empty, "Nothing selected")}
	}
	rows := [][]string{{"Name", it.Name}}
	if it.Description != "" {
		rows = append(rows, []string{"Description", it.Description})
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
	for i, line := range formatted {
		formatted[i] = theme.Render(f.styles.Info, line)
	}
	return formatted
}

func (f *Form) renderRow(text string, focused bool, width int) string {
	indicatorStyle, lineStyle := f.styles.ItemIndicator, f.styles.Item
	if focused {
		indicatorStyle, lineStyle = f.styles.SelectedItemIndicator, f.styles.SelectedItem
	}
	body := " " + text
	if width > 0 {
		avail := width - 1
		if lipgloss.Width(body) > avail && avail > 0 {
			body = truncate.StringWithTail(body, uint(avail), "…")
		}
		if pad := avail - lipgloss.Width(body); pad > 0 {
			body += strings.Repeat(" ", pad)
		}
	}
	return theme.Render(indicatorStyle, "▌") + theme.Render(lineStyle, body)
}
