package picker

import (
	"strings"

	"github.com/atomicstack/custom-picker/internal/binding"
	"github.com/atomicstack/custom-picker/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

// DefaultCheckmark marks the selected rows.
const DefaultCheckmark = "✓"

const rowIndicator = "▌"

// Row is one rendered entry of the option list.
type Row[V comparable] struct {
	Index    int
	Content  Renderable
	Tag      Tag[V]
	Selected bool
}

// BuildRows produces one row per option in declaration order. A row is
// selected when its tag carries exactly current. Rows are neither reordered
// nor deduplicated, so several rows may be selected at once.
func BuildRows[V comparable](options []Option[V], current V) []Row[V] {
	return buildRows(options, current, true)
}

// UnselectedRows produces the rows for a list with no current value: the
// same rows as BuildRows with none of them selected.
func UnselectedRows[V comparable](options []Option[V]) []Row[V] {
	var zero V
	return buildRows(options, zero, false)
}

func buildRows[V comparable](options []Option[V], current V, present bool) []Row[V] {
	rows := make([]Row[V], len(options))
	for i, opt := range options {
		rows[i] = Row[V]{
			Index:    i,
			Content:  opt.Content,
			Tag:      opt.Tag,
			Selected: present && opt.Tag.Matches(current),
		}
	}
	return rows
}

// Activate handles a choice of row. A tagged row writes its value through
// selection; the list is then dismissed whether or not a write happened.
// It reports whether the selection was written.
func Activate[V comparable](row Row[V], selection binding.Binding[V], onDismissRequested func()) bool {
	wrote := false
	if v, ok := row.Tag.Value(); ok && binding.Bound(selection) {
		selection.Set(v)
		wrote = true
	}
	if onDismissRequested != nil {
		onDismissRequested()
	}
	return wrote
}

func (r Row[V]) view() string {
	if r.Content == nil {
		return ""
	}
	return r.Content.View()
}

// Trait describes a row to assistive output.
type Trait uint8

const (
	TraitButton Trait = 1 << iota
	TraitSelected
)

// Has reports whether t includes every bit of other.
func (t Trait) Has(other Trait) bool {
	return t&other == other
}

func (t Trait) String() string {
	parts := make([]string, 0, 2)
	if t.Has(TraitButton) {
		parts = append(parts, "button")
	}
	if t.Has(TraitSelected) {
		parts = append(parts, "selected")
	}
	return strings.Join(parts, ",")
}

// Semantics is the single combined element a row exposes: its label and
// traits. The checkmark is never part of the label.
type Semantics struct {
	Label  string
	Traits Trait
}

func (s Semantics) String() string {
	if s.Traits == 0 {
		return s.Label
	}
	return s.Label + " [" + s.Traits.String() + "]"
}

// Semantics merges the row content into one accessible element.
func (r Row[V]) Semantics() Semantics {
	lines := strings.Split(ansi.Strip(r.view()), "\n")
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts = append(parts, line)
	}
	traits := TraitButton
	if r.Selected {
		traits |= TraitSelected
	}
	return Semantics{Label: strings.Join(parts, ", "), Traits: traits}
}

// renderRow draws a row as one or more lines. Content keeps its own lines;
// the checkmark trails the first line of a selected row. width <= 0 leaves
// lines unpadded.
func renderRow[V comparable](row Row[V], focused bool, width int, checkmark string, styles *theme.Styles) []string {
	indicatorStyle := styles.ItemIndicator
	lineStyle := styles.Item
	if focused {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	lines := strings.Split(row.view(), "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		mark := ""
		if i == 0 && row.Selected && checkmark != "" {
			mark = " " + checkmark
		}
		body := " " + line
		if width > 0 {
			avail := width - lipgloss.Width(rowIndicator) - lipgloss.Width(mark)
			if avail < 1 {
				avail = 1
			}
			if lipgloss.Width(body) > avail {
				body = truncate.StringWithTail(body, uint(avail), "…")
			}
			if pad := avail - lipgloss.Width(body); pad > 0 {
				body += strings.Repeat(" ", pad)
			}
		}
		text := theme.Render(indicatorStyle, rowIndicator) + theme.Render(lineStyle, body)
		if mark != "" {
			text += theme.Render(styles.Checkmark, mark)
		}
		out[i] = text
	}
	return out
}
