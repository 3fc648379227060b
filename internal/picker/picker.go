package picker

import (
	"github.com/atomicstack/custom-picker/internal/binding"
	"github.com/atomicstack/custom-picker/internal/logging/events"
	"github.com/atomicstack/custom-picker/internal/nav"
	"github.com/atomicstack/custom-picker/internal/theme"
)

// DefaultTitle is the title of the pushed list when none is configured.
const DefaultTitle = "Select"

// Phase reports whether a picker's list is on screen.
type Phase int

const (
	Closed Phase = iota
	Open
)

func (p Phase) String() string {
	if p == Open {
		return "open"
	}
	return "closed"
}

type settings struct {
	id        string
	title     string
	checkmark string
	styles    *theme.Styles
}

// Setting customises a Picker.
type Setting func(*settings)

// WithTitle sets the title of the pushed list screen.
func WithTitle(title string) Setting {
	return func(s *settings) { s.title = title }
}

// WithID sets the identifier used for the list screen and in traces.
func WithID(id string) Setting {
	return func(s *settings) { s.id = id }
}

// WithCheckmark replaces the selected-row marker. An empty mark hides it.
func WithCheckmark(mark string) Setting {
	return func(s *settings) { s.checkmark = mark }
}

// WithStyles renders rows with styles instead of theme.Default.
func WithStyles(styles *theme.Styles) Setting {
	return func(s *settings) {
		if styles != nil {
			s.styles = styles
		}
	}
}

// Picker is a trigger that, when activated, pushes a list of options bound
// to a single selection value.
type Picker[V comparable] struct {
	selection binding.Binding[V]
	content   func() Content[V]
	label     func() Renderable
	settings  settings
	phase     Phase
	list      *List[V]
}

// New returns a closed picker. Nothing is validated and neither builder is
// called until needed: label on every View, content on every open.
func New[V comparable](selection binding.Binding[V], content func() Content[V], label func() Renderable, opts ...Setting) *Picker[V] {
	s := settings{
		id:        "picker",
		title:     DefaultTitle,
		checkmark: DefaultCheckmark,
		styles:    theme.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return &Picker[V]{
		selection: selection,
		content:   content,
		label:     label,
		settings:  s,
	}
}

// View renders the summary label.
func (p *Picker[V]) View() string {
	if p.label == nil {
		return ""
	}
	r := p.label()
	if r == nil {
		return ""
	}
	return r.View()
}

// Title is the title of the list pushed on activation.
func (p *Picker[V]) Title() string {
	return p.settings.title
}

// Phase reports whether the list is open.
func (p *Picker[V]) Phase() Phase {
	return p.phase
}

// List returns the open list screen, or nil while closed.
func (p *Picker[V]) List() *List[V] {
	return p.list
}

// Activate opens the picker by pushing a fresh list onto n. It does nothing
// while the picker is already open.
func (p *Picker[V]) Activate(n nav.Navigator) {
	if p.phase == Open || n == nil {
		return
	}
	var content Content[V]
	if p.content != nil {
		content = p.content()
	}
	options := Flatten(content)
	list := newList(p.settings.id, p.settings.title, options, p.selection, p.settings.checkmark, p.settings.styles)
	list.onDismissRequested = func() {
		if n.Top() == nav.Screen(list) {
			n.Pop(nav.ReasonDismiss)
		}
	}
	list.onClosed = func(reason nav.Reason) {
		p.closed(list, reason)
	}
	p.list = list
	p.phase = Open
	events.Picker.Open(p.settings.id, len(options))
	n.Push(list)
}

func (p *Picker[V]) closed(list *List[V], reason nav.Reason) {
	if p.list != list {
		return
	}
	p.list = nil
	p.phase = Closed
	events.Picker.Close(p.settings.id, string(reason))
}
