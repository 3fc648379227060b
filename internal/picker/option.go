package picker

import "github.com/charmbracelet/lipgloss"

// Renderable is anything that can draw itself as text.
type Renderable interface {
	View() string
}

// Text renders a fixed string.
type Text string

func (t Text) View() string {
	return string(t)
}

// ViewFunc adapts a function to Renderable.
type ViewFunc func() string

func (f ViewFunc) View() string {
	if f == nil {
		return ""
	}
	return f()
}

// Option pairs caller content with its tag. It renders exactly as its
// content does.
type Option[V comparable] struct {
	Content Renderable
	Tag     Tag[V]
}

// View renders the wrapped content.
func (o Option[V]) View() string {
	if o.Content == nil {
		return ""
	}
	return o.Content.View()
}

// Options makes a single option usable as Content.
func (o Option[V]) Options() []Option[V] {
	return []Option[V]{o}
}

// WithTag returns a copy of o carrying v.
func (o Option[V]) WithTag(v V) Option[V] {
	o.Tag = Tagged(v)
	return o
}

// WithTag attaches v to r. When r is already an Option of the same value type
// its content is kept and only the tag is replaced.
func WithTag[V comparable](r Renderable, v V) Option[V] {
	switch o := r.(type) {
	case Option[V]:
		return o.WithTag(v)
	case *Option[V]:
		if o != nil {
			return o.WithTag(v)
		}
	}
	return Option[V]{Content: r, Tag: Tagged(v)}
}

// Plain wraps r as an untagged option.
func Plain[V comparable](r Renderable) Option[V] {
	return Option[V]{Content: r}
}

// ReadTag returns the tag attached to r, or Untagged when r carries none (or
// carries a tag of another value type).
func ReadTag[V comparable](r Renderable) Tag[V] {
	switch o := r.(type) {
	case Option[V]:
		return o.Tag
	case *Option[V]:
		if o != nil {
			return o.Tag
		}
	}
	return Untagged[V]()
}

// Content is a composed run of options.
type Content[V comparable] interface {
	Options() []Option[V]
}

// Group concatenates content in declaration order.
type Group[V comparable] []Content[V]

// Options expands every part, skipping nil entries.
func (g Group[V]) Options() []Option[V] {
	out := make([]Option[V], 0, len(g))
	for _, part := range g {
		if part == nil {
			continue
		}
		out = append(out, part.Options()...)
	}
	return out
}

// Build groups parts into one Content.
func Build[V comparable](parts ...Content[V]) Group[V] {
	return Group[V](parts)
}

type forEach[T any, V comparable] struct {
	items []T
	fn    func(T) Option[V]
}

// ForEach produces one option per item, in slice order.
func ForEach[T any, V comparable](items []T, fn func(T) Option[V]) Content[V] {
	return forEach[T, V]{items: items, fn: fn}
}

func (f forEach[T, V]) Options() []Option[V] {
	if f.fn == nil {
		return nil
	}
	out := make([]Option[V], 0, len(f.items))
	for _, item := range f.items {
		out = append(out, f.fn(item))
	}
	return out
}

type styled[V comparable] struct {
	inner Content[V]
	style lipgloss.Style
}

// Styled renders every option of c through style. Tags and order are kept.
func Styled[V comparable](c Content[V], style lipgloss.Style) Content[V] {
	return styled[V]{inner: c, style: style}
}

func (s styled[V]) Options() []Option[V] {
	opts := Flatten(s.inner)
	for i := range opts {
		opts[i].Content = styledView{inner: opts[i].Content, style: s.style}
	}
	return opts
}

type styledView struct {
	inner Renderable
	style lipgloss.Style
}

func (s styledView) View() string {
	if s.inner == nil {
		return ""
	}
	return s.style.Render(s.inner.View())
}

// Flatten expands c into its top-level options. Nil content yields an empty
// slice.
func Flatten[V comparable](c Content[V]) []Option[V] {
	if c == nil {
		return []Option[V]{}
	}
	opts := c.Options()
	out := make([]Option[V], len(opts))
	copy(out, opts)
	return out
}
