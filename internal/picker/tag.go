package picker

import "fmt"

// Tag identifies what choosing an option means. The zero Tag is untagged.
type Tag[V comparable] struct {
	value  V
	tagged bool
}

// Untagged returns the empty tag.
func Untagged[V comparable]() Tag[V] {
	return Tag[V]{}
}

// Tagged returns a tag carrying v.
func Tagged[V comparable](v V) Tag[V] {
	return Tag[V]{value: v, tagged: true}
}

// IsTagged reports whether the tag carries a value.
func (t Tag[V]) IsTagged() bool {
	return t.tagged
}

// Value returns the carried value and whether there is one.
func (t Tag[V]) Value() (V, bool) {
	return t.value, t.tagged
}

// Matches reports whether the tag carries exactly current. Untagged never
// matches.
func (t Tag[V]) Matches(current V) bool {
	return t.tagged && t.value == current
}

func (t Tag[V]) String() string {
	if !t.tagged {
		return "untagged"
	}
	return fmt.Sprintf("tagged(%v)", t.value)
}
