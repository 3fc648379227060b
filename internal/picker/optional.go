package picker

import "fmt"

// Optional is a comparable value that may be absent. It is the usual
// selection type for pickers that offer a "nothing selected" option.
type Optional[T comparable] struct {
	Value T
	Valid bool
}

// Some wraps v as a present value.
func Some[T comparable](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}

// None returns the absent value.
func None[T comparable]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	if !o.Valid {
		var zero T
		return zero, false
	}
	return o.Value, true
}

// OrElse returns the value, or fallback when absent.
func (o Optional[T]) OrElse(fallback T) T {
	if !o.Valid {
		return fallback
	}
	return o.Value
}

func (o Optional[T]) String() string {
	if !o.Valid {
		return "none"
	}
	return fmt.Sprintf("%v", o.Value)
}
