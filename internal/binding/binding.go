// Package binding provides the two-way value binding shared between a control
// and the state that owns it.
//
// A Value[T] wraps a value and notifies observers when it changes. The owner
// keeps the *Value and hands it to controls as a Binding[T]; a control that
// writes through the binding is writing the owner's value, not a copy.
//
// Values are not safe for concurrent use. Get and Set are expected to run on
// the Bubble Tea update loop, which is single threaded.
package binding

// Binding is the read/write view of a value owned elsewhere.
type Binding[T any] interface {
	Get() T
	Set(T)
}

// Bound reports whether b refers to a value. A nil interface and a nil
// *Value are both unbound.
func Bound[T any](b Binding[T]) bool {
	if b == nil {
		return false
	}
	if v, ok := b.(*Value[T]); ok {
		return v != nil
	}
	return true
}

// Unbind removes an observer registered with Bind.
type Unbind func()

type observer[T any] struct {
	fn     func(T)
	active bool
}

// Value is a mutable value with change notification.
type Value[T any] struct {
	value     T
	observers []*observer[T]
}

// New returns a Value holding initial.
func New[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the current value, or the zero value for a nil Value.
func (v *Value[T]) Get() T {
	if v == nil {
		var zero T
		return zero
	}
	return v.value
}

// Set stores next and runs every active observer, in registration order,
// before returning. Set on a nil Value does nothing.
func (v *Value[T]) Set(next T) {
	if v == nil {
		return
	}
	v.value = next
	active := v.observers[:0]
	for _, o := range v.observers {
		if o.active {
			active = append(active, o)
		}
	}
	v.observers = active
	snapshot := make([]*observer[T], len(active))
	copy(snapshot, active)
	for _, o := range snapshot {
		if o.active {
			o.fn(next)
		}
	}
}

// Update applies fn to the current value and stores the result.
func (v *Value[T]) Update(fn func(T) T) {
	if v == nil || fn == nil {
		return
	}
	v.Set(fn(v.value))
}

// Bind registers fn to run after every Set. The returned Unbind stops further
// calls; it is safe to call more than once.
func (v *Value[T]) Bind(fn func(T)) Unbind {
	if v == nil || fn == nil {
		return func() {}
	}
	o := &observer[T]{fn: fn, active: true}
	v.observers = append(v.observers, o)
	return func() {
		o.active = false
	}
}

// Observers reports the number of active observers.
func (v *Value[T]) Observers() int {
	if v == nil {
		return 0
	}
	n := 0
	for _, o := range v.observers {
		if o.active {
			n++
		}
	}
	return n
}

// Func adapts a getter/setter pair into a Binding, for state that does not
// live in a Value.
type Func[T any] struct {
	GetFunc func() T
	SetFunc func(T)
}

// Get calls GetFunc, returning the zero value when it is nil.
func (f Func[T]) Get() T {
	if f.GetFunc == nil {
		var zero T
		return zero
	}
	return f.GetFunc()
}

// Set calls SetFunc when present.
func (f Func[T]) Set(v T) {
	if f.SetFunc != nil {
		f.SetFunc(v)
	}
}
