package reactive

// Signal holds a single value and notifies dependents when it changes.
//
// Signal is NOT thread-safe; see the package documentation.
type Signal[T any] struct {
	value T
	deps  depSet
}

// NewSignal creates a signal with an initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// Get returns the current value. When called inside an [Effect] or
// [Computed], the caller is registered as a dependent.
func (s *Signal[T]) Get() T {
	track(&s.deps)
	return s.value
}

// Peek returns the current value without registering a dependency.
func (s *Signal[T]) Peek() T {
	return s.value
}

// Set replaces the value and re-runs dependents. Inside a [Batch] the
// re-runs are deferred until the batch ends.
func (s *Signal[T]) Set(value T) {
	s.value = value
	notify(&s.deps)
}

// Update applies a transformation to the current value.
func (s *Signal[T]) Update(transform func(T) T) {
	s.Set(transform(s.value))
}

// Subscribe calls fn with the new value on every change. It does not fire
// for the current value. Returns an unsubscribe function.
func (s *Signal[T]) Subscribe(fn func(T)) func() {
	first := true
	e := NewEffect(func() {
		v := s.Get()
		if first {
			first = false
			return
		}
		fn(v)
	})
	return e.Stop
}
