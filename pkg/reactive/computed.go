package reactive

// Computed is a derived value. The compute function runs lazily: the first
// Get after a dependency change recomputes, later Gets return the cache.
type Computed[T any] struct {
	compute func() T
	value   T
	dirty   bool
	o       *observer
	deps    depSet
}

// NewComputed creates a computed value from a compute function. The function
// is not called until the first Get.
func NewComputed[T any](compute func() T) *Computed[T] {
	c := &Computed[T]{compute: compute, dirty: true}
	c.o = &observer{run: func() {
		// A dependency changed: invalidate and propagate to our own
		// dependents without recomputing yet.
		c.dirty = true
		notify(&c.deps)
	}}
	return c
}

// Get returns the derived value, recomputing it if a dependency changed
// since the last read. Registers the caller as a dependent.
func (c *Computed[T]) Get() T {
	track(&c.deps)
	if c.dirty {
		detach(c.o)
		prev := current
		current = c.o
		c.value = c.compute()
		current = prev
		c.dirty = false
	}
	return c.value
}

// Peek returns the derived value without registering a dependency. It still
// recomputes if stale.
func (c *Computed[T]) Peek() T {
	return Untrack(c.Get)
}

// Dispose detaches the computed value from its dependencies.
func (c *Computed[T]) Dispose() {
	c.o.disposed = true
	detach(c.o)
}
