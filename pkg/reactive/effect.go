package reactive

// Effect is a side-effecting observer. The body runs once on creation and
// again whenever a signal or computed value it read has changed.
type Effect struct {
	o *observer
}

// NewEffect creates an effect and runs it immediately to establish its
// dependencies.
func NewEffect(fn func()) *Effect {
	o := &observer{}
	o.run = fn
	rerun(o)
	return &Effect{o: o}
}

// Stop detaches the effect from all dependencies. It will never run again.
// Stop is idempotent.
func (e *Effect) Stop() {
	if e.o.disposed {
		return
	}
	e.o.disposed = true
	detach(e.o)
}
