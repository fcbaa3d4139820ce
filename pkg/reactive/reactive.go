// Package reactive provides the fine-grained signal primitive that the
// animation scheduler plugs into.
//
// # Core Components
//
//   - [Signal]: a settable value cell. Reading it inside an [Effect] or
//     [Computed] registers a dependency; setting it re-runs dependents.
//
//   - [Computed]: a derived value, lazily re-evaluated when one of its
//     dependencies changes.
//
//   - [Effect]: a side-effecting observer. It runs once on creation and again
//     whenever a tracked dependency changes.
//
//   - [Batch]: groups several writes so that each affected effect runs once,
//     after all writes, instead of once per write.
//
// # Threading
//
// The reactive graph is NOT thread-safe. All reads, writes, and effect runs
// must happen on a single goroutine (the application's event loop). To feed
// values in from a background goroutine, dispatch the Set call onto that
// loop first.
package reactive

// observer is a node that re-runs when one of its dependencies changes.
// Both effects and computed values are observers.
type observer struct {
	run      func()
	deps     []*depSet
	queued   bool
	disposed bool
}

// depSet is the subscriber list owned by a signal or computed value.
type depSet struct {
	subs map[*observer]struct{}
}

// Package-level tracking state. Single-threaded by contract, so plain
// variables suffice.
var (
	current    *observer
	batchDepth int
	queue      []*observer
)

// track registers d as a dependency of the currently running observer.
func track(d *depSet) {
	if current == nil {
		return
	}
	if d.subs == nil {
		d.subs = make(map[*observer]struct{})
	}
	if _, ok := d.subs[current]; ok {
		return
	}
	d.subs[current] = struct{}{}
	current.deps = append(current.deps, d)
}

// notify schedules every subscriber of d. Outside a batch each subscriber
// runs immediately; inside a batch it is queued and deduplicated.
func notify(d *depSet) {
	if len(d.subs) == 0 {
		return
	}
	// Snapshot: runs may mutate the subscriber set.
	subs := make([]*observer, 0, len(d.subs))
	for o := range d.subs {
		subs = append(subs, o)
	}
	for _, o := range subs {
		schedule(o)
	}
}

func schedule(o *observer) {
	if o.disposed || o.queued {
		return
	}
	if batchDepth > 0 {
		o.queued = true
		queue = append(queue, o)
		return
	}
	rerun(o)
}

// rerun clears the observer's stale dependency edges and re-executes it,
// rebuilding the edge set as it reads.
func rerun(o *observer) {
	if o.disposed {
		return
	}
	detach(o)
	prev := current
	current = o
	defer func() { current = prev }()
	o.run()
}

func detach(o *observer) {
	for _, d := range o.deps {
		delete(d.subs, o)
	}
	o.deps = o.deps[:0]
}

// Batch runs fn, deferring dependent re-runs until fn returns. Each affected
// observer runs at most once, after every write inside fn has landed, so an
// effect reading several signals sees one consistent snapshot.
//
// Batches nest; only the outermost flushes.
func Batch(fn func()) {
	batchDepth++
	fn()
	batchDepth--
	if batchDepth > 0 {
		return
	}
	// The queue may grow while flushing (an effect writing a signal).
	for len(queue) > 0 {
		o := queue[0]
		queue = queue[1:]
		o.queued = false
		rerun(o)
	}
}

// Untrack runs fn without registering dependencies, and returns its result.
// Use it inside an effect to read a signal without subscribing to it.
func Untrack[T any](fn func() T) T {
	prev := current
	current = nil
	defer func() { current = prev }()
	return fn()
}
