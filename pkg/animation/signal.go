package animation

import (
	"reflect"
	"time"

	"github.com/go-drift/motion/pkg/reactive"
)

// AnimatedSignal is a derived, read-only reactive value that eases toward
// the output of its source function instead of tracking it instantaneously.
//
// The source runs in a reactive scope: any signal it reads becomes a
// dependency, and whenever one of them changes the animated signal starts a
// new transition toward the freshly returned [Target]. At most one
// transition is in flight per signal; a change mid-flight replaces the
// running tween, continuing from the current interpolated value so motion
// never jumps.
//
// While a transition runs, the published value updates once per frame tick
// of the owning [AnimationContext]. When the elapsed time reaches the
// duration, the exact target value is published (no residual floating
// error) and the signal goes idle until the next source change.
//
// Always call Dispose when the signal is no longer needed.
type AnimatedSignal[T any] struct {
	ctx   *AnimationContext
	tween TweenFunc[T]
	out   *reactive.Signal[T]

	effect   *reactive.Effect
	disposed bool

	// In-flight transition. Valid only while animating.
	animating bool
	snap      bool
	from      T
	target    Target[T]
	endValue  T
	start     time.Time
}

// NewAnimatedSignal creates an animated signal under the given context.
//
// The source function returns the [Target] to animate towards; it is
// re-evaluated whenever a reactive dependency it reads changes, so each
// transition can carry its own duration, easing, and mode. The tween
// interpolates between two source values; use [Lerp] (or the other Lerp
// helpers) for numeric types, or supply a custom [TweenFunc] for composite
// types.
//
// The context is required. Passing nil is a programming error and panics
// immediately rather than falling back to a hidden default.
func NewAnimatedSignal[T any](ctx *AnimationContext, source func() Target[T], tween TweenFunc[T]) *AnimatedSignal[T] {
	if ctx == nil {
		panic("motion: nil AnimationContext; create one with animation.NewContext before NewAnimatedSignal")
	}
	if source == nil {
		panic("motion: nil source function")
	}
	if tween == nil {
		panic("motion: nil tween function")
	}

	s := &AnimatedSignal[T]{ctx: ctx, tween: tween}

	// Seed the published value from the source without animating or
	// registering dependencies.
	initial := reactive.Untrack(source).normalized()
	s.out = reactive.NewSignal(tween(initial.Value, initial.Value, 1))

	// Track the source; every later run is a target change.
	first := true
	s.effect = reactive.NewEffect(func() {
		target := source()
		if first {
			first = false
			return
		}
		s.retarget(target)
	})

	return s
}

// Get returns the current animated value, registering the caller as a
// reactive dependent. Inside an effect this means the effect re-runs once
// per frame while the signal is animating, and not at all while it is idle.
func (s *AnimatedSignal[T]) Get() T {
	return s.out.Get()
}

// Peek returns the current animated value without registering a dependency.
func (s *AnimatedSignal[T]) Peek() T {
	return s.out.Peek()
}

// Animating reports whether a transition is currently in flight.
func (s *AnimatedSignal[T]) Animating() bool {
	return s.animating
}

// Dispose stops tracking the source and removes any in-flight tween
// immediately. The last published value remains readable.
func (s *AnimatedSignal[T]) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.effect.Stop()
	if s.animating {
		s.animating = false
		s.ctx.deregister(s)
	}
}

// retarget starts (or replaces) the transition toward a new target. Runs on
// every source change after the first.
func (s *AnimatedSignal[T]) retarget(target Target[T]) {
	if s.disposed {
		return
	}
	target = target.normalized()

	current := s.out.Peek()
	end := s.tween(target.Value, target.Value, 1)

	// A source update that lands on the value already shown is a no-op:
	// settle here instead of animating toward a stale target.
	if valuesEqual(end, current) {
		if s.animating {
			s.animating = false
			s.ctx.deregister(s)
		}
		return
	}

	s.target = target
	s.endValue = end
	s.snap = target.Mode == ModeSnap
	if !s.snap {
		s.from = current
		s.start = s.ctx.now()
	}
	s.animating = true
	s.ctx.register(s)
}

// tick advances the transition to now and publishes the new value. Returns
// false once the target has been reached.
func (s *AnimatedSignal[T]) tick(now time.Time) bool {
	if !s.animating {
		return false
	}

	if s.snap {
		s.finish()
		return false
	}

	fraction := float64(now.Sub(s.start)) / float64(s.target.Duration)
	if fraction >= 1 {
		// Publish the exact target, not the computed eased value, so the
		// animation converges with no floating drift.
		s.finish()
		return false
	}
	if fraction < 0 {
		fraction = 0
	}

	s.out.Set(s.tween(s.from, s.target.Value, s.target.Easing(fraction)))
	return true
}

func (s *AnimatedSignal[T]) finish() {
	s.animating = false
	s.out.Set(s.endValue)
}

// valuesEqual compares two published values. reflect.DeepEqual keeps the
// check total over arbitrary tweenable types; it runs only on source
// changes, never per frame.
func valuesEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}
