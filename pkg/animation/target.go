package animation

import "time"

// Mode specifies how a new target value takes effect.
type Mode int

const (
	// ModeTween animates from the current interpolated value to the new
	// target. This is the default. Starting from the interpolated value
	// (not the previous tween's start) keeps motion continuous when a
	// target changes mid-flight.
	ModeTween Mode = iota

	// ModeSnap jumps straight to the target on the next frame, with no
	// interpolation frames.
	ModeSnap
)

// DefaultDuration is the animation length applied by [To] when the target
// does not specify one.
const DefaultDuration = 500 * time.Millisecond

// Target describes one transition: the value to animate towards and how to
// get there. The source function of an [AnimatedSignal] returns a Target on
// every evaluation, so duration, easing, and mode can differ per transition.
type Target[T any] struct {
	// Value is the final value to animate towards.
	Value T

	// Duration is the time the transition takes. Zero or negative means
	// snap: the signal jumps to Value on the next frame.
	Duration time.Duration

	// Easing shapes the transition. Nil means [DefaultEasing].
	Easing Easing

	// Mode selects between animating and snapping.
	Mode Mode
}

// To wraps a value in a Target with the default duration and easing.
//
//	animation.NewAnimatedSignal(ctx, func() animation.Target[float64] {
//	    return animation.To(position.Get())
//	}, animation.Lerp)
func To[T any](value T) Target[T] {
	return Target[T]{Value: value, Duration: DefaultDuration}
}

// Over returns a copy of the target with the given duration.
func (t Target[T]) Over(d time.Duration) Target[T] {
	t.Duration = d
	return t
}

// With returns a copy of the target with the given easing.
func (t Target[T]) With(e Easing) Target[T] {
	t.Easing = e
	return t
}

// Snapped returns a copy of the target with [ModeSnap].
func (t Target[T]) Snapped() Target[T] {
	t.Mode = ModeSnap
	return t
}

// normalized applies defaults and clamps malformed fields. A missing easing
// becomes DefaultEasing; a non-positive duration degrades to a snap rather
// than an error, since animation is a best-effort visual affordance.
func (t Target[T]) normalized() Target[T] {
	if t.Easing == nil {
		t.Easing = DefaultEasing
	}
	if t.Duration <= 0 {
		t.Duration = 0
		t.Mode = ModeSnap
	}
	return t
}
