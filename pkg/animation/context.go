// Package animation derives animated signals from reactive sources: when a
// source value changes, the animated signal eases toward the new value, one
// step per host display frame, instead of jumping instantaneously.
//
// # Core Components
//
//   - [AnimationContext]: the per-application scheduler. It owns the set of
//     in-flight tweens and the single frame-callback registration, advances
//     every tween together on each frame, and stops requesting frames when
//     nothing is animating.
//
//   - [AnimatedSignal]: a derived, read-only reactive value that tracks a
//     source function and interpolates toward its output.
//
//   - [TweenFunc] and the Lerp helpers: the pure interpolation engine.
//
//   - [Easing] curves: [Linear], [CubicBezier], and the named families
//     ([SineOut], [ElasticOut], ...).
//
// # Basic Usage
//
//	ctx := animation.NewContext(animation.WithRequestFrame(host.RequestFrame))
//
//	position := reactive.NewSignal(0.0)
//	animated := animation.NewAnimatedSignal(ctx, func() animation.Target[float64] {
//	    return animation.To(position.Get()).Over(300 * time.Millisecond)
//	}, animation.Lerp)
//
//	// Host frame loop: call Tick when the requested frame arrives.
//	host.OnFrame(ctx.Tick)
//
//	position.Set(10) // animated.Get() now eases from 0 to 10
//
// All scheduling is single-threaded and cooperative: Tick and every source
// update must run on the same goroutine.
package animation

import (
	"time"

	"github.com/go-drift/motion/pkg/reactive"
)

// frameState tracks whether a frame callback request is outstanding.
// Explicit state, checked and set within the event loop, prevents both
// double-registration and dangling requests.
type frameState int

const (
	frameIdle frameState = iota
	framePending
)

// tickable is an in-flight animated entry. Implemented by AnimatedSignal.
type tickable interface {
	// tick advances the entry to the given time and publishes its value.
	// It returns false when the entry has reached its target and should be
	// retired.
	tick(now time.Time) bool
}

// AnimationContext schedules all animated signals created under it.
//
// Exactly one context is expected per application instance; create it once
// at setup, before any animated signal. Multiple independent contexts (for
// example, one per test) do not interfere: each carries its own clock,
// registry, and frame state.
//
// The context requests a frame callback from the host iff at least one
// tween is active, and at most one request is outstanding at a time.
type AnimationContext struct {
	clock        Clock
	requestFrame func()
	state        frameState
	active       map[tickable]struct{}
}

// Option configures an [AnimationContext].
type Option func(*AnimationContext)

// WithClock replaces the context's time source. Tests use this with a fake
// clock to drive animations deterministically.
func WithClock(c Clock) Option {
	return func(ctx *AnimationContext) { ctx.clock = c }
}

// WithRequestFrame installs the host's frame-request hook. The hook must
// arrange for [AnimationContext.Tick] to be called before the next display
// repaint; it is invoked at most once per frame, however many animations
// are running.
//
// Hosts that drive frames themselves (a fixed-step loop, a test pump) can
// omit the hook and simply call Tick each frame.
func WithRequestFrame(fn func()) Option {
	return func(ctx *AnimationContext) { ctx.requestFrame = fn }
}

// NewContext creates an animation scheduler. Pass the resulting context to
// [NewAnimatedSignal] for every animated signal in the application.
func NewContext(opts ...Option) *AnimationContext {
	ctx := &AnimationContext{
		clock:  SystemClock(),
		active: make(map[tickable]struct{}),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// RequestFrame asks the host for one frame callback. Repeated calls while a
// request is outstanding are no-ops, so concurrent animations share a
// single per-frame callback. Animated signals call this automatically; it
// is only needed directly when building something custom on the context.
func (c *AnimationContext) RequestFrame() {
	if c.state == framePending {
		return
	}
	c.state = framePending
	if c.requestFrame != nil {
		c.requestFrame()
	}
}

// FramePending reports whether a frame callback request is outstanding.
func (c *AnimationContext) FramePending() bool {
	return c.state == framePending
}

// Tick advances every active tween to the current time and publishes the
// new values. The host calls it when the frame requested via the
// [WithRequestFrame] hook arrives. Calls with no request outstanding are
// ignored.
//
// All entries are advanced and published before any dependent effect
// re-runs, so an effect reading several animated signals always observes
// one consistent frame snapshot. If any tween remains active afterwards,
// the next frame is requested; otherwise the context goes idle.
func (c *AnimationContext) Tick() {
	if c.state != framePending {
		return
	}
	c.state = frameIdle

	now := c.clock.Now()
	reactive.Batch(func() {
		for entry := range c.active {
			if !entry.tick(now) {
				delete(c.active, entry)
			}
		}
	})

	if len(c.active) > 0 {
		c.RequestFrame()
	}
}

// register adds an entry to the active set and ensures a frame is
// scheduled. Registering an already-active entry only refreshes the frame
// request; the entry is never duplicated.
func (c *AnimationContext) register(entry tickable) {
	c.active[entry] = struct{}{}
	c.RequestFrame()
}

// deregister removes an entry immediately. If this empties the active set,
// an already-requested frame is allowed to fire once more, find nothing,
// and not re-request.
func (c *AnimationContext) deregister(entry tickable) {
	delete(c.active, entry)
}

// now returns the context's current time.
func (c *AnimationContext) now() time.Time {
	return c.clock.Now()
}
