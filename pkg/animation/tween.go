package animation

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/math/f64"
)

// TweenFunc interpolates between two values of any tweenable type. It is a
// pure function: given from, to, and an eased progress fraction, it returns
// the in-between value.
//
// The scheduler clamps the linear fraction to [0, 1] and applies easing
// before calling the tween, so progress is never produced from out-of-range
// elapsed time. Easing curves themselves may overshoot (elastic, back), in
// which case progress can briefly leave [0, 1]; a linear tween then
// extrapolates, which is what gives those curves their spring. A TweenFunc
// must not re-clamp.
//
// For numeric and vector types use the Lerp helpers below. Any custom type
// qualifies by supplying its own TweenFunc; no particular numeric type is
// required.
type TweenFunc[T any] func(from, to T, progress float64) T

// Lerp linearly interpolates between two float64 values.
func Lerp(from, to float64, progress float64) float64 {
	return from + (to-from)*progress
}

// LerpVec2 linearly interpolates between two 2-vectors component-wise.
func LerpVec2(from, to f64.Vec2, progress float64) f64.Vec2 {
	return f64.Vec2{
		Lerp(from[0], to[0], progress),
		Lerp(from[1], to[1], progress),
	}
}

// LerpVec3 linearly interpolates between two 3-vectors component-wise.
func LerpVec3(from, to f64.Vec3, progress float64) f64.Vec3 {
	return f64.Vec3{
		Lerp(from[0], to[0], progress),
		Lerp(from[1], to[1], progress),
		Lerp(from[2], to[2], progress),
	}
}

// LerpColor interpolates between two colors in RGB space.
//
// RGB blending is cheap and matches what CSS transitions do, but can dip
// through muddy midtones. Use [LerpColorLuv] when perceptual uniformity
// matters more than speed.
func LerpColor(from, to colorful.Color, progress float64) colorful.Color {
	return from.BlendRgb(to, clampUnit(progress))
}

// LerpColorLuv interpolates between two colors in CIE-Luv space, which keeps
// perceived lightness changing evenly across the transition.
func LerpColorLuv(from, to colorful.Color, progress float64) colorful.Color {
	return from.BlendLuv(to, clampUnit(progress))
}

// Tween pairs fixed endpoints with a lerp, for callers that want to sample
// an interpolation outside the signal machinery (previews, tooling).
type Tween[T any] struct {
	// Begin is the value at progress 0.
	Begin T
	// End is the value at progress 1.
	End T
	// Lerp interpolates between Begin and End.
	Lerp TweenFunc[T]
}

// Evaluate returns the interpolated value at the given progress.
func (tw Tween[T]) Evaluate(progress float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, progress)
}
