package animation

import (
	"math"
	"slices"

	"github.com/fogleman/ease"
)

// Easing remaps a linear progress fraction in [0, 1] to an eased fraction,
// shaping acceleration and deceleration. Curves may overshoot outside
// [0, 1] (elastic, back) to produce springy motion.
type Easing func(t float64) float64

// Linear returns linear progress (no easing).
func Linear(t float64) float64 {
	return t
}

// DefaultEasing is the easing applied when a [Target] does not name one.
var DefaultEasing = SineOut

// Curves from the easing function family. See https://easings.net for the
// shapes.
var (
	SineIn     = Easing(ease.InSine)
	SineOut    = Easing(ease.OutSine)
	SineInOut  = Easing(ease.InOutSine)
	QuadIn     = Easing(ease.InQuad)
	QuadOut    = Easing(ease.OutQuad)
	QuadInOut  = Easing(ease.InOutQuad)
	CubicIn    = Easing(ease.InCubic)
	CubicOut   = Easing(ease.OutCubic)
	CubicInOut = Easing(ease.InOutCubic)
	ExpoIn     = Easing(ease.InExpo)
	ExpoOut    = Easing(ease.OutExpo)
	ElasticIn  = Easing(ease.InElastic)
	ElasticOut = Easing(ease.OutElastic)
	BounceOut  = Easing(ease.OutBounce)
	BackOut    = Easing(ease.OutBack)
)

// CSS-style cubic bezier presets.
var (
	// Ease is a standard cubic bezier curve for general-purpose easing.
	// Equivalent to CSS ease.
	Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

	// EaseIn starts slowly and accelerates. Equivalent to CSS ease-in.
	EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

	// EaseOut starts quickly and decelerates. Equivalent to CSS ease-out.
	EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

	// EaseInOut starts and ends slowly with acceleration in the middle.
	// Equivalent to CSS ease-in-out.
	EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)
)

// namedCurves maps curve names (as used in scene files) to easing functions.
var namedCurves = map[string]Easing{
	"linear":       Linear,
	"ease":         Ease,
	"ease-in":      EaseIn,
	"ease-out":     EaseOut,
	"ease-in-out":  EaseInOut,
	"sine-in":      SineIn,
	"sine-out":     SineOut,
	"sine-in-out":  SineInOut,
	"quad-in":      QuadIn,
	"quad-out":     QuadOut,
	"quad-in-out":  QuadInOut,
	"cubic-in":     CubicIn,
	"cubic-out":    CubicOut,
	"cubic-in-out": CubicInOut,
	"expo-in":      ExpoIn,
	"expo-out":     ExpoOut,
	"elastic-in":   ElasticIn,
	"elastic-out":  ElasticOut,
	"bounce-out":   BounceOut,
	"back-out":     BackOut,
}

// CurveByName returns the easing function registered under name, or false
// if the name is unknown. Names use kebab-case, e.g. "sine-out".
func CurveByName(name string) (Easing, bool) {
	e, ok := namedCurves[name]
	return e, ok
}

// CurveNames returns the names accepted by [CurveByName], sorted.
func CurveNames() []string {
	names := make([]string, 0, len(namedCurves))
	for name := range namedCurves {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CubicBezier returns a cubic-bezier easing function matching CSS
// cubic-bezier(). The parameters define the two control points (x1,y1) and
// (x2,y2); the curve runs from (0,0) to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for i := 0; i < 8; i++ {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Fallback to bisection to guarantee a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for i := 0; i < 12; i++ {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
