// Package testing provides deterministic test support for animated signals:
// a controllable clock and a manual frame host that stands in for the
// display loop.
//
// Import it with an alias to avoid clashing with the standard library:
//
//	import motiontest "github.com/go-drift/motion/pkg/testing"
//
//	func TestFade(t *testing.T) {
//	    host := motiontest.NewHost()
//	    opacity := reactive.NewSignal(0.0)
//	    animated := animation.NewAnimatedSignal(host.Context(), func() animation.Target[float64] {
//	        return animation.To(opacity.Get()).Over(300 * time.Millisecond)
//	    }, animation.Lerp)
//
//	    opacity.Set(1.0)
//	    host.Pump(150 * time.Millisecond) // halfway
//	    host.MustSettle(t, time.Second)   // run to completion
//	    if got := animated.Peek(); got != 1.0 { ... }
//	}
package testing
