package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/reactive"
	motiontest "github.com/go-drift/motion/pkg/testing"
)

// This example animates a float signal and samples it frame by frame.
func ExampleNewAnimatedSignal() {
	host := motiontest.NewHost()

	position := reactive.NewSignal(0.0)
	animated := animation.NewAnimatedSignal(host.Context(), func() animation.Target[float64] {
		return animation.To(position.Get()).Over(400 * time.Millisecond).With(animation.Linear)
	}, animation.Lerp)
	defer animated.Dispose()

	position.Set(8.0)
	for i := 0; i < 4; i++ {
		host.Pump(100 * time.Millisecond)
		fmt.Printf("%g\n", animated.Peek())
	}

	// Output:
	// 2
	// 4
	// 6
	// 8
}

// This example shows per-transition animation policy: the source function
// decides duration, easing, and mode for every change.
func ExampleTarget() {
	host := motiontest.NewHost()

	scroll := reactive.NewSignal(0.0)
	animated := animation.NewAnimatedSignal(host.Context(), func() animation.Target[float64] {
		offset := scroll.Get()
		if offset == 0 {
			// Jumps back to the top are instant.
			return animation.To(offset).Snapped()
		}
		return animation.To(offset).Over(250 * time.Millisecond).With(animation.EaseOut)
	}, animation.Lerp)
	defer animated.Dispose()

	scroll.Set(120.0)
	if err := host.Settle(time.Second); err != nil {
		fmt.Println(err)
	}
	fmt.Printf("%g\n", animated.Peek())

	scroll.Set(0.0)
	host.Pump(time.Millisecond)
	fmt.Printf("%g\n", animated.Peek())

	// Output:
	// 120
	// 0
}

// This example animates a composite type with a custom tween function.
func ExampleTweenFunc() {
	type offset struct{ X, Y float64 }

	host := motiontest.NewHost()
	target := reactive.NewSignal(offset{0, 0})

	animated := animation.NewAnimatedSignal(host.Context(), func() animation.Target[offset] {
		return animation.To(target.Get()).Over(200 * time.Millisecond).With(animation.Linear)
	}, func(from, to offset, progress float64) offset {
		return offset{
			X: animation.Lerp(from.X, to.X, progress),
			Y: animation.Lerp(from.Y, to.Y, progress),
		}
	})
	defer animated.Dispose()

	target.Set(offset{100, 50})
	host.Pump(100 * time.Millisecond)

	mid := animated.Peek()
	fmt.Printf("(%g, %g)\n", mid.X, mid.Y)

	// Output:
	// (50, 25)
}

// This example shows how effects see one consistent snapshot per frame even
// when they read several animated signals.
func ExampleAnimationContext() {
	host := motiontest.NewHost()

	width := reactive.NewSignal(10.0)
	height := reactive.NewSignal(10.0)

	tween := func(s *reactive.Signal[float64]) *animation.AnimatedSignal[float64] {
		return animation.NewAnimatedSignal(host.Context(), func() animation.Target[float64] {
			return animation.To(s.Get()).Over(100 * time.Millisecond).With(animation.Linear)
		}, animation.Lerp)
	}
	animatedWidth := tween(width)
	animatedHeight := tween(height)
	defer animatedWidth.Dispose()
	defer animatedHeight.Dispose()

	effect := reactive.NewEffect(func() {
		fmt.Printf("%g x %g\n", animatedWidth.Get(), animatedHeight.Get())
	})
	defer effect.Stop()

	width.Set(20.0)
	height.Set(20.0)
	host.Pump(50 * time.Millisecond)
	host.Pump(50 * time.Millisecond)

	// Output:
	// 10 x 10
	// 15 x 15
	// 20 x 20
}
