package animation

import "time"

// Clock provides time for animations. The default implementation uses
// system time. Tests inject a fake clock via [WithClock] to control
// animation timing deterministically.
//
// Each [AnimationContext] carries its own clock, so independent contexts
// (for example, several test cases) never interfere with each other.
type Clock interface {
	Now() time.Time
}

// systemClock uses system time.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the default wall-clock time source.
func SystemClock() Clock { return systemClock{} }
