package testing

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/animation"
)

// DefaultFrameInterval is the simulated frame length used by settle
// helpers, roughly 60 fps.
const DefaultFrameInterval = 16 * time.Millisecond

// Host is a manual frame pump standing in for the display loop. It owns an
// [animation.AnimationContext] wired to a [FakeClock] and records every
// frame request the context makes, so tests can both drive animations
// step-by-step and assert on the request pattern (exactly one outstanding
// request while animating, none once idle).
type Host struct {
	clock *FakeClock
	ctx   *animation.AnimationContext

	outstanding int
	total       int
}

// NewHost creates a host with a fresh context and fake clock.
func NewHost() *Host {
	h := &Host{clock: NewFakeClock()}
	h.ctx = animation.NewContext(
		animation.WithClock(h.clock),
		animation.WithRequestFrame(func() {
			h.outstanding++
			h.total++
		}),
	)
	return h
}

// Context returns the host's animation context.
func (h *Host) Context() *animation.AnimationContext {
	return h.ctx
}

// Clock returns the host's fake clock.
func (h *Host) Clock() *FakeClock {
	return h.clock
}

// PendingFrames returns the number of frame requests not yet delivered.
// The scheduler contract keeps this at 0 or 1.
func (h *Host) PendingFrames() int {
	return h.outstanding
}

// TotalFrameRequests returns how many frame requests the context has made
// since the host was created.
func (h *Host) TotalFrameRequests() int {
	return h.total
}

// Pump advances the clock by dt and delivers one requested frame, if any.
// It returns true if a frame was delivered.
func (h *Host) Pump(dt time.Duration) bool {
	h.clock.Advance(dt)
	if h.outstanding == 0 {
		return false
	}
	h.outstanding--
	h.ctx.Tick()
	return true
}

// Settle pumps frames at [DefaultFrameInterval] until no request is
// outstanding. It returns an error if the animations have not settled
// within limit of simulated time.
func (h *Host) Settle(limit time.Duration) error {
	var elapsed time.Duration
	for h.outstanding > 0 {
		if elapsed >= limit {
			return fmt.Errorf("animations did not settle within %v (%d frame requests pending)", limit, h.outstanding)
		}
		h.Pump(DefaultFrameInterval)
		elapsed += DefaultFrameInterval
	}
	return nil
}

// MustSettle is Settle that fails the test on timeout.
func (h *Host) MustSettle(t testingT, limit time.Duration) {
	t.Helper()
	if err := h.Settle(limit); err != nil {
		t.Fatal(err)
	}
}

// testingT is the subset of *testing.T the host needs.
type testingT interface {
	Helper()
	Fatal(args ...any)
}
