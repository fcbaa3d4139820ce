package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-drift/motion/cmd/motion/internal/scene"
	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/reactive"
)

func init() {
	RegisterCommand(&Command{
		Name:  "play",
		Short: "Play a scene headlessly and print per-frame values",
		Long: `Play an animation scene with a simulated frame loop and print the
value of every track on each frame.

With no arguments, a built-in demo scene is played. Otherwise the
argument is a YAML scene file:

  frame_rate: 60        # optional, frames per second
  limit: 1s             # optional, cap on simulated time
  tracks:
    - name: opacity
      from: 0
      to: 1
      duration: 300ms
      easing: sine-out  # optional, see 'motion curves'
    - name: x
      from: 0
      to: 240
      duration: 500ms
      snap: true        # optional, jump instead of animating

All tracks start at their 'from' value and are retargeted to 'to' at
t=0; the player then pumps frames until every animation settles or the
limit is reached.`,
		Usage: "motion play [scene.yaml]",
		Run:   runPlay,
	})
}

func runPlay(args []string) error {
	var (
		s   *scene.Scene
		err error
	)
	switch len(args) {
	case 0:
		s = scene.Demo()
	case 1:
		s, err = scene.Load(args[0])
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("expected at most one scene file, got %d arguments", len(args))
	}

	player := newPlayer(s)
	player.run()
	return nil
}

// stepClock is a manually advanced clock for the simulated frame loop.
type stepClock struct{ t time.Time }

func (c *stepClock) Now() time.Time { return c.t }

// player drives a scene through a real AnimationContext with a fixed-step
// frame loop.
type player struct {
	scene   *scene.Scene
	clock   *stepClock
	ctx     *animation.AnimationContext
	pending int

	sources  []*reactive.Signal[float64]
	animated []*animation.AnimatedSignal[float64]
}

func newPlayer(s *scene.Scene) *player {
	p := &player{
		scene: s,
		clock: &stepClock{t: time.Unix(0, 0)},
	}
	p.ctx = animation.NewContext(
		animation.WithClock(p.clock),
		animation.WithRequestFrame(func() { p.pending++ }),
	)

	for _, track := range s.Tracks {
		source := reactive.NewSignal(track.From)
		p.sources = append(p.sources, source)

		duration := time.Duration(track.Duration)
		curve := track.Curve()
		snap := track.Snap
		p.animated = append(p.animated, animation.NewAnimatedSignal(p.ctx,
			func() animation.Target[float64] {
				target := animation.To(source.Get()).Over(duration).With(curve)
				if snap {
					target = target.Snapped()
				}
				return target
			}, animation.Lerp))
	}
	return p
}

func (p *player) run() {
	fmt.Println(p.header())

	// One effect reads every animated signal, so each frame prints exactly
	// one consistent row.
	start := p.clock.t
	effect := reactive.NewEffect(func() {
		row := make([]float64, len(p.animated))
		for i, a := range p.animated {
			row[i] = a.Get()
		}
		fmt.Println(p.row(p.clock.t.Sub(start), row))
	})
	defer effect.Stop()

	// Kick off every track toward its target.
	reactive.Batch(func() {
		for i, track := range p.scene.Tracks {
			p.sources[i].Set(track.To)
		}
	})

	interval := p.scene.FrameInterval()
	limit := time.Duration(p.scene.Limit)
	for elapsed := time.Duration(0); p.pending > 0 && elapsed < limit; elapsed += interval {
		p.clock.t = p.clock.t.Add(interval)
		p.pending--
		p.ctx.Tick()
	}

	for _, a := range p.animated {
		a.Dispose()
	}
}

func (p *player) header() string {
	cols := make([]string, 0, len(p.scene.Tracks)+1)
	cols = append(cols, fmt.Sprintf("%-8s", "t"))
	for _, track := range p.scene.Tracks {
		cols = append(cols, fmt.Sprintf("%10s", track.Name))
	}
	return strings.Join(cols, " ")
}

func (p *player) row(elapsed time.Duration, values []float64) string {
	cols := make([]string, 0, len(values)+1)
	cols = append(cols, fmt.Sprintf("%-8s", elapsed))
	for _, v := range values {
		cols = append(cols, fmt.Sprintf("%10.3f", v))
	}
	return strings.Join(cols, " ")
}
