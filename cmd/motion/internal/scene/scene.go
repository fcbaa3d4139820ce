// Package scene loads the YAML scene files played by the motion CLI.
package scene

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/animation"
)

// DefaultFrameRate is used when the scene does not specify one.
const DefaultFrameRate = 60

// Scene describes a set of animated tracks to play headlessly.
type Scene struct {
	// FrameRate is the simulated frames per second. Defaults to 60.
	FrameRate int `yaml:"frame_rate,omitempty"`

	// Limit caps the simulated play time. Defaults to the longest track
	// duration plus one frame.
	Limit Duration `yaml:"limit,omitempty"`

	Tracks []Track `yaml:"tracks"`
}

// Track is one animated value within a scene.
type Track struct {
	Name     string   `yaml:"name"`
	From     float64  `yaml:"from"`
	To       float64  `yaml:"to"`
	Duration Duration `yaml:"duration"`
	Easing   string   `yaml:"easing,omitempty"`
	Snap     bool     `yaml:"snap,omitempty"`
}

// Curve resolves the track's easing function.
func (t Track) Curve() animation.Easing {
	if t.Easing == "" {
		return animation.DefaultEasing
	}
	curve, ok := animation.CurveByName(t.Easing)
	if !ok {
		return animation.DefaultEasing
	}
	return curve
}

// Duration wraps time.Duration with YAML decoding of strings like "300ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	s.applyDefaults()
	return &s, nil
}

// Demo returns the built-in scene used when no file is given.
func Demo() *Scene {
	s := &Scene{
		Tracks: []Track{
			{Name: "opacity", From: 0, To: 1, Duration: Duration(300 * time.Millisecond), Easing: "sine-out"},
			{Name: "x", From: 0, To: 240, Duration: Duration(500 * time.Millisecond), Easing: "ease-in-out"},
			{Name: "scale", From: 1, To: 1.5, Duration: Duration(400 * time.Millisecond), Easing: "elastic-out"},
		},
	}
	s.applyDefaults()
	return s
}

func (s *Scene) validate() error {
	if len(s.Tracks) == 0 {
		return fmt.Errorf("scene has no tracks")
	}
	if s.FrameRate < 0 {
		return fmt.Errorf("frame_rate must be positive, got %d", s.FrameRate)
	}
	seen := make(map[string]bool, len(s.Tracks))
	for i, track := range s.Tracks {
		if track.Name == "" {
			return fmt.Errorf("track %d has no name", i)
		}
		if seen[track.Name] {
			return fmt.Errorf("duplicate track name %q", track.Name)
		}
		seen[track.Name] = true
		if track.Easing != "" {
			if _, ok := animation.CurveByName(track.Easing); !ok {
				return fmt.Errorf("track %q: unknown easing %q (see 'motion curves' for the list)", track.Name, track.Easing)
			}
		}
	}
	return nil
}

func (s *Scene) applyDefaults() {
	if s.FrameRate == 0 {
		s.FrameRate = DefaultFrameRate
	}
	if s.Limit == 0 {
		longest := time.Duration(0)
		for _, track := range s.Tracks {
			if d := time.Duration(track.Duration); d > longest {
				longest = d
			}
		}
		s.Limit = Duration(longest + s.FrameInterval())
	}
}

// FrameInterval returns the simulated length of one frame.
func (s *Scene) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.FrameRate)
}
