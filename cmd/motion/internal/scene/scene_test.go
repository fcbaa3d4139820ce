package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeScene(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeScene(t, `
frame_rate: 30
tracks:
  - name: opacity
    from: 0
    to: 1
    duration: 300ms
    easing: sine-out
  - name: x
    from: 0
    to: 240
    duration: 500ms
    snap: true
`)

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if s.FrameRate != 30 {
		t.Errorf("expected frame rate 30, got %d", s.FrameRate)
	}
	if len(s.Tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(s.Tracks))
	}
	if got := time.Duration(s.Tracks[0].Duration); got != 300*time.Millisecond {
		t.Errorf("expected 300ms, got %v", got)
	}
	if !s.Tracks[1].Snap {
		t.Error("expected snap track")
	}

	// Limit defaults to the longest track plus one frame.
	want := 500*time.Millisecond + s.FrameInterval()
	if got := time.Duration(s.Limit); got != want {
		t.Errorf("expected default limit %v, got %v", want, got)
	}
}

func TestLoad_UnknownEasing(t *testing.T) {
	path := writeScene(t, `
tracks:
  - name: a
    from: 0
    to: 1
    duration: 100ms
    easing: wobble
`)

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unknown easing") {
		t.Errorf("expected unknown easing error, got %v", err)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeScene(t, `
tracks:
  - name: a
    from: 0
    to: 1
    duration: fast
`)

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "invalid duration") {
		t.Errorf("expected duration error, got %v", err)
	}
}

func TestLoad_DuplicateTrackNames(t *testing.T) {
	path := writeScene(t, `
tracks:
  - name: a
    from: 0
    to: 1
    duration: 100ms
  - name: a
    from: 1
    to: 2
    duration: 100ms
`)

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "duplicate track") {
		t.Errorf("expected duplicate track error, got %v", err)
	}
}

func TestLoad_NoTracks(t *testing.T) {
	path := writeScene(t, "frame_rate: 60\n")

	if _, err := Load(path); err == nil {
		t.Error("expected error for empty scene")
	}
}

func TestDemo(t *testing.T) {
	s := Demo()
	if len(s.Tracks) == 0 {
		t.Fatal("expected demo tracks")
	}
	if s.FrameRate != DefaultFrameRate {
		t.Errorf("expected default frame rate, got %d", s.FrameRate)
	}
	for _, track := range s.Tracks {
		if track.Curve() == nil {
			t.Errorf("track %q: expected resolvable curve", track.Name)
		}
	}
}
