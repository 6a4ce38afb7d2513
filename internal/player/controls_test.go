package player

import (
	"strings"
	"testing"
	"time"
)

type fakeSurface struct {
	lastASS string
	sets    int
	removes int
}

func (s *fakeSurface) OsdOverlay(id int, ass string, resW, resH int) error {
	s.sets++
	s.lastASS = ass
	return nil
}

func (s *fakeSurface) OsdOverlayRemove(id int) error {
	s.removes++
	return nil
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestOverlay(t *testing.T) (*ControlsOverlay, *fakeSurface, *fakeClock) {
	t.Helper()
	fs := &fakeSurface{}
	// Base the clock on the wall clock so the mount fade started inside the
	// constructor is in the near past; all advances use generous margins.
	clock := &fakeClock{t: time.Now()}
	o := NewControlsOverlay(fs, 1920, 1080, DefaultMainColor)
	o.now = clock.now
	return o, fs, clock
}

// settle completes the mount fade-in.
func settle(o *ControlsOverlay, clock *fakeClock) {
	clock.advance(400 * time.Millisecond)
	o.Update()
}

func TestMountFadesIn(t *testing.T) {
	t.Parallel()

	o, fs, clock := newTestOverlay(t)
	if !o.Visible() {
		t.Fatalf("overlay not visible on mount")
	}
	settle(o, clock)
	if v := o.Opacity(); v != 1 {
		t.Fatalf("opacity after mount fade = %v, want 1", v)
	}
	if fs.sets == 0 {
		t.Fatalf("nothing rendered")
	}
}

func TestShowControlsPlayingAutoHides(t *testing.T) {
	t.Parallel()

	o, fs, clock := newTestOverlay(t)
	settle(o, clock)

	o.ShowControls(true)
	if !o.Visible() {
		t.Fatalf("not visible after ShowControls")
	}
	clock.advance(400 * time.Millisecond)
	o.Update() // fade-in completes, hold scheduled
	if o.Opacity() != 1 {
		t.Fatalf("opacity = %v, want 1", o.Opacity())
	}

	clock.advance(500 * time.Millisecond)
	o.Update() // still holding
	if !o.Visible() {
		t.Fatalf("hidden during hold")
	}

	clock.advance(600 * time.Millisecond)
	o.Update() // hold expired, fade-out starts
	if !o.Visible() {
		t.Fatalf("visibility flipped before the fade-out finished")
	}

	clock.advance(400 * time.Millisecond)
	o.Update() // fade-out completes
	if o.Visible() {
		t.Fatalf("still visible after fade-out completed")
	}
	o.Update()
	if fs.removes == 0 {
		t.Fatalf("osd overlay never removed")
	}
}

func TestShowControlsPausedStaysVisible(t *testing.T) {
	t.Parallel()

	o, _, clock := newTestOverlay(t)
	settle(o, clock)

	o.ShowControls(false)
	clock.advance(400 * time.Millisecond)
	o.Update()

	clock.advance(10 * time.Second)
	o.Update()
	if !o.Visible() || o.Opacity() != 1 {
		t.Fatalf("paused overlay auto-hid: visible=%v opacity=%v", o.Visible(), o.Opacity())
	}
}

func TestPlayPauseTapWhilePaused(t *testing.T) {
	t.Parallel()

	o, _, clock := newTestOverlay(t)
	settle(o, clock)

	taps := 0
	o.OnPlayPause = func() { taps++ }
	o.SetPaused(true)

	o.PlayPauseTap()
	if taps != 1 {
		t.Fatalf("OnPlayPause fired %d times, want 1", taps)
	}
	if !o.Visible() {
		t.Fatalf("visibility flipped eagerly, before the fade")
	}

	clock.advance(400 * time.Millisecond)
	o.Update()
	if o.Visible() {
		t.Fatalf("still visible after fade-out")
	}
	if o.Opacity() != 0 {
		t.Fatalf("opacity = %v, want 0", o.Opacity())
	}
}

func TestPlayPauseTapWhilePlaying(t *testing.T) {
	t.Parallel()

	o, _, clock := newTestOverlay(t)
	settle(o, clock)

	taps := 0
	o.OnPlayPause = func() { taps++ }
	o.SetPaused(false)

	o.PlayPauseTap()
	if taps != 1 {
		t.Fatalf("OnPlayPause fired %d times, want 1", taps)
	}

	clock.advance(400 * time.Millisecond)
	o.Update()
	// No auto-hide after a tap while playing
	clock.advance(5 * time.Second)
	o.Update()
	if !o.Visible() || o.Opacity() != 1 {
		t.Fatalf("overlay hid after play/pause tap: visible=%v opacity=%v", o.Visible(), o.Opacity())
	}
}

func TestSeekStartCancelsFadeOut(t *testing.T) {
	t.Parallel()

	o, _, clock := newTestOverlay(t)
	settle(o, clock)

	o.SetPaused(true)
	o.PlayPauseTap() // fade-out in flight
	clock.advance(100 * time.Millisecond)
	o.Update()
	if !o.Visible() {
		t.Fatalf("hidden too early")
	}

	o.SeekStart()
	if !o.Visible() {
		t.Fatalf("seek-start did not force visibility")
	}

	// The cancelled fade must never complete and hide the overlay
	clock.advance(5 * time.Second)
	o.Update()
	if !o.Visible() {
		t.Fatalf("cancelled fade still hid the overlay")
	}
}

func TestSeekDragAndCommit(t *testing.T) {
	t.Parallel()

	o, _, clock := newTestOverlay(t)
	settle(o, clock)
	o.SetDuration(100)
	o.SetPaused(false)

	var seeks []float64
	o.OnSeek = func(v float64) { seeks = append(seeks, v) }

	o.SeekStart()
	o.SeekMove(30)
	if o.progress != 30 {
		t.Fatalf("progress = %v, want 30", o.progress)
	}

	// Parent ticks are ignored mid-drag
	o.SetProgress(55)
	if o.progress != 30 {
		t.Fatalf("parent tick overrode drag: %v", o.progress)
	}

	o.SeekEnd(42)
	if len(seeks) != 1 || seeks[0] != 42 {
		t.Fatalf("OnSeek calls = %v, want [42]", seeks)
	}
	if o.progress != 42 {
		t.Fatalf("progress = %v, want 42", o.progress)
	}

	// Parent ticks apply again after the drag
	o.SetProgress(55)
	if o.progress != 55 {
		t.Fatalf("parent tick ignored after drag: %v", o.progress)
	}

	// Not paused: the same hold-then-fade as ShowControls(true)
	clock.advance(1100 * time.Millisecond)
	o.Update()
	clock.advance(400 * time.Millisecond)
	o.Update()
	if o.Visible() {
		t.Fatalf("overlay still visible after post-seek hold and fade")
	}
}

func TestSeekEndPausedStaysVisible(t *testing.T) {
	t.Parallel()

	o, _, clock := newTestOverlay(t)
	settle(o, clock)
	o.SetDuration(100)
	o.SetPaused(true)

	o.OnSeek = func(float64) {}
	o.SeekStart()
	o.SeekEnd(12)

	clock.advance(10 * time.Second)
	o.Update()
	if !o.Visible() {
		t.Fatalf("paused overlay auto-hid after seek")
	}
}

func TestButtonGlyph(t *testing.T) {
	t.Parallel()

	o, _, _ := newTestOverlay(t)

	o.SetPaused(true)
	play := o.buttonGlyph()
	if strings.Count(play, "m ") != 1 || strings.Count(play, " l ") != 2 {
		t.Fatalf("play glyph should be a single triangle: %q", play)
	}

	o.SetPaused(false)
	pause := o.buttonGlyph()
	if strings.Count(pause, "m ") != 2 {
		t.Fatalf("pause glyph should be two bars: %q", pause)
	}
}

func TestHandleMouseScrubberDrag(t *testing.T) {
	t.Parallel()

	o, _, clock := newTestOverlay(t)
	settle(o, clock)
	o.SetDuration(100)
	o.SetPaused(false)

	var seeks []float64
	o.OnSeek = func(v float64) { seeks = append(seeks, v) }

	bx, by, bw, _ := o.barRect()

	// Press at the middle of the track
	if !o.HandleMouse(bx+bw/2, by, true, true, false) {
		t.Fatalf("press on scrubber not consumed")
	}
	if !o.seeking {
		t.Fatalf("drag did not start")
	}
	if o.progress < 49 || o.progress > 51 {
		t.Fatalf("progress = %v, want ~50", o.progress)
	}

	// Drag to the end, then release
	o.HandleMouse(bx+bw, by, false, true, false)
	if o.progress != 100 {
		t.Fatalf("progress = %v, want 100", o.progress)
	}
	o.HandleMouse(bx+bw, by, false, false, true)
	if len(seeks) != 1 || seeks[0] != 100 {
		t.Fatalf("OnSeek calls = %v, want [100]", seeks)
	}
	if o.seeking {
		t.Fatalf("drag still active after release")
	}

	// Dragging past the left edge clamps to the start of the track
	o.HandleMouse(bx+10, by, true, true, false)
	o.HandleMouse(bx-500, by, false, true, false)
	o.HandleMouse(bx-500, by, false, false, true)
	if len(seeks) != 2 || seeks[1] != 0 {
		t.Fatalf("clamped seek = %v, want 0", seeks)
	}
}

func TestHandleMousePlayButton(t *testing.T) {
	t.Parallel()

	o, _, clock := newTestOverlay(t)
	settle(o, clock)

	taps := 0
	o.OnPlayPause = func() { taps++ }

	if !o.HandleMouse(960, 540, true, true, false) {
		t.Fatalf("click on play button not consumed")
	}
	if taps != 1 {
		t.Fatalf("OnPlayPause fired %d times, want 1", taps)
	}

	// A click far from any control is left to the parent
	if o.HandleMouse(10, 10, true, true, false) {
		t.Fatalf("background click consumed")
	}
}
