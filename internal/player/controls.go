package player

import (
	"fmt"
	"image/color"
	"strings"
	"time"
)

// osdSurface is the slice of Player the overlay renders through.
type osdSurface interface {
	OsdOverlay(id int, ass string, resW, resH int) error
	OsdOverlayRemove(id int) error
}

// OSD overlay slot for the control bar.
const osdIDControls = 1

const (
	fadeDuration = 250 * time.Millisecond
	holdDuration = 1000 * time.Millisecond
)

// ControlsOverlay renders the animated playback controls: a bottom scrim,
// a play/pause button, a scrubber with thumb, and elapsed/total time labels.
//
// The parent owns playback state and pushes it in via SetPaused/SetDuration/
// SetProgress; the overlay only reports intents through OnPlayPause and
// OnSeek. All methods must be called from the update loop.
type ControlsOverlay struct {
	surface osdSurface
	w, h    int

	visible bool
	shown   bool // osd-overlay currently set on the surface
	opacity Fade

	duration  float64
	progress  float64
	paused    bool
	landscape bool
	seeking   bool

	hideAt      time.Time
	hidePending bool

	mainColor color.RGBA

	// OnPlayPause requests a play/pause toggle from the parent.
	OnPlayPause func()
	// OnSeek commits a seek to the given position in seconds.
	OnSeek func(seconds float64)

	lastRender time.Time
	now        func() time.Time
}

// NewControlsOverlay creates the overlay for a window of the given size.
// The overlay starts visible, fading in from fully transparent.
func NewControlsOverlay(surface osdSurface, w, h int, mainColor color.RGBA) *ControlsOverlay {
	if w <= 0 {
		w = 1920
	}
	if h <= 0 {
		h = 1080
	}
	o := &ControlsOverlay{
		surface:   surface,
		w:         w,
		h:         h,
		visible:   true,
		mainColor: mainColor,
		now:       time.Now,
	}
	o.landscape = w > h
	o.opacity.Start(1, fadeDuration, o.now(), nil)
	return o
}

// ShowControls makes the overlay visible immediately. When playing, the
// overlay fades in, holds for a second after the fade completes, then fades
// back out and hides; when paused it fades in and stays.
func (o *ControlsOverlay) ShowControls(playing bool) {
	o.visible = true
	o.hidePending = false
	o.opacity.Start(1, fadeDuration, o.now(), func() {
		if playing {
			o.scheduleHide()
		}
	})
}

// SetDuration stores the media duration in seconds.
func (o *ControlsOverlay) SetDuration(seconds float64) {
	o.duration = seconds
}

// SetProgress stores the playhead position in seconds. Ignored while the
// user is dragging the scrubber.
func (o *ControlsOverlay) SetProgress(seconds float64) {
	if o.seeking {
		return
	}
	o.progress = seconds
}

// SetPaused pushes the parent-owned pause state into the overlay.
func (o *ControlsOverlay) SetPaused(paused bool) {
	o.paused = paused
}

// SetLandscape adjusts layout offsets for the window orientation.
func (o *ControlsOverlay) SetLandscape(landscape bool) {
	o.landscape = landscape
}

// Resize updates the window dimensions the overlay renders against.
func (o *ControlsOverlay) Resize(w, h int) {
	if w > 0 && h > 0 {
		o.w = w
		o.h = h
	}
}

// Visible reports whether the overlay is currently rendered at all.
func (o *ControlsOverlay) Visible() bool {
	return o.visible
}

// Opacity returns the current animated overlay opacity in [0,1].
func (o *ControlsOverlay) Opacity() float64 {
	return o.opacity.Value()
}

// PlayPauseTap handles a tap on the play/pause button. While paused the
// overlay fades out and hides (playback is about to resume); while playing
// it fades fully in and stays. The parent callback fires either way.
func (o *ControlsOverlay) PlayPauseTap() {
	if o.paused {
		o.hidePending = false
		o.fadeOut()
	} else {
		o.visible = true
		o.hidePending = false
		o.opacity.Start(1, fadeDuration, o.now(), nil)
	}
	if o.OnPlayPause != nil {
		o.OnPlayPause()
	}
}

// SeekStart begins a scrubber drag. Any pending auto-hide is dropped and a
// fade back to fully opaque supersedes an in-flight fade-out, so the overlay
// cannot disappear mid-drag.
func (o *ControlsOverlay) SeekStart() {
	o.hidePending = false
	o.visible = true
	o.seeking = true
	o.opacity.Start(1, fadeDuration, o.now(), nil)
}

// SeekMove updates the playhead locally while dragging, for live label
// feedback. The parent is not notified.
func (o *ControlsOverlay) SeekMove(seconds float64) {
	o.progress = seconds
}

// SeekEnd commits the drag: OnSeek fires once with the released position,
// and unless paused the overlay holds for a second and then fades out.
func (o *ControlsOverlay) SeekEnd(seconds float64) {
	o.seeking = false
	if o.OnSeek != nil {
		o.OnSeek(seconds)
	}
	o.progress = seconds
	if !o.paused {
		o.scheduleHide()
	}
}

func (o *ControlsOverlay) scheduleHide() {
	o.hideAt = o.now().Add(holdDuration)
	o.hidePending = true
}

// fadeOut fades to transparent; visibility flips only in the completion
// callback so the overlay never pops out before the fade finishes.
func (o *ControlsOverlay) fadeOut() {
	o.opacity.Start(0, fadeDuration, o.now(), func() {
		o.visible = false
	})
}

// Update steps the fade, checks the auto-hide hold, and re-renders the OSD
// when needed. Call once per frame from the game loop.
func (o *ControlsOverlay) Update() {
	now := o.now()
	o.opacity.Step(now)

	if o.hidePending && !now.Before(o.hideAt) {
		o.hidePending = false
		o.fadeOut()
	}

	if !o.visible {
		if o.shown {
			o.surface.OsdOverlayRemove(osdIDControls)
			o.shown = false
		}
		return
	}

	// Re-render every frame while animating or dragging, once a second
	// otherwise to keep the labels ticking.
	if o.opacity.Active() || o.seeking || !o.shown || now.Sub(o.lastRender) > time.Second {
		o.render(now)
	}
}

// Cleanup removes the OSD overlay. Call before discarding the overlay.
func (o *ControlsOverlay) Cleanup() {
	if o.shown {
		o.surface.OsdOverlayRemove(osdIDControls)
		o.shown = false
	}
}

// HandleMouse routes window-space mouse input to the overlay. Returns true
// when the input was consumed by a control.
func (o *ControlsOverlay) HandleMouse(x, y int, justPressed, pressed, justReleased bool) bool {
	if o.seeking {
		if justReleased {
			o.SeekEnd(o.valueAt(x))
		} else if pressed {
			o.SeekMove(o.valueAt(x))
		}
		return true
	}

	if !o.visible || !justPressed {
		return false
	}

	if o.inScrubber(x, y) {
		o.SeekStart()
		o.SeekMove(o.valueAt(x))
		return true
	}
	if o.inPlayButton(x, y) {
		o.PlayPauseTap()
		return true
	}
	return false
}

// --- layout ---

// scale converts a 1080p-baseline dimension to the current window height.
func (o *ControlsOverlay) scale(base float64) int {
	s := base * float64(o.h) / 1080.0
	if s < 1 {
		s = 1
	}
	return int(s + 0.5)
}

// barRect returns the scrubber track rectangle in window coordinates.
// Orientation only moves the margins and the bottom inset.
func (o *ControlsOverlay) barRect() (x, y, w, h int) {
	margin := o.w * 10 / 100
	inset := o.scale(105)
	if !o.landscape {
		margin = o.w * 5 / 100
		inset = o.scale(160)
	}
	return margin, o.h - inset, o.w - margin*2, o.scale(6)
}

func (o *ControlsOverlay) thumbRadius() int {
	return o.scale(10)
}

func (o *ControlsOverlay) buttonRadius() int {
	return o.scale(48)
}

func (o *ControlsOverlay) inScrubber(x, y int) bool {
	bx, by, bw, _ := o.barRect()
	pad := o.scale(24)
	return x >= bx-pad && x <= bx+bw+pad && y >= by-pad && y <= by+pad
}

func (o *ControlsOverlay) inPlayButton(x, y int) bool {
	r := o.buttonRadius() + o.scale(12)
	dx := x - o.w/2
	dy := y - o.h/2
	return dx*dx+dy*dy <= r*r
}

// valueAt converts a window X coordinate on the scrubber to seconds.
func (o *ControlsOverlay) valueAt(x int) float64 {
	bx, _, bw, _ := o.barRect()
	if bw <= 0 {
		return 0
	}
	frac := float64(x-bx) / float64(bw)
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	return frac * o.duration
}

// --- rendering ---

// buttonGlyph returns the ASS drawing for the play/pause button: a triangle
// while paused (tap will play), two bars while playing (tap will pause).
func (o *ControlsOverlay) buttonGlyph() string {
	r := o.buttonRadius() * 55 / 100
	if o.paused {
		return assTriangle(0, 0, r)
	}
	barW := r * 2 / 5
	gap := r * 3 / 10
	left := assRoundRect(-gap-barW, -r, barW, r*2, barW/3)
	right := assRoundRect(gap, -r, barW, r*2, barW/3)
	return left + " " + right
}

// render builds the control overlay ASS and pushes it to the surface.
func (o *ControlsOverlay) render(now time.Time) {
	o.lastRender = now

	op := o.opacity.Value()
	bx, by, bw, bh := o.barRect()

	frac := 0.0
	if o.duration > 0 {
		frac = o.progress / o.duration
		if frac < 0 {
			frac = 0
		} else if frac > 1 {
			frac = 1
		}
	}

	var b strings.Builder

	// Bottom scrim panel
	panelH := o.scale(150)
	b.WriteString(fmt.Sprintf(
		"{\\an7\\pos(0,%d)\\p1\\bord0\\shad0\\1c%s%s}%s{\\p0}\n",
		o.h-panelH, assBlack, assAlpha(op, 0x70),
		assRoundRect(0, 0, o.w, panelH, 0),
	))

	// Scrubber track
	b.WriteString(fmt.Sprintf(
		"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s%s}%s{\\p0}\n",
		bx, by-bh/2, assWhite, assAlpha(op, 0x80),
		assRoundRect(0, 0, bw, bh, bh/2),
	))

	// Scrubber fill in the main color
	fillW := int(float64(bw) * frac)
	if fillW > 0 {
		if fillW < bh {
			fillW = bh
		}
		b.WriteString(fmt.Sprintf(
			"{\\an7\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s%s}%s{\\p0}\n",
			bx, by-bh/2, assColor(o.mainColor, 0), assAlpha(op, 0),
			assRoundRect(0, 0, fillW, bh, bh/2),
		))
	}

	// Thumb dot
	thumbX := bx + int(float64(bw)*frac)
	b.WriteString(fmt.Sprintf(
		"{\\an5\\pos(%d,%d)\\p1\\bord0\\shad2\\3c%s\\1c%s%s}%s{\\p0}\n",
		thumbX, by, assShadow, assColor(o.mainColor, 0), assAlpha(op, 0),
		assCircle(0, 0, o.thumbRadius()),
	))

	// Elapsed / total time labels
	labelY := by + o.scale(34)
	b.WriteString(fmt.Sprintf(
		"{\\an4\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs%d\\1c%s%s\\fnSegoe UI,Liberation Sans,sans-serif\\b1}%s{\\r}\n",
		bx, labelY, assShadow, o.scale(28), assWhite, assAlpha(op, 0),
		FormatClock(o.progress),
	))
	b.WriteString(fmt.Sprintf(
		"{\\an6\\pos(%d,%d)\\bord0\\shad1\\3c%s\\fs%d\\1c%s%s\\fnSegoe UI,Liberation Sans,sans-serif}%s{\\r}\n",
		bx+bw, labelY, assShadow, o.scale(28), assWhiteDim, assAlpha(op, 0),
		FormatClock(o.duration),
	))

	// Center play/pause button: backing disc plus glyph
	b.WriteString(fmt.Sprintf(
		"{\\an5\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s%s}%s{\\p0}\n",
		o.w/2, o.h/2, assBlack, assAlpha(op, 0x60),
		assCircle(0, 0, o.buttonRadius()),
	))
	b.WriteString(fmt.Sprintf(
		"{\\an5\\pos(%d,%d)\\p1\\bord0\\shad0\\1c%s%s}%s{\\p0}\n",
		o.w/2, o.h/2, assWhite, assAlpha(op, 0),
		o.buttonGlyph(),
	))

	o.surface.OsdOverlay(osdIDControls, b.String(), o.w, o.h)
	o.shown = true
}
