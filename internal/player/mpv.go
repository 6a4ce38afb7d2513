package player

import (
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/gen2brain/go-mpv"

	"playbar/internal/config"
)

// Player wraps libmpv for video playback.
type Player struct {
	m        *mpv.Mpv
	mu       sync.Mutex
	playing  bool
	paused   bool
	duration float64
	position float64
	itemID   string

	OnPlaybackEnd func()
}

// New creates and initializes a new mpv player instance.
func New(cfg *config.Config) (*Player, error) {
	m := mpv.New()

	// Core options — mpv owns the render pipeline
	must(m.SetOptionString("hwdec", cfg.Playback.HWAccel))
	must(m.SetOptionString("vo", "gpu"))
	must(m.SetOptionString("osc", "no"))
	must(m.SetOptionString("keep-open", "yes"))
	must(m.SetOptionString("idle", "yes"))
	must(m.SetOptionString("volume", fmt.Sprintf("%d", cfg.Playback.Volume)))

	if err := m.Initialize(); err != nil {
		return nil, fmt.Errorf("mpv init: %w", err)
	}

	p := &Player{m: m}

	// Observe properties for position/duration tracking
	m.ObserveProperty(0, "time-pos", mpv.FormatDouble)
	m.ObserveProperty(0, "duration", mpv.FormatDouble)
	m.ObserveProperty(0, "pause", mpv.FormatFlag)

	go p.eventLoop()

	return p, nil
}

func must(err error) {
	if err != nil {
		log.Printf("mpv option warning: %v", err)
	}
}

// SetWindowID sets the native window handle for embedded playback.
func (p *Player) SetWindowID(wid int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.SetOptionString("wid", fmt.Sprintf("%d", wid))
}

// LoadFile starts playback of a URL or local path, optionally from a start
// position in seconds.
func (p *Player) LoadFile(url, itemID string, startSec float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.itemID = itemID
	p.playing = true
	p.paused = false
	if startSec > 0 {
		return p.m.Command([]string{"loadfile", url, "replace", "0", fmt.Sprintf("start=%.1f", startSec)})
	}
	return p.m.Command([]string{"loadfile", url})
}

// Seek seeks relative to the current position.
func (p *Player) Seek(seconds float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"seek", fmt.Sprintf("%.1f", seconds), "relative"})
}

// SeekAbsolute seeks to an absolute position.
func (p *Player) SeekAbsolute(seconds float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"seek", fmt.Sprintf("%.1f", seconds), "absolute"})
}

// TogglePause toggles the pause state.
func (p *Player) TogglePause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"cycle", "pause"})
}

// AdjustVolume changes the volume by the given delta in percent.
func (p *Player) AdjustVolume(delta int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"add", "volume", fmt.Sprintf("%d", delta)})
}

// ToggleMute toggles audio mute.
func (p *Player) ToggleMute() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"cycle", "mute"})
}

// Stop stops playback.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	return p.m.Command([]string{"stop"})
}

// Destroy cleans up the mpv instance.
func (p *Player) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m.TerminateDestroy()
}

// Playing returns whether media is currently loaded.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Paused returns the current pause state.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Position returns the current playback position in seconds.
func (p *Player) Position() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position
}

// Duration returns the total duration in seconds.
func (p *Player) Duration() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.duration
}

// ItemID returns the currently playing item ID ("" for local files).
func (p *Player) ItemID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.itemID
}

// OsdOverlay renders an ASS overlay with the given slot ID at the given
// OSD resolution.
func (p *Player) OsdOverlay(id int, ass string, resW, resH int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return osdOverlaySet(p.m, id, ass, resW, resH)
}

// OsdOverlayRemove removes the ASS overlay in the given slot.
func (p *Player) OsdOverlayRemove(id int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return osdOverlayRemove(p.m, id)
}

func (p *Player) eventLoop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for {
		ev := p.m.WaitEvent(1.0)
		if ev == nil {
			continue
		}

		switch ev.EventID {
		case mpv.EventPropertyChange:
			if ev.Data == nil {
				continue
			}
			prop := ev.Property()
			p.mu.Lock()
			switch prop.Name {
			case "time-pos":
				if v, ok := prop.Data.(float64); ok {
					p.position = v
				}
			case "duration":
				if v, ok := prop.Data.(float64); ok {
					p.duration = v
				}
			case "pause":
				if v, ok := prop.Data.(int); ok {
					p.paused = v == 1
				}
			}
			p.mu.Unlock()

		case mpv.EventEnd:
			p.mu.Lock()
			wasPlaying := p.playing
			p.playing = false
			p.mu.Unlock()
			// Stop() clears playing before sending the stop command, so
			// end-file events caused by Stop arrive with wasPlaying=false
			// and are ignored.
			if wasPlaying && p.OnPlaybackEnd != nil {
				p.OnPlaybackEnd()
			}

		case mpv.EventShutdown:
			return
		}
	}
}
