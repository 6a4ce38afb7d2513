package app

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"playbar/internal/config"
	"playbar/internal/jellyfin"
	"playbar/internal/player"
)

const progressReportInterval = 10 * time.Second

// Game implements ebiten.Game: it hosts the embedded mpv surface, owns the
// playback state, and drives the controls overlay through its imperative
// handle (paused/duration/progress pushes plus ShowControls).
type Game struct {
	cfg       *config.Config
	client    *jellyfin.Client // nil when playing a local file or plain URL
	player    *player.Player
	overlay   *player.ControlsOverlay
	mainColor color.RGBA

	target string // file path or URL to play
	itemID string // Jellyfin item ID, "" for local targets

	width, height int

	started       bool
	playbackEnded bool
	lastReport    time.Time
}

// NewGame creates the Game. target is a local path or URL; itemID is set
// when streaming a Jellyfin item, in which case client must be non-nil.
func NewGame(cfg *config.Config, client *jellyfin.Client, target, itemID string) *Game {
	mainColor := player.DefaultMainColor
	if c, err := player.ParseHexColor(cfg.UI.MainColor); err == nil {
		mainColor = c
	} else {
		log.Printf("config: %v, using default main color", err)
	}
	return &Game{
		cfg:       cfg,
		client:    client,
		target:    target,
		itemID:    itemID,
		mainColor: mainColor,
		width:     cfg.UI.Width,
		height:    cfg.UI.Height,
	}
}

// startPlayback creates the mpv instance and loads the target. Deferred to
// the first Update so the window exists and can hand its handle to mpv.
func (g *Game) startPlayback() error {
	p, err := player.New(g.cfg)
	if err != nil {
		return fmt.Errorf("init player: %w", err)
	}
	p.OnPlaybackEnd = func() {
		g.playbackEnded = true
	}
	g.player = p

	wid, err := player.GetWindowHandle()
	if err != nil {
		return fmt.Errorf("get window handle: %w", err)
	}
	if err := p.SetWindowID(wid); err != nil {
		log.Printf("Failed to set window ID: %v", err)
	}

	url := g.target
	if g.itemID != "" && g.client != nil {
		url = g.client.GetStreamURL(g.itemID)
	}
	if err := p.LoadFile(url, g.itemID, 0); err != nil {
		return fmt.Errorf("load %q: %w", url, err)
	}

	if g.streaming() {
		go func() {
			if err := g.client.ReportPlaybackStart(g.itemID, 0); err != nil {
				log.Printf("Report playback start: %v", err)
			}
		}()
	}
	g.lastReport = time.Now()

	o := player.NewControlsOverlay(p, g.width, g.height, g.mainColor)
	o.OnPlayPause = func() {
		g.player.TogglePause()
	}
	o.OnSeek = func(seconds float64) {
		g.player.SeekAbsolute(seconds)
		g.reportProgress(seconds)
	}
	o.ShowControls(true)
	g.overlay = o

	return nil
}

func (g *Game) streaming() bool {
	return g.client != nil && g.itemID != ""
}

// reportProgress sends a playstate update for the given position. No-op for
// local playback.
func (g *Game) reportProgress(seconds float64) {
	if !g.streaming() {
		return
	}
	ticks := int64(seconds * jellyfin.TicksPerSecond)
	paused := g.player.Paused()
	go func() {
		if err := g.client.ReportPlaybackProgress(g.itemID, ticks, paused); err != nil {
			log.Printf("Report progress: %v", err)
		}
	}()
	g.lastReport = time.Now()
}

// stopPlayback reports the final position and tears the player down.
func (g *Game) stopPlayback() {
	if g.overlay != nil {
		g.overlay.Cleanup()
		g.overlay = nil
	}
	if g.player == nil {
		return
	}
	if g.streaming() {
		ticks := int64(g.player.Position() * jellyfin.TicksPerSecond)
		itemID := g.itemID
		client := g.client
		go func() {
			if err := client.ReportPlaybackStopped(itemID, ticks); err != nil {
				log.Printf("Report playback stopped: %v", err)
			}
		}()
	}
	g.player.Stop()
	g.player.Destroy()
	g.player = nil
}

func (g *Game) Update() error {
	if !g.started {
		g.started = true
		if err := g.startPlayback(); err != nil {
			return err
		}
	}

	if g.playbackEnded {
		g.stopPlayback()
		return ebiten.Termination
	}

	// Alt+Enter toggles fullscreen in all states
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	kb := &g.cfg.Keybinds
	if keyJustPressed(kb.Quit) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.stopPlayback()
		return ebiten.Termination
	}
	if keyJustPressed(kb.Fullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	g.handlePlaybackInput()

	// Push playback state into the overlay's imperative handle, then step it.
	if g.overlay != nil {
		g.overlay.Resize(g.width, g.height)
		g.overlay.SetLandscape(g.width > g.height)
		g.overlay.SetPaused(g.player.Paused())
		g.overlay.SetDuration(g.player.Duration())
		g.overlay.SetProgress(g.player.Position())
		g.overlay.Update()
	}

	// Periodic playstate reporting while streaming
	if g.streaming() && time.Since(g.lastReport) > progressReportInterval {
		g.reportProgress(g.player.Position())
	}

	return nil
}

// handlePlaybackInput maps keyboard and mouse input to overlay and player
// actions. Keyboard play/pause goes through the overlay's tap handler so the
// fade behavior matches a button tap.
func (g *Game) handlePlaybackInput() {
	if g.player == nil || g.overlay == nil {
		return
	}
	kb := &g.cfg.Keybinds

	if keyJustPressed(kb.PlayPause) {
		g.overlay.PlayPauseTap()
	}
	if keyJustPressed(kb.SeekForward) {
		g.player.Seek(10)
		g.overlay.ShowControls(!g.player.Paused())
	}
	if keyJustPressed(kb.SeekBackward) {
		g.player.Seek(-10)
		g.overlay.ShowControls(!g.player.Paused())
	}
	if keyJustPressed(kb.SeekForwardLarge) {
		g.player.Seek(60)
		g.overlay.ShowControls(!g.player.Paused())
	}
	if keyJustPressed(kb.SeekBackwardLarge) {
		g.player.Seek(-60)
		g.overlay.ShowControls(!g.player.Paused())
	}
	if keyJustPressed(kb.VolumeUp) {
		g.player.AdjustVolume(5)
		g.overlay.ShowControls(!g.player.Paused())
	}
	if keyJustPressed(kb.VolumeDown) {
		g.player.AdjustVolume(-5)
		g.overlay.ShowControls(!g.player.Paused())
	}
	if keyJustPressed(kb.Mute) {
		g.player.ToggleMute()
		g.overlay.ShowControls(!g.player.Paused())
	}

	x, y := ebiten.CursorPosition()
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	consumed := g.overlay.HandleMouse(x, y, justPressed, pressed, justReleased)
	if !consumed && justPressed {
		g.overlay.ShowControls(!g.player.Paused())
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	// mpv owns the window surface via --wid and renders both the video and
	// the ASS control overlay. Nothing to draw on the ebiten side.
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// 1:1 logical-to-window mapping so cursor coordinates line up with the
	// OSD resolution handed to mpv.
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width = outsideWidth
		g.height = outsideHeight
	}
	return g.width, g.height
}
