// Package window runs games in a desktop window using Ebitengine.
// Sprites are loaded as PNG images from the assets directory and labels
// are drawn with the bitmap font. The world keeps its y-up coordinates
// and is flipped when drawn.
package window

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/target-practice/internal/audio"
	"github.com/vovakirdan/target-practice/internal/core"
	"github.com/vovakirdan/target-practice/internal/registry"
	"github.com/vovakirdan/target-practice/internal/storage"
)

// Options are the optional collaborators of a window host.
type Options struct {
	AssetsDir string         // Root for sprite paths
	Scale     float64        // Window size relative to the world, defaults to 1
	Store     *storage.Store // Session history, may be nil
	Audio     *audio.Mixer   // May be nil for silent play
	Logger    *log.Logger    // Defaults to a discarding logger
	Now       func() time.Time
}

// Host adapts a registry.Game to the ebiten.Game interface.
type Host struct {
	game       registry.Game
	config     core.RuntimeConfig
	opts       Options
	images     *imageCache
	frame      core.Frame
	state      core.GameState
	scoreSaved bool
	poll       func() (core.InputFrame, bool)
}

// NewHost creates a window host for game.
func NewHost(game registry.Game, cfg core.RuntimeConfig, opts Options) *Host {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	game.Reset(cfg)
	return &Host{
		game:   game,
		config: cfg,
		opts:   opts,
		images: newImageCache(opts.AssetsDir, opts.Logger),
		state:  game.State(),
		poll:   pollInput,
	}
}

// Update advances the game by one tick.
func (h *Host) Update() error {
	in, quit := h.poll()
	if quit {
		return ebiten.Termination
	}
	h.step(in)
	return nil
}

func (h *Host) step(in core.InputFrame) {
	result := h.game.Step(in)
	h.frame = result.Frame
	h.state = result.State

	if result.Err != nil {
		h.opts.Logger.Warn("high score", "error", result.Err)
	}
	if h.opts.Audio != nil {
		h.opts.Audio.Apply(result.Frame)
	}

	if h.state.GameOver && !h.scoreSaved {
		h.recordSession()
		h.scoreSaved = true
	}

	if result.Restart {
		h.config.Seed = time.Now().UnixNano()
		h.game.Reset(h.config)
		h.state = h.game.State()
		h.scoreSaved = false
	}
}

func (h *Host) recordSession() {
	if h.opts.Store == nil {
		return
	}
	entry := storage.SessionEntry{
		GameID:   h.game.ID(),
		Score:    h.state.Score,
		Platform: "window",
		PlayedAt: h.opts.Now(),
	}
	if _, err := h.opts.Store.SaveSession(entry); err != nil {
		h.opts.Logger.Warn("could not record session", "error", err)
	}
}

// Draw renders the output of the last tick.
func (h *Host) Draw(screen *ebiten.Image) {
	drawFrame(screen, h.frame, h.config.ScreenH, h.images)
}

// Layout keeps the logical screen at world size and lets ebiten scale it.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.config.ScreenW, h.config.ScreenH
}

// State returns the game state after the last tick.
func (h *Host) State() core.GameState {
	return h.state
}

// Run opens a window and blocks until it is closed or Escape is pressed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	h := NewHost(game, cfg, opts)

	ebiten.SetWindowSize(int(float64(cfg.ScreenW)*h.opts.Scale), int(float64(cfg.ScreenH)*h.opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	// RunGame returns nil when Update answers ebiten.Termination
	return ebiten.RunGame(h)
}
