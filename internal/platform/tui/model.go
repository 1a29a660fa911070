package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/target-practice/internal/audio"
	"github.com/vovakirdan/target-practice/internal/core"
	"github.com/vovakirdan/target-practice/internal/registry"
	"github.com/vovakirdan/target-practice/internal/storage"
)

// Default terminal size until the first WindowSizeMsg arrives
const (
	defaultCols = 80
	defaultRows = 24
)

// Options are the optional collaborators of a Model.
type Options struct {
	Store         *storage.Store // Session history, may be nil
	Audio         *audio.Mixer   // May be nil for silent play
	Logger        *log.Logger    // Must not write to the terminal, defaults to a discarding logger
	Platform      string         // Recorded with each session: "tui" or "ssh"
	ScreenshotDir string         // Defaults to ~/.target-practice/screenshots
	Now           func() time.Time
}

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	raster      Rasterizer
	config      core.RuntimeConfig
	opts        Options
	keys        *KeyMapper
	inputFrame  core.InputFrame
	gameState   core.GameState
	frame       core.Frame
	quitting    bool
	scoreSaved  bool // Whether the session has been logged for the current game over
	lastCapture string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Platform == "" {
		opts.Platform = "tui"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(defaultCols, defaultRows),
		raster:     Rasterizer{WorldW: cfg.ScreenW, WorldH: cfg.ScreenH},
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world keeps its size; only the raster changes
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.lastCapture = m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.keys.Tick(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.frame = result.Frame

	if result.Err != nil {
		m.opts.Logger.Warn("high score", "error", result.Err)
	}
	if m.opts.Audio != nil {
		m.opts.Audio.Apply(result.Frame)
	}

	// Log the session once per game over
	if m.gameState.GameOver && !m.scoreSaved {
		if m.opts.Store != nil {
			entry := storage.SessionEntry{
				GameID:   m.game.ID(),
				Score:    m.gameState.Score,
				Platform: m.opts.Platform,
				PlayedAt: m.opts.Now(),
			}
			if _, err := m.opts.Store.SaveSession(entry); err != nil {
				m.opts.Logger.Warn("could not record session", "error", err)
			}
		}
		m.scoreSaved = true
	}

	if result.Restart {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.keys.Release()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text and returns the path.
// Returns an empty string when the screenshot could not be written.
func (m *Model) saveScreenshot() string {
	m.raster.Draw(m.frame, m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("screenshot", "error", err)
			return ""
		}
		dir = filepath.Join(home, ".target-practice", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot", "error", err)
		return ""
	}

	filename := fmt.Sprintf("%s.txt", m.opts.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot", "error", err)
		return ""
	}

	m.opts.Logger.Info("screenshot saved", "path", path)
	return path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.raster.Draw(m.frame, m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
