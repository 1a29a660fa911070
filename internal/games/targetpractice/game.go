// Package targetpractice implements Target Practice: a dragon flies around
// the sky shooting fireballs at targets until the clock runs out.
package targetpractice

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/target-practice/internal/core"
	"github.com/vovakirdan/target-practice/internal/registry"
)

// GameID is the registry identifier.
const GameID = "targetpractice"

var (
	storeMu      sync.RWMutex
	sharedScores HighScoreStore
)

// SetHighScoreStore sets the record store used by games created afterwards.
// Should be called before starting the host.
func SetHighScoreStore(s HighScoreStore) {
	storeMu.Lock()
	defer storeMu.Unlock()
	sharedScores = s
}

func highScoreStore() HighScoreStore {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return sharedScores
}

// Game adapts a Session to the registry contract.
type Game struct {
	session Session
	env     Env
	last    core.StepResult
}

// New creates a game using the shared high score store.
func New() *Game {
	return NewWithStore(highScoreStore(), time.Now)
}

// NewWithStore creates a game with an explicit record store and clock.
func NewWithStore(scores HighScoreStore, now func() time.Time) *Game {
	return &Game{
		session: NewSession(),
		env: Env{
			Scores: scores,
			Now:    now,
		},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Target Practice"
}

// Reset returns to the title screen with a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.env.Width = cfg.ScreenW
	g.env.Height = cfg.ScreenH
	g.env.TickRate = cfg.TickRate
	if g.env.TickRate <= 0 {
		g.env.TickRate = core.DefaultConfig().TickRate
	}
	g.env.Rand = rand.New(rand.NewSource(cfg.Seed))

	g.session = NewSession()
	g.last = core.StepResult{State: g.session.State()}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.env.Rand == nil {
		g.Reset(core.DefaultConfig())
	}
	g.session, g.last = Tick(g.session, in, g.env)
	return g.last
}

// Frame returns the output of the last Step.
func (g *Game) Frame() core.Frame {
	return g.last.Frame
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.State()
}

// Session exposes the current session for inspection.
func (g *Game) Session() Session {
	return g.session
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
