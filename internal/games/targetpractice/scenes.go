package targetpractice

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/target-practice/internal/core"
	"github.com/vovakirdan/target-practice/internal/highscore"
)

// Session timing
const (
	SessionSeconds  = 30
	RestartCooldown = 30 // Frames the game-over screen ignores fire input
)

// Scene identifies the top-level game mode.
type Scene int

const (
	SceneTitle Scene = iota
	SceneGameplay
	SceneGameOver
)

// String returns the scene name.
func (s Scene) String() string {
	switch s {
	case SceneTitle:
		return "title"
	case SceneGameplay:
		return "gameplay"
	case SceneGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// HighScoreStore loads and saves the persisted best score.
type HighScoreStore interface {
	Load() (highscore.Record, error)
	Save(highscore.Record) error
}

// Env is everything a tick needs from outside the session.
type Env struct {
	Width    int
	Height   int
	TickRate int
	Rand     *rand.Rand
	Now      func() time.Time
	Scores   HighScoreStore // May be nil, then nothing is persisted
}

// Bounds returns the world rectangle.
func (e Env) Bounds() core.Rect {
	return core.NewRect(0, 0, e.Width, e.Height)
}

// Session is the whole mutable game state. The loop driver owns it and
// threads it through Tick; nothing else holds on to it between frames.
type Session struct {
	Scene        Scene
	Tick         int // Frames since the last reset
	MusicStarted bool

	Timer          int // Frames left; negative once time is up
	Score          int
	HighScoreSaved bool
	Best           highscore.Record // Record read when entering game over

	Player    *Player // Nil until the first gameplay frame
	Fireballs []Fireball
	Targets   []Target
	Clouds    []Cloud
}

// NewSession returns a session sitting on the title screen.
func NewSession() Session {
	return Session{Scene: SceneTitle}
}

// State summarizes the session for the platform.
func (s Session) State() core.GameState {
	return core.GameState{
		Scene:    s.Scene.String(),
		Score:    s.Score,
		GameOver: s.Scene == SceneGameOver,
	}
}

// Tick advances the session by one frame and returns the new session along
// with everything queued for the host. The slices inside s are reused, so
// the caller must not keep using the session it passed in.
func Tick(s Session, in core.InputFrame, env Env) (Session, core.StepResult) {
	var res core.StepResult
	s.Tick++

	if !s.MusicStarted {
		res.Frame.PlayMusic(MusicPath)
		s.MusicStarted = true
	}

	switch s.Scene {
	case SceneTitle:
		s = titleTick(s, in, env, &res)
	case SceneGameplay:
		s = gameplayTick(s, in, env, &res)
	case SceneGameOver:
		s = gameOverTick(s, in, env, &res)
	}

	res.State = s.State()
	return s, res
}

func titleTick(s Session, in core.InputFrame, env Env, res *core.StepResult) Session {
	res.Frame.AddSprite(background(env))

	if in.Has(core.ActionFire) {
		res.Frame.PlaySound(SoundStart)
		s.Scene = SceneGameplay
		return s
	}

	for _, l := range titleLabels(env) {
		res.Frame.AddLabel(l)
	}
	return s
}

// startGameplay creates the entities on the first gameplay frame.
func startGameplay(s Session, env Env) Session {
	s.Clouds = make([]Cloud, CloudCount)
	for i := range s.Clouds {
		s.Clouds[i] = SpawnCloud(env.Rand, env.Width, env.Height)
	}

	s.Player = NewPlayer()
	s.Fireballs = make([]Fireball, 0, 8)

	s.Targets = make([]Target, 0, TargetCount*2)
	for i := 0; i < TargetCount; i++ {
		s.Targets = append(s.Targets, SpawnTarget(env.Rand, env.Width, env.Height))
	}

	s.Score = 0
	s.Timer = SessionSeconds * env.TickRate
	return s
}

func gameplayTick(s Session, in core.InputFrame, env Env, res *core.StepResult) Session {
	if s.Player == nil {
		s = startGameplay(s, env)
	}

	MoveClouds(s.Clouds, env.Width)

	s.Timer--
	if s.Timer == 0 {
		res.Frame.PauseMusic()
		res.Frame.PlaySound(SoundTimeUp)
	}
	if s.Timer < 0 {
		return enterGameOver(s, env, res)
	}

	moved := MovePlayer(s.Player, in, env.Bounds())
	AnimatePlayer(s.Player, s.Tick, moved)

	if in.Has(core.ActionFire) {
		res.Frame.PlaySound(SoundFireball)
		s.Fireballs = append(s.Fireballs, NewFireball(s.Player))
	}

	AdvanceFireballs(s.Fireballs, s.Player.Speed+FireballBonusSpeed, env.Width)

	var hits int
	s.Targets, hits = ResolveHits(s.Fireballs, s.Targets, func() Target {
		return SpawnTarget(env.Rand, env.Width, env.Height)
	}, &res.Frame)
	s.Score += hits

	s.Targets = SweepTargets(s.Targets)
	s.Fireballs = SweepFireballs(s.Fireballs)

	drawGameplay(s, env, &res.Frame)
	return s
}

// enterGameOver switches scenes, reads the stored record and saves a new
// one if this session beat it.
func enterGameOver(s Session, env Env, res *core.StepResult) Session {
	s.Scene = SceneGameOver

	if env.Scores != nil {
		best, err := env.Scores.Load()
		if err != nil {
			res.Err = err
		}
		s.Best = best

		// An unreadable file may still hold a valid record; only a
		// missing or malformed one may be overwritten.
		writable := err == nil || errors.Is(err, highscore.ErrMalformed)
		if writable && !s.HighScoreSaved && s.Score > best.Score {
			if err := env.Scores.Save(highscore.NewRecord(s.Score, env.now())); err != nil {
				res.Err = err
			} else {
				s.HighScoreSaved = true
			}
		}
	}

	drawGameOver(s, env, &res.Frame)
	return s
}

func gameOverTick(s Session, in core.InputFrame, env Env, res *core.StepResult) Session {
	s.Timer--

	drawGameOver(s, env, &res.Frame)

	if s.Timer < -RestartCooldown && in.Has(core.ActionFire) {
		res.Restart = true
	}
	return s
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func background(env Env) core.Sprite {
	return core.Sprite{Rect: env.Bounds(), Path: BackgroundPath}
}

func drawGameplay(s Session, env Env, f *core.Frame) {
	f.AddSprite(background(env))
	for _, c := range s.Clouds {
		f.AddSprite(core.Sprite{Rect: c.Rect(), Path: c.Path})
	}
	f.AddSprite(core.Sprite{Rect: s.Player.Rect, Path: s.Player.Path})
	for _, fb := range s.Fireballs {
		f.AddSprite(core.Sprite{Rect: fb.Rect, Path: fb.Path})
	}
	for _, t := range s.Targets {
		f.AddSprite(core.Sprite{Rect: t.Rect, Path: t.Path})
	}

	for _, l := range gameplayLabels(s, env) {
		f.AddLabel(l)
	}
}

func drawGameOver(s Session, env Env, f *core.Frame) {
	f.AddSprite(background(env))
	for _, l := range gameOverLabels(s, env) {
		f.AddLabel(l)
	}
}
