package window

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/target-practice/internal/core"
	"github.com/vovakirdan/target-practice/internal/games/targetpractice"
	"github.com/vovakirdan/target-practice/internal/storage"
)

var fixedNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

type scriptedGame struct {
	resets  int
	steps   int
	results []core.StepResult
}

func (g *scriptedGame) ID() string                   { return "scripted" }
func (g *scriptedGame) Title() string                { return "Scripted" }
func (g *scriptedGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) Frame() core.Frame            { return core.Frame{} }
func (g *scriptedGame) State() core.GameState        { return core.GameState{Scene: "title"} }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	res := g.results[core.Min(g.steps, len(g.results)-1)]
	g.steps++
	return res
}

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestBuildInput(t *testing.T) {
	tests := []struct {
		name     string
		held     []ebiten.Key
		pressed  []ebiten.Key
		pads     []padState
		expected []core.Action
		quit     bool
	}{
		{name: "nothing"},
		{name: "arrows", held: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowUp}, expected: []core.Action{core.ActionLeft, core.ActionUp}},
		{name: "wasd", held: []ebiten.Key{ebiten.KeyD, ebiten.KeyS}, expected: []core.Action{core.ActionRight, core.ActionDown}},
		{name: "fire z", pressed: []ebiten.Key{ebiten.KeyZ}, expected: []core.Action{core.ActionFire}},
		{name: "fire j", pressed: []ebiten.Key{ebiten.KeyJ}, expected: []core.Action{core.ActionFire}},
		{name: "held fire key does not fire", held: []ebiten.Key{ebiten.KeyZ}},
		{name: "gamepad", pads: []padState{{Right: true, Fire: true}}, expected: []core.Action{core.ActionRight, core.ActionFire}},
		{name: "escape", pressed: []ebiten.Key{ebiten.KeyEscape}, quit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, quit := buildInput(keySet(tt.held...), keySet(tt.pressed...), tt.pads)
			if quit != tt.quit {
				t.Errorf("quit = %v, expected %v", quit, tt.quit)
			}
			for _, a := range tt.expected {
				if !in.Has(a) {
					t.Errorf("expected %v to be set", a)
				}
			}
			if len(in.Actions) != len(tt.expected) {
				t.Errorf("got %d actions, expected %d", len(in.Actions), len(tt.expected))
			}
		})
	}
}

func TestStickState(t *testing.T) {
	tests := []struct {
		x, y     float64
		expected padState
	}{
		{0, 0, padState{}},
		{0.3, -0.3, padState{}},
		{-0.9, 0, padState{Left: true}},
		{0.5, 0, padState{Right: true}},
		{0, -1, padState{Up: true}},
		{0.7, 0.7, padState{Right: true, Down: true}},
	}

	for _, tt := range tests {
		if got := stickState(tt.x, tt.y); got != tt.expected {
			t.Errorf("stickState(%v, %v) = %+v, expected %+v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestScreenTop(t *testing.T) {
	tests := []struct {
		y, h, expected int
	}{
		{0, 720, 0},  // Background fills the screen
		{0, 64, 656}, // Resting on the bottom edge
		{656, 64, 0}, // Touching the top edge
		{280, 80, 360},
	}

	for _, tt := range tests {
		if got := screenTop(720, tt.y, tt.h); got != tt.expected {
			t.Errorf("screenTop(720, %d, %d) = %d, expected %d", tt.y, tt.h, got, tt.expected)
		}
	}
}

func TestLabelScaleGrowsWithSize(t *testing.T) {
	sizes := []int{
		targetpractice.SizeBody,
		targetpractice.SizeSmall,
		targetpractice.SizeMedium,
		targetpractice.SizeLarge,
		targetpractice.SizeTitle,
		targetpractice.SizeHeadline,
	}
	prev := 0.0
	for _, s := range sizes {
		scale := labelScale(s)
		if scale <= prev {
			t.Errorf("labelScale(%d) = %v, expected more than %v", s, scale, prev)
		}
		prev = scale
	}
	if labelScale(-3) != labelScale(0) {
		t.Error("negative sizes should use the body scale")
	}
}

func TestAlignOffset(t *testing.T) {
	if got := alignOffset(core.AlignLeft, 100); got != 0 {
		t.Errorf("left offset = %v", got)
	}
	if got := alignOffset(core.AlignCenter, 100); got != 50 {
		t.Errorf("center offset = %v", got)
	}
	if got := alignOffset(core.AlignRight, 100); got != 100 {
		t.Errorf("right offset = %v", got)
	}
}

func TestFallbackColor(t *testing.T) {
	if fallbackColor(targetpractice.BackgroundPath) != skyColor {
		t.Error("background should fall back to sky color")
	}
	if fallbackColor(targetpractice.DragonPath(3)) != dragonColor {
		t.Error("every dragon frame should share one color")
	}
	if fallbackColor(targetpractice.TargetPath) == fallbackColor(targetpractice.FireballPath) {
		t.Error("targets and fireballs should be distinguishable")
	}
	if fallbackColor("sprites/unknown.png").A != 0xff {
		t.Error("unknown sprites should be opaque")
	}
}

func TestHostUpdateQuits(t *testing.T) {
	game := &scriptedGame{results: []core.StepResult{{}}}
	h := NewHost(game, core.DefaultConfig(), Options{})
	h.poll = func() (core.InputFrame, bool) { return core.NewInputFrame(), true }

	if err := h.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update() = %v, expected ebiten.Termination", err)
	}
	if game.steps != 0 {
		t.Error("a quitting tick should not step the game")
	}
}

func TestHostLayoutIsWorldSize(t *testing.T) {
	h := NewHost(&scriptedGame{results: []core.StepResult{{}}}, core.DefaultConfig(), Options{Scale: 0.5})
	w, hh := h.Layout(640, 360)
	if w != 1280 || hh != 720 {
		t.Errorf("Layout() = %dx%d, expected 1280x720", w, hh)
	}
}

func TestHostRecordsSessionOncePerGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	over := core.StepResult{State: core.GameState{Scene: "game-over", Score: 7, GameOver: true}}
	restart := over
	restart.Restart = true

	game := &scriptedGame{results: []core.StepResult{over, over, restart, {}, over}}
	h := NewHost(game, core.DefaultConfig(), Options{Store: store, Now: func() time.Time { return fixedNow }})
	h.poll = func() (core.InputFrame, bool) { return core.NewInputFrame(), false }

	for i := 0; i < 2; i++ {
		if err := h.Update(); err != nil {
			t.Fatalf("Update() failed: %v", err)
		}
	}

	sessions, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 recorded session, got %d", len(sessions))
	}
	if sessions[0].Platform != "window" || sessions[0].Score != 7 {
		t.Errorf("unexpected session %+v", sessions[0])
	}

	// Restart tick, a fresh tick, then a second game over
	for i := 0; i < 3; i++ {
		_ = h.Update()
	}
	if game.resets != 2 {
		t.Errorf("resets = %d, expected 2", game.resets)
	}
	sessions, _ = store.TopScores("scripted", 10)
	if len(sessions) != 2 {
		t.Errorf("expected a second session after restart, got %d", len(sessions))
	}
}

func TestHostRunsRealGame(t *testing.T) {
	game := targetpractice.NewWithStore(nil, func() time.Time { return fixedNow })
	h := NewHost(game, core.DefaultConfig(), Options{})

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	inputs := []core.InputFrame{core.NewInputFrame(), fire, core.NewInputFrame()}
	h.poll = func() (core.InputFrame, bool) {
		in := inputs[0]
		if len(inputs) > 1 {
			inputs = inputs[1:]
		}
		return in, false
	}

	for i := 0; i < 3; i++ {
		if err := h.Update(); err != nil {
			t.Fatalf("Update() failed: %v", err)
		}
	}
	if h.State().Scene != "gameplay" {
		t.Fatalf("scene = %q, expected gameplay", h.State().Scene)
	}
	if len(h.frame.Sprites) == 0 {
		t.Error("gameplay should queue sprites")
	}
}
