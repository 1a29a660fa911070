package targetpractice

import (
	"testing"
	"time"

	"github.com/vovakirdan/target-practice/internal/core"
	"github.com/vovakirdan/target-practice/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func scriptedInput(i int) core.InputFrame {
	in := core.NewInputFrame()
	if i%7 == 0 {
		in.Set(core.ActionFire)
	}
	switch (i / 40) % 4 {
	case 0:
		in.Set(core.ActionUp)
	case 1:
		in.Set(core.ActionRight)
	case 2:
		in.Set(core.ActionDown)
	case 3:
		in.Set(core.ActionLeft)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must give the same session
	clock := func() time.Time { return testNow }

	run := func() *Game {
		g := NewWithStore(&memStore{}, clock)
		g.Reset(testConfig(12345))
		for i := 0; i < 1200; i++ {
			g.Step(scriptedInput(i))
		}
		return g
	}

	g1, g2 := run(), run()
	s1, s2 := g1.Session(), g2.Session()

	if s1.Score != s2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", s1.Score, s2.Score)
	}
	if s1.Timer != s2.Timer {
		t.Errorf("Determinism failed: timers differ. Run1=%d, Run2=%d", s1.Timer, s2.Timer)
	}
	for i := range s1.Targets {
		if s1.Targets[i].Rect != s2.Targets[i].Rect {
			t.Errorf("Determinism failed: target %d differs. Run1=%+v, Run2=%+v", i, s1.Targets[i].Rect, s2.Targets[i].Rect)
		}
	}
	if s1.Player.Rect != s2.Player.Rect {
		t.Errorf("Determinism failed: player differs. Run1=%+v, Run2=%+v", s1.Player.Rect, s2.Player.Rect)
	}
}

func TestGameReset(t *testing.T) {
	g := NewWithStore(nil, nil)
	g.Reset(testConfig(42))

	for i := 0; i < 200; i++ {
		g.Step(scriptedInput(i))
	}
	if g.State().Scene != "gameplay" {
		t.Fatalf("expected gameplay after scripted start, got %q", g.State().Scene)
	}

	g.Reset(testConfig(42))

	s := g.Session()
	if s.Scene != SceneTitle {
		t.Errorf("scene after reset = %v, expected title", s.Scene)
	}
	if s.Score != 0 || s.Tick != 0 || s.Player != nil || s.MusicStarted {
		t.Errorf("session not cleared: %+v", s)
	}
	if g.State().GameOver {
		t.Error("GameOver should be false after reset")
	}
}

func TestGameFullCycleRestart(t *testing.T) {
	store := &memStore{}
	g := NewWithStore(store, func() time.Time { return testNow })
	g.Reset(testConfig(9))

	g.Step(input(core.ActionFire))

	var res core.StepResult
	for i := 0; i < SessionSeconds*60+RestartCooldown+10; i++ {
		res = g.Step(input(core.ActionFire))
		if res.Restart {
			break
		}
	}

	if !res.Restart {
		t.Fatal("expected a restart request after the game over cooldown")
	}
	if g.Frame().Labels == nil {
		t.Error("Frame() should return the last step's output")
	}
	if store.rec.Score != g.State().Score {
		t.Errorf("stored record %d, session score %d", store.rec.Score, g.State().Score)
	}

	g.Reset(testConfig(10))
	if g.State().Scene != "title" {
		t.Errorf("scene after restart = %q, expected title", g.State().Scene)
	}
}

func TestGameStepWithoutReset(t *testing.T) {
	g := NewWithStore(nil, nil)

	res := g.Step(core.NewInputFrame())
	if res.State.Scene != "title" {
		t.Errorf("scene = %q, expected title", res.State.Scene)
	}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("%q not registered", GameID)
	}

	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != GameID || g.Title() != "Target Practice" {
		t.Errorf("unexpected game %q / %q", g.ID(), g.Title())
	}
}
