package targetpractice

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/target-practice/internal/core"
)

func TestMovePlayerStaysOnScreen(t *testing.T) {
	bounds := core.NewRect(0, 0, 1280, 720)
	rng := rand.New(rand.NewSource(99))
	directions := []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown}

	p := NewPlayer()
	for frame := 0; frame < 10000; frame++ {
		in := core.NewInputFrame()
		for _, d := range directions {
			if rng.Intn(3) == 0 {
				in.Set(d)
			}
		}
		MovePlayer(p, in, bounds)

		if !p.Within(bounds) {
			t.Fatalf("frame %d: player %+v left the screen", frame, p.Rect)
		}
	}
}

func TestMovePlayerClampsAtEdges(t *testing.T) {
	bounds := core.NewRect(0, 0, 1280, 720)

	tests := []struct {
		name     string
		start    core.Rect
		action   core.Action
		expected core.Rect
	}{
		{"left edge", core.NewRect(5, 300, 100, 80), core.ActionLeft, core.NewRect(0, 300, 100, 80)},
		{"right edge", core.NewRect(1175, 300, 100, 80), core.ActionRight, core.NewRect(1180, 300, 100, 80)},
		{"bottom edge", core.NewRect(500, 3, 100, 80), core.ActionDown, core.NewRect(500, 0, 100, 80)},
		{"top edge", core.NewRect(500, 635, 100, 80), core.ActionUp, core.NewRect(500, 640, 100, 80)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer()
			p.Rect = tc.start
			if !MovePlayer(p, input(tc.action), bounds) {
				t.Error("MovePlayer() should report movement")
			}
			if p.Rect != tc.expected {
				t.Errorf("player rect = %+v, expected %+v", p.Rect, tc.expected)
			}
		})
	}
}

func TestMovePlayerPrecedence(t *testing.T) {
	bounds := core.NewRect(0, 0, 1280, 720)

	tests := []struct {
		name   string
		in     core.InputFrame
		dx, dy int
	}{
		{"left beats right", input(core.ActionLeft, core.ActionRight), -PlayerSpeed, 0},
		{"up beats down", input(core.ActionUp, core.ActionDown), 0, PlayerSpeed},
		{"diagonal", input(core.ActionRight, core.ActionDown), PlayerSpeed, -PlayerSpeed},
		{"fire only", input(core.ActionFire), 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer()
			moved := MovePlayer(p, tc.in, bounds)

			if p.X != PlayerStartX+tc.dx || p.Y != PlayerStartY+tc.dy {
				t.Errorf("player at (%d, %d), expected (%d, %d)", p.X, p.Y, PlayerStartX+tc.dx, PlayerStartY+tc.dy)
			}
			if moved != (tc.dx != 0 || tc.dy != 0) {
				t.Errorf("MovePlayer() moved = %v", moved)
			}
		})
	}
}

func TestMoveCloudsParallax(t *testing.T) {
	clouds := make([]Cloud, CloudCount)
	for i := range clouds {
		clouds[i] = Cloud{X: 100, Speed: CloudSpeed, W: CloudWidth, H: CloudHeight}
	}

	MoveClouds(clouds, 1280)

	if clouds[0].X != 101 {
		t.Errorf("first cloud x = %f, expected 101", clouds[0].X)
	}
	if clouds[10].X != 101.5 {
		t.Errorf("cloud 10 x = %f, expected 101.5", clouds[10].X)
	}
	for i := 1; i < len(clouds); i++ {
		if clouds[i].X <= clouds[i-1].X {
			t.Fatalf("cloud %d should drift faster than cloud %d", i, i-1)
		}
	}
}

func TestMoveCloudsWrap(t *testing.T) {
	clouds := []Cloud{
		{X: 1281, Speed: CloudSpeed},
		{X: 1280, Speed: CloudSpeed},
	}

	MoveClouds(clouds, 1280)

	if clouds[0].X != 1 {
		t.Errorf("cloud past the edge should restart at 0 and move, got x=%f", clouds[0].X)
	}
	if clouds[1].X != 1281.5 {
		t.Errorf("cloud at the edge should keep drifting, got x=%f", clouds[1].X)
	}
}

func TestFireballRemovedAfterLeavingScreen(t *testing.T) {
	const (
		screenW = 1280
		startX  = 100
		speed   = 14
	)
	fireballs := []Fireball{{Rect: core.NewRect(startX, 300, FireballSize, FireballSize)}}

	frames := 0
	for len(fireballs) > 0 {
		AdvanceFireballs(fireballs, speed, screenW)
		fireballs = SweepFireballs(fireballs)
		frames++
		if frames > 1000 {
			t.Fatal("fireball never left the screen")
		}
	}

	limit := int(math.Ceil(float64(screenW-startX) / speed))
	if frames > limit {
		t.Errorf("fireball removed after %d frames, expected at most %d", frames, limit)
	}
}

func TestAdvanceFireballsSkipsDead(t *testing.T) {
	fireballs := []Fireball{
		{Rect: core.NewRect(10, 0, 32, 32), Dead: true},
		{Rect: core.NewRect(10, 0, 32, 32)},
	}

	AdvanceFireballs(fireballs, 14, 1280)

	if fireballs[0].X != 10 {
		t.Error("dead fireball should not move")
	}
	if fireballs[1].X != 24 {
		t.Errorf("live fireball x = %d, expected 24", fireballs[1].X)
	}
	if fireballs[1].Y != 0 {
		t.Error("fireballs should not move vertically")
	}
}
