package targetpractice

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/target-practice/internal/core"
)

func TestSpawnTargetWithinBand(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	screen := core.NewRect(0, 0, 1280, 720)

	for i := 0; i < 2000; i++ {
		tg := SpawnTarget(rng, 1280, 720)

		if tg.X < 768 {
			t.Fatalf("target x=%d left of the 60%% band", tg.X)
		}
		if tg.X > 1280-TargetSize*2 {
			t.Fatalf("target x=%d too close to the right edge", tg.X)
		}
		if tg.Y < TargetSize || tg.Y > 720-TargetSize {
			t.Fatalf("target y=%d outside the vertical margin", tg.Y)
		}
		if !tg.Within(screen) {
			t.Fatalf("target %+v is off screen", tg.Rect)
		}
		if tg.W != TargetSize || tg.H != TargetSize || tg.Path != TargetPath || tg.Dead {
			t.Fatalf("unexpected target %+v", tg)
		}
	}
}

func TestSpawnCloudWithinBand(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 2000; i++ {
		c := SpawnCloud(rng, 1280, 720)

		if c.X < 0 || c.X >= 512 {
			t.Fatalf("cloud x=%f outside the left 40%%", c.X)
		}
		if c.Y < CloudHeight || c.Y > 720-CloudHeight {
			t.Fatalf("cloud y=%d outside the vertical margin", c.Y)
		}
		if c.Speed != CloudSpeed || c.W != CloudWidth || c.H != CloudHeight {
			t.Fatalf("unexpected cloud %+v", c)
		}
	}
}

func TestSpawnOnTinyScreen(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("spawning on a tiny screen panicked: %v", r)
		}
	}()

	SpawnTarget(rng, 10, 10)
	SpawnCloud(rng, 1, 1)
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer()

	if p.Rect != core.NewRect(120, 280, 100, 80) {
		t.Errorf("player rect = %+v", p.Rect)
	}
	if p.Speed != PlayerSpeed {
		t.Errorf("player speed = %d", p.Speed)
	}
	if p.Path != "sprites/misc/dragon-0.png" {
		t.Errorf("player path = %q", p.Path)
	}
}

func TestNewFireballOffset(t *testing.T) {
	p := NewPlayer()
	fb := NewFireball(p)

	// 120 + 100 - 12, 280 + 10
	if fb.Rect != core.NewRect(208, 290, 32, 32) {
		t.Errorf("fireball rect = %+v", fb.Rect)
	}
	if fb.Path != FireballPath || fb.Dead {
		t.Errorf("unexpected fireball %+v", fb)
	}
}
