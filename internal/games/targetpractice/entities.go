package targetpractice

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/target-practice/internal/core"
)

// Player constants - tuned for a 1280x720 world at 60 FPS
const (
	PlayerStartX = 120
	PlayerStartY = 280
	PlayerWidth  = 100
	PlayerHeight = 80
	PlayerSpeed  = 12
)

// Fireball constants. Fireballs leave from just inside the dragon's snout.
const (
	FireballSize       = 32
	FireballOffsetX    = -12 // From the player's right edge
	FireballOffsetY    = 10  // From the player's bottom edge
	FireballBonusSpeed = 2   // Added to the player's speed
)

// Target and cloud constants
const (
	TargetSize   = 64
	TargetCount  = 3
	CloudWidth   = 64
	CloudHeight  = 39
	CloudCount   = 20
	CloudSpeed   = 1.0
	TargetBandLo = 0.6 // Targets spawn in the right 60%..100% of the width
	CloudBandHi  = 0.4 // Clouds spawn in the left 40% of the width
)

// Asset paths
const (
	BackgroundPath   = "sprites/blue-sky.png"
	FireballPath     = "sprites/fireball.png"
	TargetPath       = "sprites/target.png"
	CloudPath        = "sprites/cloud.png"
	dragonPathFormat = "sprites/misc/dragon-%d.png"

	MusicPath     = "sounds/flight.ogg"
	SoundStart    = "sounds/game-over.wav"
	SoundTimeUp   = "sounds/game-over.wav"
	SoundFireball = "sounds/fireball.wav"
	SoundHit      = "sounds/target.wav"
)

// DragonPath returns the sprite path for animation frame n.
func DragonPath(n int) string {
	return fmt.Sprintf(dragonPathFormat, n)
}

// Player is the dragon controlled by the user.
type Player struct {
	core.Rect
	Speed int
	Frame int    // Current animation frame
	Path  string // Sprite for Frame
	hold  int    // Ticks the current frame has been shown while moving
}

// Fireball is a shot travelling right.
type Fireball struct {
	core.Rect
	Path string
	Dead bool // Remove at end of frame
}

// Target is something to shoot.
type Target struct {
	core.Rect
	Path string
	Dead bool // Remove at end of frame
}

// Cloud is background decoration drifting right.
// X is fractional so per-cloud speed bonuses below 1 still accumulate.
type Cloud struct {
	X     float64
	Y     int
	W, H  int
	Speed float64
	Path  string
}

// Rect returns the cloud's bounding box.
func (c Cloud) Rect() core.Rect {
	return core.NewRect(int(c.X), c.Y, c.W, c.H)
}

// NewPlayer creates the dragon at its starting position.
func NewPlayer() *Player {
	return &Player{
		Rect:  core.NewRect(PlayerStartX, PlayerStartY, PlayerWidth, PlayerHeight),
		Speed: PlayerSpeed,
		Path:  DragonPath(0),
	}
}

// NewFireball creates a shot leaving the player's snout.
func NewFireball(p *Player) Fireball {
	return Fireball{
		Rect: core.NewRect(
			p.Right()+FireballOffsetX,
			p.Y+FireballOffsetY,
			FireballSize,
			FireballSize,
		),
		Path: FireballPath,
	}
}

// SpawnTarget places a target in the right-hand band of the screen.
// X never exceeds screenW minus twice the target size, and Y keeps a
// margin of one target height from the top and bottom edges.
func SpawnTarget(rng *rand.Rand, screenW, screenH int) Target {
	bandStart := int(float64(screenW) * TargetBandLo)
	x := randN(rng, screenW-bandStart) + bandStart
	x = core.Min(x, screenW-TargetSize*2)
	y := randN(rng, screenH-TargetSize*2) + TargetSize

	return Target{
		Rect: core.NewRect(x, y, TargetSize, TargetSize),
		Path: TargetPath,
	}
}

// SpawnCloud places a cloud in the left-hand band of the screen.
func SpawnCloud(rng *rand.Rand, screenW, screenH int) Cloud {
	return Cloud{
		X:     float64(randN(rng, int(float64(screenW)*CloudBandHi))),
		Y:     randN(rng, screenH-CloudHeight*2) + CloudHeight,
		W:     CloudWidth,
		H:     CloudHeight,
		Speed: CloudSpeed,
		Path:  CloudPath,
	}
}

// randN is rng.Intn that tolerates a non-positive bound on tiny screens.
func randN(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.Intn(n)
}
