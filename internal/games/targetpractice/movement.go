package targetpractice

import "github.com/vovakirdan/target-practice/internal/core"

// MovePlayer applies one frame of directional input and keeps the player on
// screen. Left wins over right and up wins over down; the two axes combine
// for diagonal movement. Returns whether any direction was applied.
func MovePlayer(p *Player, in core.InputFrame, bounds core.Rect) bool {
	moved := false

	switch {
	case in.Has(core.ActionLeft):
		p.X -= p.Speed
		moved = true
	case in.Has(core.ActionRight):
		p.X += p.Speed
		moved = true
	}

	switch {
	case in.Has(core.ActionUp):
		p.Y += p.Speed
		moved = true
	case in.Has(core.ActionDown):
		p.Y -= p.Speed
		moved = true
	}

	p.Rect = p.Rect.ClampWithin(bounds)
	return moved
}

// MoveClouds drifts every cloud right. Cloud i gets a bonus of i/len(clouds)
// on top of its own speed so the layer doesn't move as one block. A cloud
// whose left edge has passed screenW starts over at x=0.
func MoveClouds(clouds []Cloud, screenW int) {
	n := float64(len(clouds))
	for i := range clouds {
		c := &clouds[i]
		if c.X > float64(screenW) {
			c.X = 0
		}
		c.X += c.Speed + float64(i)/n
	}
}

// AdvanceFireballs moves live fireballs right by speed and marks the ones
// whose left edge has passed screenW as dead.
func AdvanceFireballs(fireballs []Fireball, speed, screenW int) {
	for i := range fireballs {
		fb := &fireballs[i]
		if fb.Dead {
			continue
		}
		fb.X += speed
		if fb.X > screenW {
			fb.Dead = true
		}
	}
}
