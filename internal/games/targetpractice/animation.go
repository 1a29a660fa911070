package targetpractice

// Animation timing in ticks per frame
const (
	AnimationFrames = 6
	IdleHold        = 8
	MovingHold      = 4
)

// AnimatePlayer picks the dragon's sprite for this tick.
//
// Idle, the frame follows the global tick count. While moving, the cycle
// runs twice as fast and continues from whatever frame is on screen, so
// starting to move never makes the sprite jump.
func AnimatePlayer(p *Player, tick int, moving bool) {
	if moving {
		p.hold++
		if p.hold >= MovingHold {
			p.hold = 0
			p.Frame = (p.Frame + 1) % AnimationFrames
		}
	} else {
		p.hold = 0
		p.Frame = (tick / IdleHold) % AnimationFrames
	}
	p.Path = DragonPath(p.Frame)
}
