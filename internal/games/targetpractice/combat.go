package targetpractice

import "github.com/vovakirdan/target-practice/internal/core"

// ResolveHits checks every live fireball against every live target.
// On overlap both are marked dead, a hit sound is queued and spawn is
// called for a replacement target, which is appended to targets.
//
// A fireball scores at most once per frame: it stops checking as soon as it
// hits. Replacement targets only take part from the next frame on.
// Returns the updated targets slice and the number of hits.
func ResolveHits(fireballs []Fireball, targets []Target, spawn func() Target, frame *core.Frame) ([]Target, int) {
	hits := 0
	live := len(targets)

	for i := range fireballs {
		fb := &fireballs[i]
		if fb.Dead {
			continue
		}

		for j := 0; j < live; j++ {
			if targets[j].Dead || !fb.Intersects(targets[j].Rect) {
				continue
			}

			targets[j].Dead = true
			fb.Dead = true
			hits++
			frame.PlaySound(SoundHit)
			targets = append(targets, spawn())
			break
		}
	}

	return targets, hits
}

// SweepFireballs drops dead fireballs, keeping the order of the rest.
func SweepFireballs(fireballs []Fireball) []Fireball {
	alive := fireballs[:0]
	for _, fb := range fireballs {
		if !fb.Dead {
			alive = append(alive, fb)
		}
	}
	return alive
}

// SweepTargets drops dead targets, keeping the order of the rest.
func SweepTargets(targets []Target) []Target {
	alive := targets[:0]
	for _, t := range targets {
		if !t.Dead {
			alive = append(alive, t)
		}
	}
	return alive
}
