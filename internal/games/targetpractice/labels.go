package targetpractice

import (
	"fmt"

	"github.com/vovakirdan/target-practice/internal/core"
)

// Label size tiers
const (
	SizeBody     = 0
	SizeSmall    = 2
	SizeMedium   = 3
	SizeLarge    = 4
	SizeTitle    = 6
	SizeHeadline = 10
)

const labelMargin = 40

func titleLabels(env Env) []core.Label {
	return []core.Label{
		{X: labelMargin, Y: env.Height - 40, Text: "Target Practice", Size: SizeTitle},
		{X: labelMargin, Y: env.Height - 88, Text: "Hit the targets!"},
		{X: labelMargin, Y: 120, Text: "Arrows or WASD to move | Z or J to fire | gamepad works too"},
		{X: labelMargin, Y: 80, Text: "Fire to start", Size: SizeSmall},
	}
}

func gameplayLabels(s Session, env Env) []core.Label {
	return []core.Label{
		{X: labelMargin, Y: env.Height - 40, Text: fmt.Sprintf("Score: %d", s.Score), Size: SizeLarge},
		{
			X:     env.Width - labelMargin,
			Y:     env.Height - 40,
			Text:  fmt.Sprintf("Time Left: %d", secondsLeft(s.Timer, env.TickRate)),
			Size:  SizeSmall,
			Align: core.AlignRight,
		},
	}
}

func gameOverLabels(s Session, env Env) []core.Label {
	return []core.Label{
		{X: labelMargin, Y: env.Height - 40, Text: "Game Over!", Size: SizeHeadline},
		{X: labelMargin, Y: env.Height - 90, Text: fmt.Sprintf("Score: %d", s.Score), Size: SizeLarge},
		{X: 260, Y: env.Height - 90, Text: verdict(s), Size: SizeMedium},
		{X: labelMargin, Y: env.Height - 132, Text: "Fire to restart", Size: SizeSmall},
	}
}

// verdict compares the session with the record read on entering game over.
func verdict(s Session) string {
	if s.Score > s.Best.Score {
		return "New high-score!"
	}
	if s.Best.AchievedAt == "" {
		return fmt.Sprintf("Score to beat: %d", s.Best.Score)
	}
	return fmt.Sprintf("Score to beat: %d (%s)", s.Best.Score, s.Best.AchievedAt)
}

func secondsLeft(timer, tickRate int) int {
	if tickRate <= 0 || timer < 0 {
		return 0
	}
	return timer / tickRate
}
