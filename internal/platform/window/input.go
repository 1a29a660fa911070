package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/target-practice/internal/core"
)

// stickDeadZone is how far the left stick must travel before it counts as held.
const stickDeadZone = 0.5

// padState is the directional and fire state of one gamepad for a tick.
type padState struct {
	Left, Right, Up, Down bool
	Fire                  bool
}

// keyBindings maps held directions to keyboard keys.
var keyBindings = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
}

var fireKeys = []ebiten.Key{ebiten.KeyZ, ebiten.KeyJ}

// buildInput turns raw key and gamepad state into an input frame.
// held reports keys that are down, pressed reports keys that went down this tick.
// quit is true when Escape was pressed.
func buildInput(held, pressed func(ebiten.Key) bool, pads []padState) (in core.InputFrame, quit bool) {
	in = core.NewInputFrame()

	for _, b := range keyBindings {
		for _, k := range b.keys {
			if held(k) {
				in.Set(b.action)
				break
			}
		}
	}
	for _, k := range fireKeys {
		if pressed(k) {
			in.Set(core.ActionFire)
		}
	}

	for _, p := range pads {
		if p.Left {
			in.Set(core.ActionLeft)
		}
		if p.Right {
			in.Set(core.ActionRight)
		}
		if p.Up {
			in.Set(core.ActionUp)
		}
		if p.Down {
			in.Set(core.ActionDown)
		}
		if p.Fire {
			in.Set(core.ActionFire)
		}
	}

	return in, pressed(ebiten.KeyEscape)
}

// stickState converts left stick axes into held directions.
// Screen axes grow downward, so a negative vertical value is up.
func stickState(x, y float64) padState {
	return padState{
		Left:  x <= -stickDeadZone,
		Right: x >= stickDeadZone,
		Up:    y <= -stickDeadZone,
		Down:  y >= stickDeadZone,
	}
}

// readPads polls every connected gamepad with a standard layout.
func readPads(ids []ebiten.GamepadID) []padState {
	pads := make([]padState, 0, len(ids))
	for _, id := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		p := stickState(
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		)
		p.Left = p.Left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		p.Right = p.Right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		p.Up = p.Up || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop)
		p.Down = p.Down || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom)
		p.Fire = inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		pads = append(pads, p)
	}
	return pads
}

// pollInput reads the live keyboard and gamepads.
func pollInput() (core.InputFrame, bool) {
	return buildInput(
		ebiten.IsKeyPressed,
		inpututil.IsKeyJustPressed,
		readPads(ebiten.AppendGamepadIDs(nil)),
	)
}
