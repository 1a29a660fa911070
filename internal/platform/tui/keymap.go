package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/target-practice/internal/core"
)

// DefaultHoldTicks is how long a direction stays held after its key press.
// Terminals only report presses and auto-repeats, never releases, so a
// held key shows up as a stream of presses this window bridges.
const DefaultHoldTicks = 9

// KeyMapper translates Bubble Tea key messages to game actions.
// Directions are held for a few ticks after each press; fire is edge
// triggered and only lasts for the tick it arrives in.
type KeyMapper struct {
	holdTicks int
	held      map[core.Action]int // Ticks left per held direction
}

// NewKeyMapper creates a key mapper with the default hold window.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWithHold(DefaultHoldTicks)
}

// NewKeyMapperWithHold creates a key mapper holding directions for ticks.
func NewKeyMapperWithHold(ticks int) *KeyMapper {
	if ticks < 1 {
		ticks = 1
	}
	return &KeyMapper{
		holdTicks: ticks,
		held:      make(map[core.Action]int),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case "up", "w":
		return core.ActionUp, false
	case "down", "s":
		return core.ActionDown, false
	case "z", "j", " ", "enter":
		return core.ActionFire, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message and starts
// the hold window for directions. Pressing a direction releases its
// opposite. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action == core.ActionNone || isQuit {
		return isQuit
	}

	frame.Set(action)
	if opposite, ok := opposites[action]; ok {
		delete(km.held, opposite)
		km.held[action] = km.holdTicks
	}
	return false
}

// Tick adds the held directions to frame and ages them by one tick.
func (km *KeyMapper) Tick(frame *core.InputFrame) {
	for action, left := range km.held {
		frame.Set(action)
		if left <= 1 {
			delete(km.held, action)
		} else {
			km.held[action] = left - 1
		}
	}
}

// Release drops every held direction.
func (km *KeyMapper) Release() {
	clear(km.held)
}

var opposites = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}
