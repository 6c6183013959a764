// Package input holds the logical control state the simulation reads each
// frame. The host fills it from whatever devices it has.
package input

import "time"

// Action is a logical control.
type Action int

const (
	Forward Action = iota
	Back
	Left
	Right
	Jump
	Throw
	Pause
	actionCount
)

func (a Action) String() string {
	switch a {
	case Forward:
		return "forward"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	case Jump:
		return "jump"
	case Throw:
		return "throw"
	case Pause:
		return "pause"
	default:
		return "unknown"
	}
}

// State maps every action to whether it is held.
type State struct {
	down [actionCount]bool
}

// Set records whether an action is held. Unknown actions are ignored.
func (s *State) Set(a Action, down bool) {
	if a < 0 || a >= actionCount {
		return
	}
	s.down[a] = down
}

// Down reports whether an action is held.
func (s *State) Down(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return s.down[a]
}

// Clear releases every action.
func (s *State) Clear() {
	s.down = [actionCount]bool{}
}

// ThrowCharge measures how long the throw button was held.
type ThrowCharge struct {
	pressedAt time.Time
	held      bool
}

// Press starts charging. Repeated presses keep the first press time.
func (c *ThrowCharge) Press(now time.Time) {
	if c.held {
		return
	}
	c.pressedAt = now
	c.held = true
}

// Release stops charging and returns the held duration. ok is false when
// there was no matching press.
func (c *ThrowCharge) Release(now time.Time) (held time.Duration, ok bool) {
	if !c.held {
		return 0, false
	}
	c.held = false
	held = now.Sub(c.pressedAt)
	if held < 0 {
		held = 0
	}
	return held, true
}

// Held returns how long the button has been held so far, or zero.
func (c *ThrowCharge) Held(now time.Time) time.Duration {
	if !c.held || now.Before(c.pressedAt) {
		return 0
	}
	return now.Sub(c.pressedAt)
}

// Charging reports whether the button is currently held.
func (c *ThrowCharge) Charging() bool {
	return c.held
}
