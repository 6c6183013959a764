package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ideasenb/PROYECTO-FINAL/internal/input"
)

var keyBindings = map[input.Action]int32{
	input.Forward: rl.KeyW,
	input.Back:    rl.KeyS,
	input.Left:    rl.KeyA,
	input.Right:   rl.KeyD,
	input.Jump:    rl.KeySpace,
	input.Pause:   rl.KeyEscape,
}

// pollInput copies device state into the world's input.
func (g *Game) pollInput() {
	w := g.World

	if rl.IsKeyPressed(keyBindings[input.Pause]) {
		if w.Paused() {
			g.resume()
		} else {
			g.pause()
		}
	}
	if w.Paused() {
		return
	}

	for action, key := range keyBindings {
		w.Input.Set(action, rl.IsKeyDown(key))
	}
	w.Input.Set(input.Throw, rl.IsMouseButtonDown(rl.MouseLeftButton))

	delta := rl.GetMouseDelta()
	w.Facing.Look(float64(delta.X), float64(delta.Y))

	now := time.Now()
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		g.charge.Press(now)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		if held, ok := g.charge.Release(now); ok {
			w.Throw(held)
		}
	}
}
