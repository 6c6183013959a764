package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	var s State
	assert.False(t, s.Down(Jump))

	s.Set(Jump, true)
	s.Set(Forward, true)
	assert.True(t, s.Down(Jump))
	assert.True(t, s.Down(Forward))
	assert.False(t, s.Down(Back))

	s.Set(Action(99), true)
	assert.False(t, s.Down(Action(99)))

	s.Clear()
	assert.False(t, s.Down(Jump))
}

func TestThrowCharge(t *testing.T) {
	var c ThrowCharge
	start := time.Unix(100, 0)

	_, ok := c.Release(start)
	assert.False(t, ok, "release without press")

	c.Press(start)
	c.Press(start.Add(time.Second))
	assert.True(t, c.Charging())
	assert.Equal(t, 200*time.Millisecond, c.Held(start.Add(200*time.Millisecond)))

	held, ok := c.Release(start.Add(1500 * time.Millisecond))
	assert.True(t, ok)
	assert.Equal(t, 1500*time.Millisecond, held)
	assert.False(t, c.Charging())

	_, ok = c.Release(start.Add(2 * time.Second))
	assert.False(t, ok)
	assert.Zero(t, c.Held(start.Add(3*time.Second)))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "throw", Throw.String())
	assert.Equal(t, "unknown", Action(-1).String())
}
