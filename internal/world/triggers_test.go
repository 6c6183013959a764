package world

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideasenb/PROYECTO-FINAL/internal/config"
)

func TestTrigger_RepositionIsIdempotent(t *testing.T) {
	cfg := emptyLevel()
	cfg.Triggers = []config.TriggerConfig{{
		Name:        "loop",
		Min:         mgl64.Vec3{-1, -1, -1},
		Max:         mgl64.Vec3{1, 2, 1},
		Destination: mgl64.Vec3{0, 0, 0},
		Yaw:         0.5,
	}}
	w := New(cfg, nil, nil)

	fired := 0
	w.OnTeleport.AddListener(func(TeleportInfo) { fired++ })

	w.Step(0.05)
	assert.Equal(t, mgl64.Vec3{0, 0.35, 0}, w.Player.Collider.Start)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, w.Player.Collider.End)

	for range 10 {
		w.Step(0.05)
	}
	assert.Equal(t, mgl64.Vec3{0, 0.35, 0}, w.Player.Collider.Start, "no accumulated offset")
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, w.Player.Collider.End)
	assert.Equal(t, 55, fired, "fires every substep while inside")
	assert.Equal(t, 0.5, w.Facing.Yaw)
	assert.Less(t, w.Player.Velocity.Y(), 0.0, "velocity is not reset")
}

func TestTrigger_OneShotFiresOnce(t *testing.T) {
	cfg := emptyLevel()
	cfg.Triggers = []config.TriggerConfig{{
		Name:        "once",
		Min:         mgl64.Vec3{-1, -1, -1},
		Max:         mgl64.Vec3{1, 2, 1},
		Destination: mgl64.Vec3{10, 0, 10},
		OneShot:     true,
	}}
	w := New(cfg, nil, nil)

	var infos []TeleportInfo
	w.OnTeleport.AddListener(func(i TeleportInfo) { infos = append(infos, i) })

	w.Step(0.01)
	require.Len(t, infos, 1)
	assert.Equal(t, "once", infos[0].Trigger)
	assert.Equal(t, mgl64.Vec3{10, 1, 10}, infos[0].To)
	assert.True(t, w.Triggers[0].Fired())

	w.Player.placeAt(mgl64.Vec3{})
	w.Step(0.01)
	assert.Len(t, infos, 1)
	assert.InDelta(t, 0, w.Player.Collider.Start.X(), 1e-9)
}

func TestTrigger_DefaultTable(t *testing.T) {
	tests := []struct {
		name  string
		stand mgl64.Vec3
		eye   mgl64.Vec3
		yaw   float64
	}{
		{"1to2", mgl64.Vec3{12, 0, -20}, mgl64.Vec3{-4, 1, -45}, math.Pi / 2},
		{"2to2", mgl64.Vec3{-1, 0, -57}, mgl64.Vec3{28.5, 1, -53}, -math.Pi},
		{"3to2", mgl64.Vec3{14, 0, -55}, mgl64.Vec3{0, 36, 0}, 0},
		{"4to2", mgl64.Vec3{4, 30.5, 4}, mgl64.Vec3{0, 1, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(config.Default(), nil, nil)
			w.Facing.Set(0.4, 2)
			w.Player.placeAt(tt.stand)

			var got []string
			w.OnTeleport.AddListener(func(i TeleportInfo) { got = append(got, i.Trigger) })

			w.checkTriggers()

			assert.Equal(t, []string{tt.name}, got)
			assert.Equal(t, tt.eye, w.Player.Eye())
			assert.Equal(t, 0.35, w.Player.Collider.Radius)
			assert.Equal(t, 0.0, w.Facing.Pitch)
			assert.Equal(t, tt.yaw, w.Facing.Yaw)
		})
	}
}

func TestOutOfBounds(t *testing.T) {
	cfg := emptyLevel()
	cfg.Physics.Substeps = 1
	w := New(cfg, nil, nil)

	respawned := 0
	w.OnRespawn.AddListener(func() { respawned++ })

	w.Facing.Set(0.3, 1.2)
	w.Player.Collider.Translate(mgl64.Vec3{0, -30, 0})
	w.Player.Velocity = mgl64.Vec3{0, -20, 0}

	w.Step(0.01)

	assert.Equal(t, mgl64.Vec3{0, 0.35, 0}, w.Player.Collider.Start)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, w.Player.Collider.End)
	assert.Equal(t, 0.35, w.Player.Collider.Radius)
	assert.Equal(t, 0.0, w.Facing.Pitch)
	assert.Equal(t, 0.0, w.Facing.Yaw)
	assert.Less(t, w.Player.Velocity.Y(), -20.0, "velocity survives respawn")
	assert.Equal(t, 1, respawned)
}

func TestTarget_FiresOnce(t *testing.T) {
	cfg := emptyLevel()
	cfg.Target.Center = mgl64.Vec3{5, 0.25, 0}
	w := New(cfg, nil, nil)

	var wins []WinInfo
	w.OnWin.AddListener(func(i WinInfo) { wins = append(wins, i) })

	w.Projectiles.Spawn(mgl64.Vec3{5, 0.6, 0}, mgl64.Vec3{})
	for range 20 {
		w.Step(0.05)
	}
	w.Projectiles.Spawn(mgl64.Vec3{5, 0.6, 0}, mgl64.Vec3{})
	for range 20 {
		w.Step(0.05)
	}

	require.Len(t, wins, 1)
	assert.Equal(t, 0, wins[0].Slot)
	assert.Equal(t, w.ID, wins[0].Session)
	assert.Equal(t, cfg.Target.RedirectURL, wins[0].RedirectURL)
	assert.True(t, w.Target.Hit())
	assert.True(t, w.Snapshot().TargetHit)
}
