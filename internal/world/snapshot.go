package world

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/ideasenb/PROYECTO-FINAL/internal/camera"
	"github.com/ideasenb/PROYECTO-FINAL/internal/physics"
)

// Snapshot is what a renderer needs for one frame.
type Snapshot struct {
	Eye       mgl64.Vec3
	Facing    camera.Facing
	Grounded  bool
	Velocity  mgl64.Vec3
	Spheres   []physics.Sphere
	TargetHit bool
	Paused    bool
	Step      uint64
}

func (w *World) Snapshot() Snapshot {
	live := w.Projectiles.Live()
	spheres := make([]physics.Sphere, len(live))
	for i, b := range live {
		spheres[i] = b.Sphere
	}

	return Snapshot{
		Eye:       w.Player.Eye(),
		Facing:    w.Facing,
		Grounded:  w.Player.Grounded,
		Velocity:  w.Player.Velocity,
		Spheres:   spheres,
		TargetHit: w.Target.Hit(),
		Paused:    w.paused,
		Step:      w.steps,
	}
}
