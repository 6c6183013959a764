package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/ideasenb/PROYECTO-FINAL/internal/physics"
)

// LookScale is how many mouse pixels turn the view by one radian.
const LookScale = 500.0

// maxPitch keeps the view from flipping over the vertical.
const maxPitch = math.Pi/2 - 1e-3

// Facing is the player's view orientation in radians, applied yaw first
// (about +Y) then pitch. Yaw 0 looks down -Z.
type Facing struct {
	Pitch float64
	Yaw   float64
}

// Look turns the view by a mouse delta in pixels.
func (f *Facing) Look(dx, dy float64) {
	f.Yaw -= dx / LookScale
	f.Pitch -= dy / LookScale

	if f.Pitch > maxPitch {
		f.Pitch = maxPitch
	}
	if f.Pitch < -maxPitch {
		f.Pitch = -maxPitch
	}
}

// Set replaces the orientation.
func (f *Facing) Set(pitch, yaw float64) {
	f.Pitch = pitch
	f.Yaw = yaw
}

// Reset looks straight down -Z.
func (f *Facing) Reset() {
	f.Set(0, 0)
}

// Direction is the unit aim vector.
func (f Facing) Direction() mgl64.Vec3 {
	sy, cy := math.Sincos(f.Yaw)
	sp, cp := math.Sincos(f.Pitch)
	return mgl64.Vec3{-sy * cp, sp, -cy * cp}
}

// Forward is the aim vector flattened onto the ground plane.
func (f Facing) Forward() mgl64.Vec3 {
	return physics.Horizontal(f.Direction())
}

// Side points to the right of Forward.
func (f Facing) Side() mgl64.Vec3 {
	return f.Forward().Cross(physics.Up)
}

// Target is the point one unit in front of eye, for a look-at camera.
func (f Facing) Target(eye mgl64.Vec3) mgl64.Vec3 {
	return eye.Add(f.Direction())
}
