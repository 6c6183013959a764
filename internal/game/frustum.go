package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Clip distances for the culling projection.
const (
	nearPlane = 0.1
	farPlane  = 1000.0
)

// frustum holds the six view planes, normals pointing inward.
type frustum struct {
	planes [6]plane // left, right, bottom, top, near, far
}

// plane is ax + by + cz + d = 0
type plane struct {
	normal   rl.Vector3
	distance float32
}

// extractFrustum uses the Gribb/Hartmann method on view*projection.
func extractFrustum(cam rl.Camera3D, aspect float32) frustum {
	view := rl.GetCameraMatrix(cam)
	proj := rl.MatrixPerspective(cam.Fovy*rl.Deg2rad, aspect, nearPlane, farPlane)
	vp := rl.MatrixMultiply(view, proj)

	rows := [4]plane{
		{rl.Vector3{X: vp.M0, Y: vp.M4, Z: vp.M8}, vp.M12},
		{rl.Vector3{X: vp.M1, Y: vp.M5, Z: vp.M9}, vp.M13},
		{rl.Vector3{X: vp.M2, Y: vp.M6, Z: vp.M10}, vp.M14},
		{rl.Vector3{X: vp.M3, Y: vp.M7, Z: vp.M11}, vp.M15},
	}

	var f frustum
	for i := 0; i < 3; i++ {
		f.planes[2*i] = normalizePlane(combine(rows[3], rows[i], 1))
		f.planes[2*i+1] = normalizePlane(combine(rows[3], rows[i], -1))
	}
	return f
}

func combine(a, b plane, sign float32) plane {
	return plane{
		normal:   rl.Vector3Add(a.normal, rl.Vector3Scale(b.normal, sign)),
		distance: a.distance + sign*b.distance,
	}
}

func normalizePlane(p plane) plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// containsSphere is false only when the sphere is entirely behind a plane.
func (f *frustum) containsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.planes {
		if rl.Vector3DotProduct(f.planes[i].normal, center)+f.planes[i].distance < -radius {
			return false
		}
	}
	return true
}
