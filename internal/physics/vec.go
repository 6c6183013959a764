package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis.
var Up = mgl64.Vec3{0, 1, 0}

// Normalize returns v scaled to unit length, or the zero vector when v has no length.
// mgl64's own Normalize divides by zero and yields NaN components.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// DistanceSq returns the squared distance between two points
func DistanceSq(a, b mgl64.Vec3) float64 {
	return a.Sub(b).LenSqr()
}

// Horizontal drops the vertical component and renormalizes
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return Normalize(mgl64.Vec3{v.X(), 0, v.Z()})
}

// AddScaled returns v + d*s
func AddScaled(v, d mgl64.Vec3, s float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0] + d[0]*s, v[1] + d[1]*s, v[2] + d[2]*s}
}

// IsFinite reports whether every component is a finite number.
func IsFinite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Sanitize replaces a non-finite vector with zero.
func Sanitize(v mgl64.Vec3) mgl64.Vec3 {
	if IsFinite(v) {
		return v
	}
	return mgl64.Vec3{}
}

func vecMin(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])}
}

func vecMax(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
