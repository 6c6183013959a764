package physics

import "github.com/go-gl/mathgl/mgl64"

type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size mgl64.Vec3) AABB {
	half := size.Mul(0.5)
	return AABB{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X() <= b.Max.X() && a.Max.X() >= b.Min.X() &&
		a.Min.Y() <= b.Max.Y() && a.Max.Y() >= b.Min.Y() &&
		a.Min.Z() <= b.Max.Z() && a.Max.Z() >= b.Min.Z()
}

// Contains reports whether p lies inside the box, bounds included.
func (a AABB) Contains(p mgl64.Vec3) bool {
	return p.X() >= a.Min.X() && p.X() <= a.Max.X() &&
		p.Y() >= a.Min.Y() && p.Y() <= a.Max.Y() &&
		p.Z() >= a.Min.Z() && p.Z() <= a.Max.Z()
}

// ClosestPoint clamps p into the box.
func (a AABB) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		clamp(p.X(), a.Min.X(), a.Max.X()),
		clamp(p.Y(), a.Min.Y(), a.Max.Y()),
		clamp(p.Z(), a.Min.Z(), a.Max.Z()),
	}
}

// IntersectsSphere uses the closest point on the box to the sphere center;
// touching counts as intersecting.
func (a AABB) IntersectsSphere(s Sphere) bool {
	return DistanceSq(a.ClosestPoint(s.Center), s.Center) <= s.Radius*s.Radius
}

// Union returns the smallest box containing both.
func (a AABB) Union(b AABB) AABB {
	return AABB{Min: vecMin(a.Min, b.Min), Max: vecMax(a.Max, b.Max)}
}

// Center returns the midpoint of the box
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Size returns the full extent on each axis
func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// Valid reports min <= max on every axis.
func (a AABB) Valid() bool {
	return a.Min.X() <= a.Max.X() && a.Min.Y() <= a.Max.Y() && a.Min.Z() <= a.Max.Z()
}
