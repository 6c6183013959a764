package physics

import "github.com/go-gl/mathgl/mgl64"

// Capsule is a segment swept by a radius. The player collider.
type Capsule struct {
	Start  mgl64.Vec3
	End    mgl64.Vec3
	Radius float64
}

// NewCapsule creates a capsule. Radius must be positive.
func NewCapsule(start, end mgl64.Vec3, radius float64) Capsule {
	return Capsule{Start: start, End: end, Radius: radius}
}

// Translate moves both segment endpoints by d.
func (c *Capsule) Translate(d mgl64.Vec3) {
	c.Start = c.Start.Add(d)
	c.End = c.End.Add(d)
}

// Center returns the midpoint of the segment
func (c Capsule) Center() mgl64.Vec3 {
	return c.Start.Add(c.End).Mul(0.5)
}

// Bounds returns the AABB enclosing the capsule
func (c Capsule) Bounds() AABB {
	r := mgl64.Vec3{c.Radius, c.Radius, c.Radius}
	return AABB{
		Min: vecMin(c.Start, c.End).Sub(r),
		Max: vecMax(c.Start, c.End).Add(r),
	}
}

// Sphere is a center and radius.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// Bounds returns the AABB enclosing the sphere
func (s Sphere) Bounds() AABB {
	r := mgl64.Vec3{s.Radius, s.Radius, s.Radius}
	return AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

// Contact is the result of a world query. Normal is unit length and points
// away from the obstacle; Depth is the penetration and never negative.
type Contact struct {
	Normal mgl64.Vec3
	Depth  float64
}

// Triangle represents a single triangle with precomputed normal
type Triangle struct {
	A, B, C mgl64.Vec3
	Normal  mgl64.Vec3
}

// NewTriangle computes the face normal from the winding a→b→c.
func NewTriangle(a, b, c mgl64.Vec3) Triangle {
	n := b.Sub(a).Cross(c.Sub(a))
	return Triangle{A: a, B: b, C: c, Normal: Normalize(n)}
}

// Degenerate reports a zero-area or non-finite triangle.
func (t Triangle) Degenerate() bool {
	if !IsFinite(t.A) || !IsFinite(t.B) || !IsFinite(t.C) {
		return true
	}
	return t.Normal == (mgl64.Vec3{})
}

func (t Triangle) bounds() AABB {
	return AABB{
		Min: vecMin(vecMin(t.A, t.B), t.C),
		Max: vecMax(vecMax(t.A, t.B), t.C),
	}
}

func (t Triangle) centroid() mgl64.Vec3 {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}
