package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// closestPointOnTriangle finds the closest point on a triangle to point p
func closestPointOnTriangle(p, a, b, c mgl64.Vec3) mgl64.Vec3 {
	// Check if P in vertex region outside A
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	// Check if P in vertex region outside B
	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	// Check if P in edge region of AB
	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return AddScaled(a, ab, v)
	}

	// Check if P in vertex region outside C
	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	// Check if P in edge region of AC
	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return AddScaled(a, ac, w)
	}

	// Check if P in edge region of BC
	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return AddScaled(b, c.Sub(b), w)
	}

	// P inside face region
	denom := 1.0 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return AddScaled(AddScaled(a, ab, v), ac, w)
}

// containsPoint tests p against the triangle using barycentric coordinates.
// p is implicitly projected onto the triangle's plane.
func (t Triangle) containsPoint(p mgl64.Vec3) bool {
	v0 := t.C.Sub(t.A)
	v1 := t.B.Sub(t.A)
	v2 := p.Sub(t.A)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return false
	}
	inv := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * inv
	v := (dot00*dot12 - dot01*dot02) * inv
	return u >= 0 && v >= 0 && u+v <= 1
}

func (t Triangle) planeDistance(p mgl64.Vec3) float64 {
	return t.Normal.Dot(p.Sub(t.A))
}

// closestPointsSegmentSegment returns the closest points between segments p1q1 and p2q2.
func closestPointsSegmentSegment(p1, q1, p2, q2 mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	const eps = 1e-12
	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)
	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t float64
	switch {
	case a <= eps && e <= eps:
		return p1, p2
	case a <= eps:
		s = 0
		t = clamp(f/e, 0, 1)
	default:
		c := d1.Dot(r)
		if e <= eps {
			t = 0
			s = clamp(-c/a, 0, 1)
		} else {
			b := d1.Dot(d2)
			denom := a*e - b*b
			if denom != 0 {
				s = clamp((b*f-c*e)/denom, 0, 1)
			}
			t = (b*s + f) / e
			if t < 0 {
				t = 0
				s = clamp(-c/a, 0, 1)
			} else if t > 1 {
				t = 1
				s = clamp((b-c)/a, 0, 1)
			}
		}
	}
	return AddScaled(p1, d1, s), AddScaled(p2, d2, t)
}

// sphereTriangleIntersect tests sphere vs triangle and returns the push-out contact
func sphereTriangleIntersect(center mgl64.Vec3, radius float64, tri *Triangle) (Contact, bool) {
	closest := closestPointOnTriangle(center, tri.A, tri.B, tri.C)

	diff := center.Sub(closest)
	distSq := diff.LenSqr()
	if distSq >= radius*radius {
		return Contact{}, false
	}

	dist := math.Sqrt(distSq)
	if dist < 1e-12 {
		// Center is on triangle, push along normal
		return Contact{Normal: tri.Normal, Depth: radius}, true
	}
	return Contact{Normal: diff.Mul(1 / dist), Depth: radius - dist}, true
}

// capsuleTriangleIntersect first tries the point where the capsule axis
// crosses the triangle's plane, then falls back to the three edges.
func capsuleTriangleIntersect(c *Capsule, tri *Triangle) (Contact, bool) {
	d1 := tri.planeDistance(c.Start) - c.Radius
	d2 := tri.planeDistance(c.End) - c.Radius

	if (d1 > 0 && d2 > 0) || (d1 < -c.Radius && d2 < -c.Radius) {
		return Contact{}, false
	}

	delta := 0.0
	if sum := math.Abs(d1) + math.Abs(d2); sum > 0 {
		delta = math.Abs(d1 / sum)
	}
	crossing := AddScaled(c.Start, c.End.Sub(c.Start), delta)
	if tri.containsPoint(crossing) {
		return Contact{Normal: tri.Normal, Depth: math.Abs(math.Min(d1, d2))}, true
	}

	r2 := c.Radius * c.Radius
	edges := [3][2]mgl64.Vec3{{tri.A, tri.B}, {tri.B, tri.C}, {tri.C, tri.A}}
	for _, edge := range edges {
		onAxis, onEdge := closestPointsSegmentSegment(c.Start, c.End, edge[0], edge[1])
		distSq := DistanceSq(onAxis, onEdge)
		if distSq >= r2 {
			continue
		}
		normal := Normalize(onAxis.Sub(onEdge))
		if normal == (mgl64.Vec3{}) {
			normal = tri.Normal
		}
		return Contact{Normal: normal, Depth: c.Radius - math.Sqrt(distSq)}, true
	}
	return Contact{}, false
}
