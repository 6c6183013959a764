package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ContactEpsilon is the smallest penetration the capsule is pushed out of.
// Shallower contacts come from floating-point noise and only cause jitter.
const ContactEpsilon = 1e-10

// Surface is the static world as seen by the resolvers.
type Surface interface {
	CapsuleIntersect(c Capsule) (Contact, bool)
	SphereIntersect(s Sphere) (Contact, bool)
}

// ResolveCapsuleWorld pushes the capsule out of the world and slides its
// velocity along walls. Returns whether the capsule is standing on
// something (contact normal pointing up).
func ResolveCapsuleWorld(surface Surface, c *Capsule, velocity *mgl64.Vec3) bool {
	if surface == nil {
		return false
	}
	contact, ok := surface.CapsuleIntersect(*c)
	if !ok {
		return false
	}

	grounded := contact.Normal.Y() > 0
	if !grounded {
		*velocity = AddScaled(*velocity, contact.Normal, -contact.Normal.Dot(*velocity))
	}
	if contact.Depth >= ContactEpsilon {
		c.Translate(contact.Normal.Mul(contact.Depth))
	}
	return grounded
}

// ResolveSphereWorld bounces a sphere off the world, removing bounce times
// its normal velocity, or applies gravity when it touches nothing.
// Returns whether there was a contact.
func ResolveSphereWorld(surface Surface, s *Sphere, velocity *mgl64.Vec3, bounce, gravity, dt float64) bool {
	var (
		contact Contact
		ok      bool
	)
	if surface != nil {
		contact, ok = surface.SphereIntersect(*s)
	}
	if !ok {
		velocity[1] -= gravity * dt
		return false
	}

	*velocity = AddScaled(*velocity, contact.Normal, -contact.Normal.Dot(*velocity)*bounce)
	s.Center = AddScaled(s.Center, contact.Normal, contact.Depth)
	return true
}

// exchangeNormal swaps the components of va and vb along n.
func exchangeNormal(n mgl64.Vec3, va, vb *mgl64.Vec3) {
	v1 := n.Mul(n.Dot(*va))
	v2 := n.Mul(n.Dot(*vb))
	*va = va.Add(v2).Sub(v1)
	*vb = vb.Add(v1).Sub(v2)
}

// ResolveSpherePair handles two overlapping spheres: normal velocities are
// exchanged and both centers move apart by half the overlap.
func ResolveSpherePair(a *Sphere, va *mgl64.Vec3, b *Sphere, vb *mgl64.Vec3) bool {
	d2 := DistanceSq(a.Center, b.Center)
	r := a.Radius + b.Radius
	if d2 >= r*r {
		return false
	}

	normal := Normalize(a.Center.Sub(b.Center))
	exchangeNormal(normal, va, vb)

	d := (r - math.Sqrt(d2)) / 2
	a.Center = AddScaled(a.Center, normal, d)
	b.Center = AddScaled(b.Center, normal, -d)
	return true
}

// ResolveSpherePlayer treats the capsule as three spheres at start, end and
// midpoint. Every sample point is tested, so one sphere can be corrected up
// to three times. Only the sphere is moved; the player takes momentum
// through its velocity alone. Returns the number of sample points resolved.
func ResolveSpherePlayer(c Capsule, playerVelocity *mgl64.Vec3, s *Sphere, sphereVelocity *mgl64.Vec3) int {
	r := c.Radius + s.Radius
	r2 := r * r

	resolved := 0
	for _, point := range [3]mgl64.Vec3{c.Start, c.End, c.Center()} {
		d2 := DistanceSq(point, s.Center)
		if d2 >= r2 {
			continue
		}

		normal := Normalize(point.Sub(s.Center))
		exchangeNormal(normal, playerVelocity, sphereVelocity)

		d := (r - math.Sqrt(d2)) / 2
		s.Center = AddScaled(s.Center, normal, -d)
		resolved++
	}
	return resolved
}
