package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSurface reports the same contact for every query.
type fixedSurface struct {
	contact Contact
	hit     bool
}

func (f fixedSurface) CapsuleIntersect(Capsule) (Contact, bool) { return f.contact, f.hit }
func (f fixedSurface) SphereIntersect(Sphere) (Contact, bool)   { return f.contact, f.hit }

func playerCapsule() Capsule {
	return NewCapsule(mgl64.Vec3{0, 0.35, 0}, mgl64.Vec3{0, 1, 0}, 0.35)
}

func TestResolveCapsuleWorld(t *testing.T) {
	tests := []struct {
		name      string
		surface   Surface
		velocity  mgl64.Vec3
		grounded  bool
		wantVel   mgl64.Vec3
		wantShift mgl64.Vec3
	}{
		{
			name:     "nil surface",
			surface:  nil,
			velocity: mgl64.Vec3{1, -2, 3},
			wantVel:  mgl64.Vec3{1, -2, 3},
		},
		{
			name:     "no contact",
			surface:  fixedSurface{},
			velocity: mgl64.Vec3{1, -2, 3},
			wantVel:  mgl64.Vec3{1, -2, 3},
		},
		{
			name:      "floor keeps velocity",
			surface:   fixedSurface{Contact{Normal: Up, Depth: 0.2}, true},
			velocity:  mgl64.Vec3{1, -5, 0},
			grounded:  true,
			wantVel:   mgl64.Vec3{1, -5, 0},
			wantShift: mgl64.Vec3{0, 0.2, 0},
		},
		{
			name:      "wall slides",
			surface:   fixedSurface{Contact{Normal: mgl64.Vec3{1, 0, 0}, Depth: 0.1}, true},
			velocity:  mgl64.Vec3{-3, 2, 1},
			wantVel:   mgl64.Vec3{0, 2, 1},
			wantShift: mgl64.Vec3{0.1, 0, 0},
		},
		{
			name:     "deadband skips translation",
			surface:  fixedSurface{Contact{Normal: Up, Depth: 1e-11}, true},
			velocity: mgl64.Vec3{0, -1, 0},
			grounded: true,
			wantVel:  mgl64.Vec3{0, -1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := playerCapsule()
			v := tt.velocity

			grounded := ResolveCapsuleWorld(tt.surface, &c, &v)

			assert.Equal(t, tt.grounded, grounded)
			assertVec(t, tt.wantVel, v)
			assertVec(t, mgl64.Vec3{0, 0.35, 0}.Add(tt.wantShift), c.Start)
			assertVec(t, mgl64.Vec3{0, 1, 0}.Add(tt.wantShift), c.End)
			assert.Equal(t, 0.35, c.Radius)
		})
	}
}

func TestResolveSphereWorld_Bounce(t *testing.T) {
	surface := fixedSurface{Contact{Normal: Up, Depth: 0.1}, true}

	for _, vy := range []float64{0, -4} {
		s := Sphere{Radius: 0.2}
		v := mgl64.Vec3{2, vy, 0}

		hit := ResolveSphereWorld(surface, &s, &v, 1.5, 40, 0.01)

		require.True(t, hit)
		assertVec(t, mgl64.Vec3{2, -0.5 * vy, 0}, v)
		assertVec(t, mgl64.Vec3{0, 0.1, 0}, s.Center)
	}
}

func TestResolveSphereWorld_Gravity(t *testing.T) {
	s := Sphere{Center: mgl64.Vec3{1, 2, 3}, Radius: 0.2}
	v := mgl64.Vec3{1, 0, 0}

	hit := ResolveSphereWorld(nil, &s, &v, 1.5, 40, 0.01)

	assert.False(t, hit)
	assertVec(t, mgl64.Vec3{1, -0.4, 0}, v)
	assertVec(t, mgl64.Vec3{1, 2, 3}, s.Center)
}

func TestResolveSpherePair_Symmetric(t *testing.T) {
	a0 := Sphere{Center: mgl64.Vec3{0, 0, 0}, Radius: 0.2}
	b0 := Sphere{Center: mgl64.Vec3{0.3, 0.1, 0}, Radius: 0.2}
	va0 := mgl64.Vec3{1, 0, 0}
	vb0 := mgl64.Vec3{-2, 0.5, 0}

	a1, b1, va1, vb1 := a0, b0, va0, vb0
	require.True(t, ResolveSpherePair(&a1, &va1, &b1, &vb1))

	a2, b2, va2, vb2 := a0, b0, va0, vb0
	require.True(t, ResolveSpherePair(&b2, &vb2, &a2, &va2))

	assertVec(t, a1.Center, a2.Center)
	assertVec(t, b1.Center, b2.Center)
	assertVec(t, va1, va2)
	assertVec(t, vb1, vb2)
	assert.InDelta(t, 0.4, a1.Center.Sub(b1.Center).Len(), eps, "separated to touching")
}

func TestResolveSpherePair_ConservesNormalMomentum(t *testing.T) {
	a := Sphere{Center: mgl64.Vec3{0, 0, 0}, Radius: 0.2}
	b := Sphere{Center: mgl64.Vec3{0.25, 0.2, 0.1}, Radius: 0.2}
	va := mgl64.Vec3{3, -1, 2}
	vb := mgl64.Vec3{-1, 4, 0.5}

	n := Normalize(a.Center.Sub(b.Center))
	before := n.Dot(va) + n.Dot(vb)
	wantA, wantB := n.Dot(vb), n.Dot(va)

	require.True(t, ResolveSpherePair(&a, &va, &b, &vb))

	assert.InDelta(t, before, n.Dot(va)+n.Dot(vb), eps)
	assert.InDelta(t, wantA, n.Dot(va), eps, "normal components swapped")
	assert.InDelta(t, wantB, n.Dot(vb), eps)
}

func TestResolveSpherePair_Apart(t *testing.T) {
	a := Sphere{Center: mgl64.Vec3{0, 0, 0}, Radius: 0.2}
	b := Sphere{Center: mgl64.Vec3{0.4, 0, 0}, Radius: 0.2}
	va, vb := mgl64.Vec3{1, 0, 0}, mgl64.Vec3{-1, 0, 0}

	assert.False(t, ResolveSpherePair(&a, &va, &b, &vb), "touching is not overlapping")
	assertVec(t, mgl64.Vec3{1, 0, 0}, va)
}

func TestResolveSpherePair_CoincidentStaysFinite(t *testing.T) {
	a := Sphere{Center: mgl64.Vec3{0, -100, 0}, Radius: 0.2}
	b := a
	var va, vb mgl64.Vec3

	ResolveSpherePair(&a, &va, &b, &vb)

	assert.True(t, IsFinite(a.Center))
	assert.True(t, IsFinite(b.Center))
	assert.True(t, IsFinite(va))
	assert.True(t, IsFinite(vb))
}

func TestResolveSpherePlayer_SinglePoint(t *testing.T) {
	c := playerCapsule()
	s := Sphere{Center: mgl64.Vec3{0.4, 1, 0}, Radius: 0.2}
	sv := mgl64.Vec3{-5, 0, 0}
	var pv mgl64.Vec3

	n := ResolveSpherePlayer(c, &pv, &s, &sv)

	assert.Equal(t, 1, n)
	assertVec(t, mgl64.Vec3{-5, 0, 0}, pv)
	assertVec(t, mgl64.Vec3{}, sv)
	assertVec(t, mgl64.Vec3{0.475, 1, 0}, s.Center)
	assert.Equal(t, playerCapsule(), c, "player is never moved")
}

func TestResolveSpherePlayer_ChecksEveryPoint(t *testing.T) {
	c := playerCapsule()
	s := Sphere{Center: mgl64.Vec3{0.3, 0.85, 0}, Radius: 0.2}
	var pv, sv mgl64.Vec3

	// End resolves first; the pushed sphere still overlaps the midpoint.
	assert.Equal(t, 2, ResolveSpherePlayer(c, &pv, &s, &sv))
}

func TestResolveSpherePlayer_Miss(t *testing.T) {
	s := Sphere{Center: mgl64.Vec3{5, 0.5, 0}, Radius: 0.2}
	sv := mgl64.Vec3{1, 1, 1}
	pv := mgl64.Vec3{2, 0, 0}

	assert.Equal(t, 0, ResolveSpherePlayer(playerCapsule(), &pv, &s, &sv))
	assertVec(t, mgl64.Vec3{1, 1, 1}, sv)
	assertVec(t, mgl64.Vec3{2, 0, 0}, pv)
}
