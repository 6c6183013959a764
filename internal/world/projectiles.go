package world

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/ideasenb/PROYECTO-FINAL/internal/config"
	"github.com/ideasenb/PROYECTO-FINAL/internal/physics"
)

// Body is one pooled sphere. Bodies that were never thrown wait at the
// sentinel position below the level.
type Body struct {
	Sphere   physics.Sphere
	Velocity mgl64.Vec3
	InFlight bool
	Slot     int
}

// Projectiles is a fixed pool recycled round-robin: throwing when every
// slot is taken reuses the oldest sphere, wherever it is.
type Projectiles struct {
	bodies  []Body
	next    int
	cfg     config.ProjectileConfig
	gravity float64
}

func newProjectiles(cfg config.ProjectileConfig, gravity float64) *Projectiles {
	p := &Projectiles{
		bodies:  make([]Body, cfg.Count),
		cfg:     cfg,
		gravity: gravity,
	}
	for i := range p.bodies {
		p.bodies[i] = Body{
			Sphere: physics.Sphere{Center: cfg.Sentinel, Radius: cfg.Radius},
			Slot:   i,
		}
	}
	return p
}

// Spawn overwrites the next slot and returns it.
func (p *Projectiles) Spawn(origin, velocity mgl64.Vec3) int {
	slot := p.next
	b := &p.bodies[slot]
	b.Sphere.Center = origin
	b.Velocity = velocity
	b.InFlight = true

	p.next = (p.next + 1) % len(p.bodies)
	return slot
}

// Impulse is the launch speed for a throw held this long.
func (p *Projectiles) Impulse(held time.Duration) float64 {
	if held < 0 {
		held = 0
	}
	ms := float64(held) / float64(time.Millisecond)
	return p.cfg.MinImpulse + p.cfg.ChargeImpulse*(1-math.Exp(-ms*p.cfg.ChargeRate))
}

func (p *Projectiles) Len() int {
	return len(p.bodies)
}

// Body returns a copy of the body in slot.
func (p *Projectiles) Body(slot int) Body {
	return p.bodies[slot]
}

// Live returns copies of every sphere that has been thrown.
func (p *Projectiles) Live() []Body {
	var live []Body
	for _, b := range p.bodies {
		if b.InFlight {
			live = append(live, b)
		}
	}
	return live
}

// updateProjectiles moves every body, then settles sphere pairs. World
// contacts come before pairs so the pair test sees resolved positions.
func (w *World) updateProjectiles(dt float64) {
	cfg := w.cfg.Projectiles
	damping := math.Exp(-cfg.Damping*dt) - 1
	bodies := w.Projectiles.bodies

	for i := range bodies {
		b := &bodies[i]

		b.Sphere.Center = physics.AddScaled(b.Sphere.Center, b.Velocity, dt)
		physics.ResolveSphereWorld(w.surface, &b.Sphere, &b.Velocity, cfg.Bounce, w.cfg.Physics.Gravity, dt)
		b.Velocity = physics.Sanitize(physics.AddScaled(b.Velocity, b.Velocity, damping))

		physics.ResolveSpherePlayer(w.Player.Collider, &w.Player.Velocity, &b.Sphere, &b.Velocity)

		if w.Target.check(b.Sphere) {
			info := WinInfo{Session: w.ID, Slot: b.Slot, Step: w.steps, RedirectURL: w.Target.RedirectURL}
			w.logger.Info("target hit", zap.Int("slot", b.Slot), zap.Uint64("step", w.steps))
			w.OnWin.Invoke(info)
		}
	}

	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			physics.ResolveSpherePair(&bodies[i].Sphere, &bodies[i].Velocity, &bodies[j].Sphere, &bodies[j].Velocity)
		}
	}
}
