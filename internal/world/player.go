package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ideasenb/PROYECTO-FINAL/internal/camera"
	"github.com/ideasenb/PROYECTO-FINAL/internal/config"
	"github.com/ideasenb/PROYECTO-FINAL/internal/input"
	"github.com/ideasenb/PROYECTO-FINAL/internal/physics"
)

// Player is the walking capsule. Grounded comes from the last world contact
// and decides acceleration, gravity and air drag for the next substep.
type Player struct {
	Collider physics.Capsule
	Velocity mgl64.Vec3
	Grounded bool

	cfg     config.PlayerConfig
	gravity float64
}

func newPlayer(cfg config.PlayerConfig, gravity float64) Player {
	p := Player{cfg: cfg, gravity: gravity}
	p.placeAt(cfg.Spawn)
	return p
}

// Eye is where the camera sits: the top of the capsule segment.
func (p *Player) Eye() mgl64.Vec3 {
	return p.Collider.End
}

// placeAt stands the capsule on pos. Velocity is left alone.
func (p *Player) placeAt(pos mgl64.Vec3) {
	p.Collider = physics.NewCapsule(
		physics.AddScaled(pos, physics.Up, p.cfg.Bottom),
		physics.AddScaled(pos, physics.Up, p.cfg.Top),
		p.cfg.Radius,
	)
}

func (p *Player) applyControls(in *input.State, facing camera.Facing, dt float64) {
	accel := dt * p.cfg.AirAccel
	if p.Grounded {
		accel = dt * p.cfg.GroundAccel
	}

	if in.Down(input.Forward) {
		p.Velocity = physics.AddScaled(p.Velocity, facing.Forward(), accel)
	}
	if in.Down(input.Back) {
		p.Velocity = physics.AddScaled(p.Velocity, facing.Forward(), -accel)
	}
	if in.Down(input.Left) {
		p.Velocity = physics.AddScaled(p.Velocity, facing.Side(), -accel)
	}
	if in.Down(input.Right) {
		p.Velocity = physics.AddScaled(p.Velocity, facing.Side(), accel)
	}

	if p.Grounded && in.Down(input.Jump) {
		p.Velocity[1] = p.cfg.JumpSpeed
	}
}

func (p *Player) integrate(surface Surface, dt float64) {
	damping := math.Exp(-p.cfg.Damping*dt) - 1
	if !p.Grounded {
		p.Velocity[1] -= p.gravity * dt
		damping *= p.cfg.AirDampingScale
	}
	p.Velocity = physics.Sanitize(physics.AddScaled(p.Velocity, p.Velocity, damping))

	p.Collider.Translate(p.Velocity.Mul(dt))
	p.Grounded = physics.ResolveCapsuleWorld(surface, &p.Collider, &p.Velocity)
}
