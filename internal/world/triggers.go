package world

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/ideasenb/PROYECTO-FINAL/internal/config"
	"github.com/ideasenb/PROYECTO-FINAL/internal/physics"
)

// Mode says whether a trigger can fire more than once.
type Mode int

const (
	Repeatable Mode = iota
	OneShot
)

// Trigger teleports the player when the capsule centre is inside Box.
type Trigger struct {
	Name        string
	Box         physics.AABB
	Destination mgl64.Vec3
	Yaw         float64
	Mode        Mode

	fired bool
}

func NewTrigger(cfg config.TriggerConfig) *Trigger {
	mode := Repeatable
	if cfg.OneShot {
		mode = OneShot
	}
	return &Trigger{
		Name:        cfg.Name,
		Box:         physics.AABB{Min: cfg.Min, Max: cfg.Max},
		Destination: cfg.Destination,
		Yaw:         cfg.Yaw,
		Mode:        mode,
	}
}

// Fired reports whether the trigger has ever fired.
func (t *Trigger) Fired() bool {
	return t.fired
}

func (t *Trigger) armed() bool {
	return t.Mode == Repeatable || !t.fired
}

// Target is the box a thrown sphere has to touch once.
type Target struct {
	Box         physics.AABB
	RedirectURL string

	hit bool
}

func newTarget(cfg config.TargetConfig) *Target {
	return &Target{
		Box:         physics.NewAABBFromCenter(cfg.Center, cfg.Size),
		RedirectURL: cfg.RedirectURL,
	}
}

// Hit reports whether the target has been hit.
func (t *Target) Hit() bool {
	return t.hit
}

// check latches on the first sphere touching the box.
func (t *Target) check(s physics.Sphere) bool {
	if t.hit || !t.Box.IntersectsSphere(s) {
		return false
	}
	t.hit = true
	return true
}

// checkOutOfBounds respawns a player that fell below the level. Velocity
// survives the respawn.
func (w *World) checkOutOfBounds() {
	if w.Player.Eye().Y() > w.cfg.Player.OutOfBoundsY {
		return
	}

	w.logger.Debug("player out of bounds", zap.Float64("y", w.Player.Eye().Y()))
	w.Player.placeAt(w.cfg.Player.Spawn)
	w.Facing.Reset()
	w.OnRespawn.Invoke()
}

// checkTriggers runs the table in order; a teleport can land the player in
// a later zone within the same pass.
func (w *World) checkTriggers() {
	for _, t := range w.Triggers {
		center := w.Player.Collider.Center()
		if !t.armed() || !t.Box.Contains(center) {
			continue
		}

		t.fired = true
		w.Player.placeAt(t.Destination)
		w.Facing.Set(0, t.Yaw)

		info := TeleportInfo{Trigger: t.Name, From: center, To: w.Player.Eye()}
		w.logger.Debug("teleport",
			zap.String("trigger", t.Name),
			zap.Float64s("from", center[:]),
			zap.Float64s("to", info.To[:]),
		)
		w.OnTeleport.Invoke(info)
	}
}
