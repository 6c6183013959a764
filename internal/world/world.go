// Package world is the simulation: one player capsule, a pool of thrown
// spheres, teleport zones and a target, stepped in fixed substeps against
// a static collision surface.
package world

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ideasenb/PROYECTO-FINAL/internal/camera"
	"github.com/ideasenb/PROYECTO-FINAL/internal/config"
	"github.com/ideasenb/PROYECTO-FINAL/internal/event"
	"github.com/ideasenb/PROYECTO-FINAL/internal/input"
	"github.com/ideasenb/PROYECTO-FINAL/internal/physics"
)

// Surface is the static level geometry. It may start empty and grow while
// the world runs; nil behaves like an empty surface.
type Surface = physics.Surface

// WinInfo describes the throw that hit the target.
type WinInfo struct {
	Session     uuid.UUID
	Slot        int
	Step        uint64
	RedirectURL string
}

// TeleportInfo describes one teleport. From is the player centre that
// entered the zone, To is the new eye position.
type TeleportInfo struct {
	Trigger string
	From    mgl64.Vec3
	To      mgl64.Vec3
}

// World is the whole simulation state. It is not safe for concurrent use;
// the host steps it and reads it from one goroutine.
type World struct {
	ID uuid.UUID

	Player      Player
	Projectiles *Projectiles
	Triggers    []*Trigger
	Target      *Target
	Facing      camera.Facing
	Input       input.State

	OnWin      event.EventWithArg[WinInfo]
	OnTeleport event.EventWithArg[TeleportInfo]
	OnRespawn  event.Event

	cfg     config.Config
	surface Surface
	paused  bool
	steps   uint64
	logger  *zap.Logger

	badDeltaLogged bool
}

// New builds a world from a validated config. logger may be nil.
func New(cfg config.Config, surface Surface, logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}

	id := uuid.New()
	w := &World{
		ID:          id,
		Player:      newPlayer(cfg.Player, cfg.Physics.Gravity),
		Projectiles: newProjectiles(cfg.Projectiles, cfg.Physics.Gravity),
		Target:      newTarget(cfg.Target),
		cfg:         cfg,
		surface:     surface,
		logger:      logger.With(zap.Stringer("session", id)),
	}
	for _, tc := range cfg.Triggers {
		w.Triggers = append(w.Triggers, NewTrigger(tc))
	}

	w.logger.Debug("world created",
		zap.Int("projectiles", cfg.Projectiles.Count),
		zap.Int("triggers", len(w.Triggers)),
		zap.Int("substeps", cfg.Physics.Substeps),
	)
	return w
}

// Step advances the simulation by one frame. The frame is clamped to the
// configured maximum and split into equal substeps. Negative or non-finite
// deltas are treated as zero.
func (w *World) Step(frameDelta float64) {
	if math.IsNaN(frameDelta) || math.IsInf(frameDelta, 0) || frameDelta < 0 {
		if !w.badDeltaLogged {
			w.logger.Warn("ignoring invalid frame delta", zap.Float64("delta", frameDelta))
			w.badDeltaLogged = true
		}
		return
	}
	if w.paused || frameDelta == 0 {
		return
	}

	n := w.cfg.Physics.Substeps
	dt := math.Min(frameDelta, w.cfg.Physics.MaxFrameDelta) / float64(n)
	for range n {
		w.substep(dt)
	}
}

func (w *World) substep(dt float64) {
	w.Player.applyControls(&w.Input, w.Facing, dt)
	w.Player.integrate(w.surface, dt)

	w.updateProjectiles(dt)

	w.checkOutOfBounds()
	w.checkTriggers()

	w.steps++
}

// Throw launches the next pooled sphere along the aim. A longer hold throws
// harder. Returns the slot used, or false while paused.
func (w *World) Throw(held time.Duration) (int, bool) {
	if w.paused {
		return 0, false
	}

	dir := w.Facing.Direction()
	impulse := w.Projectiles.Impulse(held)

	cfg := w.cfg.Projectiles
	origin := physics.AddScaled(w.Player.Collider.End, dir, w.Player.Collider.Radius*cfg.SpawnOffset)
	velocity := physics.AddScaled(dir.Mul(impulse), w.Player.Velocity, cfg.InheritVelocity)

	slot := w.Projectiles.Spawn(origin, velocity)
	w.logger.Debug("sphere thrown",
		zap.Int("slot", slot),
		zap.Duration("held", held),
		zap.Float64("impulse", impulse),
	)
	return slot, true
}

// Pause stops the simulation until Resume.
func (w *World) Pause() {
	if w.paused {
		return
	}
	w.paused = true
	w.Input.Clear()
	w.logger.Debug("paused", zap.Uint64("step", w.steps))
}

// Resume undoes Pause.
func (w *World) Resume() {
	if !w.paused {
		return
	}
	w.paused = false
	w.logger.Debug("resumed", zap.Uint64("step", w.steps))
}

// Paused reports whether Step is currently a no-op.
func (w *World) Paused() bool {
	return w.paused
}

// Steps returns the number of substeps simulated so far.
func (w *World) Steps() uint64 {
	return w.steps
}
