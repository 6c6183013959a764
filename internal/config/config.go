// Package config describes the tunable game world: physics constants, the
// player and projectile setup, the trigger table, the target and the level
// assets. Default returns the shipped level; YAML files override it.
package config

import (
	"io"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ideasenb/PROYECTO-FINAL/internal/physics"
)

// Config is everything the world and the host are built from.
type Config struct {
	Physics     PhysicsConfig    `yaml:"physics"`
	Player      PlayerConfig     `yaml:"player"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Triggers    []TriggerConfig  `yaml:"triggers"`
	Target      TargetConfig     `yaml:"target"`
	Level       LevelConfig      `yaml:"level"`
	Window      WindowConfig     `yaml:"window"`
	Log         LogConfig        `yaml:"log"`
}

// PhysicsConfig is the integrator setup. Each frame is clamped to
// MaxFrameDelta seconds and split into Substeps equal steps.
type PhysicsConfig struct {
	MaxFrameDelta float64 `yaml:"max_frame_delta"`
	Substeps      int     `yaml:"substeps"`
	Gravity       float64 `yaml:"gravity"`
}

// PlayerConfig shapes the player capsule. Its segment runs from Bottom to
// Top above the point the player stands on.
type PlayerConfig struct {
	Spawn           mgl64.Vec3 `yaml:"spawn"`
	Bottom          float64    `yaml:"bottom"`
	Top             float64    `yaml:"top"`
	Radius          float64    `yaml:"radius"`
	GroundAccel     float64    `yaml:"ground_accel"`
	AirAccel        float64    `yaml:"air_accel"`
	JumpSpeed       float64    `yaml:"jump_speed"`
	Damping         float64    `yaml:"damping"`
	AirDampingScale float64    `yaml:"air_damping_scale"`
	OutOfBoundsY    float64    `yaml:"out_of_bounds_y"`
}

// ProjectileConfig sizes the sphere pool and the throw. Unthrown spheres
// wait at Sentinel.
type ProjectileConfig struct {
	Count           int        `yaml:"count"`
	Radius          float64    `yaml:"radius"`
	Sentinel        mgl64.Vec3 `yaml:"sentinel"`
	Bounce          float64    `yaml:"bounce"`
	Damping         float64    `yaml:"damping"`
	MinImpulse      float64    `yaml:"min_impulse"`
	ChargeImpulse   float64    `yaml:"charge_impulse"`
	ChargeRate      float64    `yaml:"charge_rate"` // per millisecond held
	InheritVelocity float64    `yaml:"inherit_velocity"`
	SpawnOffset     float64    `yaml:"spawn_offset"` // in radii, along the aim
}

// TriggerConfig is one teleport zone. Yaw is in radians.
type TriggerConfig struct {
	Name        string     `yaml:"name"`
	Min         mgl64.Vec3 `yaml:"min"`
	Max         mgl64.Vec3 `yaml:"max"`
	Destination mgl64.Vec3 `yaml:"destination"`
	Yaw         float64    `yaml:"yaw"`
	OneShot     bool       `yaml:"one_shot"`
}

// TargetConfig is the box a thrown sphere must touch to win.
type TargetConfig struct {
	Center      mgl64.Vec3 `yaml:"center"`
	Size        mgl64.Vec3 `yaml:"size"`
	RedirectURL string     `yaml:"redirect_url"`
}

// LevelConfig lists the models to load, relative to ModelDir.
type LevelConfig struct {
	ModelDir string         `yaml:"model_dir"`
	Models   []ModelConfig  `yaml:"models"`
	Markers  []MarkerConfig `yaml:"markers"`
}

// ModelConfig places one glTF model. Only models with Collide set feed the
// collision surface.
type ModelConfig struct {
	File     string     `yaml:"file"`
	Position mgl64.Vec3 `yaml:"position"`
	Yaw      float64    `yaml:"yaw"`
	Scale    float64    `yaml:"scale"`
	Collide  bool       `yaml:"collide"`
}

// MarkerConfig is a translucent column drawn where a teleport zone is.
type MarkerConfig struct {
	Position mgl64.Vec3 `yaml:"position"`
	Radius   float64    `yaml:"radius"`
	Height   float64    `yaml:"height"`
}

// WindowConfig sets up the host window.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	TargetFPS  int    `yaml:"target_fps"`
	Background string `yaml:"background"` // hex RGB
}

// LogConfig.Level is one of debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the shipped level.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			MaxFrameDelta: 0.05,
			Substeps:      5,
			Gravity:       40,
		},
		Player: PlayerConfig{
			Spawn:           mgl64.Vec3{0, 0, 0},
			Bottom:          0.35,
			Top:             1,
			Radius:          0.35,
			GroundAccel:     25,
			AirAccel:        10,
			JumpSpeed:       15,
			Damping:         4,
			AirDampingScale: 0.1,
			OutOfBoundsY:    -25,
		},
		Projectiles: ProjectileConfig{
			Count:           100,
			Radius:          0.2,
			Sentinel:        mgl64.Vec3{0, -100, 0},
			Bounce:          1.5,
			Damping:         1.5,
			MinImpulse:      15,
			ChargeImpulse:   30,
			ChargeRate:      0.001,
			InheritVelocity: 2,
			SpawnOffset:     1.5,
		},
		Triggers: []TriggerConfig{
			{Name: "1to2", Min: mgl64.Vec3{11, -1, -21}, Max: mgl64.Vec3{13, 2, -19}, Destination: mgl64.Vec3{-4, 0, -45}, Yaw: math.Pi / 2},
			{Name: "2to2", Min: mgl64.Vec3{-2, -1, -58}, Max: mgl64.Vec3{0, 2, -56}, Destination: mgl64.Vec3{28.5, 0, -53}, Yaw: -math.Pi},
			{Name: "3to2", Min: mgl64.Vec3{13, -1, -56}, Max: mgl64.Vec3{15, 2, -54}, Destination: mgl64.Vec3{0, 35, 0}},
			{Name: "4to2", Min: mgl64.Vec3{3, 30, 3}, Max: mgl64.Vec3{5, 32, 5}, Destination: mgl64.Vec3{0, 0, 0}},
		},
		Target: TargetConfig{
			Center:      mgl64.Vec3{-30, 0.25, -18},
			Size:        mgl64.Vec3{0.5, 0.5, 0.5},
			RedirectURL: "https://drive.google.com/file/d/12cwNJTiGgbRAKbVfIYpfM4v8l-q8DUFe/view?usp=sharing",
		},
		Level: LevelConfig{
			ModelDir: "assets/models",
			Models: []ModelConfig{
				{File: "japanese_temple.glb", Scale: 1, Collide: true},
				{File: "shihiro.glb", Scale: 1, Collide: true},
				{File: "pinguinito.glb", Position: mgl64.Vec3{9, -1, -24.5}, Yaw: math.Pi / 4, Scale: 1},
				{File: "pinguinito.glb", Position: mgl64.Vec3{13.5, -1, -45}, Yaw: math.Pi, Scale: 1},
			},
			Markers: []MarkerConfig{
				{Position: mgl64.Vec3{12, -0.45, -20}, Radius: 0.5, Height: 100},
				{Position: mgl64.Vec3{-1, -0.45, -56}, Radius: 0.5, Height: 100},
				{Position: mgl64.Vec3{14, -0.45, -55}, Radius: 0.5, Height: 20},
				{Position: mgl64.Vec3{4, 31, 4}, Radius: 0.5, Height: 20},
			},
		},
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Title:      "Temple",
			TargetFPS:  60,
			Background: "88ccee",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to open config")
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. An empty
// document yields the defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case !(c.Physics.MaxFrameDelta > 0):
		return errors.Errorf("physics.max_frame_delta must be positive, got %v", c.Physics.MaxFrameDelta)
	case c.Physics.Substeps < 1:
		return errors.Errorf("physics.substeps must be at least 1, got %d", c.Physics.Substeps)
	case !(c.Player.Radius > 0):
		return errors.Errorf("player.radius must be positive, got %v", c.Player.Radius)
	case c.Player.Top < c.Player.Bottom:
		return errors.Errorf("player.top %v is below player.bottom %v", c.Player.Top, c.Player.Bottom)
	case c.Projectiles.Count < 1:
		return errors.Errorf("projectiles.count must be at least 1, got %d", c.Projectiles.Count)
	case !(c.Projectiles.Radius > 0):
		return errors.Errorf("projectiles.radius must be positive, got %v", c.Projectiles.Radius)
	case !finite(c.Physics.Gravity):
		return errors.Errorf("physics.gravity must be finite, got %v", c.Physics.Gravity)
	case !physics.IsFinite(c.Player.Spawn):
		return errors.Errorf("player.spawn must be finite, got %v", c.Player.Spawn)
	case !physics.IsFinite(c.Projectiles.Sentinel):
		return errors.Errorf("projectiles.sentinel must be finite, got %v", c.Projectiles.Sentinel)
	}

	for i, t := range c.Triggers {
		box := physics.AABB{Min: t.Min, Max: t.Max}
		if !box.Valid() {
			return errors.Errorf("triggers[%d] %q: min %v exceeds max %v", i, t.Name, t.Min, t.Max)
		}
		if !physics.IsFinite(t.Destination) {
			return errors.Errorf("triggers[%d] %q: destination must be finite", i, t.Name)
		}
	}
	for i, s := range c.Target.Size {
		if s < 0 {
			return errors.Errorf("target.size[%d] is negative", i)
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
