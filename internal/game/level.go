package game

import (
	"os"
	"path/filepath"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ideasenb/PROYECTO-FINAL/internal/config"
	"github.com/ideasenb/PROYECTO-FINAL/internal/physics"
)

// fallbackFloorSize is the side of the floor used when no level geometry loads.
const fallbackFloorSize = 200.0

type levelModel struct {
	model rl.Model
	file  string
}

// level streams the configured models in, one per frame, so the simulation
// starts on an empty surface that fills up as geometry arrives.
type level struct {
	dir      string
	pending  []config.ModelConfig
	loaded   []levelModel
	fallback bool
	logger   *zap.Logger
}

func newLevel(cfg config.LevelConfig, logger *zap.Logger) *level {
	return &level{
		dir:     cfg.ModelDir,
		pending: append([]config.ModelConfig(nil), cfg.Models...),
		logger:  logger,
	}
}

// loadNext loads one queued model. Colliding models feed mesh. Once the
// queue is empty a mesh with no geometry gets the fallback floor, which
// covers an empty model list on the first frame.
func (l *level) loadNext(mesh *physics.StaticMesh) {
	if len(l.pending) > 0 {
		l.load(mesh)
	}
	if len(l.pending) == 0 && !l.fallback && mesh.AddFloor(fallbackFloorSize) {
		l.fallback = true
		l.logger.Warn("no level geometry loaded, using a flat floor")
	}
}

func (l *level) load(mesh *physics.StaticMesh) {
	mc := l.pending[0]
	l.pending = l.pending[1:]

	path := filepath.Join(l.dir, mc.File)
	model, err := loadModel(path)
	if err != nil {
		l.logger.Warn("skipping level model", zap.String("path", path), zap.Error(err))
	} else {
		model.Transform = rl.MatrixMultiply(model.Transform, placement(mc))
		l.loaded = append(l.loaded, levelModel{model: model, file: mc.File})

		if mc.Collide {
			added := mesh.AddTriangles(modelTriangles(model)...)
			l.logger.Info("level geometry registered",
				zap.String("model", mc.File),
				zap.Int("triangles", added),
				zap.Int("total", mesh.TriangleCount()),
			)
		}
	}
}

func (l *level) draw() {
	for _, m := range l.loaded {
		rl.DrawModel(m.model, rl.Vector3{}, 1, rl.White)
	}
	if l.fallback {
		rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: fallbackFloorSize, Y: fallbackFloorSize}, rl.LightGray)
	}
}

func (l *level) unload() {
	for _, m := range l.loaded {
		rl.UnloadModel(m.model)
	}
	l.loaded = nil
}

func loadModel(path string) (rl.Model, error) {
	if _, err := os.Stat(path); err != nil {
		return rl.Model{}, errors.Wrap(err, "model not found")
	}
	model := rl.LoadModel(path)
	if !rl.IsModelValid(model) {
		return rl.Model{}, errors.Errorf("failed to load model %s", path)
	}
	return model, nil
}

// placement builds scale, then yaw, then translation.
func placement(mc config.ModelConfig) rl.Matrix {
	s := float32(mc.Scale)
	if s == 0 {
		s = 1
	}
	scale := rl.MatrixScale(s, s, s)
	rot := rl.MatrixRotateY(float32(mc.Yaw))
	trans := rl.MatrixTranslate(float32(mc.Position.X()), float32(mc.Position.Y()), float32(mc.Position.Z()))
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans)
}

// modelTriangles extracts world-space triangles from every mesh of model.
func modelTriangles(model rl.Model) []physics.Triangle {
	var tris []physics.Triangle

	meshes := unsafe.Slice(model.Meshes, model.MeshCount)
	for _, mesh := range meshes {
		if mesh.Vertices == nil || mesh.VertexCount == 0 {
			continue
		}
		vertices := unsafe.Slice(mesh.Vertices, mesh.VertexCount*3)
		vertex := func(i int) mgl64.Vec3 {
			v := rl.Vector3{X: vertices[i*3+0], Y: vertices[i*3+1], Z: vertices[i*3+2]}
			return toVec3(rl.Vector3Transform(v, model.Transform))
		}

		if mesh.Indices != nil {
			// Indexed mesh
			indices := unsafe.Slice(mesh.Indices, mesh.TriangleCount*3)
			for i := 0; i+2 < len(indices); i += 3 {
				tris = append(tris, physics.NewTriangle(
					vertex(int(indices[i])),
					vertex(int(indices[i+1])),
					vertex(int(indices[i+2])),
				))
			}
		} else {
			// Non-indexed mesh (every 3 vertices = 1 triangle)
			for i := 0; i+2 < int(mesh.VertexCount); i += 3 {
				tris = append(tris, physics.NewTriangle(vertex(i), vertex(i+1), vertex(i+2)))
			}
		}
	}
	return tris
}

func toVec3(v rl.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

func toRL(v mgl64.Vec3) rl.Vector3 {
	return rl.Vector3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}
}
