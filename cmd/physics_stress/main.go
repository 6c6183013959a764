// Headless stress test of the simulation: a saturated sphere pool on a
// flat floor, stepped at several substep counts.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/ideasenb/PROYECTO-FINAL/internal/config"
	"github.com/ideasenb/PROYECTO-FINAL/internal/logging"
	"github.com/ideasenb/PROYECTO-FINAL/internal/physics"
	"github.com/ideasenb/PROYECTO-FINAL/internal/world"
)

var (
	frames   = flag.Int("frames", 600, "Frames to simulate per run")
	logLevel = flag.String("log", "warn", "Log level")
)

func main() {
	flag.Parse()

	logger, err := logging.New(*logLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	floor := physics.NewStaticMesh()
	floor.AddTriangles(grid(60, 2)...)
	fmt.Printf("floor: %d triangles\n\n", floor.TriangleCount())

	for _, substeps := range []int{1, 5, 10, 20} {
		for _, count := range []int{100, 250, 500} {
			run(floor, substeps, count, logger)
		}
	}
}

func run(floor *physics.StaticMesh, substeps, count int, logger *zap.Logger) {
	cfg := config.Default()
	cfg.Triggers = nil
	cfg.Physics.Substeps = substeps
	cfg.Projectiles.Count = count

	w := world.New(cfg, floor, logger)

	rng := rand.New(rand.NewSource(42)) // Consistent results
	for range count {
		origin := mgl64.Vec3{rng.Float64()*20 - 10, 1 + rng.Float64()*10, rng.Float64()*20 - 10}
		velocity := mgl64.Vec3{rng.Float64()*10 - 5, rng.Float64() * 5, rng.Float64()*10 - 5}
		w.Projectiles.Spawn(origin, velocity)
	}

	start := time.Now()
	for range *frames {
		w.Step(1.0 / 60)
	}
	elapsed := time.Since(start)

	below := 0
	for slot := range w.Projectiles.Len() {
		if b := w.Projectiles.Body(slot); b.InFlight && b.Sphere.Center.Y() < 0 {
			below++
		}
	}

	fmt.Printf("substeps %2d | %4d spheres | %8v/frame | %d fell through\n",
		substeps, count, elapsed/time.Duration(*frames), below)
}

// grid builds an n x n floor of cell-sized quads centred on the origin.
func grid(n int, cell float64) []physics.Triangle {
	var tris []physics.Triangle
	half := float64(n) * cell / 2
	for i := range n {
		for j := range n {
			x0, z0 := float64(i)*cell-half, float64(j)*cell-half
			x1, z1 := x0+cell, z0+cell
			tris = append(tris,
				physics.NewTriangle(mgl64.Vec3{x0, 0, z0}, mgl64.Vec3{x0, 0, z1}, mgl64.Vec3{x1, 0, z1}),
				physics.NewTriangle(mgl64.Vec3{x0, 0, z0}, mgl64.Vec3{x1, 0, z1}, mgl64.Vec3{x1, 0, z0}),
			)
		}
	}
	return tris
}
