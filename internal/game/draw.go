package game

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ideasenb/PROYECTO-FINAL/internal/physics"
	"github.com/ideasenb/PROYECTO-FINAL/internal/world"
)

var (
	sphereColor = rl.NewColor(0xde, 0xde, 0x8d, 255)
	markerColor = rl.NewColor(255, 0, 0, 51)
	panelColor  = rl.NewColor(20, 20, 28, 200)
)

func (g *Game) Draw() {
	snap := g.World.Snapshot()

	cam := rl.Camera3D{
		Position:   toRL(snap.Eye),
		Target:     toRL(snap.Facing.Target(snap.Eye)),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       70,
		Projection: rl.CameraPerspective,
	}

	rl.BeginDrawing()
	rl.ClearBackground(g.background)

	rl.BeginMode3D(cam)
	g.level.draw()
	g.drawMarkers()
	g.drawTarget(snap.TargetHit)
	view := extractFrustum(cam, float32(rl.GetScreenWidth())/float32(rl.GetScreenHeight()))
	for _, s := range snap.Spheres {
		center, r := toRL(s.Center), float32(s.Radius)
		if view.containsSphere(center, r) {
			rl.DrawSphere(center, r, sphereColor)
		}
	}
	rl.EndMode3D()

	g.drawHUD(snap)
	if snap.Paused {
		g.drawPauseMenu()
	}

	rl.EndDrawing()
}

// drawMarkers draws a translucent column where each teleport zone is.
func (g *Game) drawMarkers() {
	for _, m := range g.cfg.Level.Markers {
		half := physics.Up.Mul(m.Height / 2)
		r := float32(m.Radius)
		rl.DrawCylinderEx(toRL(m.Position.Sub(half)), toRL(m.Position.Add(half)), r, r, 32, markerColor)
	}
}

func (g *Game) drawTarget(hit bool) {
	box := g.World.Target.Box
	color := rl.Red
	if hit {
		color = rl.Green
	}
	rl.DrawCubeV(toRL(box.Center()), toRL(box.Size()), color)
	rl.DrawCubeWiresV(toRL(box.Center()), toRL(box.Size()), rl.Maroon)
}

func (g *Game) drawHUD(snap world.Snapshot) {
	cx := int32(rl.GetScreenWidth() / 2)
	cy := int32(rl.GetScreenHeight() / 2)
	rl.DrawLine(cx-8, cy, cx+8, cy, rl.White)
	rl.DrawLine(cx, cy-8, cx, cy+8, rl.White)

	if g.charge.Charging() {
		g.drawChargeBar(cx, cy)
	}

	if snap.TargetHit {
		msg := "Target hit!"
		w := rl.MeasureText(msg, 40)
		rl.DrawText(msg, cx-w/2, cy-80, 40, rl.Yellow)
	}

	if g.level.fallback {
		rl.DrawText("level models missing: flat floor", 10, 30, 16, rl.Orange)
	}
	rl.DrawFPS(10, 10)
}

// drawChargeBar shows the throw strength the current hold would give.
func (g *Game) drawChargeBar(cx, cy int32) {
	held := g.charge.Held(time.Now())
	proj := g.cfg.Projectiles
	full := proj.MinImpulse + proj.ChargeImpulse
	frac := float32(g.World.Projectiles.Impulse(held) / full)

	const width, height = 160, 8
	x, y := cx-width/2, cy+40
	rl.DrawRectangle(x, y, width, height, rl.Fade(rl.Black, 0.5))
	rl.DrawRectangle(x, y, int32(frac*width), height, rl.Orange)
}

func (g *Game) drawPauseMenu() {
	sw := float32(rl.GetScreenWidth())
	sh := float32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, int32(sw), int32(sh), rl.Fade(rl.Black, 0.5))

	const pw, ph = 260, 170
	panel := rl.Rectangle{X: sw/2 - pw/2, Y: sh/2 - ph/2, Width: pw, Height: ph}
	rl.DrawRectangleRounded(panel, 0.1, 8, panelColor)

	title := "Paused"
	tw := rl.MeasureText(title, 28)
	rl.DrawText(title, int32(sw/2)-tw/2, int32(panel.Y)+16, 28, rl.White)

	resume := rl.Rectangle{X: panel.X + 30, Y: panel.Y + 64, Width: pw - 60, Height: 36}
	if gui.Button(resume, "Resume") {
		g.resume()
	}
	quit := rl.Rectangle{X: panel.X + 30, Y: panel.Y + 112, Width: pw - 60, Height: 36}
	if gui.Button(quit, "Quit") {
		g.quit = true
	}

	hint := fmt.Sprintf("step %d", g.World.Steps())
	rl.DrawText(hint, int32(panel.X)+8, int32(panel.Y+panel.Height)-18, 12, rl.Gray)
}

func initPauseStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(40, 40, 52, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.NewColor(55, 55, 72, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(rl.NewColor(99, 102, 241, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(200, 200, 210, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 18)
}
