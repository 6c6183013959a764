package game

import (
	"strconv"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ideasenb/PROYECTO-FINAL/internal/config"
	"github.com/ideasenb/PROYECTO-FINAL/internal/input"
	"github.com/ideasenb/PROYECTO-FINAL/internal/physics"
	"github.com/ideasenb/PROYECTO-FINAL/internal/world"
)

// redirectDelay leaves a few frames to show the hit before leaving.
const redirectDelay = 50 * time.Millisecond

type Game struct {
	World *world.World

	cfg        config.Config
	logger     *zap.Logger
	mesh       *physics.StaticMesh
	level      *level
	charge     input.ThrowCharge
	background rl.Color

	redirectURL string
	redirectAt  time.Time
	quit        bool
}

func New(cfg config.Config, logger *zap.Logger) *Game {
	mesh := physics.NewStaticMesh()
	g := &Game{
		World:      world.New(cfg, mesh, logger),
		cfg:        cfg,
		logger:     logger,
		mesh:       mesh,
		level:      newLevel(cfg.Level, logger),
		background: parseColor(cfg.Window.Background, rl.SkyBlue),
	}

	g.World.OnWin.AddListener(func(info world.WinInfo) {
		g.redirectURL = info.RedirectURL
		g.redirectAt = time.Now().Add(redirectDelay)
	})
	g.World.OnTeleport.AddListener(func(info world.TeleportInfo) {
		g.logger.Info("teleported", zap.String("trigger", info.Trigger))
	})
	return g
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(int32(g.cfg.Window.Width), int32(g.cfg.Window.Height), g.cfg.Window.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return errors.New("failed to open window")
	}

	rl.SetTargetFPS(int32(g.cfg.Window.TargetFPS))
	rl.SetExitKey(0) // Escape pauses instead
	rl.DisableCursor()
	initPauseStyle()
	for action, key := range keyBindings {
		g.logger.Debug("key bound", zap.Stringer("action", action), zap.Int32("key", key))
	}

	// Level models are loaded inside the loop, after the GL context exists.
	defer g.level.unload()

	for !rl.WindowShouldClose() && !g.quit {
		g.Update()
		g.Draw()
	}
	return nil
}

func (g *Game) Update() {
	g.level.loadNext(g.mesh)

	g.pollInput()
	g.World.Step(float64(rl.GetFrameTime()))

	if g.redirectURL != "" && time.Now().After(g.redirectAt) {
		url := g.redirectURL
		g.redirectURL = ""
		if err := openURL(url); err != nil {
			g.logger.Error("failed to open redirect", zap.String("url", url), zap.Error(err))
		}
	}
}

func (g *Game) pause() {
	g.World.Pause()
	g.charge = input.ThrowCharge{}
	rl.EnableCursor()
}

func (g *Game) resume() {
	g.World.Resume()
	rl.DisableCursor()
}

// parseColor reads a hex RGB string such as "88ccee".
func parseColor(hex string, fallback rl.Color) rl.Color {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return fallback
	}
	return rl.NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255)
}
