package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ideasenb/PROYECTO-FINAL/internal/config"
	"github.com/ideasenb/PROYECTO-FINAL/internal/game"
	"github.com/ideasenb/PROYECTO-FINAL/internal/logging"
)

var (
	configPath = flag.String("config", "assets/config.yaml", "YAML config; missing file means built-in defaults")
	logLevel   = flag.String("log", "", "Log level override: debug|info|warn|error")
)

func main() {
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg := config.Default()
	if _, err := os.Stat(*configPath); err == nil {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	g := game.New(cfg, logger)
	logger.Info("starting", zap.Stringer("session", g.World.ID), zap.String("config", *configPath))
	if err := g.Run(); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
