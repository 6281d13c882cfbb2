//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"particle-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level, err := cfg.Level()
	if err != nil {
		slog.Error("invalid flags", "error", err)
		os.Exit(2)
	}
	app.SetupLogger(level)

	world, err := app.Build(cfg)
	if err != nil {
		slog.Error("failed to build simulation", "error", err)
		os.Exit(1)
	}

	game := app.New(world, cfg)

	ebiten.SetWindowTitle("particle-life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width+cfg.HUDWidth, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game loop failed", "error", err)
		os.Exit(1)
	}
}
