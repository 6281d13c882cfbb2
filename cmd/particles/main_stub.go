//go:build !ebiten

// Command particles runs the simulation without a window when built without
// the ebiten tag, logging telemetry once per simulated second. Build with
// -tags ebiten for the GUI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"particle-life/internal/app"
	"particle-life/internal/core"
	"particle-life/internal/sims/particlelife"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bounds := world.Bounds()
	slog.Info("running headless", "width", bounds.W, "height", bounds.H, "tps", cfg.TPS, "ticks", cfg.Ticks, "hint", "build with -tags ebiten for the window")
	pacer := core.NewFixedStep(cfg.TPS)
	for ctx.Err() == nil {
		pacer.Wait()
		world.Step()

		tick := world.Tick()
		if cfg.TPS > 0 && tick%uint64(cfg.TPS) == 0 {
			mean, peak, spread := particlelife.Measure(world.Snapshot())
			slog.Info("telemetry", "tick", tick, "mean_speed", mean, "max_speed", peak, "spread", spread)
		}
		if cfg.Ticks > 0 && tick >= uint64(cfg.Ticks) {
			break
		}
	}
	slog.Info("simulation stopped", "tick", world.Tick())
}
