// Command particle-sweep runs headless scenarios over a grid of friction and
// core radius values and prints speed and spread telemetry for each.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"particle-life/internal/app"
	"particle-life/internal/sims/particlelife"
)

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(value string) error {
	*l = (*l)[:0]
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return err
		}
		*l = append(*l, v)
	}
	return nil
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 240, "ticks to simulate per scenario")
	parallel := flag.Int("parallel", runtime.NumCPU(), "scenarios evaluated concurrently")
	frictions := floatList{0.2, 0.5, 0.8}
	rMins := floatList{0.2, 0.3, 0.4}
	flag.Var(&frictions, "frictions", "comma separated friction candidates")
	flag.Var(&rMins, "r-mins", "comma separated r_min candidates")
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
	base := world.Config()
	relations := world.Relations()

	var candidates []particlelife.Params
	for _, f := range frictions {
		for _, r := range rMins {
			candidates = append(candidates, particlelife.Params{RMin: r, RMax: base.Params.RMax, Friction: f})
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d parameter sets (%d parallel, %d steps, %d particles)\n", len(candidates), *parallel, *steps, base.ParticleCount)
	records, err := particlelife.Sweep(ctx, base, relations, candidates, *steps, *parallel)
	if err != nil {
		slog.Error("sweep failed", "error", err)
		os.Exit(1)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Result.Spread < records[j].Result.Spread
	})
	for _, rec := range records {
		res := rec.Result
		fmt.Printf("friction=%.2f r_min=%.2f | spread %.2f mean %.3f max %.3f peak mean %.3f@%d\n",
			rec.Params.Friction, rec.Params.RMin, res.Spread, res.MeanSpeed, res.MaxSpeed, res.PeakMeanSpeed, res.PeakMeanSpeedStep)
	}
}
