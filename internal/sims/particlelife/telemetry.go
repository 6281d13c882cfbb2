package particlelife

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r2"
)

// TelemetryResult summarises a headless run.
type TelemetryResult struct {
	// StepsSimulated reports how many ticks were executed.
	StepsSimulated int
	// MeanSpeed and MaxSpeed describe velocities after the final tick.
	MeanSpeed float64
	MaxSpeed  float64
	// Spread is the RMS distance of particles to their centroid after the
	// final tick.
	Spread float64
	// PeakMeanSpeed is the highest mean speed seen on any tick and
	// PeakMeanSpeedStep the tick it first occurred on.
	PeakMeanSpeed     float64
	PeakMeanSpeedStep int
}

// SweepRecord pairs a candidate parameter set with its telemetry.
type SweepRecord struct {
	Params Params
	Result TelemetryResult
}

// Measure computes speed and spread statistics for a particle set.
func Measure(particles []Particle) (mean, peak, spread float64) {
	if len(particles) == 0 {
		return 0, 0, 0
	}
	var centroid r2.Vec
	for _, p := range particles {
		speed := r2.Norm(p.Vel)
		mean += speed
		if speed > peak {
			peak = speed
		}
		centroid = r2.Add(centroid, p.Pos)
	}
	n := float64(len(particles))
	mean /= n
	centroid = r2.Scale(1/n, centroid)
	for _, p := range particles {
		spread += r2.Norm2(r2.Sub(p.Pos, centroid))
	}
	return mean, peak, math.Sqrt(spread / n)
}

// Telemetry runs a deterministic scenario with cfg and relations for the
// requested number of ticks. A nil relations table leaves the zero-filled
// default in place.
func Telemetry(cfg Config, relations *Relations, steps int) (TelemetryResult, error) {
	world, err := NewWithConfig(cfg)
	if err != nil {
		return TelemetryResult{}, err
	}
	if relations != nil {
		if err := world.SetRelations(relations); err != nil {
			return TelemetryResult{}, err
		}
	}

	var result TelemetryResult
	for step := 1; step <= steps; step++ {
		world.Step()
		mean, _, _ := Measure(world.Particles())
		if mean > result.PeakMeanSpeed {
			result.PeakMeanSpeed = mean
			result.PeakMeanSpeedStep = step
		}
		result.StepsSimulated = step
	}
	result.MeanSpeed, result.MaxSpeed, result.Spread = Measure(world.Particles())
	return result, nil
}

// Sweep evaluates every candidate parameter set against base with at most
// workers concurrent runs. Records come back in candidate order.
func Sweep(ctx context.Context, base Config, relations *Relations, candidates []Params, steps, workers int) ([]SweepRecord, error) {
	records := make([]SweepRecord, len(candidates))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, params := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := base
			cfg.Params = params
			// Runs already execute in parallel.
			cfg.Workers = 1
			res, err := Telemetry(cfg, relations, steps)
			if err != nil {
				return fmt.Errorf("candidate %d: %w", i, err)
			}
			records[i] = SweepRecord{Params: params, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
