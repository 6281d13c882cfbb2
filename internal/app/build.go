package app

import (
	"fmt"
	"log/slog"

	"particle-life/internal/core"
	"particle-life/internal/sims/particlelife"
)

// Build constructs the configured simulation and populates its relation
// table.
func Build(cfg *Config) (*particlelife.World, error) {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", cfg.Sim)
	}
	sim, err := factory(cfg.SimArgs())
	if err != nil {
		return nil, fmt.Errorf("configure %s: %w", cfg.Sim, err)
	}
	world, ok := sim.(*particlelife.World)
	if !ok {
		return nil, fmt.Errorf("sim %q is not a particle world", cfg.Sim)
	}
	if err := SeedRelations(world, cfg.Relations, cfg.Seed); err != nil {
		return nil, err
	}
	return world, nil
}

// SeedRelations replaces the world's relation table from source: zero,
// random, noise or a JSON preset path.
func SeedRelations(world *particlelife.World, source string, seed int64) error {
	_, species := world.Counts()
	rel := particlelife.NewRelations(species)
	switch source {
	case RelationsZero, "":
	case RelationsRandom:
		particlelife.SeedRelationsUniform(rel, core.NewRNG(seed), -particlelife.RelationLimit, particlelife.RelationLimit)
	case RelationsNoise:
		particlelife.SeedRelationsNoise(rel, seed)
	default:
		loaded, err := particlelife.LoadRelations(source)
		if err != nil {
			return err
		}
		rel = loaded
	}
	if err := world.SetRelations(rel); err != nil {
		return fmt.Errorf("relations from %s: %w", source, err)
	}
	slog.Info("relations seeded", "source", source, "species", species)
	return nil
}
