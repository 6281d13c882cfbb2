package particlelife

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strconv"
)

// ErrInvalidConfig is wrapped by every configuration rejection.
var ErrInvalidConfig = errors.New("particlelife: invalid config")

// Params holds the scalar force-law and damping settings. They survive
// population reinitialisation unchanged.
type Params struct {
	// RMin is the repulsion core radius as a fraction of RMax, in (0, 1).
	RMin float64
	// RMax is the absolute cutoff distance.
	RMax float64
	// Friction multiplies velocity every tick; (0, 1] keeps motion bounded.
	Friction float64
}

// Validate rejects settings the force law cannot evaluate.
func (p Params) Validate() error {
	if math.IsNaN(p.RMax) || p.RMax <= 0 || math.IsInf(p.RMax, 0) {
		return fmt.Errorf("%w: r_max must be a finite value > 0, got %v", ErrInvalidConfig, p.RMax)
	}
	if math.IsNaN(p.RMin) || p.RMin <= 0 || p.RMin >= 1 {
		return fmt.Errorf("%w: r_min must be in (0, 1), got %v", ErrInvalidConfig, p.RMin)
	}
	if (p.RMin+p.RMax)/2 == p.RMin {
		return fmt.Errorf("%w: r_min %v and r_max %v collapse the interaction band", ErrInvalidConfig, p.RMin, p.RMax)
	}
	if math.IsNaN(p.Friction) || math.IsInf(p.Friction, 0) {
		return fmt.Errorf("%w: friction must be finite, got %v", ErrInvalidConfig, p.Friction)
	}
	return nil
}

// Config controls the particle-life world.
type Config struct {
	// Width and Height bound the uniform initial placement to
	// [-Width/2, Width/2) x [-Height/2, Height/2).
	Width  float64
	Height float64

	Seed int64

	ParticleCount int
	SpeciesCount  int

	// Workers caps the goroutines used by the force phase. Zero means
	// runtime.NumCPU().
	Workers int

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:         800,
		Height:        600,
		Seed:          1337,
		ParticleCount: 100,
		SpeciesCount:  3,
		Params: Params{
			RMin:     0.3,
			RMax:     100,
			Friction: 0.5,
		},
	}
}

// Validate checks sizing and force-law settings.
func (c Config) Validate() error {
	if err := validateBounds(c.Width, c.Height); err != nil {
		return err
	}
	if c.ParticleCount < 1 {
		return fmt.Errorf("%w: particle_count must be >= 1, got %d", ErrInvalidConfig, c.ParticleCount)
	}
	if c.SpeciesCount < 1 {
		return fmt.Errorf("%w: species_count must be >= 1, got %d", ErrInvalidConfig, c.SpeciesCount)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	return c.Params.Validate()
}

// validateBounds rejects window extents that are negative or not finite.
func validateBounds(width, height float64) error {
	for _, v := range [...]float64{width, height} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: window bounds must be finite and >= 0, got %vx%v", ErrInvalidConfig, width, height)
		}
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// FromMap populates the config from a string map (flag-style key/value pairs)
// and validates the result. Unknown keys are ignored.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	floats := map[string]*float64{
		"w":        &c.Width,
		"h":        &c.Height,
		"r_min":    &c.Params.RMin,
		"r_max":    &c.Params.RMax,
		"friction": &c.Params.Friction,
	}
	for key, dst := range floats {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
		}
		*dst = parsed
	}
	ints := map[string]*int{
		"particle_count": &c.ParticleCount,
		"species_count":  &c.SpeciesCount,
		"workers":        &c.Workers,
	}
	for key, dst := range ints {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
		}
		*dst = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: seed: %v", ErrInvalidConfig, err)
		}
		c.Seed = parsed
	}
	return c, c.Validate()
}
