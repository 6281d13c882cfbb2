package particlelife

import (
	"github.com/aquilax/go-perlin"

	"particle-life/internal/core"
)

// RelationLimit bounds the coefficients produced by the seeding helpers.
const RelationLimit = 0.5

const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 3
	noiseStep    = 0.37
	noiseOffset  = 0.5
)

// SeedRelationsUniform fills every entry with a uniform draw from [lo, hi).
func SeedRelationsUniform(r *Relations, rng *core.RNG, lo, hi float64) {
	for i := 0; i < r.Size(); i++ {
		for j := 0; j < r.Size(); j++ {
			r.Set(i, j, rng.Range(lo, hi))
		}
	}
}

// SeedRelationsNoise fills the table from 2D perlin noise sampled on the
// (source, target) lattice, so neighbouring species get related coefficients.
// Values are clamped to [-RelationLimit, RelationLimit].
func SeedRelationsNoise(r *Relations, seed int64) {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	for i := 0; i < r.Size(); i++ {
		for j := 0; j < r.Size(); j++ {
			// Integer lattice points are always zero in perlin noise.
			x := float64(i)*noiseStep + noiseOffset
			y := float64(j)*noiseStep + noiseOffset
			r.Set(i, j, clampRelation(p.Noise2D(x, y)))
		}
	}
}

func clampRelation(v float64) float64 {
	if v > RelationLimit {
		return RelationLimit
	}
	if v < -RelationLimit {
		return -RelationLimit
	}
	return v
}
