package particlelife

import "gonum.org/v1/gonum/spatial/r2"

// Force returns the force self receives from other.
//
// Beyond RMax there is no influence. Inside the normalized RMin core the pair
// repels linearly, vanishing at the core edge. Past the core the species
// coefficient relations[self][other] scales a ramp that folds back once the
// normalized distance passes (RMin+RMax)/2.
func Force(self, other Particle, p Params, relations *Relations) r2.Vec {
	delta := r2.Sub(other.Pos, self.Pos)
	d := r2.Norm(delta)
	if d > p.RMax {
		return r2.Vec{}
	}
	d /= p.RMax
	if d < p.RMin {
		return r2.Scale(d/p.RMin-1, delta)
	}

	// avg mixes the RMin fraction with the absolute RMax; the visual
	// behaviour depends on it, so it stays as is.
	avg := (p.RMin + p.RMax) / 2
	if d > avg {
		d = d - avg + p.RMin
	}
	g := relations.Get(self.Species, other.Species)
	return r2.Scale(g*(d-p.RMin)/(avg-p.RMin), r2.Scale(p.RMax, delta))
}
