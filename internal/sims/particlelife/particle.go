package particlelife

import "gonum.org/v1/gonum/spatial/r2"

// Particle is a point mass tagged with a species. Position and velocity are
// unconstrained; there is no wrapping or clamping.
type Particle struct {
	Pos     r2.Vec
	Vel     r2.Vec
	Species int
}
