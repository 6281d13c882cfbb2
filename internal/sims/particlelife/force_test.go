package particlelife

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-9

func vecNear(a, b r2.Vec, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func at(x, y float64, species int) Particle {
	return Particle{Pos: r2.Vec{X: x, Y: y}, Species: species}
}

func TestForceCutoff(t *testing.T) {
	p := Params{RMin: 0.3, RMax: 10, Friction: 0.5}
	r := NewRelations(1)
	r.Set(0, 0, 0.5)

	for _, other := range []Particle{at(10.0001, 0, 0), at(0, -11, 0), at(8, 8, 0), at(1e6, 1e6, 0)} {
		if got := Force(at(0, 0, 0), other, p, r); got != (r2.Vec{}) {
			t.Fatalf("force from %v = %v, want zero beyond cutoff", other.Pos, got)
		}
	}
}

func TestForceInnerRepulsion(t *testing.T) {
	p := Params{RMin: 0.1, RMax: 10, Friction: 1}
	r := NewRelations(2)
	r.Set(0, 1, 0.5)

	self := at(0, 0, 0)
	other := at(0.5, 0, 1)
	got := Force(self, other, p, r)
	if want := (r2.Vec{X: -0.25}); !vecNear(got, want, tolerance) {
		t.Fatalf("force = %v, want %v", got, want)
	}

	// Anti-parallel to delta with magnitude |delta| * (1 - d/r_min).
	for _, other := range []Particle{at(0.3, 0.4, 1), at(-0.2, 0.1, 0), at(0, -0.9, 1)} {
		delta := r2.Sub(other.Pos, self.Pos)
		d := r2.Norm(delta) / p.RMax
		f := Force(self, other, p, r)
		if r2.Dot(f, delta) >= 0 {
			t.Fatalf("force %v not repulsive for delta %v", f, delta)
		}
		want := r2.Norm(delta) * (1 - d/p.RMin)
		if math.Abs(r2.Norm(f)-want) > tolerance {
			t.Fatalf("magnitude %v, want %v", r2.Norm(f), want)
		}
	}
}

func TestForceBandScenario(t *testing.T) {
	p := Params{RMin: 0.1, RMax: 10, Friction: 1}
	r := NewRelations(2)
	r.Set(0, 1, 0.5)

	got := Force(at(0, 0, 0), at(5, 0, 1), p, r)
	want := r2.Vec{X: 5 * 10 * 0.5 * (0.5 - 0.1) / (5.05 - 0.1)}
	if !vecNear(got, want, tolerance) {
		t.Fatalf("force = %v, want %v", got, want)
	}
	if math.Abs(got.X-2.0202) > 1e-4 {
		t.Fatalf("force.X = %v, want about 2.0202", got.X)
	}
}

func TestForceDirectionalCoefficients(t *testing.T) {
	p := Params{RMin: 0.1, RMax: 10, Friction: 1}
	r := NewRelations(2)
	r.Set(0, 1, 0.5)
	r.Set(1, 0, -0.25)

	a := at(0, 0, 0)
	b := at(3, 4, 1)
	onA := Force(a, b, p, r)
	onB := Force(b, a, p, r)

	// Same distance, opposite deltas: onB = -onA * (-0.25 / 0.5).
	want := r2.Scale(0.5, onA)
	if !vecNear(onB, want, tolerance) {
		t.Fatalf("force on B = %v, want %v", onB, want)
	}
	if r2.Dot(onA, r2.Sub(b.Pos, a.Pos)) <= 0 {
		t.Fatal("positive coefficient should attract A toward B")
	}
	if r2.Dot(onB, r2.Sub(a.Pos, b.Pos)) >= 0 {
		t.Fatal("negative coefficient should push B away from A")
	}
}

func TestForceAtCoreEdgeUsesBand(t *testing.T) {
	p := Params{RMin: 0.5, RMax: 10, Friction: 1}
	// A one-species table with species 5 particles makes any coefficient
	// lookup panic, which exposes which branch ran.
	r := NewRelations(1)

	func() {
		defer func() {
			if recover() != nil {
				t.Fatal("just inside the core must not consult relations")
			}
		}()
		Force(at(0, 0, 5), at(4.999, 0, 5), p, r)
	}()

	defer func() {
		if recover() == nil {
			t.Fatal("d == r_min must take the interaction band branch")
		}
	}()
	Force(at(0, 0, 5), at(5, 0, 5), p, r)
}

func TestForceFoldBack(t *testing.T) {
	// With r_max below 2 the midpoint avg falls inside the normalized range
	// and the ramp folds back.
	p := Params{RMin: 0.2, RMax: 1, Friction: 1}
	r := NewRelations(1)
	r.Set(0, 0, 0.4)

	avg := (p.RMin + p.RMax) / 2
	dist := 0.9
	folded := dist - avg + p.RMin
	want := r2.Vec{X: dist * p.RMax * 0.4 * (folded - p.RMin) / (avg - p.RMin)}
	got := Force(at(0, 0, 0), at(dist, 0, 0), p, r)
	if !vecNear(got, want, tolerance) {
		t.Fatalf("force = %v, want %v", got, want)
	}

	unfolded := r2.Vec{X: dist * p.RMax * 0.4 * (dist - p.RMin) / (avg - p.RMin)}
	if vecNear(got, unfolded, 1e-6) {
		t.Fatal("expected fold-back to change the force past avg")
	}
}
