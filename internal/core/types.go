package core

// Bounds describes the window extents particles are initially scattered within.
type Bounds struct {
	W float64
	H float64
}

// HalfExtents returns half the width and half the height.
func (b Bounds) HalfExtents() (float64, float64) { return b.W / 2, b.H / 2 }

// Sim defines the minimal contract a particle simulation must implement.
type Sim interface {
	Name() string
	Bounds() Bounds
	Reset(seed int64)
	Step()
}

// Factory constructs a Sim using an optional configuration map. It returns an
// error when the map holds an invalid configuration.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
