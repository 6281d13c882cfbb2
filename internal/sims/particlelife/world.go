package particlelife

import (
	"fmt"
	"log/slog"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"

	"particle-life/internal/core"
)

type populationState uint8

const (
	stateActive populationState = iota
	stateReinitializing
)

func (s populationState) String() string {
	switch s {
	case stateActive:
		return "active"
	case stateReinitializing:
		return "reinitializing"
	default:
		return fmt.Sprintf("populationState(%d)", uint8(s))
	}
}

// World is the simulation context: particle set, parameters and relation
// table. All mutation goes through its methods, which serialise against Step
// so a tick always observes a single consistent configuration.
type World struct {
	mu sync.RWMutex

	cfg    Config
	bounds core.Bounds

	relations *Relations
	cur       []Particle
	nxt       []Particle

	// particleCount and speciesCount are the sizes currently allocated;
	// cfg carries the requested sizes.
	particleCount int
	speciesCount  int
	state         populationState

	tick    uint64
	workers int
	rng     *core.RNG
}

// New returns a World with default parameters and the given counts.
func New(particles, species int) (*World, error) {
	cfg := DefaultConfig()
	cfg.ParticleCount = particles
	cfg.SpeciesCount = species
	return NewWithConfig(cfg)
}

// NewWithConfig validates cfg and builds the initial population. The relation
// table starts zero-filled.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		cfg:     cfg,
		bounds:  core.Bounds{W: cfg.Width, H: cfg.Height},
		workers: cfg.workers(),
		rng:     core.NewRNG(cfg.Seed),
	}
	w.reconcile()
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "particlelife" }

// Bounds reports the window extents used for initial placement.
func (w *World) Bounds() core.Bounds {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.bounds
}

// SetBounds changes the extents used by the next reinitialisation or reset.
// Existing particles are not moved.
func (w *World) SetBounds(width, height float64) error {
	if err := validateBounds(width, height); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bounds = core.Bounds{W: width, H: height}
	w.cfg.Width, w.cfg.Height = width, height
	return nil
}

// Reset scatters the current population again using seed, keeping counts,
// parameters and relations. A zero seed reuses the configured seed.
func (w *World) Reset(seed int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.scatter()
	w.tick = 0
}

// Tick returns the number of steps taken since the last reset or
// reinitialisation.
func (w *World) Tick() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.tick
}

// Params returns the active scalar parameters.
func (w *World) Params() Params {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cfg.Params
}

// Config returns the configuration currently requested of the world.
func (w *World) Config() Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cfg
}

// Counts returns the allocated particle and species counts.
func (w *World) Counts() (particles, species int) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.particleCount, w.speciesCount
}

// Particles exposes the current particle buffer. The slice is owned by the
// world and is only valid until the next call to Step; callers on other
// goroutines should use Snapshot.
func (w *World) Particles() []Particle { return w.cur }

// Snapshot returns a copy of the current particle set.
func (w *World) Snapshot() []Particle {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]Particle(nil), w.cur...)
}

// Relations returns a copy of the relation table.
func (w *World) Relations() *Relations {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.relations.Clone()
}

// RelationRows returns the relation table as row slices.
func (w *World) RelationRows() [][]float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.relations.Rows()
}

// SetRelation overwrites one coefficient. Indices outside the active species
// count are rejected.
func (w *World) SetRelation(source, target int, value float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.relations.inRange(source, target) {
		return fmt.Errorf("%w: relation (%d, %d) outside %d species", ErrInvalidConfig, source, target, w.speciesCount)
	}
	w.relations.Set(source, target, value)
	return nil
}

// SetRelations replaces the whole relation table. Its size must match the
// active species count.
func (w *World) SetRelations(r *Relations) error {
	if r == nil {
		return fmt.Errorf("%w: nil relation table", ErrInvalidConfig)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if r.Size() != w.speciesCount {
		return fmt.Errorf("%w: relation table sized for %d species, world has %d", ErrInvalidConfig, r.Size(), w.speciesCount)
	}
	w.relations = r.Clone()
	return nil
}

// SetParams replaces the scalar parameters after validating them. The change
// applies from the next tick.
func (w *World) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cfg.Params = p
	return nil
}

// updateParams applies edit to a copy of the active parameters and commits
// the result if it validates. The read and the write share one critical
// section so concurrent edits to different keys are not lost.
func (w *World) updateParams(edit func(*Params) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	p := w.cfg.Params
	if err := edit(&p); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	w.cfg.Params = p
	return nil
}

// SetCounts requests a new particle and species count. When either differs
// from the allocated sizes the population is rebuilt immediately.
func (w *World) SetCounts(particles, species int) error {
	return w.updateCounts(func(p, s *int) error {
		*p, *s = particles, species
		return nil
	})
}

// updateCounts applies edit to the requested counts under the write lock and
// rebuilds the population if they changed.
func (w *World) updateCounts(edit func(particles, species *int) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	particles, species := w.cfg.ParticleCount, w.cfg.SpeciesCount
	if err := edit(&particles, &species); err != nil {
		return err
	}
	if particles < 1 {
		return fmt.Errorf("%w: particle_count must be >= 1, got %d", ErrInvalidConfig, particles)
	}
	if species < 1 {
		return fmt.Errorf("%w: species_count must be >= 1, got %d", ErrInvalidConfig, species)
	}
	w.cfg.ParticleCount = particles
	w.cfg.SpeciesCount = species
	w.reconcile()
	return nil
}

// reconcile moves the population controller through a reinitialisation when
// the requested counts differ from the allocated ones. Callers hold mu.
func (w *World) reconcile() {
	if w.cfg.ParticleCount == w.particleCount && w.cfg.SpeciesCount == w.speciesCount {
		return
	}
	w.state = stateReinitializing
	slog.Debug("population state", "state", w.state, "tick", w.tick)
	w.reinitialize()
	w.state = stateActive
}

// reinitialize discards particles and relations and allocates them at the
// requested sizes. Params are left untouched. Callers hold mu.
func (w *World) reinitialize() {
	prevParticles, prevSpecies := w.particleCount, w.speciesCount

	n, species := w.cfg.ParticleCount, w.cfg.SpeciesCount
	w.cur = make([]Particle, n)
	w.nxt = make([]Particle, n)
	w.relations = NewRelations(species)
	w.particleCount, w.speciesCount = n, species
	w.scatter()
	w.tick = 0

	slog.Info("population reinitialized",
		"particles", n,
		"species", species,
		"prev_particles", prevParticles,
		"prev_species", prevSpecies,
	)
}

// scatter places every particle uniformly inside the window half-extents with
// zero velocity and round-robin species. Callers hold mu.
func (w *World) scatter() {
	hx, hy := w.bounds.HalfExtents()
	for i := range w.cur {
		w.cur[i] = Particle{
			Pos: r2.Vec{
				X: w.rng.Range(-hx, hx),
				Y: w.rng.Range(-hy, hy),
			},
			Species: i % w.speciesCount,
		}
	}
}
