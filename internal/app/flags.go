package app

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"particle-life/internal/sims/particlelife"
)

// Relation sources accepted by -relations besides a JSON file path.
const (
	RelationsZero   = "zero"
	RelationsRandom = "random"
	RelationsNoise  = "noise"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Width    int
	Height   int
	TPS      int
	Seed     int64
	HUDWidth int
	Ticks    int
	LogLevel string

	Particles int
	Species   int
	Workers   int
	RMin      float64
	RMax      float64
	Friction  float64
	Relations string
}

// NewConfig returns a Config populated with the simulation defaults.
func NewConfig() *Config {
	sim := particlelife.DefaultConfig()
	return &Config{
		Sim:       "particlelife",
		Width:     int(sim.Width),
		Height:    int(sim.Height),
		TPS:       60,
		Seed:      sim.Seed,
		HUDWidth:  240,
		LogLevel:  "info",
		Particles: sim.ParticleCount,
		Species:   sim.SpeciesCount,
		RMin:      sim.Params.RMin,
		RMax:      sim.Params.RMax,
		Friction:  sim.Params.Friction,
		Relations: RelationsRandom,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "width", c.Width, "window width; also bounds initial placement")
	fs.IntVar(&c.Height, "height", c.Height, "window height; also bounds initial placement")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for placement and relation seeding")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width, 0 hides it")
	fs.IntVar(&c.Ticks, "ticks", c.Ticks, "stop after this many ticks, 0 runs until interrupted")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.IntVar(&c.Particles, "particles", c.Particles, "particle count")
	fs.IntVar(&c.Species, "species", c.Species, "species count")
	fs.IntVar(&c.Workers, "workers", c.Workers, "force phase goroutines, 0 uses every CPU")
	fs.Float64Var(&c.RMin, "r-min", c.RMin, "repulsion core radius as a fraction of r-max, in (0, 1)")
	fs.Float64Var(&c.RMax, "r-max", c.RMax, "interaction cutoff distance")
	fs.Float64Var(&c.Friction, "friction", c.Friction, "velocity damping factor per tick")
	fs.StringVar(&c.Relations, "relations", c.Relations, "relation source: zero, random, noise or a JSON file")
}

// SimArgs converts the flags into the key/value map simulation factories
// accept.
func (c *Config) SimArgs() map[string]string {
	return map[string]string{
		"w":              strconv.Itoa(c.Width),
		"h":              strconv.Itoa(c.Height),
		"seed":           strconv.FormatInt(c.Seed, 10),
		"particle_count": strconv.Itoa(c.Particles),
		"species_count":  strconv.Itoa(c.Species),
		"workers":        strconv.Itoa(c.Workers),
		"r_min":          strconv.FormatFloat(c.RMin, 'g', -1, 64),
		"r_max":          strconv.FormatFloat(c.RMax, 'g', -1, 64),
		"friction":       strconv.FormatFloat(c.Friction, 'g', -1, 64),
	}
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// SetupLogger installs a text slog handler on stderr as the default logger.
func SetupLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
