package app

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"particle-life/internal/sims/particlelife"
)

func TestBindOverridesDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-particles", "64", "-species", "5", "-r-min", "0.2", "-friction", "0.9", "-relations", "noise"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Particles != 64 || cfg.Species != 5 || cfg.RMin != 0.2 || cfg.Friction != 0.9 || cfg.Relations != RelationsNoise {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.RMax != particlelife.DefaultConfig().Params.RMax {
		t.Fatalf("r-max changed without a flag: %v", cfg.RMax)
	}
}

func TestSimArgsRoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.RMin = 0.15
	cfg.Workers = 3
	got, err := particlelife.FromMap(cfg.SimArgs())
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if got.Params.RMin != 0.15 || got.Workers != 3 || got.ParticleCount != cfg.Particles {
		t.Fatalf("sim config = %+v", got)
	}
}

func TestLevel(t *testing.T) {
	cfg := NewConfig()
	cfg.LogLevel = "debug"
	if lvl, err := cfg.Level(); err != nil || lvl != slog.LevelDebug {
		t.Fatalf("Level() = %v, %v", lvl, err)
	}
	cfg.LogLevel = "loud"
	if _, err := cfg.Level(); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestBuildSeedsRelations(t *testing.T) {
	for _, source := range []string{RelationsZero, RelationsRandom, RelationsNoise} {
		cfg := NewConfig()
		cfg.Particles = 10
		cfg.Species = 4
		cfg.Relations = source
		world, err := Build(cfg)
		if err != nil {
			t.Fatalf("Build(%s): %v", source, err)
		}
		rows := world.RelationRows()
		if len(rows) != 4 {
			t.Fatalf("%s: relations sized %d, want 4", source, len(rows))
		}
		nonZero := false
		for _, row := range rows {
			for _, v := range row {
				if v != 0 {
					nonZero = true
				}
			}
		}
		if nonZero != (source != RelationsZero) {
			t.Fatalf("%s: nonZero = %v", source, nonZero)
		}
	}
}

func TestBuildFromPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.json")
	if err := os.WriteFile(path, []byte(`[[0, 0.5], [-0.5, 0]]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := NewConfig()
	cfg.Species = 2
	cfg.Relations = path
	world, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := world.Relations().Get(1, 0); got != -0.5 {
		t.Fatalf("relation(1,0) = %v, want -0.5", got)
	}

	cfg.Species = 3
	if _, err := Build(cfg); !errors.Is(err, particlelife.ErrInvalidConfig) {
		t.Fatalf("mis-sized preset: got %v", err)
	}
}

func TestBuildRejects(t *testing.T) {
	cfg := NewConfig()
	cfg.Sim = "nope"
	if _, err := Build(cfg); err == nil {
		t.Fatal("expected unknown sim error")
	}
	cfg = NewConfig()
	cfg.RMax = -1
	if _, err := Build(cfg); !errors.Is(err, particlelife.ErrInvalidConfig) {
		t.Fatalf("negative r-max: got %v", err)
	}
}
