package particlelife

import (
	"errors"
	"math"
	"testing"
)

func TestParamsValidate(t *testing.T) {
	cases := []struct {
		name   string
		params Params
		ok     bool
	}{
		{"defaults", DefaultConfig().Params, true},
		{"zero r_max", Params{RMin: 0.3, RMax: 0, Friction: 0.5}, false},
		{"negative r_max", Params{RMin: 0.3, RMax: -5, Friction: 0.5}, false},
		{"infinite r_max", Params{RMin: 0.3, RMax: math.Inf(1), Friction: 0.5}, false},
		{"zero r_min", Params{RMin: 0, RMax: 10, Friction: 0.5}, false},
		{"r_min of one", Params{RMin: 1, RMax: 10, Friction: 0.5}, false},
		{"NaN r_min", Params{RMin: math.NaN(), RMax: 10, Friction: 0.5}, false},
		{"collapsed band", Params{RMin: 0.5, RMax: 0.5, Friction: 0.5}, false},
		{"NaN friction", Params{RMin: 0.3, RMax: 10, Friction: math.NaN()}, false},
		{"friction above one is allowed", Params{RMin: 0.3, RMax: 10, Friction: 1.5}, true},
		{"small r_max", Params{RMin: 0.3, RMax: 0.4, Friction: 0.5}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.params.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigValidateCounts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpeciesCount = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("species_count 0: got %v", err)
	}
	cfg = DefaultConfig()
	cfg.ParticleCount = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("particle_count 0: got %v", err)
	}
	if _, err := NewWithConfig(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("NewWithConfig accepted invalid config: %v", err)
	}
	for _, tc := range []struct {
		name string
		w, h float64
	}{
		{"negative width", -5, 600},
		{"nan width", math.NaN(), 600},
		{"inf width", math.Inf(1), 600},
		{"nan height", 800, math.NaN()},
		{"-inf height", 800, math.Inf(-1)},
	} {
		cfg = DefaultConfig()
		cfg.Width, cfg.Height = tc.w, tc.h
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: got %v", tc.name, err)
		}
		if _, err := NewWithConfig(cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: NewWithConfig accepted bounds", tc.name)
		}
	}
}

func TestFromMap(t *testing.T) {
	c, err := FromMap(map[string]string{
		"w":              "320",
		"h":              "240",
		"seed":           "9",
		"particle_count": "250",
		"species_count":  "5",
		"workers":        "2",
		"r_min":          "0.25",
		"r_max":          "80",
		"friction":       "0.75",
		"unknown":        "ignored",
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if c.Width != 320 || c.Height != 240 || c.Seed != 9 {
		t.Fatalf("bounds/seed = %v %v %v", c.Width, c.Height, c.Seed)
	}
	if c.ParticleCount != 250 || c.SpeciesCount != 5 || c.Workers != 2 {
		t.Fatalf("counts = %d %d %d", c.ParticleCount, c.SpeciesCount, c.Workers)
	}
	if c.Params != (Params{RMin: 0.25, RMax: 80, Friction: 0.75}) {
		t.Fatalf("params = %+v", c.Params)
	}
}

func TestFromMapErrors(t *testing.T) {
	for _, m := range []map[string]string{
		{"r_max": "abc"},
		{"species_count": "1.5"},
		{"seed": "x"},
		{"r_min": "0"},
		{"species_count": "0"},
	} {
		if _, err := FromMap(m); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("FromMap(%v) = %v, want ErrInvalidConfig", m, err)
		}
	}
	c, err := FromMap(nil)
	if err != nil || c != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v, %v", c, err)
	}
}
