package particlelife

import (
	"fmt"
	"log/slog"
	"strconv"

	"particle-life/internal/core"
)

// Parameters reports the live configuration grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	params := w.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Population",
			Params: []core.Parameter{
				intParam("particle_count", "Particles", w.cfg.ParticleCount),
				intParam("species_count", "Species", w.cfg.SpeciesCount),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Forces",
			Params: []core.Parameter{
				floatParam("r_min", "Core radius", params.RMin),
				floatParam("r_max", "Cutoff radius", params.RMax),
				floatParam("friction", "Friction", params.Friction),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable settings.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "particle_count", Label: "Particles", Type: core.ParamTypeInt, Step: 50, Min: 1, Max: 5000, HasMin: true, HasMax: true},
		{Key: "species_count", Label: "Species", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 8, HasMin: true, HasMax: true},
		{Key: "r_min", Label: "Core radius", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 0.95, HasMin: true, HasMax: true},
		{Key: "r_max", Label: "Cutoff radius", Type: core.ParamTypeFloat, Step: 5, Min: 5, HasMin: true},
		{Key: "friction", Label: "Friction", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 1, HasMin: true, HasMax: true},
	}
}

// ApplyFloat sets r_min, r_max or friction, rejecting values the force law
// cannot evaluate.
func (w *World) ApplyFloat(key string, value float64) error {
	return w.updateParams(func(p *Params) error {
		switch key {
		case "r_min":
			p.RMin = value
		case "r_max":
			p.RMax = value
		case "friction":
			p.Friction = value
		default:
			return fmt.Errorf("%w: unknown float parameter %q", ErrInvalidConfig, key)
		}
		return nil
	})
}

// ApplyInt sets particle_count or species_count. Either change rebuilds the
// population.
func (w *World) ApplyInt(key string, value int) error {
	return w.updateCounts(func(particles, species *int) error {
		switch key {
		case "particle_count":
			*particles = value
		case "species_count":
			*species = value
		default:
			return fmt.Errorf("%w: unknown int parameter %q", ErrInvalidConfig, key)
		}
		return nil
	})
}

// SetFloatParameter implements core.FloatParameterSetter.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if err := w.ApplyFloat(key, value); err != nil {
		slog.Warn("parameter rejected", "key", key, "value", value, "error", err)
		return false
	}
	return true
}

// SetIntParameter implements core.IntParameterSetter.
func (w *World) SetIntParameter(key string, value int) bool {
	if err := w.ApplyInt(key, value); err != nil {
		slog.Warn("parameter rejected", "key", key, "value", value, "error", err)
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func init() {
	core.Register("particlelife", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return NewWithConfig(c)
	})
}
