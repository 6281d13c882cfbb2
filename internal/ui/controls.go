package ui

import (
	"image/color"
	"math"
	"strconv"

	"particle-life/internal/core"
)

const (
	relationStepSize = 0.05
	relationLimit    = 0.5
	defaultFloatStep = 0.05
)

// stepTarget returns the value one step away from current in direction,
// clamped to the control bounds, and whether that differs from current.
func stepTarget(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if ctrl.Type == core.ParamTypeInt {
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
	} else if step <= 0 {
		step = defaultFloatStep
	}
	target := current + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, math.Abs(target-current) > 1e-9
}

// formatValue renders a control value with a precision matching its step.
func formatValue(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(value)))
	}
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// relationStep nudges a relation coefficient and keeps it inside the
// editable range.
func relationStep(current float64, direction int) float64 {
	v := current + float64(direction)*relationStepSize
	v = math.Round(v/relationStepSize) * relationStepSize
	return math.Max(-relationLimit, math.Min(relationLimit, v))
}

// relationColor shades attraction green and repulsion red, scaled by
// magnitude.
func relationColor(v float64) color.RGBA {
	m := math.Min(math.Abs(v)/relationLimit, 1)
	level := uint8(40 + m*200)
	switch {
	case v > 0:
		return color.RGBA{R: 30, G: level, B: 40, A: 255}
	case v < 0:
		return color.RGBA{R: level, G: 30, B: 40, A: 255}
	default:
		return color.RGBA{R: 40, G: 40, B: 46, A: 255}
	}
}
