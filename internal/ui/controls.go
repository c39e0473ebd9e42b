package ui

import (
	"image"
	"math"
	"strconv"

	"life-canvas/internal/core"
)

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlStates(controls []core.ParameterControl) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		states[i] = controlState{control: ctrl, value: "--"}
	}
	return states
}

// refreshControls copies current parameter values into the control states.
func refreshControls(states []controlState, snap core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

type setters struct {
	ints   core.IntParameterSetter
	floats core.FloatParameterSetter
}

func (s setters) target(state *controlState, direction int) (int, float64, bool) {
	switch state.control.Type {
	case core.ParamTypeInt:
		if s.ints == nil {
			return 0, 0, false
		}
		step := int(math.Round(state.control.Step))
		if step <= 0 {
			step = 1
		}
		target := state.control.ClampInt(state.intValue + direction*step)
		return target, 0, target != state.intValue
	case core.ParamTypeFloat:
		if s.floats == nil {
			return 0, 0, false
		}
		step := state.control.Step
		if step <= 0 {
			step = 0.05
		}
		target := state.control.Clamp(state.floatValue + float64(direction)*step)
		// Snap to the step grid so repeated clicks don't drift.
		target = math.Round(target/step) * step
		return 0, target, math.Abs(target-state.floatValue) >= 1e-9
	}
	return 0, 0, false
}

// canAdjust reports whether a click in direction would change the value.
func (s setters) canAdjust(state *controlState, direction int) bool {
	if state == nil || direction == 0 || !state.hasValue {
		return false
	}
	_, _, ok := s.target(state, direction)
	return ok
}

// adjust applies one step in direction and reports whether it took effect.
func (s setters) adjust(state *controlState, direction int) bool {
	if !s.canAdjust(state, direction) {
		return false
	}
	i, f, _ := s.target(state, direction)
	switch state.control.Type {
	case core.ParamTypeInt:
		if !s.ints.SetIntParameter(state.control.Key, i) {
			return false
		}
		state.intValue = i
		state.floatValue = float64(i)
		state.value = strconv.Itoa(i)
	case core.ParamTypeFloat:
		if !s.floats.SetFloatParameter(state.control.Key, f) {
			return false
		}
		state.floatValue = f
		state.value = formatFloat(state.control, f)
	}
	return true
}

func layoutControls(states []controlState, width, top int) {
	for i := range states {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = rowTop
		states[i].minusRect = minusRect
		states[i].plusRect = plusRect
	}
}

// hitControl finds the button under (x, y) in panel coordinates.
func hitControl(states []controlState, x, y int) (idx, direction int, ok bool) {
	pt := image.Pt(x, y)
	for i := range states {
		if pt.In(states[i].minusRect) {
			return i, -1, true
		}
		if pt.In(states[i].plusRect) {
			return i, 1, true
		}
	}
	return 0, 0, false
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	textLine       = 18
)
