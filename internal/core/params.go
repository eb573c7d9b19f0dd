package core

import "math"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single value exposed by the animation.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterSnapshot captures the current set of parameters.
type ParameterSnapshot struct {
	Params []Parameter
}

// Lookup returns the parameter stored under key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, p := range s.Params {
		if p.Key == key {
			return p, true
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable parameter exposed on the HUD or
// the keyboard. Bounds are the widget range; the animation itself does not
// clamp.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min float64
	Max float64
}

// ParameterControlsProvider exposes the list of adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
	Parameters() ParameterSnapshot
}

// IntParameterSetter updates integer parameters. It fails with an
// invalid-parameter error when the value is out of contract.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) error
}

// FloatParameterSetter updates floating point parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) error
}

// Toggler flips a boolean parameter such as play/pause.
type Toggler interface {
	Toggle(key string) error
}

// Adjust moves value one step in direction and clamps the result to the
// control bounds. Integer controls round both the step and the result.
// ok is false when the clamped target equals value.
func Adjust(ctrl ParameterControl, value float64, direction int) (target float64, ok bool) {
	if direction == 0 {
		return value, false
	}
	step := ctrl.Step
	switch ctrl.Type {
	case ParamTypeInt:
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
	case ParamTypeFloat:
		if step <= 0 {
			step = 0.05
		}
	default:
		return value, false
	}
	target = value + float64(direction)*step
	if ctrl.Type == ParamTypeInt {
		target = math.Round(target)
	}
	if ctrl.Min < ctrl.Max {
		if target < ctrl.Min {
			target = ctrl.Min
		}
		if target > ctrl.Max {
			target = ctrl.Max
		}
	}
	if math.Abs(target-value) < 1e-9 {
		return value, false
	}
	return target, true
}
