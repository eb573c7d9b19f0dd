package timestable

import (
	"strconv"

	"timestable/internal/core"
)

// Parameter keys shared by the HUD, the terminal controls and FromMap.
const (
	KeyMultiplicand  = "multiplicand"
	KeyNumPoints     = "points"
	KeyFrameInterval = "framerate"
	KeyIncrement     = "increment"
	KeyPlaying       = "playing"
)

var controls = []core.ParameterControl{
	{Key: KeyMultiplicand, Label: "Multiplicand", Type: core.ParamTypeFloat, Step: 1, Min: 0, Max: MaxMultiplicand},
	{Key: KeyNumPoints, Label: "Points", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 360},
	{Key: KeyFrameInterval, Label: "Frame ms", Type: core.ParamTypeFloat, Step: 50, Min: 0, Max: 2000},
	{Key: KeyIncrement, Label: "Step size", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
	{Key: KeyPlaying, Label: "Play/Pause", Type: core.ParamTypeBool},
}

// ParameterControls lists the adjustable controls and their widget ranges.
func (a *Animation) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(controls))
	copy(out, controls)
	return out
}

// Parameters snapshots the current control values.
func (a *Animation) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Params: []core.Parameter{
			floatParam(KeyMultiplicand, "Multiplicand", a.multiplicand),
			intParam(KeyNumPoints, "Points", a.state.NumPoints),
			floatParam(KeyFrameInterval, "Frame ms", a.state.FrameIntervalMs),
			floatParam(KeyIncrement, "Step size", a.state.Increment),
			boolParam(KeyPlaying, "Playing", a.state.Playing),
		},
	}
}

// SetIntParameter routes integer controls to their setter.
func (a *Animation) SetIntParameter(key string, value int) error {
	switch key {
	case KeyNumPoints:
		return a.OnNumPointsChanged(value)
	}
	return invalidf("unknown int parameter %q", key)
}

// SetFloatParameter routes floating point controls to their setter.
func (a *Animation) SetFloatParameter(key string, value float64) error {
	switch key {
	case KeyMultiplicand:
		return a.OnMultiplicandChanged(value)
	case KeyFrameInterval:
		return a.OnFramerateChanged(value)
	case KeyIncrement:
		return a.OnIncrementChanged(value)
	}
	return invalidf("unknown float parameter %q", key)
}

// Toggle flips boolean controls.
func (a *Animation) Toggle(key string) error {
	if key != KeyPlaying {
		return invalidf("unknown toggle %q", key)
	}
	a.OnTogglePlayPause()
	return nil
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
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

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
