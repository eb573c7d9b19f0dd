package timestable

import (
	"strconv"
	"strings"

	"timestable/internal/core"
)

// ResumePolicy decides where the animation continues after a pause.
type ResumePolicy int

const (
	// ResumeFromMultiplicand jumps to the multiplicand when it was changed
	// while paused, and otherwise continues from the current value.
	ResumeFromMultiplicand ResumePolicy = iota
	// ResumeFromCurrent always continues from the current value.
	ResumeFromCurrent
)

// String returns the flag spelling of the policy.
func (p ResumePolicy) String() string {
	switch p {
	case ResumeFromCurrent:
		return "current"
	default:
		return "multiplicand"
	}
}

// ParseResumePolicy accepts "multiplicand" or "current".
func ParseResumePolicy(s string) (ResumePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "multiplicand", "jump":
		return ResumeFromMultiplicand, nil
	case "current", "continue":
		return ResumeFromCurrent, nil
	}
	return ResumeFromMultiplicand, invalidf("unknown resume policy %q", s)
}

// Config controls the initial animation state and the canvas layout.
type Config struct {
	Width  int
	Height int

	// CircleX, CircleY and Diameter describe the square box the circle is
	// inscribed in.
	CircleX  float64
	CircleY  float64
	Diameter float64

	Multiplicand    float64
	NumPoints       int
	FrameIntervalMs float64
	Increment       float64
	Paused          bool

	Resume ResumePolicy
}

// DefaultConfig returns the standard configuration: an 800x500 canvas with a
// 300px circle boxed at (250, 50), 100 points and a one second frame.
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          500,
		CircleX:         250,
		CircleY:         50,
		Diameter:        300,
		Multiplicand:    0,
		NumPoints:       100,
		FrameIntervalMs: 1000,
		Increment:       1,
		Resume:          ResumeFromMultiplicand,
	}
}

// Layout returns the circle placement described by the config.
func (c Config) Layout() Layout {
	return LayoutFromBox(core.Point{X: c.CircleX, Y: c.CircleY}, c.Diameter)
}

// Validate reports the first out-of-contract value.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return invalidf("canvas size %dx%d", c.Width, c.Height)
	}
	if !finite(c.Diameter) || c.Diameter < 0 {
		return invalidf("diameter %v", c.Diameter)
	}
	if !finite(c.CircleX) || !finite(c.CircleY) {
		return invalidf("circle offset (%v, %v)", c.CircleX, c.CircleY)
	}
	if c.NumPoints < 0 {
		return invalidf("num points %d", c.NumPoints)
	}
	if !finite(c.Multiplicand) {
		return invalidf("multiplicand %v", c.Multiplicand)
	}
	if !finite(c.FrameIntervalMs) || c.FrameIntervalMs < 0 {
		return invalidf("frame interval %vms", c.FrameIntervalMs)
	}
	if !finite(c.Increment) {
		return invalidf("increment %v", c.Increment)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["circle_x"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.CircleX = parsed
		}
	}
	if v, ok := cfg["circle_y"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.CircleY = parsed
		}
	}
	if v, ok := cfg["diameter"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Diameter = parsed
		}
	}
	if v, ok := cfg[KeyMultiplicand]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Multiplicand = parsed
		}
	}
	if v, ok := cfg[KeyNumPoints]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.NumPoints = parsed
		}
	}
	if v, ok := cfg[KeyFrameInterval]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.FrameIntervalMs = parsed
		}
	}
	if v, ok := cfg[KeyIncrement]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Increment = parsed
		}
	}
	if v, ok := cfg["paused"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Paused = parsed
		}
	}
	if v, ok := cfg["resume"]; ok {
		if parsed, err := ParseResumePolicy(v); err == nil {
			c.Resume = parsed
		}
	}
	return c
}
