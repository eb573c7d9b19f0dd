package app

import (
	"flag"

	"timestable/internal/sims/timestable"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Points       int
	Multiplicand float64
	FrameMs      float64
	Increment    float64
	Paused       bool
	Resume       string

	TPS      int
	HUDWidth int
}

// NewConfig returns a Config populated with the animation defaults.
func NewConfig() *Config {
	def := timestable.DefaultConfig()
	return &Config{
		Points:       def.NumPoints,
		Multiplicand: def.Multiplicand,
		FrameMs:      def.FrameIntervalMs,
		Increment:    def.Increment,
		Resume:       def.Resume.String(),
		TPS:          60,
		HUDWidth:     240,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Points, "points", c.Points, "number of points around the circle")
	fs.Float64Var(&c.Multiplicand, "multiplicand", c.Multiplicand, "starting multiplicand")
	fs.Float64Var(&c.FrameMs, "framerate", c.FrameMs, "milliseconds between animation ticks")
	fs.Float64Var(&c.Increment, "increment", c.Increment, "multiplicand step per tick")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.StringVar(&c.Resume, "resume", c.Resume, "resume policy after a pause: multiplicand or current")
	fs.IntVar(&c.TPS, "tps", c.TPS, "screen updates per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
}

// SimConfig converts the flags into a validated animation config.
func (c *Config) SimConfig() (timestable.Config, error) {
	cfg := timestable.DefaultConfig()
	resume, err := timestable.ParseResumePolicy(c.Resume)
	if err != nil {
		return cfg, err
	}
	cfg.NumPoints = c.Points
	cfg.Multiplicand = c.Multiplicand
	cfg.FrameIntervalMs = c.FrameMs
	cfg.Increment = c.Increment
	cfg.Paused = c.Paused
	cfg.Resume = resume
	return cfg, cfg.Validate()
}
