package timestable

import (
	"image/color"
	"time"

	"timestable/internal/core"
)

// MaxMultiplicand is the value past which the running multiplicand wraps to 0.
const MaxMultiplicand = 360

// Renderer draws one frame: the boundary circle and every chord in c.
type Renderer interface {
	Render(points []core.Point, chords []core.Chord, c color.Color)
}

// State is the mutable animation record.
type State struct {
	CurrentValue    float64
	NumPoints       int
	FrameIntervalMs float64
	Increment       float64
	Playing         bool
	ColorIndex      int
}

// Frame describes the most recently rendered image.
type Frame struct {
	Multiplicand float64
	Points       []core.Point
	Chords       []core.Chord
	Color        color.RGBA
}

// Animation advances the times-table state on each tick and redraws it.
// It is not safe for concurrent use; all calls must come from the thread that
// owns the drawing surface.
type Animation struct {
	state  State
	layout Layout
	resume ResumePolicy

	palette  []color.RGBA
	cache    PointCache
	renderer Renderer
	sched    core.Scheduler

	// multiplicand is the externally set value; the running value lives in
	// state.CurrentValue.
	multiplicand       float64
	pausedMultiplicand float64

	last Frame
}

// New builds an Animation from cfg. A nil renderer or scheduler is replaced
// by a no-op.
func New(cfg Config, renderer Renderer, sched core.Scheduler) (*Animation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if renderer == nil {
		renderer = nopRenderer{}
	}
	if sched == nil {
		sched = nopScheduler{}
	}
	return &Animation{
		state: State{
			CurrentValue:    cfg.Multiplicand,
			NumPoints:       cfg.NumPoints,
			FrameIntervalMs: cfg.FrameIntervalMs,
			Increment:       cfg.Increment,
			Playing:         !cfg.Paused,
		},
		layout:             cfg.Layout(),
		resume:             cfg.Resume,
		palette:            Palette(),
		renderer:           renderer,
		sched:              sched,
		multiplicand:       cfg.Multiplicand,
		pausedMultiplicand: cfg.Multiplicand,
	}, nil
}

// Start draws the bare circle and, when playing, starts the scheduler.
func (a *Animation) Start() {
	points := a.cache.Points(a.state.NumPoints, a.layout)
	col := a.palette[a.state.ColorIndex]
	a.renderer.Render(points, nil, col)
	a.last = Frame{Multiplicand: a.state.CurrentValue, Points: points, Color: col}
	if a.state.Playing {
		a.sched.Start(a.interval(), a.OnTick)
	}
}

// Tick advances the multiplicand by the increment, wrapping to 0 past
// MaxMultiplicand, draws the frame in the current palette color and moves to
// the next color. Ticks while paused are ignored and report false.
func (a *Animation) Tick() bool {
	if !a.state.Playing {
		return false
	}
	a.state.CurrentValue += a.state.Increment
	if a.state.CurrentValue > MaxMultiplicand {
		a.state.CurrentValue = 0
	}
	a.draw()
	a.state.ColorIndex = (a.state.ColorIndex + 1) % len(a.palette)
	return true
}

// SetMultiplicand records the externally chosen multiplicand, pauses and
// redraws the present state.
func (a *Animation) SetMultiplicand(v float64) error {
	if !finite(v) {
		return invalidf("multiplicand %v", v)
	}
	a.pause()
	a.multiplicand = v
	a.draw()
	return nil
}

// SetNumPoints changes the number of points, pauses and redraws.
func (a *Animation) SetNumPoints(n int) error {
	if n < 0 {
		return invalidf("num points must be >= 0, got %d", n)
	}
	a.pause()
	a.state.NumPoints = n
	a.draw()
	return nil
}

// SetIncrement changes the per-tick step. It neither pauses nor redraws.
func (a *Animation) SetIncrement(v float64) error {
	if !finite(v) {
		return invalidf("increment %v", v)
	}
	a.state.Increment = v
	return nil
}

// SetFrameInterval changes the tick period and reschedules the timer. Play
// state, current value and color are untouched.
func (a *Animation) SetFrameInterval(ms float64) error {
	if !finite(ms) || ms < 0 {
		return invalidf("frame interval must be >= 0ms, got %v", ms)
	}
	a.state.FrameIntervalMs = ms
	a.sched.Reschedule(a.interval())
	return nil
}

// TogglePlayPause flips between playing and paused.
func (a *Animation) TogglePlayPause() {
	if a.state.Playing {
		a.pause()
		return
	}
	a.play()
}

// OnTick is the scheduler callback.
func (a *Animation) OnTick() { a.Tick() }

// OnMultiplicandChanged handles the multiplicand control.
func (a *Animation) OnMultiplicandChanged(v float64) error { return a.SetMultiplicand(v) }

// OnNumPointsChanged handles the point count control.
func (a *Animation) OnNumPointsChanged(n int) error { return a.SetNumPoints(n) }

// OnFramerateChanged handles the frame interval control, in milliseconds.
func (a *Animation) OnFramerateChanged(ms float64) error { return a.SetFrameInterval(ms) }

// OnIncrementChanged handles the increment control.
func (a *Animation) OnIncrementChanged(v float64) error { return a.SetIncrement(v) }

// OnTogglePlayPause handles the play/pause button.
func (a *Animation) OnTogglePlayPause() { a.TogglePlayPause() }

// State returns a copy of the animation state.
func (a *Animation) State() State { return a.state }

// Multiplicand returns the externally set multiplicand.
func (a *Animation) Multiplicand() float64 { return a.multiplicand }

// Layout returns the circle placement.
func (a *Animation) Layout() Layout { return a.layout }

// Resume returns the active resume policy.
func (a *Animation) Resume() ResumePolicy { return a.resume }

// LastFrame returns what was drawn most recently.
func (a *Animation) LastFrame() Frame { return a.last }

func (a *Animation) pause() {
	if !a.state.Playing {
		return
	}
	a.state.Playing = false
	a.pausedMultiplicand = a.multiplicand
	a.sched.Stop()
}

func (a *Animation) play() {
	if a.resume == ResumeFromMultiplicand && a.multiplicand != a.pausedMultiplicand {
		a.state.CurrentValue = a.multiplicand
	}
	a.pausedMultiplicand = a.multiplicand
	a.state.Playing = true
	a.sched.Start(a.interval(), a.OnTick)
}

func (a *Animation) draw() {
	points := a.cache.Points(a.state.NumPoints, a.layout)
	chords := Chords(a.state.CurrentValue, a.state.NumPoints)
	col := a.palette[a.state.ColorIndex]
	a.renderer.Render(points, chords, col)
	a.last = Frame{Multiplicand: a.state.CurrentValue, Points: points, Chords: chords, Color: col}
}

func (a *Animation) interval() time.Duration {
	return time.Duration(a.state.FrameIntervalMs * float64(time.Millisecond))
}

type nopRenderer struct{}

func (nopRenderer) Render([]core.Point, []core.Chord, color.Color) {}

type nopScheduler struct{}

func (nopScheduler) Start(time.Duration, func()) {}
func (nopScheduler) Stop()                       {}
func (nopScheduler) Reschedule(time.Duration)    {}
