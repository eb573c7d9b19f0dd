package timestable

import (
	"image/color"
	"testing"
	"time"

	"github.com/pkg/errors"

	"timestable/internal/core"
)

type renderCall struct {
	points []core.Point
	chords []core.Chord
	color  color.Color
}

type recordingRenderer struct {
	calls []renderCall
}

func (r *recordingRenderer) Render(points []core.Point, chords []core.Chord, c color.Color) {
	r.calls = append(r.calls, renderCall{points: points, chords: chords, color: c})
}

type fakeScheduler struct {
	running    bool
	interval   time.Duration
	starts     int
	stops      int
	reschedule []time.Duration
	fn         func()
}

func (s *fakeScheduler) Start(interval time.Duration, fn func()) {
	s.running = true
	s.interval = interval
	s.fn = fn
	s.starts++
}

func (s *fakeScheduler) Stop() {
	s.running = false
	s.stops++
}

func (s *fakeScheduler) Reschedule(interval time.Duration) {
	s.interval = interval
	s.reschedule = append(s.reschedule, interval)
}

func newTestAnimation(t *testing.T, cfg Config) (*Animation, *recordingRenderer, *fakeScheduler) {
	t.Helper()
	r := &recordingRenderer{}
	s := &fakeScheduler{}
	a, err := New(cfg, r, s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a, r, s
}

func TestDefaultState(t *testing.T) {
	a, _, _ := newTestAnimation(t, DefaultConfig())
	want := State{CurrentValue: 0, NumPoints: 100, FrameIntervalMs: 1000, Increment: 1, Playing: true, ColorIndex: 0}
	if got := a.State(); got != want {
		t.Fatalf("state %+v, expected %+v", got, want)
	}
}

func TestStartDrawsCircleAndStartsScheduler(t *testing.T) {
	a, r, s := newTestAnimation(t, DefaultConfig())
	a.Start()

	if len(r.calls) != 1 {
		t.Fatalf("expected one initial render, got %d", len(r.calls))
	}
	if len(r.calls[0].points) != 100 || len(r.calls[0].chords) != 0 {
		t.Fatalf("initial frame should show the bare circle")
	}
	if !s.running || s.interval != time.Second {
		t.Fatalf("scheduler running=%v interval=%v, expected running at 1s", s.running, s.interval)
	}

	s.fn()
	if a.State().CurrentValue != 1 {
		t.Fatalf("scheduler callback did not tick the animation")
	}
}

func TestStartPausedDoesNotSchedule(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Paused = true
	a, _, s := newTestAnimation(t, cfg)
	a.Start()
	if s.starts != 0 {
		t.Fatalf("paused animation started the scheduler")
	}
}

func TestTickWrapsOnceAfter361(t *testing.T) {
	a, _, _ := newTestAnimation(t, DefaultConfig())
	wraps := 0
	for i := 0; i < 361; i++ {
		before := a.State().CurrentValue
		a.Tick()
		if a.State().CurrentValue < before {
			wraps++
		}
	}
	if wraps != 1 {
		t.Fatalf("wrapped %d times, expected 1", wraps)
	}
	if a.State().CurrentValue != 0 {
		t.Fatalf("current value %v, expected 0 after wrapping", a.State().CurrentValue)
	}
}

func TestTickRendersWithAdvancedValueAndCyclesColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumPoints = 4
	cfg.Increment = 2
	a, r, _ := newTestAnimation(t, cfg)
	palette := Palette()

	a.Tick()
	if len(r.calls) != 1 {
		t.Fatalf("tick rendered %d times", len(r.calls))
	}
	want := Chords(2, 4)
	for i, ch := range r.calls[0].chords {
		if ch != want[i] {
			t.Fatalf("chord %d = %+v, expected %+v", i, ch, want[i])
		}
	}
	if r.calls[0].color != palette[0] {
		t.Fatalf("first tick drew %v, expected palette[0]", r.calls[0].color)
	}
	if a.State().ColorIndex != 1 {
		t.Fatalf("color index %d after one tick", a.State().ColorIndex)
	}

	for i := 1; i < PaletteSize; i++ {
		a.Tick()
	}
	if a.State().ColorIndex != 0 {
		t.Fatalf("color index %d after a full cycle, expected 0", a.State().ColorIndex)
	}
	if r.calls[PaletteSize-1].color != palette[PaletteSize-1] {
		t.Fatalf("last tick of the cycle drew the wrong color")
	}
}

func TestTickIgnoredWhilePaused(t *testing.T) {
	a, r, _ := newTestAnimation(t, DefaultConfig())
	a.TogglePlayPause()
	before := a.State()

	if a.Tick() {
		t.Fatalf("stray tick advanced a paused animation")
	}
	if a.State() != before || len(r.calls) != 0 {
		t.Fatalf("stray tick changed state or rendered")
	}
}

func TestSetNumPointsPausesAndRendersOnce(t *testing.T) {
	a, r, s := newTestAnimation(t, DefaultConfig())
	a.Start()
	for i := 0; i < 5; i++ {
		a.Tick()
	}
	prior := a.State().CurrentValue
	r.calls = nil

	if err := a.SetNumPoints(50); err != nil {
		t.Fatalf("SetNumPoints: %v", err)
	}
	if a.State().Playing || s.running {
		t.Fatalf("expected paused with the scheduler stopped")
	}
	if len(r.calls) != 1 {
		t.Fatalf("expected exactly one render, got %d", len(r.calls))
	}
	want := Chords(prior, 50)
	got := r.calls[0].chords
	if len(got) != len(want) {
		t.Fatalf("render used %d chords, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("chord %d = %+v, expected %+v for value %v", i, got[i], want[i], prior)
		}
	}
	if a.State().CurrentValue != prior {
		t.Fatalf("current value moved from %v to %v", prior, a.State().CurrentValue)
	}
}

func TestSetNumPointsZeroDrawsCircleOnly(t *testing.T) {
	a, r, _ := newTestAnimation(t, DefaultConfig())
	if err := a.SetNumPoints(0); err != nil {
		t.Fatalf("SetNumPoints(0): %v", err)
	}
	if len(r.calls) != 1 || len(r.calls[0].chords) != 0 || len(r.calls[0].points) != 0 {
		t.Fatalf("zero points should render an empty circle")
	}
	a.TogglePlayPause()
	if !a.Tick() {
		t.Fatalf("ticking an empty circle should still advance")
	}
}

func TestSetMultiplicandRedrawsPresentValue(t *testing.T) {
	a, r, _ := newTestAnimation(t, DefaultConfig())
	a.Tick()
	a.Tick()
	r.calls = nil

	if err := a.SetMultiplicand(50); err != nil {
		t.Fatalf("SetMultiplicand: %v", err)
	}
	if a.State().Playing {
		t.Fatalf("expected paused")
	}
	if a.State().CurrentValue != 2 {
		t.Fatalf("current value %v, expected 2", a.State().CurrentValue)
	}
	if len(r.calls) != 1 || r.calls[0].chords[1].To != 2 {
		t.Fatalf("redraw should use the present value 2")
	}
	if a.Multiplicand() != 50 {
		t.Fatalf("multiplicand %v, expected 50", a.Multiplicand())
	}
}

func TestSetterRedrawsKeepColorIndex(t *testing.T) {
	a, r, _ := newTestAnimation(t, DefaultConfig())
	a.Tick()
	a.Tick()
	r.calls = nil
	palette := Palette()

	if err := a.SetMultiplicand(7); err != nil {
		t.Fatalf("SetMultiplicand: %v", err)
	}
	if err := a.SetNumPoints(40); err != nil {
		t.Fatalf("SetNumPoints: %v", err)
	}
	if got := a.State().ColorIndex; got != 2 {
		t.Fatalf("color index %d after setter redraws, expected 2", got)
	}
	if len(r.calls) != 2 {
		t.Fatalf("expected 2 redraws, got %d", len(r.calls))
	}
	for i, call := range r.calls {
		if call.color != palette[2] {
			t.Fatalf("redraw %d used %v, expected palette[2] %v", i, call.color, palette[2])
		}
	}

	a.TogglePlayPause()
	a.Tick()
	if got := r.calls[len(r.calls)-1].color; got != palette[2] {
		t.Fatalf("first tick after resume drew %v, expected palette[2]", got)
	}
	if got := a.State().ColorIndex; got != 3 {
		t.Fatalf("color index %d after the tick, expected 3", got)
	}
}

func TestSetIncrementDoesNotPauseOrRedraw(t *testing.T) {
	a, r, _ := newTestAnimation(t, DefaultConfig())
	if err := a.SetIncrement(0.25); err != nil {
		t.Fatalf("SetIncrement: %v", err)
	}
	if !a.State().Playing || len(r.calls) != 0 {
		t.Fatalf("increment change paused or redrew")
	}
	a.Tick()
	if a.State().CurrentValue != 0.25 {
		t.Fatalf("current value %v, expected 0.25", a.State().CurrentValue)
	}
}

func TestSetFrameIntervalKeepsState(t *testing.T) {
	a, r, s := newTestAnimation(t, DefaultConfig())
	a.Start()
	a.Tick()
	a.Tick()
	before := a.State()
	renders := len(r.calls)

	if err := a.SetFrameInterval(500); err != nil {
		t.Fatalf("SetFrameInterval: %v", err)
	}
	after := a.State()
	if after.CurrentValue != before.CurrentValue || after.ColorIndex != before.ColorIndex || after.Playing != before.Playing {
		t.Fatalf("state changed from %+v to %+v", before, after)
	}
	if after.FrameIntervalMs != 500 {
		t.Fatalf("frame interval %v, expected 500", after.FrameIntervalMs)
	}
	if len(s.reschedule) != 1 || s.reschedule[0] != 500*time.Millisecond {
		t.Fatalf("scheduler rescheduled with %v", s.reschedule)
	}
	if !s.running || s.stops != 0 {
		t.Fatalf("frame interval change stopped the scheduler")
	}
	if len(r.calls) != renders {
		t.Fatalf("frame interval change rendered")
	}
}

func TestInvalidParametersLeaveStateUnchanged(t *testing.T) {
	a, r, _ := newTestAnimation(t, DefaultConfig())
	a.Tick()
	before := a.State()
	renders := len(r.calls)

	checks := []struct {
		name string
		err  error
	}{
		{"negative points", a.SetNumPoints(-1)},
		{"negative interval", a.SetFrameInterval(-10)},
		{"nan interval", a.SetFrameInterval(nan())},
		{"nan multiplicand", a.SetMultiplicand(nan())},
		{"inf increment", a.SetIncrement(inf())},
		{"unknown key", a.SetIntParameter("nope", 1)},
	}
	for _, c := range checks {
		if !errors.Is(c.err, ErrInvalidParameter) {
			t.Fatalf("%s: expected ErrInvalidParameter, got %v", c.name, c.err)
		}
	}
	if a.State() != before || len(r.calls) != renders {
		t.Fatalf("rejected calls mutated state or rendered")
	}
}

func TestResumeFromMultiplicandJumpsWhenChanged(t *testing.T) {
	a, _, s := newTestAnimation(t, DefaultConfig())
	a.Start()
	for i := 0; i < 10; i++ {
		a.Tick()
	}

	a.TogglePlayPause()
	a.TogglePlayPause()
	if a.State().CurrentValue != 10 {
		t.Fatalf("unchanged resume jumped to %v", a.State().CurrentValue)
	}

	if err := a.SetMultiplicand(42); err != nil {
		t.Fatalf("SetMultiplicand: %v", err)
	}
	a.TogglePlayPause()
	if !a.State().Playing || !s.running {
		t.Fatalf("expected playing after toggle")
	}
	if a.State().CurrentValue != 42 {
		t.Fatalf("resume continued from %v, expected a jump to 42", a.State().CurrentValue)
	}
	a.Tick()
	if a.State().CurrentValue != 43 {
		t.Fatalf("tick after resume gave %v", a.State().CurrentValue)
	}

	a.TogglePlayPause()
	a.Tick()
	a.TogglePlayPause()
	if a.State().CurrentValue != 43 {
		t.Fatalf("second resume without change jumped to %v", a.State().CurrentValue)
	}
}

func TestResumeFromCurrentIgnoresMultiplicand(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Resume = ResumeFromCurrent
	a, _, _ := newTestAnimation(t, cfg)
	for i := 0; i < 10; i++ {
		a.Tick()
	}
	if err := a.SetMultiplicand(42); err != nil {
		t.Fatalf("SetMultiplicand: %v", err)
	}
	a.TogglePlayPause()
	if a.State().CurrentValue != 10 {
		t.Fatalf("resume jumped to %v, expected to continue from 10", a.State().CurrentValue)
	}
}

func TestParameterRouting(t *testing.T) {
	a, _, _ := newTestAnimation(t, DefaultConfig())
	if err := a.SetFloatParameter(KeyIncrement, 0.5); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if err := a.SetFloatParameter(KeyFrameInterval, 250); err != nil {
		t.Fatalf("framerate: %v", err)
	}
	if err := a.SetIntParameter(KeyNumPoints, 12); err != nil {
		t.Fatalf("points: %v", err)
	}
	if err := a.Toggle(KeyPlaying); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	st := a.State()
	if st.Increment != 0.5 || st.FrameIntervalMs != 250 || st.NumPoints != 12 || !st.Playing {
		t.Fatalf("unexpected state %+v", st)
	}

	snap := a.Parameters()
	if p, ok := snap.Lookup(KeyNumPoints); !ok || p.Value != "12" {
		t.Fatalf("snapshot points = %+v", p)
	}
	if p, ok := snap.Lookup(KeyPlaying); !ok || p.Value != "true" {
		t.Fatalf("snapshot playing = %+v", p)
	}
	if len(a.ParameterControls()) != 5 {
		t.Fatalf("expected five controls")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumPoints = -5
	if _, err := New(cfg, nil, nil); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}
