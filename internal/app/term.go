package app

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"timestable/internal/core"
	"timestable/internal/render"
	"timestable/internal/sims/timestable"
)

// pollInterval is how often the terminal loop polls the tick scheduler.
const pollInterval = 16 * time.Millisecond

// keyControls maps lower/upper case keys to the control they decrease/increase.
var keyControls = map[rune]struct {
	key       string
	direction int
}{
	'm': {timestable.KeyMultiplicand, -1},
	'M': {timestable.KeyMultiplicand, 1},
	'p': {timestable.KeyNumPoints, -1},
	'P': {timestable.KeyNumPoints, 1},
	'f': {timestable.KeyFrameInterval, -1},
	'F': {timestable.KeyFrameInterval, 1},
	'i': {timestable.KeyIncrement, -1},
	'I': {timestable.KeyIncrement, 1},
}

// Terminal runs the animation on a tcell screen. The bottom row shows the
// current parameters.
type Terminal struct {
	screen  tcell.Screen
	anim    *timestable.Animation
	adapter *render.Adapter
	surface *render.Terminal
	sched   *core.FixedStep

	message string
}

// NewTerminal wires an animation for cfg onto an initialized screen.
func NewTerminal(screen tcell.Screen, cfg timestable.Config) (*Terminal, error) {
	surface := render.NewTerminal(screen, core.Size{W: cfg.Width, H: cfg.Height}, 1)
	adapter := render.NewAdapter(surface, cfg.Layout())
	adapter.SetCircleColor(color.White)
	sched := core.NewFixedStep()

	anim, err := timestable.New(cfg, adapter, sched)
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen, anim: anim, adapter: adapter, surface: surface, sched: sched}, nil
}

// Animation exposes the animation driven by the terminal.
func (t *Terminal) Animation() *timestable.Animation { return t.anim }

// Run draws the first frame and processes events and ticks until the user
// quits.
func (t *Terminal) Run() error {
	t.anim.Start()
	t.drawStatus()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		select {
		case ev := <-events:
			if !t.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if t.sched.Poll() {
				t.drawStatus()
			}
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch r := ev.Rune(); r {
		case 'q':
			return false
		case ' ':
			t.anim.OnTogglePlayPause()
			t.message = ""
		default:
			if kc, ok := keyControls[r]; ok {
				t.adjust(kc.key, kc.direction)
			}
		}
		t.drawStatus()
	case *tcell.EventResize:
		t.surface.Resize()
		t.screen.Sync()
		frame := t.anim.LastFrame()
		t.adapter.Render(frame.Points, frame.Chords, frame.Color)
		t.drawStatus()
	}
	return true
}

func (t *Terminal) adjust(key string, direction int) {
	var ctrl core.ParameterControl
	for _, c := range t.anim.ParameterControls() {
		if c.Key == key {
			ctrl = c
		}
	}
	param, ok := t.anim.Parameters().Lookup(key)
	if !ok {
		return
	}
	current, err := strconv.ParseFloat(param.Value, 64)
	if err != nil {
		return
	}
	target, ok := core.Adjust(ctrl, current, direction)
	if !ok {
		return
	}
	if ctrl.Type == core.ParamTypeInt {
		err = t.anim.SetIntParameter(key, int(target))
	} else {
		err = t.anim.SetFloatParameter(key, target)
	}
	t.message = ""
	if err != nil {
		t.message = err.Error()
	}
}

// StatusLine describes the current parameters.
func (t *Terminal) StatusLine() string {
	st := t.anim.State()
	mode := "playing"
	if !st.Playing {
		mode = "paused"
	}
	line := fmt.Sprintf(" x%.2f (set %.0f)  points %d  %gms  step %.2f  %s  [space m/M p/P f/F i/I q]",
		st.CurrentValue, t.anim.Multiplicand(), st.NumPoints, st.FrameIntervalMs, st.Increment, mode)
	if t.message != "" {
		line += "  " + t.message
	}
	return line
}

func (t *Terminal) drawStatus() {
	w, h := t.screen.Size()
	row := h - 1
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	runes := []rune(t.StatusLine())
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		t.screen.SetContent(x, row, r, nil, style)
	}
	t.screen.Show()
}
