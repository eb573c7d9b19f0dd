//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"timestable/internal/sims/timestable"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type frameProvider interface {
	LastFrame() timestable.Frame
	State() timestable.State
}

// Overlay draws optional debugging visuals on top of the canvas.
type Overlay struct {
	anim frameProvider

	showPoints bool
	showLabels bool
	showStatus bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay with the status line visible.
func NewOverlay(anim frameProvider) *Overlay {
	o := &Overlay{anim: anim, showStatus: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles: 1 point markers, 2 point labels,
// 3 status line.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showPoints = !o.showPoints
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showLabels = !o.showLabels
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showStatus = !o.showStatus
	}
}

// Draw renders the enabled overlays onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	frame := o.anim.LastFrame()
	if o.showPoints {
		marker := color.RGBA{R: 40, G: 40, B: 48, A: 220}
		for _, p := range frame.Points {
			o.drawPoint(screen, p.X, p.Y, 4, marker)
		}
	}
	if o.showLabels {
		// Labels past a few dozen points overlap into noise.
		step := 1
		if n := len(frame.Points); n > 36 {
			step = (n + 35) / 36
		}
		for i := 0; i < len(frame.Points); i += step {
			p := frame.Points[i]
			ebitenutil.DebugPrintAt(screen, strconv.Itoa(i), int(p.X)+3, int(p.Y)+3)
		}
	}
	if o.showStatus {
		st := o.anim.State()
		mode := "playing"
		if !st.Playing {
			mode = "paused"
		}
		status := fmt.Sprintf("x%.2f  points %d  chords %d  %s  [space] play/pause  [1-3] overlays",
			frame.Multiplicand, st.NumPoints, len(frame.Chords), mode)
		ebitenutil.DebugPrintAt(screen, status, 8, 8)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
