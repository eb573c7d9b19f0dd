package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"timestable/internal/core"
)

// Braille cells pack a 2x4 dot matrix; dotBits[row][col] is the bit for a dot.
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

// Terminal is a surface that draws on a tcell screen using braille dots. The
// logical canvas is scaled uniformly to fit the screen minus reserved rows.
type Terminal struct {
	screen   tcell.Screen
	logical  core.Size
	reserved int

	cols, rows int
	dots       *core.ByteGrid
	scale      float64
	offX       float64
	offY       float64

	// slots maps dot values (1-based) to colors; later strokes get higher slots.
	slots []tcell.Color
	bg    tcell.Color
}

// NewTerminal builds a surface for a logical canvas of the given size,
// leaving reserved rows free at the bottom of the screen.
func NewTerminal(screen tcell.Screen, logical core.Size, reserved int) *Terminal {
	t := &Terminal{screen: screen, logical: logical, reserved: reserved, bg: tcell.ColorBlack}
	t.Resize()
	return t
}

// Resize re-reads the screen size and resets the dot buffer.
func (t *Terminal) Resize() {
	w, h := t.screen.Size()
	h -= t.reserved
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	t.cols, t.rows = w, h
	t.dots = core.NewByteGrid(w*2, h*4)

	lw, lh := float64(t.logical.W), float64(t.logical.H)
	if lw <= 0 || lh <= 0 {
		lw, lh = 1, 1
	}
	t.scale = math.Min(float64(w*2)/lw, float64(h*4)/lh)
	t.offX = (float64(w*2) - lw*t.scale) / 2
	t.offY = (float64(h*4) - lh*t.scale) / 2
	t.slots = t.slots[:0]
}

// Rows returns the number of screen rows used for drawing.
func (t *Terminal) Rows() int { return t.rows }

// Clear resets every dot.
func (t *Terminal) Clear() {
	t.dots.Clear()
	t.slots = t.slots[:0]
}

// StrokeCircle plots the circle outline.
func (t *Terminal) StrokeCircle(center core.Point, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	v := t.slot(c)
	steps := int(2*math.Pi*radius*t.scale) + 8
	px, py := t.toDots(core.Point{X: center.X + radius, Y: center.Y})
	for i := 1; i <= steps; i++ {
		angle := float64(i) / float64(steps) * 2 * math.Pi
		x, y := t.toDots(core.Point{X: center.X + math.Cos(angle)*radius, Y: center.Y + math.Sin(angle)*radius})
		t.dots.Line(px, py, x, y, v)
		px, py = x, y
	}
}

// StrokeLine plots the segment; a zero-length segment plots one dot.
func (t *Terminal) StrokeLine(p1, p2 core.Point, c color.Color) {
	v := t.slot(c)
	x0, y0 := t.toDots(p1)
	x1, y1 := t.toDots(p2)
	t.dots.Line(x0, y0, x1, y1, v)
}

// Flush writes the dot buffer to the screen and shows it.
func (t *Terminal) Flush() {
	for cy := 0; cy < t.rows; cy++ {
		for cx := 0; cx < t.cols; cx++ {
			var mask rune
			var top uint8
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					v := t.dots.At(cx*2+dx, cy*4+dy)
					if v == 0 {
						continue
					}
					mask |= dotBits[dy][dx]
					if v > top {
						top = v
					}
				}
			}
			style := tcell.StyleDefault.Background(t.bg)
			if mask == 0 {
				t.screen.SetContent(cx, cy, ' ', nil, style)
				continue
			}
			t.screen.SetContent(cx, cy, brailleBase+mask, nil, style.Foreground(t.slots[top-1]))
		}
	}
	t.screen.Show()
}

func (t *Terminal) toDots(p core.Point) (int, int) {
	return int(math.Round(p.X*t.scale + t.offX)), int(math.Round(p.Y*t.scale + t.offY))
}

func (t *Terminal) slot(c color.Color) uint8 {
	tc := toTcell(c)
	for i, existing := range t.slots {
		if existing == tc {
			return uint8(i + 1)
		}
	}
	if len(t.slots) == 255 {
		return 255
	}
	t.slots = append(t.slots, tc)
	return uint8(len(t.slots))
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
