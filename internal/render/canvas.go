//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"timestable/internal/core"
)

// Canvas is an offscreen ebiten image the animation strokes into. It keeps the
// last frame until the next render, so Draw can blit it every screen refresh.
type Canvas struct {
	img        *ebiten.Image
	background color.Color
	width      float32
}

// NewCanvas allocates a w*h canvas with a white background.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{img: ebiten.NewImage(w, h), background: color.White, width: 1}
	c.Clear()
	return c
}

// Image exposes the offscreen image.
func (c *Canvas) Image() *ebiten.Image { return c.img }

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	c.img.Fill(c.background)
}

// StrokeCircle strokes the circle outline.
func (c *Canvas) StrokeCircle(center core.Point, radius float64, col color.Color) {
	vector.StrokeCircle(c.img, float32(center.X), float32(center.Y), float32(radius), c.width, col, true)
}

// StrokeLine strokes a segment. Zero-length segments become a dot of the
// stroke width.
func (c *Canvas) StrokeLine(p1, p2 core.Point, col color.Color) {
	if p1 == p2 {
		vector.DrawFilledCircle(c.img, float32(p1.X), float32(p1.Y), c.width/2, col, true)
		return
	}
	vector.StrokeLine(c.img, float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y), c.width, col, true)
}

// Blit draws the canvas onto dst at the origin.
func (c *Canvas) Blit(dst *ebiten.Image) {
	dst.DrawImage(c.img, &ebiten.DrawImageOptions{})
}
