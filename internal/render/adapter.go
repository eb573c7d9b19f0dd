package render

import (
	"image/color"

	"timestable/internal/core"
	"timestable/internal/sims/timestable"
)

// Adapter draws animation frames onto a surface. It is the only component
// that touches the drawing surface.
type Adapter struct {
	surface     core.Surface
	layout      timestable.Layout
	circleColor color.Color
}

// NewAdapter returns an Adapter stroking the boundary circle of layout in
// black.
func NewAdapter(surface core.Surface, layout timestable.Layout) *Adapter {
	return &Adapter{surface: surface, layout: layout, circleColor: color.Black}
}

// SetCircleColor changes the color of the boundary circle.
func (a *Adapter) SetCircleColor(c color.Color) { a.circleColor = c }

// Render clears the surface, strokes the boundary circle and then every chord
// in c. Degenerate chords are stroked as zero-length segments.
func (a *Adapter) Render(points []core.Point, chords []core.Chord, c color.Color) {
	a.surface.Clear()
	a.surface.StrokeCircle(a.layout.Center, a.layout.Radius, a.circleColor)
	for _, ch := range chords {
		if ch.From < 0 || ch.From >= len(points) || ch.To < 0 || ch.To >= len(points) {
			continue
		}
		a.surface.StrokeLine(points[ch.From], points[ch.To], c)
	}
	if f, ok := a.surface.(core.Flusher); ok {
		f.Flush()
	}
}
