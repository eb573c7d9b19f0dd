package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"timestable/internal/core"
)

const circleSegments = 180

// Raster is a software surface backed by an RGBA image. Strokes are queued
// and rasterized by Flush, one pass per run of same-colored strokes.
type Raster struct {
	img        *image.RGBA
	z          *vector.Rasterizer
	background color.Color
	width      float64

	batches []strokeBatch
}

// strokeBatch is a run of consecutive strokes sharing one color.
type strokeBatch struct {
	color  color.Color
	quads  [][4]core.Point
	bounds image.Rectangle
}

// NewRaster allocates a w*h surface with a white background and 1px strokes.
func NewRaster(w, h int) *Raster {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Raster{
		img:        image.NewRGBA(image.Rect(0, 0, w, h)),
		z:          vector.NewRasterizer(w, h),
		background: color.White,
		width:      1,
	}
}

// Image exposes the backing image. Pending strokes appear after Flush.
func (r *Raster) Image() *image.RGBA { return r.img }

// SetBackground changes the clear color.
func (r *Raster) SetBackground(c color.Color) { r.background = c }

// SetStrokeWidth changes the line width in pixels.
func (r *Raster) SetStrokeWidth(w float64) {
	if w > 0 {
		r.width = w
	}
}

// Clear fills the image with the background color and drops pending strokes.
func (r *Raster) Clear() {
	r.batches = r.batches[:0]
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
}

// StrokeCircle strokes the circle outline as a closed polyline.
func (r *Raster) StrokeCircle(center core.Point, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	prev := core.Point{X: center.X + radius, Y: center.Y}
	for i := 1; i <= circleSegments; i++ {
		angle := float64(i) / circleSegments * 2 * math.Pi
		next := core.Point{X: center.X + math.Cos(angle)*radius, Y: center.Y + math.Sin(angle)*radius}
		r.StrokeLine(prev, next, c)
		prev = next
	}
}

// StrokeLine queues the quad covering the segment. A zero-length segment
// becomes a square dot of the stroke width.
func (r *Raster) StrokeLine(p1, p2 core.Point, c color.Color) {
	half := r.width / 2
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	length := math.Hypot(dx, dy)

	var ux, uy float64
	if length < 1e-9 {
		ux, uy = 1, 0
		p1.X -= half
		p2.X += half
	} else {
		ux, uy = dx/length, dy/length
	}
	nx, ny := -uy*half, ux*half

	// All quads wind the same way, so overlapping ones never cancel.
	quad := [4]core.Point{
		{X: p1.X + nx, Y: p1.Y + ny},
		{X: p2.X + nx, Y: p2.Y + ny},
		{X: p2.X - nx, Y: p2.Y - ny},
		{X: p1.X - nx, Y: p1.Y - ny},
	}
	b := r.batch(c)
	b.quads = append(b.quads, quad)
	b.bounds = b.bounds.Union(quadBounds(quad))
}

// Flush rasterizes the queued strokes in order, each batch clipped to the
// pixels it covers.
func (r *Raster) Flush() {
	for i := range r.batches {
		b := &r.batches[i]
		area := b.bounds.Intersect(r.img.Bounds())
		if area.Empty() {
			continue
		}
		ox, oy := float64(area.Min.X), float64(area.Min.Y)
		r.z.Reset(area.Dx(), area.Dy())
		for _, q := range b.quads {
			r.z.MoveTo(float32(q[0].X-ox), float32(q[0].Y-oy))
			for _, p := range q[1:] {
				r.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
			}
			r.z.ClosePath()
		}
		r.z.Draw(r.img, area, image.NewUniform(b.color), image.Point{})
	}
	r.batches = r.batches[:0]
}

func (r *Raster) batch(c color.Color) *strokeBatch {
	if n := len(r.batches); n > 0 && sameColor(r.batches[n-1].color, c) {
		return &r.batches[n-1]
	}
	r.batches = append(r.batches, strokeBatch{color: c})
	return &r.batches[len(r.batches)-1]
}

func quadBounds(q [4]core.Point) image.Rectangle {
	minX, minY := q[0].X, q[0].Y
	maxX, maxY := minX, minY
	for _, p := range q[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1)
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
