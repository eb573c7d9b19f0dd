package timestable

import (
	"math"

	"timestable/internal/core"
)

// Layout places the circle on the drawing surface.
type Layout struct {
	Center core.Point
	Radius float64
}

// LayoutFromBox derives the circle inscribed in the square whose top-left
// corner is offset and whose side is diameter.
func LayoutFromBox(offset core.Point, diameter float64) Layout {
	r := diameter / 2
	return Layout{
		Center: core.Point{X: offset.X + r, Y: offset.Y + r},
		Radius: r,
	}
}

// ComputePoints returns numPoints positions evenly spaced around the circle.
// Point i sits at angle i/numPoints*360 degrees with both trigonometric terms
// negated, so point 0 is the leftmost point of the circle. numPoints must not
// be negative; a negative count yields no points.
func ComputePoints(numPoints int, center core.Point, radius float64) []core.Point {
	if numPoints <= 0 {
		return []core.Point{}
	}
	points := make([]core.Point, numPoints)
	for i := range points {
		angle := float64(i) / float64(numPoints) * 360 * math.Pi / 180
		points[i] = core.Point{
			X: center.X - math.Cos(angle)*radius,
			Y: center.Y - math.Sin(angle)*radius,
		}
	}
	return points
}

// PointCache memoizes the last computed point set.
type PointCache struct {
	n      int
	layout Layout
	points []core.Point
	valid  bool
}

// Points returns the point set for n points on layout, recomputing only when
// an input changed since the previous call.
func (c *PointCache) Points(n int, layout Layout) []core.Point {
	if c.valid && c.n == n && c.layout == layout {
		return c.points
	}
	c.points = ComputePoints(n, layout.Center, layout.Radius)
	c.n = n
	c.layout = layout
	c.valid = true
	return c.points
}
