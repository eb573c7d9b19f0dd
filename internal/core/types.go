package core

import (
	"image/color"
	"time"
)

// Size describes the dimensions of a drawing area in pixels.
type Size struct {
	W int
	H int
}

// Point is a position on the drawing surface.
type Point struct {
	X, Y float64
}

// Chord joins the point at index From to the point at index To.
type Chord struct {
	From int
	To   int
}

// Degenerate reports whether the chord starts and ends on the same point.
func (c Chord) Degenerate() bool { return c.From == c.To }

// Surface is the drawing target a frame is rendered onto.
type Surface interface {
	Clear()
	StrokeCircle(center Point, radius float64, c color.Color)
	StrokeLine(p1, p2 Point, c color.Color)
}

// Flusher is implemented by surfaces that buffer strokes until the frame is
// complete.
type Flusher interface {
	Flush()
}

// Scheduler fires a callback repeatedly at a fixed interval.
type Scheduler interface {
	Start(interval time.Duration, fn func())
	Stop()
	Reschedule(interval time.Duration)
}
