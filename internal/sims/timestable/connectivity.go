package timestable

import (
	"math"

	"timestable/internal/core"
)

// ChordEndpoint returns the index source connects to: floor(multiplicand *
// source) reduced to the non-negative remainder modulo numPoints. numPoints
// must be positive.
func ChordEndpoint(source int, multiplicand float64, numPoints int) int {
	n := float64(numPoints)
	r := math.Mod(math.Floor(multiplicand*float64(source)), n)
	if r < 0 {
		r += n
	}
	target := int(r)
	// Guards the r+n == n rounding case for tiny negative remainders.
	if target >= numPoints {
		target = 0
	}
	return target
}

// Chords returns one chord per point for the given multiplicand. Self-loops
// are kept. An empty circle has no chords.
func Chords(multiplicand float64, numPoints int) []core.Chord {
	if numPoints <= 0 {
		return nil
	}
	chords := make([]core.Chord, numPoints)
	for m := range chords {
		chords[m] = core.Chord{From: m, To: ChordEndpoint(m, multiplicand, numPoints)}
	}
	return chords
}
