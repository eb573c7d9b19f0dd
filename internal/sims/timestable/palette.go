package timestable

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// PaletteSize is the number of hues the chords cycle through.
	PaletteSize = 72
	// HueStep is the hue distance in degrees between palette entries.
	HueStep = 360 / PaletteSize
)

var chordPalette = BuildPalette()

// BuildPalette samples the hue circle every HueStep degrees at full saturation
// and brightness.
func BuildPalette() []color.RGBA {
	palette := make([]color.RGBA, PaletteSize)
	for i := range palette {
		c := colorful.Hsv(float64(i*HueStep), 1, 1).Clamped()
		r, g, b := c.RGB255()
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return palette
}

// Palette returns a copy of the shared chord palette.
func Palette() []color.RGBA {
	out := make([]color.RGBA, len(chordPalette))
	copy(out, chordPalette)
	return out
}
