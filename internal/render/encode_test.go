package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/pkg/errors"

	"timestable/internal/core"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"png": FormatPNG, "BMP": FormatBMP, "tif": FormatTIFF, " tiff ": FormatTIFF}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestEncodeHeaders(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	prefixes := map[Format][]byte{
		FormatPNG:  []byte("\x89PNG"),
		FormatBMP:  []byte("BM"),
		FormatTIFF: []byte("II*\x00"),
	}
	for f, prefix := range prefixes {
		var buf bytes.Buffer
		if err := Encode(&buf, img, f); err != nil {
			t.Fatalf("Encode(%s): %v", f, err)
		}
		if !bytes.HasPrefix(buf.Bytes(), prefix) {
			t.Fatalf("Encode(%s) header %q, want prefix %q", f, buf.Bytes()[:4], prefix)
		}
	}
}

func TestEncodePNGKeepsPixels(t *testing.T) {
	r := NewRaster(20, 20)
	r.SetStrokeWidth(2)
	r.Clear()
	r.StrokeLine(core.Point{X: 2, Y: 10}, core.Point{X: 18, Y: 10}, color.Black)
	r.Flush()

	var buf bytes.Buffer
	if err := Encode(&buf, r.Image(), FormatPNG); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := color.RGBAModel.Convert(decoded.At(0, 0)).(color.RGBA); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("background pixel = %v, want white", got)
	}
	if got := color.RGBAModel.Convert(decoded.At(10, 10)).(color.RGBA); got.R > 128 {
		t.Fatalf("stroked pixel = %v, want dark", got)
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1)), Format("gif")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}
