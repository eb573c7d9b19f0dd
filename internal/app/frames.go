package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"timestable/internal/render"
	"timestable/internal/sims/timestable"
)

// ExportOptions controls a headless frame export.
type ExportOptions struct {
	Ticks  int
	Every  int
	Dir    string
	Prefix string
	Format render.Format
	Stroke float64
}

// ExportResult summarizes an export run.
type ExportResult struct {
	Ticks        int
	Files        []string
	Multiplicand float64
	ColorIndex   int
}

// ExportFrames runs cfg for opts.Ticks ticks without a window and writes
// every opts.Every-th frame to opts.Dir. Frame 0 is the initial bare circle.
func ExportFrames(cfg timestable.Config, opts ExportOptions) (ExportResult, error) {
	var res ExportResult
	if opts.Every <= 0 {
		opts.Every = 1
	}
	if opts.Format == "" {
		opts.Format = render.FormatPNG
	}
	if opts.Prefix == "" {
		opts.Prefix = "frame"
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return res, errors.Wrap(err, "create output dir")
	}

	raster := render.NewRaster(cfg.Width, cfg.Height)
	if opts.Stroke > 0 {
		raster.SetStrokeWidth(opts.Stroke)
	}
	anim, err := timestable.New(cfg, render.NewAdapter(raster, cfg.Layout()), nil)
	if err != nil {
		return res, err
	}
	anim.Start()

	write := func(tick int) error {
		name := filepath.Join(opts.Dir, fmt.Sprintf("%s_%05d.%s", opts.Prefix, tick, opts.Format.Ext()))
		f, err := os.Create(name)
		if err != nil {
			return errors.Wrap(err, "create frame")
		}
		if err := render.Encode(f, raster.Image(), opts.Format); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return errors.Wrapf(err, "close %s", name)
		}
		res.Files = append(res.Files, name)
		return nil
	}

	if err := write(0); err != nil {
		return res, err
	}
	for i := 1; i <= opts.Ticks; i++ {
		if !anim.Tick() {
			break
		}
		res.Ticks++
		if i%opts.Every == 0 {
			if err := write(i); err != nil {
				return res, err
			}
		}
	}
	st := anim.State()
	res.Multiplicand = st.CurrentValue
	res.ColorIndex = st.ColorIndex
	return res, nil
}
