package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"timestable/internal/app"
	"timestable/internal/render"
	"timestable/internal/sims/timestable"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	ticks := flag.Int("ticks", 360, "number of ticks to run")
	every := flag.Int("every", 10, "write every n-th frame")
	out := flag.String("out", "frames", "output directory")
	prefix := flag.String("prefix", "frame", "file name prefix")
	format := flag.String("format", "png", "image format: png, bmp or tiff")
	stroke := flag.Float64("stroke", 1, "line width in pixels")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	f, err := render.ParseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}

	kv := make(map[string]string, len(overrides))
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			log.Printf("ignoring override %q", o)
			continue
		}
		kv[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	cfg := timestable.FromMap(kv)
	if cfg.Paused {
		log.Printf("paused config: only the initial frame is written")
	}

	res, err := app.ExportFrames(cfg, app.ExportOptions{
		Ticks:  *ticks,
		Every:  *every,
		Dir:    *out,
		Prefix: *prefix,
		Format: f,
		Stroke: *stroke,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Ran %d ticks on %d points (increment %.2f, resume %s)\n", res.Ticks, cfg.NumPoints, cfg.Increment, cfg.Resume)
	fmt.Printf("Final multiplicand %.2f, palette index %d\n", res.Multiplicand, res.ColorIndex)
	fmt.Printf("Wrote %d frames to %s\n", len(res.Files), *out)
}
