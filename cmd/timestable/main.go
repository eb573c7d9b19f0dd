//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"timestable/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg, err := cfg.SimConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	game, err := app.New(simCfg, cfg.HUDWidth)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Times Table")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(simCfg.Width+cfg.HUDWidth, simCfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
