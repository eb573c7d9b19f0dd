//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"timestable/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg, err := cfg.SimConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	fmt.Fprintln(os.Stderr, "Built without the ebiten tag; running in the terminal.")
	fmt.Fprintln(os.Stderr, "Build with `-tags ebiten` for the windowed version.")

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	term, err := app.NewTerminal(screen, simCfg)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	err = term.Run()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
