//go:build ebiten

package app

import (
	"timestable/internal/core"
	"timestable/internal/render"
	"timestable/internal/sims/timestable"
	"timestable/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the animation to the ebiten.Game interface.
type Game struct {
	anim    *timestable.Animation
	canvas  *render.Canvas
	sched   *core.FixedStep
	hud     *ui.HUD
	overlay *ui.Overlay

	size core.Size
}

// New constructs a Game for cfg and starts the animation.
func New(cfg timestable.Config, hudWidth int) (*Game, error) {
	canvas := render.NewCanvas(cfg.Width, cfg.Height)
	adapter := render.NewAdapter(canvas, cfg.Layout())
	sched := core.NewFixedStep()

	anim, err := timestable.New(cfg, adapter, sched)
	if err != nil {
		return nil, err
	}
	g := &Game{
		anim:    anim,
		canvas:  canvas,
		sched:   sched,
		overlay: ui.NewOverlay(anim),
		size:    core.Size{W: cfg.Width, H: cfg.Height},
	}
	if hudWidth > 0 {
		g.hud = ui.NewHUD(anim, hudWidth, cfg.Height)
	}
	anim.Start()
	return g, nil
}

// Update handles per-frame input and polls the tick scheduler.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.anim.OnTogglePlayPause()
	}

	g.overlay.Update()
	g.hud.Update(g.size.W)

	g.sched.Poll()
	return nil
}

// Draw blits the last rendered frame and the panels.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Blit(screen)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.size.W)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.W + g.hud.Width(), g.size.H
}
