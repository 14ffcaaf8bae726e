//go:build ebiten

package app

import (
	"time"

	"fuelcell/internal/render"
	"fuelcell/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Runner to the ebiten.Game interface.
type Game struct {
	runner  *Runner
	painter *render.ScenePainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	hudWidth int
}

// New constructs a Game for the provided runner. hudWidth of zero hides the
// parameter panel.
func New(runner *Runner, scale, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	if hudWidth < 0 {
		hudWidth = 0
	}
	sim := runner.Sim()
	g := &Game{
		runner:   runner,
		painter:  render.NewScenePainter(),
		overlay:  ui.NewOverlay(DebugSource(sim), sim.Size().W, sim.Size().H, scale),
		scale:    scale,
		hudWidth: hudWidth,
	}
	if hudWidth > 0 {
		g.hud = ui.NewHUD(sim, runner, hudWidth)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.runner.Reset(seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.runner.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.runner.SetRunning(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.runner.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.runner.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.runner.AdjustSpeed(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.runner.AdjustSpeed(-1)
	}

	if g.hud != nil {
		g.hud.Update(g.viewWidth())
	}
	if g.overlay != nil {
		g.overlay.Update()
	}

	g.runner.Tick()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.runner.Sim().Scene(), float64(g.scale))
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.viewWidth(), g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.runner.Sim().Size()
	return g.viewWidth() + g.hudWidth, s.H * g.scale
}

func (g *Game) viewWidth() int {
	return g.runner.Sim().Size().W * g.scale
}
