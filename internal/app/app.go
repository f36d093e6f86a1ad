//go:build ebiten

package app

import (
	"time"

	"islandgen/internal/core"
	"islandgen/internal/island"
	"islandgen/internal/render"
	"islandgen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	waterLineStep = 5
	maxBurst      = 64
)

// Game adapts an island builder to the ebiten.Game interface, dropping
// dirtballs at a fixed rate so the island can be watched as it forms.
type Game struct {
	builder  *island.Builder
	current  *island.Island
	painter  *render.GridPainter
	hud      *ui.HUD
	pacer    *core.FixedStep
	scale    int
	paused   bool
	stepOnce bool
}

// New constructs a Game for the provided builder.
func New(b *island.Builder, scale, rate int) *Game {
	if scale <= 0 {
		scale = 1
	}
	cfg := b.Config()
	return &Game{
		builder: b,
		current: b.Snapshot(),
		painter: render.NewGridPainter(cfg.Width, cfg.Height),
		hud:     ui.NewHUD(scale),
		pacer:   core.NewFixedStep(rate),
		scale:   scale,
	}
}

// Reset restarts accumulation with the provided seed.
func (g *Game) Reset(seed int64) {
	g.builder.Restart(seed)
	g.current = g.builder.Snapshot()
	g.stepOnce = false
}

// Update handles per-frame input and drops the dirtballs that are due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.builder.Config().Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	changed := false
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		changed = g.builder.Step(g.builder.Remaining()) > 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		changed = g.adjustWaterLine(waterLineStep) || changed
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		changed = g.adjustWaterLine(-waterLineStep) || changed
	}

	g.hud.Update()

	due := g.pacer.Due(maxBurst)
	switch {
	case g.stepOnce:
		changed = g.builder.Step(1) > 0 || changed
		g.stepOnce = false
	case !g.paused && due > 0:
		changed = g.builder.Step(due) > 0 || changed
	}
	if changed {
		g.current = g.builder.Snapshot()
	}
	return nil
}

func (g *Game) adjustWaterLine(delta int) bool {
	wl := g.builder.Config().Params.WaterLine + delta
	wl = min(max(wl, 0), 255)
	return g.builder.SetIntParameter("waterline", wl)
}

// Draw renders the current island and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.current.Biomes, g.scale)
	x, y := g.builder.LastImpact()
	dropped, total := g.builder.Progress()
	g.hud.Draw(screen, ui.Status{
		Config:  g.builder.Config(),
		Dropped: dropped,
		Total:   total,
		LastX:   x,
		LastY:   y,
		Paused:  g.paused,
		Land:    g.current.Biomes.LandFraction(),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.builder.Config()
	return cfg.Width * g.scale, cfg.Height * g.scale
}
