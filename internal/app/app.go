//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"particle-life/internal/render"
	"particle-life/internal/sims/particlelife"
	"particle-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a particle world to the ebiten.Game interface. Every Update
// advances the world by exactly one tick unless paused.
type Game struct {
	world   *particlelife.World
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay

	viewW, viewH int
	paused       bool
	tickOnce     bool
	seed         int64
	maxTicks     int
}

// New constructs a Game for the provided world.
func New(world *particlelife.World, cfg *Config) *Game {
	return &Game{
		world:    world,
		painter:  render.NewPainter(),
		hud:      ui.NewHUD(world, cfg.HUDWidth),
		overlay:  ui.NewOverlay(world),
		viewW:    cfg.Width,
		viewH:    cfg.Height,
		seed:     cfg.Seed,
		maxTicks: cfg.Ticks,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reseed(RelationsRandom)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.reseed(RelationsNoise)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.reseed(RelationsZero)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.world.Reset(time.Now().UnixNano())
	}
	_, wheel := ebiten.Wheel()
	if wheel != 0 {
		g.painter.Zoom = max(minZoom, g.painter.Zoom*(1+wheel*0.1))
	}

	g.hud.Update(g.viewW)
	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	if g.maxTicks > 0 && g.world.Tick() >= uint64(g.maxTicks) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) reseed(source string) {
	g.seed++
	if err := SeedRelations(g.world, source, g.seed); err != nil {
		slog.Warn("reseed relations failed", "source", source, "error", err)
	}
}

// Draw renders the particles, the overlay and the parameter panel.
func (g *Game) Draw(screen *ebiten.Image) {
	particles := g.world.Particles()
	g.painter.Draw(screen, particles, g.viewW, g.viewH)
	g.overlay.Draw(screen, g.painter, particles, g.viewW, g.viewH)
	g.hud.Draw(screen, g.viewW, g.viewH)
}

// Layout keeps the simulation view at its configured size and places the
// panel to its right. Window resizes update the placement bounds used by the
// next reinitialisation.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := outsideWidth - g.hud.Width()
	if w > 0 && outsideHeight > 0 && (w != g.viewW || outsideHeight != g.viewH) {
		g.viewW, g.viewH = w, outsideHeight
		if err := g.world.SetBounds(float64(w), float64(outsideHeight)); err != nil {
			slog.Warn("window bounds rejected", "error", err)
		}
	}
	return g.viewW + g.hud.Width(), g.viewH
}

const minZoom = 0.1
