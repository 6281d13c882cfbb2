//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"particle-life/internal/render"
	"particle-life/internal/sims/particlelife"
)

// velocityScale stretches velocity vectors so slow particles stay visible.
const velocityScale = 4

// Overlay draws optional debugging visuals on top of the particles.
type Overlay struct {
	world *particlelife.World

	showRadius   bool
	showVelocity bool
}

// NewOverlay constructs an overlay for world.
func NewOverlay(world *particlelife.World) *Overlay {
	return &Overlay{world: world}
}

// Update toggles the overlay layers: 1 shows the cutoff and core radii around
// the cursor, 2 shows velocity vectors.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showRadius = !o.showRadius
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showVelocity = !o.showVelocity
	}
}

// Draw paints the enabled layers using painter's view transform.
func (o *Overlay) Draw(screen *ebiten.Image, painter *render.Painter, particles []particlelife.Particle, viewW, viewH int) {
	if o.showVelocity {
		for _, p := range particles {
			x0, y0 := painter.ToScreen(p.Pos.X, p.Pos.Y, viewW, viewH)
			x1, y1 := painter.ToScreen(p.Pos.X+p.Vel.X*velocityScale, p.Pos.Y+p.Vel.Y*velocityScale, viewW, viewH)
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, render.SpeciesColor(p.Species), true)
		}
	}
	if o.showRadius {
		params := o.world.Params()
		mx, my := ebiten.CursorPosition()
		if mx >= viewW {
			return
		}
		cutoff := float32(params.RMax * painter.Zoom)
		vector.StrokeCircle(screen, float32(mx), float32(my), cutoff, 1, radiusColor, true)
		vector.StrokeCircle(screen, float32(mx), float32(my), cutoff*float32(params.RMin), 1, coreColor, true)
	}
}

var (
	radiusColor = color.RGBA{R: 200, G: 200, B: 210, A: 160}
	coreColor   = color.RGBA{R: 240, G: 120, B: 110, A: 160}
)
