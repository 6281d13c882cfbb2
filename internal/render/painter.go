//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"particle-life/internal/sims/particlelife"
)

// ParticleRadius is the on-screen radius of a particle before zoom.
const ParticleRadius = 2.5

// Painter draws particles with the world origin at the centre of the view.
type Painter struct {
	Zoom float64
}

// NewPainter returns a painter at unit zoom.
func NewPainter() *Painter { return &Painter{Zoom: 1} }

// Origin returns the screen position of the world origin for a view of the
// given size.
func (p *Painter) Origin(viewW, viewH int) (float64, float64) {
	return float64(viewW) / 2, float64(viewH) / 2
}

// ToScreen converts world coordinates to screen coordinates.
func (p *Painter) ToScreen(x, y float64, viewW, viewH int) (float32, float32) {
	ox, oy := p.Origin(viewW, viewH)
	return float32(ox + x*p.Zoom), float32(oy + y*p.Zoom)
}

// Draw fills the view and paints every particle in its species colour.
// Particles outside the view are skipped.
func (p *Painter) Draw(dst *ebiten.Image, particles []particlelife.Particle, viewW, viewH int) {
	dst.Fill(Background)
	r := float32(ParticleRadius * p.Zoom)
	for _, pt := range particles {
		sx, sy := p.ToScreen(pt.Pos.X, pt.Pos.Y, viewW, viewH)
		if sx < -r || sy < -r || sx > float32(viewW)+r || sy > float32(viewH)+r {
			continue
		}
		vector.DrawFilledCircle(dst, sx, sy, r, SpeciesColor(pt.Species), true)
	}
}
