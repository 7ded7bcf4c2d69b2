package field

import (
	"math"

	"github.com/olivier-w/glimmer/internal/gfx"
)

// Particle is one detection point: a rest position it always drifts back
// to, a current position, and a density coefficient scaling how hard the
// pointer pushes it around.
type Particle struct {
	X, Y         float64
	BaseX, BaseY float64 // rest position, fixed at creation
	Size         float64
	Density      float64
	Color        gfx.Color
}

// Update advances the particle one frame. Inside the pointer's interaction
// radius the particle is pushed along the pointer→particle direction,
// scaled by (radius-d)/radius and its density, so the shove weakens
// linearly to zero at the radius. Otherwise it relaxes 10% of the remaining
// offset back toward its rest position.
func (p *Particle) Update(ptr Pointer) {
	if ptr.Active {
		dx := p.X - ptr.X
		dy := p.Y - ptr.Y
		d := math.Hypot(dx, dy)
		if d < ptr.Radius {
			if d == 0 {
				// Pointer exactly on the particle: direction is
				// undefined, apply no force rather than divide.
				return
			}
			f := (ptr.Radius - d) / ptr.Radius * p.Density
			p.X += dx / d * f
			p.Y += dy / d * f
			return
		}
	}
	p.X += (p.BaseX - p.X) / 10
	p.Y += (p.BaseY - p.Y) / 10
}

// Draw paints the particle as a filled circle.
func (p *Particle) Draw(ctx gfx.Context) {
	ctx.SetFill(p.Color)
	ctx.BeginPath()
	ctx.Arc(p.X, p.Y, p.Size, 0, 2*math.Pi)
	ctx.Fill()
}
