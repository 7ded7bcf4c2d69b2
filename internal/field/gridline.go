package field

import (
	"math"

	"github.com/olivier-w/glimmer/internal/gfx"
)

// GridLine is a single full-length grid line with a slow opacity pulse.
// Orientation and position never change after creation.
type GridLine struct {
	Vertical bool
	Pos      float64 // coordinate along the perpendicular axis
	Opacity  float64 // base opacity

	color gfx.Color
	phase float64 // radians, advances every draw
	speed float64
}

// Draw advances the pulse and strokes the line across the full surface.
// The pulse factor stays within [0.85, 1.0], so the effective alpha is
// bounded by [0.85*Opacity, Opacity].
func (g *GridLine) Draw(ctx gfx.Context) {
	g.phase += g.speed
	pulse := 0.85 + 0.15*(0.5+0.5*math.Sin(g.phase))

	ctx.SetStroke(g.color.WithAlpha(g.Opacity * pulse))
	ctx.SetLineWidth(1)

	w, h := ctx.Size()
	ctx.BeginPath()
	if g.Vertical {
		ctx.MoveTo(g.Pos, 0)
		ctx.LineTo(g.Pos, h)
	} else {
		ctx.MoveTo(0, g.Pos)
		ctx.LineTo(w, g.Pos)
	}
	ctx.Stroke()
}
