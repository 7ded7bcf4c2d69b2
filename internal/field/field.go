// Package field implements the animation core: a batch of pointer-reactive
// particles, a pulsing grid overlay, proximity connection lines, and the
// cursor overlay, advanced one frame at a time by a single loop driver.
package field

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/harmonica"
	"github.com/olivier-w/glimmer/internal/config"
	"github.com/olivier-w/glimmer/internal/gfx"
)

// Pointer is the field's view of the input device: a nullable position and
// the fixed interaction radius. When Active is false no force is applied
// and no cursor is drawn.
type Pointer struct {
	X, Y   float64
	Radius float64
	Active bool
}

// Field owns the particle and grid-line collections for one animation
// instance and replaces them wholesale on every Init. It is not safe for
// concurrent use; the loop driver serializes all calls.
type Field struct {
	cfg   config.Config
	theme gfx.Theme
	rng   *rand.Rand

	width, height float64
	particles     []Particle
	grid          []GridLine
	pointer       Pointer
	ready         bool

	// Cursor ring ease-in: the ring radius springs toward the interaction
	// radius when the pointer appears.
	ringSpring   harmonica.Spring
	ringR, ringV float64
}

// New returns an uninitialized field. Init must run before Step.
func New(cfg config.Config, theme gfx.Theme, seed int64) *Field {
	return &Field{
		cfg:        cfg,
		theme:      theme,
		rng:        rand.New(rand.NewSource(seed)),
		pointer:    Pointer{Radius: cfg.PointerRadius},
		ringSpring: harmonica.NewSpring(harmonica.FPS(cfg.FPS), 8.0, 0.6),
	}
}

// Init builds fresh particle and grid-line batches for the given surface
// size, discarding any previous ones. Particle count is one per
// AreaPerParticle square units; rest positions are uniform over the
// surface. Grid lines sit at every stride multiple strictly inside each
// dimension, so a line lands at 0 but never on the far edge.
func (f *Field) Init(width, height float64) {
	f.width, f.height = width, height

	n := int(width * height / f.cfg.AreaPerParticle)
	f.particles = make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		f.particles = append(f.particles, Particle{
			X:       f.rng.Float64() * width,
			Y:       f.rng.Float64() * height,
			Size:    f.cfg.MinSize + f.rng.Float64()*(f.cfg.MaxSize-f.cfg.MinSize),
			Density: f.cfg.MinDensity + f.rng.Float64()*(f.cfg.MaxDensity-f.cfg.MinDensity),
			Color:   f.theme.Particle.WithAlpha(0.4 + f.rng.Float64()*0.6),
		})
	}
	for i := range f.particles {
		p := &f.particles[i]
		p.BaseX, p.BaseY = p.X, p.Y
	}

	f.grid = f.grid[:0]
	for x := 0.0; x < width; x += f.cfg.GridStride {
		f.grid = append(f.grid, f.newGridLine(true, x))
	}
	for y := 0.0; y < height; y += f.cfg.GridStride {
		f.grid = append(f.grid, f.newGridLine(false, y))
	}

	f.ready = true
}

func (f *Field) newGridLine(vertical bool, pos float64) GridLine {
	return GridLine{
		Vertical: vertical,
		Pos:      pos,
		Opacity:  0.1 + f.rng.Float64()*0.3,
		color:    f.theme.Grid,
		phase:    f.rng.Float64() * 2 * math.Pi,
		speed:    0.01 + f.rng.Float64()*0.02,
	}
}

// Ready reports whether Init has run.
func (f *Field) Ready() bool { return f.ready }

// Size returns the surface dimensions of the last Init.
func (f *Field) Size() (w, h float64) { return f.width, f.height }

// Particles exposes the live particle batch. Callers must not retain the
// slice across Init.
func (f *Field) Particles() []Particle { return f.particles }

// Grid exposes the live grid-line batch under the same aliasing rule.
func (f *Field) Grid() []GridLine { return f.grid }

// SetPointer places the pointer at surface coordinates (x, y).
func (f *Field) SetPointer(x, y float64) {
	f.pointer.X, f.pointer.Y = x, y
	f.pointer.Active = true
}

// ClearPointer removes the pointer (leave / touch-end). Particles relax
// back to rest and the cursor overlay disappears.
func (f *Field) ClearPointer() {
	f.pointer.Active = false
}

// Pointer returns the current pointer state.
func (f *Field) Pointer() Pointer { return f.pointer }

// Step renders one frame: trail wash, grid, particle update+draw, pairwise
// connections, cursor overlay. Valid only after Init. The connection pass
// is an O(n²) scan; at one particle per 4000 square units that is hundreds
// of particles for typical surfaces and dominates the frame cost.
func (f *Field) Step(ctx gfx.Context) {
	if !f.ready {
		return
	}
	ctx.SetFill(f.theme.Background.WithAlpha(f.cfg.TrailAlpha))
	ctx.FillRect(0, 0, f.width, f.height)

	for i := range f.grid {
		f.grid[i].Draw(ctx)
	}

	for i := range f.particles {
		f.particles[i].Update(f.pointer)
		f.particles[i].Draw(ctx)
	}

	f.drawConnections(ctx)
	f.drawCursor(ctx)
}

// connectionAlpha maps a pair distance to line opacity: 1 at zero distance,
// fading linearly to 0 at the cutoff and beyond.
func connectionAlpha(d, cutoff float64) float64 {
	if d >= cutoff {
		return 0
	}
	return 1 - d/cutoff
}

func (f *Field) drawConnections(ctx gfx.Context) {
	cutoff := f.cfg.ConnectDistance
	ctx.SetLineWidth(1)
	for i := range f.particles {
		for j := i + 1; j < len(f.particles); j++ {
			a, b := &f.particles[i], &f.particles[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			alpha := connectionAlpha(d, cutoff)
			if alpha <= 0 {
				continue
			}
			ctx.SetStroke(f.theme.Connect(d / cutoff).WithAlpha(alpha))
			ctx.BeginPath()
			ctx.MoveTo(a.X, a.Y)
			ctx.LineTo(b.X, b.Y)
			ctx.Stroke()
		}
	}
}

func (f *Field) drawCursor(ctx gfx.Context) {
	target := 0.0
	if f.pointer.Active {
		target = f.pointer.Radius
	}
	f.ringR, f.ringV = f.ringSpring.Update(f.ringR, f.ringV, target)

	if !f.pointer.Active {
		return
	}
	x, y := f.pointer.X, f.pointer.Y
	cross := f.cfg.CrosshairLen

	ctx.SetStroke(f.theme.Cursor.WithAlpha(0.5))
	ctx.SetLineWidth(1)
	ctx.BeginPath()
	ctx.Arc(x, y, f.ringR, 0, 2*math.Pi)
	ctx.Stroke()

	ctx.BeginPath()
	ctx.MoveTo(x-cross, y)
	ctx.LineTo(x+cross, y)
	ctx.MoveTo(x, y-cross)
	ctx.LineTo(x, y+cross)
	ctx.Stroke()

	ctx.SetFill(f.theme.Cursor)
	ctx.BeginPath()
	ctx.Arc(x, y, 2, 0, 2*math.Pi)
	ctx.Fill()
}
