// Package surface provides the two gfx.Context implementations: an SDL
// window canvas and a terminal raster built from braille cells.
package surface

import (
	"math"
	"strings"

	"github.com/olivier-w/glimmer/internal/gfx"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// litThreshold is the dot intensity below which a dot reads as off. The
// trail wash decays intensity multiplicatively, so old strokes linger a few
// frames and then drop out.
const litThreshold = 0.05

// Raster is a terminal drawing surface: a 2×4-dots-per-cell braille grid
// that accepts the same path/fill/stroke calls as the SDL canvas. Strokes
// accumulate into a persistent dot buffer; an alpha fill over the whole
// surface fades it, which is how the trail effect survives the trip into
// character cells.
type Raster struct {
	cols, rows int     // character cells
	dotW, dotH int     // physical dot grid
	surfW      float64 // virtual surface width (dots)
	surfH      float64 // virtual surface height, width×0.75

	intensity []float64
	colors    []gfx.Color

	fill  gfx.Color
	strk  gfx.Color
	width float64
	path  [][]point
}

type point struct{ x, y float64 }

// NewRaster builds a raster for a cols×rows cell terminal. The virtual
// surface is cols×2 dots wide and 4:3 (height = width × 0.75); rows beyond
// the physical terminal clip.
func NewRaster(cols, rows int) *Raster {
	r := &Raster{}
	r.Resize(cols, rows)
	return r
}

// Resize reallocates the dot buffers for a new terminal size. Contents are
// discarded; callers rebuild the field anyway on resize.
func (r *Raster) Resize(cols, rows int) {
	if cols < 2 {
		cols = 2
	}
	if rows < 1 {
		rows = 1
	}
	r.cols, r.rows = cols, rows
	r.dotW, r.dotH = cols*2, rows*4
	r.surfW = float64(r.dotW)
	r.surfH = math.Floor(r.surfW * 0.75)
	r.intensity = make([]float64, r.dotW*r.dotH)
	r.colors = make([]gfx.Color, r.dotW*r.dotH)
	r.path = nil
	r.width = 1
}

// Size reports the virtual surface dimensions, not the physical dot grid:
// the aspect rule is part of the host-surface contract.
func (r *Raster) Size() (w, h float64) { return r.surfW, r.surfH }

func (r *Raster) SetFill(c gfx.Color) { r.fill = c }

func (r *Raster) SetStroke(c gfx.Color) { r.strk = c }

func (r *Raster) SetLineWidth(w float64) { r.width = w }

// FillRect covering the whole surface is the frame wash: it decays every
// dot by the fill alpha instead of painting them, so partial alpha leaves
// trails and an opaque fill clears. Smaller rects stamp their area.
func (r *Raster) FillRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && w >= r.surfW && h >= r.surfH {
		keep := 1 - r.fill.A
		for i := range r.intensity {
			r.intensity[i] *= keep
		}
		return
	}
	for dy := int(y); dy < int(y+h); dy++ {
		for dx := int(x); dx < int(x+w); dx++ {
			r.setDot(dx, dy, r.fill)
		}
	}
}

func (r *Raster) BeginPath() { r.path = nil }

func (r *Raster) MoveTo(x, y float64) {
	r.path = append(r.path, []point{{x, y}})
}

func (r *Raster) LineTo(x, y float64) {
	if len(r.path) == 0 {
		r.MoveTo(x, y)
		return
	}
	n := len(r.path) - 1
	r.path[n] = append(r.path[n], point{x, y})
}

// Arc appends a sampled circular arc as line segments; sampling keeps
// adjacent samples under a dot apart so strokes stay gapless.
func (r *Raster) Arc(x, y, radius, start, end float64) {
	steps := int(math.Ceil(radius*math.Abs(end-start))) + 8
	pts := make([]point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := start + (end-start)*float64(i)/float64(steps)
		pts = append(pts, point{x + radius*math.Cos(a), y + radius*math.Sin(a)})
	}
	if n := len(r.path) - 1; n >= 0 && len(r.path[n]) > 0 {
		r.path[n] = append(r.path[n], pts...)
	} else {
		r.path = append(r.path, pts)
	}
}

func (r *Raster) ClosePath() {
	if n := len(r.path) - 1; n >= 0 && len(r.path[n]) > 1 {
		r.path[n] = append(r.path[n], r.path[n][0])
	}
}

// Fill rasterizes each subpath as a polygon via even-odd point-in-polygon
// over its bounding box. The shapes here are particle-sized circles, so
// the scan is a handful of dots.
func (r *Raster) Fill() {
	for _, sub := range r.path {
		if len(sub) < 3 {
			continue
		}
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for _, p := range sub {
			minX = math.Min(minX, p.x)
			minY = math.Min(minY, p.y)
			maxX = math.Max(maxX, p.x)
			maxY = math.Max(maxY, p.y)
		}
		for dy := int(minY); dy <= int(maxY); dy++ {
			for dx := int(minX); dx <= int(maxX); dx++ {
				if inPolygon(sub, float64(dx)+0.5, float64(dy)+0.5) {
					r.setDot(dx, dy, r.fill)
				}
			}
		}
	}
}

// Stroke rasterizes every subpath segment with a DDA walk.
func (r *Raster) Stroke() {
	for _, sub := range r.path {
		if len(sub) == 1 {
			r.setDot(int(sub[0].x), int(sub[0].y), r.strk)
			continue
		}
		for i := 0; i+1 < len(sub); i++ {
			r.line(sub[i], sub[i+1], r.strk)
		}
	}
}

func (r *Raster) line(a, b point, c gfx.Color) {
	dx, dy := b.x-a.x, b.y-a.y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.setDot(int(a.x+dx*t), int(a.y+dy*t), c)
	}
}

func (r *Raster) setDot(x, y int, c gfx.Color) {
	if x < 0 || y < 0 || x >= r.dotW || y >= r.dotH {
		return
	}
	if float64(y) >= r.surfH {
		return
	}
	i := y*r.dotW + x
	if c.A >= r.intensity[i] {
		r.intensity[i] = c.A
		r.colors[i] = c
	}
}

func inPolygon(poly []point, x, y float64) bool {
	in := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.y > y) != (pj.y > y) &&
			x < (pj.x-pi.x)*(y-pi.y)/(pj.y-pi.y)+pi.x {
			in = !in
		}
	}
	return in
}

// View composes the dot buffer into braille cells with ANSI color runs,
// one string per frame. Cell color follows its brightest lit dot.
func (r *Raster) View() string {
	var sb strings.Builder
	state := newANSIState()
	rows := make([]string, r.rows)
	for row := 0; row < r.rows; row++ {
		sb.Reset()
		for col := 0; col < r.cols; col++ {
			var pattern uint
			var best float64
			var bestColor gfx.Color
			for dx := 0; dx < 2; dx++ {
				for dy := 0; dy < 4; dy++ {
					x := col*2 + dx
					y := row*4 + dy
					i := y*r.dotW + x
					v := r.intensity[i]
					if v <= litThreshold {
						continue
					}
					pattern |= 1 << brailleBits[dx][dy]
					if v > best {
						best = v
						bestColor = r.colors[i]
					}
				}
			}
			if pattern == 0 {
				state.reset(&sb)
				sb.WriteRune(' ')
				continue
			}
			state.set(&sb, dimmed(bestColor, best))
			sb.WriteRune(rune(0x2800 + pattern))
		}
		state.reset(&sb)
		rows[row] = sb.String()
	}
	return strings.Join(rows, "\n")
}

// dimmed scales a color toward black by the dot intensity, which is what
// makes fading trails visible on terminals with no real alpha.
func dimmed(c gfx.Color, v float64) gfx.Color {
	if v > 1 {
		v = 1
	}
	return gfx.Color{
		R: uint8(float64(c.R) * v),
		G: uint8(float64(c.G) * v),
		B: uint8(float64(c.B) * v),
		A: 1,
	}
}
