package gfx

import "fmt"

// Color is a straight-alpha color. A is in [0,1] so per-frame alpha math
// stays in float space until a backend encodes it.
type Color struct {
	R, G, B uint8
	A       float64
}

// WithAlpha returns the color with its alpha replaced, clamped to [0,1].
func (c Color) WithAlpha(a float64) Color {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = a
	return c
}

// CSS renders the color as an rgba() string, the form the canvas backend's
// style setters parse.
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, c.A)
}

// Context is an immediate-mode 2D drawing target: the subset of the HTML
// canvas contract the animation needs. Implementations are an SDL canvas
// and a terminal braille raster; calls are pure side effects with no
// failure mode.
type Context interface {
	// Size reports the current drawable dimensions in surface units.
	Size() (w, h float64)

	SetFill(c Color)
	SetStroke(c Color)
	SetLineWidth(w float64)

	// FillRect paints a rectangle with the current fill style without
	// touching the path state.
	FillRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc appends a circular arc centered at (x, y) from start to end
	// radians, clockwise.
	Arc(x, y, r, start, end float64)
	ClosePath()
	Fill()
	Stroke()
}
