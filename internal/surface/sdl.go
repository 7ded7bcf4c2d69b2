package surface

import (
	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/sdlcanvas"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/olivier-w/glimmer/internal/field"
	"github.com/olivier-w/glimmer/internal/gfx"
)

// Canvas adapts a tfriedel6 canvas to gfx.Context. The method set maps
// one-to-one; styles go through CSS rgba strings, which the canvas parses.
type Canvas struct {
	cv *canvas.Canvas
}

func (c *Canvas) Size() (w, h float64) {
	return float64(c.cv.Width()), float64(c.cv.Height())
}

func (c *Canvas) SetFill(col gfx.Color) { c.cv.SetFillStyle(col.CSS()) }

func (c *Canvas) SetStroke(col gfx.Color) { c.cv.SetStrokeStyle(col.CSS()) }

func (c *Canvas) SetLineWidth(w float64) { c.cv.SetLineWidth(w) }

func (c *Canvas) FillRect(x, y, w, h float64) { c.cv.FillRect(x, y, w, h) }

func (c *Canvas) BeginPath() { c.cv.BeginPath() }

func (c *Canvas) MoveTo(x, y float64) { c.cv.MoveTo(x, y) }

func (c *Canvas) LineTo(x, y float64) { c.cv.LineTo(x, y) }

func (c *Canvas) Arc(x, y, r, s, e float64) { c.cv.Arc(x, y, r, s, e, false) }

func (c *Canvas) ClosePath() { c.cv.ClosePath() }

func (c *Canvas) Fill() { c.cv.Fill() }

func (c *Canvas) Stroke() { c.cv.Stroke() }

// Window owns an SDL window and drives the frame loop for it. One frame
// callback runs at a time (vsync-paced by the canvas backend); a size
// change rebuilds the field before the next step.
type Window struct {
	win    *sdlcanvas.Window
	ctx    *Canvas
	closed bool
}

// NewWindow opens an SDL window of the given width at the 4:3 aspect the
// animation uses. Returns an error when no display is available, which the
// caller treats as "no surface" and falls back.
func NewWindow(title string, width int) (*Window, error) {
	height := int(float64(width) * 0.75)
	win, cv, err := sdlcanvas.CreateWindow(width, height, title)
	if err != nil {
		return nil, err
	}
	return &Window{win: win, ctx: &Canvas{cv: cv}}, nil
}

// Run steps the field once per frame until the window closes. Pointer
// coordinates arrive window-local from SDL, so no offset translation is
// needed; leaving the window clears the pointer.
func (w *Window) Run(f *field.Field) {
	cw, ch := w.ctx.Size()
	f.Init(cw, ch)

	w.win.MouseMove = func(x, y int) {
		f.SetPointer(float64(x), float64(y))
	}
	w.win.Event = func(ev sdl.Event) {
		if we, ok := ev.(*sdl.WindowEvent); ok && we.Event == sdl.WINDOWEVENT_LEAVE {
			f.ClearPointer()
		}
	}
	w.win.KeyDown = func(scancode int, rn rune, name string) {
		switch name {
		case "Escape", "KeyQ":
			w.Close()
		}
	}

	lastW, lastH := cw, ch
	w.win.MainLoop(func() {
		if pw, ph := w.ctx.Size(); pw != lastW || ph != lastH {
			lastW, lastH = pw, ph
			f.Init(pw, ph)
		}
		f.Step(w.ctx)
	})
}

// Close ends the loop and releases the window. Safe to call more than once
// and before Run.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.win.Close()
	w.win.Destroy()
}
