package field

import (
	"testing"

	"github.com/olivier-w/glimmer/internal/gfx"
)

func TestPulseAlphaStaysBounded(t *testing.T) {
	g := GridLine{
		Vertical: true,
		Pos:      60,
		Opacity:  0.3,
		color:    gfx.Color{R: 58, G: 123, B: 213},
		speed:    0.02,
	}
	rec := newRecorder(400, 300)

	lo, hi := 0.85*g.Opacity, g.Opacity
	for i := 0; i < 1000; i++ {
		g.Draw(rec)
		a := rec.stroke.A
		if a < lo-1e-12 || a > hi+1e-12 {
			t.Fatalf("draw %d: pulse alpha %f outside [%f, %f]", i, a, lo, hi)
		}
	}
}

func TestPulsePhaseAdvancesEveryDraw(t *testing.T) {
	g := GridLine{Vertical: false, Pos: 120, Opacity: 0.2, speed: 0.015}
	rec := newRecorder(400, 300)

	prev := g.phase
	for i := 0; i < 10; i++ {
		g.Draw(rec)
		if g.phase <= prev {
			t.Fatalf("draw %d: phase did not advance: %f -> %f", i, prev, g.phase)
		}
		prev = g.phase
	}
}

func TestDrawSpansFullSurface(t *testing.T) {
	rec := newRecorder(400, 300)

	v := GridLine{Vertical: true, Pos: 60, Opacity: 0.2, speed: 0.01}
	v.Draw(rec)
	if len(rec.ops) != 3 {
		t.Fatalf("unexpected ops for vertical line: %v", rec.kinds())
	}
	if m, l := rec.ops[0], rec.ops[1]; m.x != 60 || m.y != 0 || l.x != 60 || l.y != 300 {
		t.Fatalf("vertical line path (%f,%f)-(%f,%f), want (60,0)-(60,300)", m.x, m.y, l.x, l.y)
	}

	rec.ops = nil
	h := GridLine{Vertical: false, Pos: 120, Opacity: 0.2, speed: 0.01}
	h.Draw(rec)
	if m, l := rec.ops[0], rec.ops[1]; m.x != 0 || m.y != 120 || l.x != 400 || l.y != 120 {
		t.Fatalf("horizontal line path (%f,%f)-(%f,%f), want (0,120)-(400,120)", m.x, m.y, l.x, l.y)
	}
}
