package field

import (
	"math"
	"testing"

	"github.com/olivier-w/glimmer/internal/config"
	"github.com/olivier-w/glimmer/internal/gfx"
)

func newTestField(t *testing.T) *Field {
	t.Helper()
	return New(config.Default(), gfx.DefaultTheme(), 42)
}

func TestInitProducesExpectedCounts(t *testing.T) {
	f := newTestField(t)
	f.Init(400, 300)

	if got := len(f.Particles()); got != 30 {
		t.Fatalf("particle count = %d, want 30", got)
	}

	var verticals, horizontals []float64
	for _, g := range f.Grid() {
		if g.Vertical {
			verticals = append(verticals, g.Pos)
		} else {
			horizontals = append(horizontals, g.Pos)
		}
	}
	wantV := []float64{0, 60, 120, 180, 240, 300, 360}
	wantH := []float64{0, 60, 120, 180, 240}
	if len(verticals) != len(wantV) {
		t.Fatalf("vertical lines = %v, want %v", verticals, wantV)
	}
	for i, x := range wantV {
		if verticals[i] != x {
			t.Fatalf("vertical line %d at %f, want %f", i, verticals[i], x)
		}
	}
	if len(horizontals) != len(wantH) {
		t.Fatalf("horizontal lines = %v, want %v", horizontals, wantH)
	}
	for i, y := range wantH {
		if horizontals[i] != y {
			t.Fatalf("horizontal line %d at %f, want %f", i, horizontals[i], y)
		}
	}
}

func TestInitStrideDividingDimension(t *testing.T) {
	f := newTestField(t)
	f.Init(120, 120)

	// 120/60 divides exactly: a line at 0 and 60 on each axis, none at
	// the 120 edge itself.
	if got := len(f.Grid()); got != 4 {
		t.Fatalf("grid line count = %d, want 4", got)
	}
	for _, g := range f.Grid() {
		if g.Pos == 120 {
			t.Fatal("grid line placed on the dimension edge")
		}
	}
}

func TestInitParticleAttributes(t *testing.T) {
	f := newTestField(t)
	f.Init(400, 300)

	for i, p := range f.Particles() {
		if p.X != p.BaseX || p.Y != p.BaseY {
			t.Fatalf("particle %d: created away from rest", i)
		}
		if p.X < 0 || p.X >= 400 || p.Y < 0 || p.Y >= 300 {
			t.Fatalf("particle %d: rest (%f, %f) out of bounds", i, p.X, p.Y)
		}
		if p.Density < 10 || p.Density >= 40 {
			t.Fatalf("particle %d: density %f outside [10,40)", i, p.Density)
		}
		if p.Size <= 0 {
			t.Fatalf("particle %d: non-positive size %f", i, p.Size)
		}
	}
}

func TestInitReplacesCollectionsOnResize(t *testing.T) {
	f := newTestField(t)
	f.Init(400, 300)
	f.Init(120, 120)

	// 120*120/4000 = 3.6, truncated.
	if got := len(f.Particles()); got != 3 {
		t.Fatalf("particle count after resize = %d, want 3", got)
	}
	for i, p := range f.Particles() {
		if p.X >= 120 || p.Y >= 120 {
			t.Fatalf("particle %d survived resize out of bounds: (%f, %f)", i, p.X, p.Y)
		}
	}
}

func TestConnectionAlpha(t *testing.T) {
	cases := []struct {
		d, want float64
	}{
		{0, 1},
		{50, 0.5},
		{100, 0},
		{150, 0},
	}
	for _, tc := range cases {
		if got := connectionAlpha(tc.d, 100); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("connectionAlpha(%f, 100) = %f, want %f", tc.d, got, tc.want)
		}
	}
}

func TestStepIsNoOpBeforeInit(t *testing.T) {
	f := newTestField(t)
	rec := newRecorder(400, 300)

	f.Step(rec)

	if len(rec.ops) != 0 {
		t.Fatalf("step before init drew %v", rec.kinds())
	}
}

func TestStepBeginsWithTrailWash(t *testing.T) {
	f := newTestField(t)
	f.Init(400, 300)
	rec := newRecorder(400, 300)

	f.Step(rec)

	if len(rec.ops) == 0 || rec.ops[0].kind != "fillrect" {
		t.Fatalf("expected leading fillrect, got %v", rec.kinds())
	}
	first := rec.ops[0]
	if first.x != 0 || first.y != 0 || first.w != 400 || first.h != 300 {
		t.Fatalf("trail wash rect (%f,%f,%f,%f), want full surface", first.x, first.y, first.w, first.h)
	}
	if a := first.color.A; a >= 0.5 {
		t.Fatalf("trail wash alpha %f, expected a low-opacity overlay", a)
	}
}

func TestStepDrawsCursorOnlyWithPointer(t *testing.T) {
	f := newTestField(t)
	f.Init(400, 300)

	rec := newRecorder(400, 300)
	f.Step(rec)
	for _, o := range rec.ops {
		if o.kind == "moveto" && o.x == -15 {
			t.Fatal("crosshair drawn with no pointer set")
		}
	}

	f.SetPointer(200, 150)
	rec = newRecorder(400, 300)
	f.Step(rec)

	var ring, crosshair, dot bool
	for _, o := range rec.ops {
		switch o.kind {
		case "arc":
			if o.x == 200 && o.y == 150 {
				if o.r == 2 {
					dot = true
				} else if o.r > 0 {
					ring = true
				}
			}
		case "moveto":
			if o.x == 185 && o.y == 150 {
				crosshair = true
			}
		}
	}
	if !ring || !crosshair || !dot {
		t.Fatalf("cursor overlay incomplete: ring=%v crosshair=%v dot=%v", ring, crosshair, dot)
	}

	f.ClearPointer()
	rec = newRecorder(400, 300)
	f.Step(rec)
	for _, o := range rec.ops {
		if o.kind == "arc" && o.x == 200 && o.y == 150 && o.r == 2 {
			t.Fatal("cursor dot drawn after pointer cleared")
		}
	}
}

func TestCursorRingApproachesInteractionRadius(t *testing.T) {
	f := newTestField(t)
	f.Init(400, 300)
	f.SetPointer(200, 150)

	var lastRing float64
	for i := 0; i < 300; i++ {
		rec := newRecorder(400, 300)
		f.Step(rec)
		for _, o := range rec.ops {
			if o.kind == "arc" && o.x == 200 && o.y == 150 && o.r > 2 {
				lastRing = o.r
			}
		}
	}
	if math.Abs(lastRing-f.Pointer().Radius) > 1 {
		t.Fatalf("ring radius settled at %f, want ~%f", lastRing, f.Pointer().Radius)
	}
}

func TestStepConnectsOnlyNearbyPairs(t *testing.T) {
	f := newTestField(t)
	f.Init(400, 300)

	// Substitute a known particle layout: one close pair, one far loner.
	f.particles = []Particle{
		{X: 10, Y: 10, BaseX: 10, BaseY: 10, Size: 1, Density: 10},
		{X: 40, Y: 50, BaseX: 40, BaseY: 50, Size: 1, Density: 10},
		{X: 390, Y: 290, BaseX: 390, BaseY: 290, Size: 1, Density: 10},
	}
	f.grid = nil

	rec := newRecorder(400, 300)
	f.Step(rec)

	var connections int
	for i, o := range rec.ops {
		if o.kind == "lineto" && i > 0 && rec.ops[i-1].kind == "moveto" {
			connections++
		}
	}
	if connections != 1 {
		t.Fatalf("connection count = %d, want 1 (pair at distance 50)", connections)
	}
}

func TestStepRepelsParticleNearPointer(t *testing.T) {
	f := newTestField(t)
	f.Init(400, 300)
	f.particles = []Particle{{X: 210, Y: 150, BaseX: 210, BaseY: 150, Size: 1, Density: 20}}
	f.grid = nil
	f.SetPointer(200, 150)

	rec := newRecorder(400, 300)
	f.Step(rec)

	if got := f.particles[0].X; got <= 210 {
		t.Fatalf("particle x = %f after step, expected repulsion beyond 210", got)
	}
}
