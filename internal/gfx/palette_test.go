package gfx

import "testing"

func TestConnectRampEndpoints(t *testing.T) {
	th := DefaultTheme()

	near := th.Connect(0)
	if near.R != th.ConnectNear.R || near.G != th.ConnectNear.G || near.B != th.ConnectNear.B {
		t.Fatalf("Connect(0) = %+v, want near endpoint %+v", near, th.ConnectNear)
	}
	far := th.Connect(1)
	if far.R != th.ConnectFar.R || far.G != th.ConnectFar.G || far.B != th.ConnectFar.B {
		t.Fatalf("Connect(1) = %+v, want far endpoint %+v", far, th.ConnectFar)
	}
}

func TestConnectClampsParameter(t *testing.T) {
	th := DefaultTheme()
	if got, want := th.Connect(-2), th.Connect(0); got != want {
		t.Fatalf("Connect(-2) = %+v, want clamped %+v", got, want)
	}
	if got, want := th.Connect(5), th.Connect(1); got != want {
		t.Fatalf("Connect(5) = %+v, want clamped %+v", got, want)
	}
}

func TestWithAlphaClamps(t *testing.T) {
	c := Color{R: 10, G: 20, B: 30, A: 1}
	if got := c.WithAlpha(-0.5).A; got != 0 {
		t.Fatalf("WithAlpha(-0.5) alpha = %f, want 0", got)
	}
	if got := c.WithAlpha(2).A; got != 1 {
		t.Fatalf("WithAlpha(2) alpha = %f, want 1", got)
	}
	if got := c.WithAlpha(0.25).A; got != 0.25 {
		t.Fatalf("WithAlpha(0.25) alpha = %f, want 0.25", got)
	}
}

func TestCSSFormat(t *testing.T) {
	c := Color{R: 100, G: 255, B: 218, A: 0.5}
	if got, want := c.CSS(), "rgba(100,255,218,0.500)"; got != want {
		t.Fatalf("CSS() = %q, want %q", got, want)
	}
}
