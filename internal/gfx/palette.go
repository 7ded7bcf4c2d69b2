package gfx

import colorful "github.com/lucasb-eyer/go-colorful"

// Theme holds the fixed colors of one animation instance.
type Theme struct {
	Background Color
	Grid       Color
	Particle   Color
	Cursor     Color

	// Connection line endpoints: Near is used for touching pairs, Far as
	// pairs approach the connection cutoff.
	ConnectNear Color
	ConnectFar  Color
}

// DefaultTheme is a dark palette tuned for both backends: saturated enough
// to survive ANSI-256 quantization, dim enough not to bloom on SDL.
func DefaultTheme() Theme {
	return Theme{
		Background:  Color{R: 10, G: 14, B: 26, A: 1},
		Grid:        Color{R: 58, G: 123, B: 213, A: 1},
		Particle:    Color{R: 100, G: 255, B: 218, A: 1},
		Cursor:      Color{R: 235, G: 240, B: 255, A: 1},
		ConnectNear: Color{R: 100, G: 255, B: 218, A: 1},
		ConnectFar:  Color{R: 179, G: 136, B: 255, A: 1},
	}
}

// Connect blends the two connection endpoints in Luv space, which keeps the
// perceived brightness even along the ramp. t=0 selects Near, t=1 Far.
func (th Theme) Connect(t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	a := colorful.Color{R: float64(th.ConnectNear.R) / 255, G: float64(th.ConnectNear.G) / 255, B: float64(th.ConnectNear.B) / 255}
	b := colorful.Color{R: float64(th.ConnectFar.R) / 255, G: float64(th.ConnectFar.G) / 255, B: float64(th.ConnectFar.B) / 255}
	m := a.BlendLuv(b, t).Clamped()
	return Color{R: uint8(m.R*255 + 0.5), G: uint8(m.G*255 + 0.5), B: uint8(m.B*255 + 0.5), A: 1}
}
