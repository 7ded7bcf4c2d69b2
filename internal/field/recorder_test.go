package field

import "github.com/olivier-w/glimmer/internal/gfx"

// op is one recorded drawing call. Only the fields relevant to the op kind
// are set.
type op struct {
	kind       string // "fillrect", "moveto", "lineto", "arc", "fill", "stroke"
	x, y, w, h float64
	r          float64
	color      gfx.Color
}

// recorder is a gfx.Context that captures calls for assertions.
type recorder struct {
	width, height float64
	fill, stroke  gfx.Color
	ops           []op
}

func newRecorder(w, h float64) *recorder {
	return &recorder{width: w, height: h}
}

func (r *recorder) Size() (w, h float64) { return r.width, r.height }

func (r *recorder) SetFill(c gfx.Color) { r.fill = c }

func (r *recorder) SetStroke(c gfx.Color) { r.stroke = c }

func (r *recorder) SetLineWidth(w float64) {}

func (r *recorder) FillRect(x, y, w, h float64) {
	r.ops = append(r.ops, op{kind: "fillrect", x: x, y: y, w: w, h: h, color: r.fill})
}

func (r *recorder) BeginPath() {}

func (r *recorder) MoveTo(x, y float64) {
	r.ops = append(r.ops, op{kind: "moveto", x: x, y: y})
}

func (r *recorder) LineTo(x, y float64) {
	r.ops = append(r.ops, op{kind: "lineto", x: x, y: y})
}

func (r *recorder) Arc(x, y, radius, start, end float64) {
	r.ops = append(r.ops, op{kind: "arc", x: x, y: y, r: radius})
}

func (r *recorder) ClosePath() {}

func (r *recorder) Fill() {
	r.ops = append(r.ops, op{kind: "fill", color: r.fill})
}

func (r *recorder) Stroke() {
	r.ops = append(r.ops, op{kind: "stroke", color: r.stroke})
}

func (r *recorder) kinds() []string {
	out := make([]string, len(r.ops))
	for i, o := range r.ops {
		out[i] = o.kind
	}
	return out
}
