package render

import (
	"fmt"
	"image/color"
)

// Op is one drawing call captured by a Recorder.
type Op struct {
	Kind       string // "clear", "rect", "stroke", "ellipse", "line", "text", "label", "glow", "translate", "save", "restore"
	X, Y, W, H float64
	Text       string
	Color      color.Color
}

func (o Op) String() string {
	return fmt.Sprintf("%s(%.1f,%.1f,%.1f,%.1f)", o.Kind, o.X, o.Y, o.W, o.H)
}

// Recorder is a Surface that draws nothing and records every call in order.
// Tests draw onto it in place of a real canvas.
type Recorder struct {
	Width, Height float64
	Ops           []Op
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (float64, float64) {
	return r.Width, r.Height
}

// Clear drops everything recorded so far.
func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Kind: "clear"})
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Recorder) StrokeRect(x, y, w, h, lineWidth float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke", X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Recorder) FillEllipse(cx, cy, rx, ry float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "ellipse", X: cx, Y: cy, W: rx, H: ry, Color: clr})
}

// Line records the endpoints in X, Y and W, H.
func (r *Recorder) Line(x0, y0, x1, y1, lineWidth float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "line", X: x0, Y: y0, W: x1, H: y1, Color: clr})
}

func (r *Recorder) Text(s string, x, y float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: x, Y: y, Text: s, Color: clr})
}

func (r *Recorder) Label(s string, x, y float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "label", X: x, Y: y, Text: s, Color: clr})
}

func (r *Recorder) SetGlow(blur float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "glow", W: blur, Color: clr})
}

func (r *Recorder) Translate(dx, dy float64) {
	r.Ops = append(r.Ops, Op{Kind: "translate", X: dx, Y: dy})
}

func (r *Recorder) Save() {
	r.Ops = append(r.Ops, Op{Kind: "save"})
}

func (r *Recorder) Restore() {
	r.Ops = append(r.Ops, Op{Kind: "restore"})
}

// Count returns how many recorded ops are of the given kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded ops of the given kind, in order.
func (r *Recorder) Filter(kind string) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}
