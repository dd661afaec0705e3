// Package ebitensurface implements render.Surface on top of an ebiten image.
package ebitensurface

import (
	"image/color"

	"github.com/automoto/eclipse-contract/fonts"
	"github.com/automoto/eclipse-contract/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	discRadius = 64
	glowLayers = 4
)

// disc is a white filled circle scaled and tinted to draw ellipses.
var disc *ebiten.Image

func getDisc() *ebiten.Image {
	if disc == nil {
		disc = ebiten.NewImage(discRadius*2, discRadius*2)
		vector.FillCircle(disc, discRadius, discRadius, discRadius, color.White, true)
	}
	return disc
}

type state struct {
	tx, ty    float64
	glowBlur  float64
	glowColor color.Color
}

var _ render.Surface = (*Surface)(nil)

type Surface struct {
	dst   *ebiten.Image
	state state
	stack []state
	op    ebiten.DrawImageOptions
}

// New wraps dst. The drawing state starts untranslated with no glow.
func New(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst}
}

func (s *Surface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) Clear() {
	s.dst.Clear()
}

func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	x, y = x+s.state.tx, y+s.state.ty
	s.drawGlow(x, y, w, h)
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *Surface) StrokeRect(x, y, w, h, lineWidth float64, clr color.Color) {
	x, y = x+s.state.tx, y+s.state.ty
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(lineWidth), clr, false)
}

func (s *Surface) FillEllipse(cx, cy, rx, ry float64, clr color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	cx, cy = cx+s.state.tx, cy+s.state.ty
	s.op.GeoM.Reset()
	s.op.GeoM.Translate(-discRadius, -discRadius)
	s.op.GeoM.Scale(rx/discRadius, ry/discRadius)
	s.op.GeoM.Translate(cx, cy)
	s.op.ColorScale.Reset()
	s.op.ColorScale.ScaleWithColor(clr)
	s.op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(getDisc(), &s.op)
}

func (s *Surface) Line(x0, y0, x1, y1, lineWidth float64, clr color.Color) {
	tx, ty := s.state.tx, s.state.ty
	vector.StrokeLine(s.dst, float32(x0+tx), float32(y0+ty), float32(x1+tx), float32(y1+ty), float32(lineWidth), clr, true)
}

// Text draws s with its baseline at y.
func (s *Surface) Text(str string, x, y float64, clr color.Color) {
	text.Draw(s.dst, str, fonts.Regular.Get(), int(x+s.state.tx), int(y+s.state.ty), clr)
}

func (s *Surface) Label(str string, x, y float64, clr color.Color) {
	text.Draw(s.dst, str, fonts.Small.Get(), int(x+s.state.tx), int(y+s.state.ty), clr)
}

func (s *Surface) SetGlow(blur float64, clr color.Color) {
	s.state.glowBlur = blur
	s.state.glowColor = clr
}

func (s *Surface) Translate(dx, dy float64) {
	s.state.tx += dx
	s.state.ty += dy
}

func (s *Surface) Save() {
	s.stack = append(s.stack, s.state)
}

// Restore is a no-op on an empty stack.
func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// drawGlow approximates a blurred halo with a few faint concentric rects.
func (s *Surface) drawGlow(x, y, w, h float64) {
	if s.state.glowBlur <= 0 || s.state.glowColor == nil {
		return
	}
	r, g, b, _ := s.state.glowColor.RGBA()
	halo := color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255 / (glowLayers * 4)}
	step := s.state.glowBlur / glowLayers
	for i := glowLayers; i > 0; i-- {
		pad := step * float64(i)
		vector.FillRect(s.dst, float32(x-pad), float32(y-pad), float32(w+2*pad), float32(h+2*pad), halo, true)
	}
}
