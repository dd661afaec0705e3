// Package render defines the 2D drawing surface the simulation draws onto.
package render

import "image/color"

// Surface is a canvas-like 2D drawing target. Glow and translation are part of
// the drawing state captured by Save and reinstated by Restore.
type Surface interface {
	// Size returns the current surface dimensions in pixels.
	Size() (width, height float64)
	Clear()

	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, lineWidth float64, clr color.Color)
	FillEllipse(cx, cy, rx, ry float64, clr color.Color)
	Line(x0, y0, x1, y1, lineWidth float64, clr color.Color)
	Text(s string, x, y float64, clr color.Color)
	// Label draws s in the small face, for captions inside widgets.
	Label(s string, x, y float64, clr color.Color)

	// SetGlow makes subsequent fills emit a halo of the given radius and color.
	// A zero blur disables it.
	SetGlow(blur float64, clr color.Color)
	// Translate offsets subsequent drawing.
	Translate(dx, dy float64)

	Save()
	Restore()
}
