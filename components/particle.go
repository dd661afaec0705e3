package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ParticleData is one mote of a summon burst. Alpha and size are driven by
// tweens advanced once per tick.
type ParticleData struct {
	X, Y   float64
	VX, VY float64
	Color  color.RGBA

	Fade   *gween.Tween
	Shrink *gween.Tween
	Alpha  float32
	Size   float32
	Done   bool
}

var Particle = donburi.NewComponentType[ParticleData]()
