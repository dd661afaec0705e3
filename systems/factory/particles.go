package factory

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/eclipse-contract/archetypes"
	"github.com/automoto/eclipse-contract/components"
	cfg "github.com/automoto/eclipse-contract/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateSummonBurst spawns a ring of fading motes at the given point.
func CreateSummonBurst(w donburi.World, rng *rand.Rand, x, y float64) []*donburi.Entry {
	p := cfg.Particles
	entries := make([]*donburi.Entry, 0, p.Count)
	for range p.Count {
		angle := rng.Float64() * 2 * math.Pi
		speed := p.MinSpeed + rng.Float64()*(p.MaxSpeed-p.MinSpeed)
		life := float32(p.MinLife + rng.IntN(p.MaxLife-p.MinLife+1))
		size := float32(p.MinSize + rng.Float64()*(p.MaxSize-p.MinSize))
		endSize := max(size-float32(p.Shrink)*life, 0)

		e := archetypes.Particle.Spawn(w)
		components.Particle.SetValue(e, components.ParticleData{
			X:      x,
			Y:      y,
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle) * speed,
			Color:  p.Colors[rng.IntN(len(p.Colors))],
			Fade:   gween.New(1, 0, life, ease.Linear),
			Shrink: gween.New(size, endSize, life, ease.Linear),
			Alpha:  1,
			Size:   size,
		})
		entries = append(entries, e)
	}
	return entries
}
