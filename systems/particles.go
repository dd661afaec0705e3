package systems

import (
	"github.com/automoto/eclipse-contract/components"
	"github.com/yohamta/donburi"
)

// UpdateParticles drifts every particle, advances its tweens by one tick and
// removes the ones whose fade has finished.
func UpdateParticles(w donburi.World) {
	var finished []donburi.Entity
	components.Particle.Each(w, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.X += p.VX
		p.Y += p.VY
		p.Alpha, p.Done = p.Fade.Update(1)
		p.Size, _ = p.Shrink.Update(1)
		if p.Done {
			finished = append(finished, e.Entity())
		}
	})
	// Removing while iterating would reorder the storage under Each.
	for _, entity := range finished {
		w.Remove(entity)
	}
}

// ClearParticles removes all particles from the world.
func ClearParticles(w donburi.World) {
	var all []donburi.Entity
	components.Particle.Each(w, func(e *donburi.Entry) {
		all = append(all, e.Entity())
	})
	for _, entity := range all {
		w.Remove(entity)
	}
}
