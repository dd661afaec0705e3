package archetypes

import (
	"github.com/automoto/eclipse-contract/components"
	"github.com/automoto/eclipse-contract/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Health,
		components.Appearance,
	)
	Unit = newArchetype(
		tags.Unit,
		components.Unit,
		components.Body,
		components.Health,
		components.Movement,
		components.Appearance,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
