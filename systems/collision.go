package systems

import (
	"github.com/automoto/eclipse-contract/components"
	"github.com/automoto/eclipse-contract/tags"
	"github.com/yohamta/donburi"
)

// OverlappingUnits returns the units whose footprint overlaps the entry's.
// The space's cells narrow the candidates and CheckCollision decides. A body
// that has walked past the edge of the space is not registered in any cell,
// so it is swept against every unit instead.
func OverlappingUnits(e *donburi.Entry, units []*donburi.Entry) []*donburi.Entry {
	body := components.Body.Get(e)
	if body.Object == nil || body.Space == nil {
		return nil
	}
	if !InSpace(body) {
		return sweepUnits(e, body, units)
	}

	check := body.Check(0, 0, tags.ResolvUnit)
	if check == nil {
		return nil
	}

	var hits []*donburi.Entry
	for _, obj := range check.ObjectsByTags(tags.ResolvUnit) {
		other, ok := obj.Data.(*donburi.Entry)
		if !ok || other == e || !other.Valid() {
			continue
		}
		if CheckCollision(body, components.Body.Get(other)) {
			hits = append(hits, other)
		}
	}
	return hits
}

// InSpace reports whether the body's footprint lies entirely inside the cells
// of its space.
func InSpace(b *components.BodyData) bool {
	if b.Space == nil {
		return false
	}
	w, h := b.Space.SpaceToWorld(b.Space.Width(), b.Space.Height())
	return b.X >= 0 && b.Y >= 0 && b.X+b.W <= w && b.Y+b.H <= h
}

func sweepUnits(e *donburi.Entry, body *components.BodyData, units []*donburi.Entry) []*donburi.Entry {
	var hits []*donburi.Entry
	for _, other := range units {
		if other == e || !other.Valid() {
			continue
		}
		if CheckCollision(body, components.Body.Get(other)) {
			hits = append(hits, other)
		}
	}
	return hits
}
