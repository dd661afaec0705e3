package systems

import (
	"testing"

	"github.com/automoto/eclipse-contract/components"
	cfg "github.com/automoto/eclipse-contract/config"
	"github.com/automoto/eclipse-contract/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestUpdateUnit(t *testing.T) {
	p := newTestPhysics()

	t.Run("flying units hover at a fixed height", func(t *testing.T) {
		w := donburi.NewWorld()
		u := factory.CreateUnit(w, nil, "Wisp", 150, 300)
		player := newBody(100, 300, 40, 60)
		for range 5 {
			UpdateUnit(p, u, player)
			p.ApplyPhysics(components.Body.Get(u))
			body := components.Body.Get(u)
			assert.Equal(t, cfg.AI.HoverHeight, body.Z)
			assert.Equal(t, 0.0, body.VZ)
			assert.False(t, body.Grounded)
		}
	})
	t.Run("flying units snap to hover height from any starting height", func(t *testing.T) {
		w := donburi.NewWorld()
		u := factory.CreateUnit(w, nil, "Wisp", 150, 300)
		body := components.Body.Get(u)
		body.Z = 300
		body.VZ = 12
		player := newBody(100, 300, 40, 60)

		UpdateUnit(p, u, player)
		p.ApplyPhysics(body)
		assert.Equal(t, cfg.AI.HoverHeight, body.Z)
		assert.Equal(t, 0.0, body.VZ)
		assert.False(t, body.Grounded)
	})
	t.Run("moves toward a distant player at its speed", func(t *testing.T) {
		w := donburi.NewWorld()
		u := factory.CreateUnit(w, nil, "Ghoul", 400, 300)
		player := newBody(100, 300, 40, 60)
		UpdateUnit(p, u, player)
		body := components.Body.Get(u)
		assert.InDelta(t, -2.0, body.VX, 1e-9)
		assert.InDelta(t, 0.0, body.VY, 1e-9)
		assert.Equal(t, cfg.UnitMove, components.Unit.Get(u).State)
	})
	t.Run("holds position within the follow distance", func(t *testing.T) {
		w := donburi.NewWorld()
		u := factory.CreateUnit(w, nil, "Ghoul", 150, 300)
		body := components.Body.Get(u)
		body.VX = 3
		player := newBody(100, 300, 40, 60)
		UpdateUnit(p, u, player)
		assert.Equal(t, 0.0, body.VX)
		assert.Equal(t, 0.0, body.VY)
		assert.Equal(t, cfg.UnitIdle, components.Unit.Get(u).State)
	})
	t.Run("a unit on top of the player stays put", func(t *testing.T) {
		w := donburi.NewWorld()
		u := factory.CreateUnit(w, nil, "Ghoul", 100, 300)
		player := newBody(100, 300, 40, 60)
		UpdateUnit(p, u, player)
		body := components.Body.Get(u)
		assert.Equal(t, 0.0, body.VX)
		assert.Equal(t, 0.0, body.VY)
	})
	t.Run("fixed units never move", func(t *testing.T) {
		w := donburi.NewWorld()
		u := factory.CreateUnit(w, nil, "Ward", 900, 300)
		player := newBody(100, 300, 40, 60)
		for range 10 {
			UpdateUnit(p, u, player)
			p.ApplyPhysics(components.Body.Get(u))
		}
		body := components.Body.Get(u)
		assert.Equal(t, 900.0, body.X)
		assert.Equal(t, 300.0, body.Y)
		assert.Equal(t, cfg.UnitIdle, components.Unit.Get(u).State)
	})
	t.Run("a unit out of health dies and stops", func(t *testing.T) {
		w := donburi.NewWorld()
		u := factory.CreateUnit(w, nil, "Ghoul", 400, 300)
		body := components.Body.Get(u)
		body.VX = 2
		components.Health.Get(u).Adjust(-100)
		require.Equal(t, 0, components.Health.Get(u).Current)

		player := newBody(100, 300, 40, 60)
		UpdateUnit(p, u, player)
		assert.Equal(t, cfg.UnitDead, components.Unit.Get(u).State)
		assert.Equal(t, 0.0, body.VX)

		UpdateUnit(p, u, player)
		assert.Equal(t, 0.0, body.VX)
	})
	t.Run("ground units fall after being lifted", func(t *testing.T) {
		w := donburi.NewWorld()
		u := factory.CreateUnit(w, nil, "Ghoul", 150, 300)
		body := components.Body.Get(u)
		body.Z = 20
		player := newBody(100, 300, 40, 60)
		UpdateUnit(p, u, player)
		assert.Less(t, body.VZ, 0.0)
	})
}
