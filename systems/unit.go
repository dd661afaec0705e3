package systems

import (
	"github.com/automoto/eclipse-contract/components"
	cfg "github.com/automoto/eclipse-contract/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// UpdateUnit runs the follow-the-player AI for one unit and applies the
// movement kind's height rule. Dead units are left untouched.
func UpdateUnit(physics *Physics, unitEntry *donburi.Entry, playerBody *components.BodyData) {
	unit := components.Unit.Get(unitEntry)
	body := components.Body.Get(unitEntry)
	health := components.Health.Get(unitEntry)
	kind := components.Movement.Get(unitEntry).Kind

	if unit.State == cfg.UnitDead {
		return
	}
	if health.Current <= 0 {
		unit.State = cfg.UnitDead
		body.VX, body.VY = 0, 0
		return
	}

	if kind != cfg.Fixed {
		followPlayer(unit, body, playerBody)
	}

	switch kind {
	case cfg.Ground:
		physics.ApplyGravity(body)
	case cfg.Flying:
		// Hovering bypasses gravity entirely.
		body.Z = cfg.AI.HoverHeight
		body.VZ = 0
		body.Grounded = false
	}
}

// followPlayer steers toward the player when farther than the follow distance
// and holds position otherwise.
func followPlayer(unit *components.UnitData, body, playerBody *components.BodyData) {
	diff := math.NewVec2(playerBody.X, playerBody.Y).Sub(math.NewVec2(body.X, body.Y))
	dist := diff.Magnitude()

	// A unit standing exactly on the player has no direction to move in.
	if dist > cfg.AI.FollowDistance && dist > 0 {
		dir := diff.MulScalar(unit.Speed / dist)
		body.VX = dir.X
		body.VY = dir.Y
		unit.State = cfg.UnitMove
		return
	}
	body.VX = 0
	body.VY = 0
	unit.State = cfg.UnitIdle
}
