package systems

import (
	"github.com/automoto/eclipse-contract/components"
	cfg "github.com/automoto/eclipse-contract/config"
	"github.com/automoto/eclipse-contract/gamemath"
	"github.com/automoto/eclipse-contract/input"
)

// UpdatePlayer turns held directions into ground-plane velocity and starts a
// jump on a fresh press while grounded. Each held direction adds the full
// speed, so diagonals are faster than a single axis.
func UpdatePlayer(in *input.State, player *components.PlayerData, body *components.BodyData) {
	if GetAction(in, cfg.ActionMoveLeft).Pressed {
		body.VX -= player.Speed
	}
	if GetAction(in, cfg.ActionMoveRight).Pressed {
		body.VX += player.Speed
	}
	if GetAction(in, cfg.ActionMoveUp).Pressed {
		body.VY -= player.Speed
	}
	if GetAction(in, cfg.ActionMoveDown).Pressed {
		body.VY += player.Speed
	}

	// Fixed-height hop; holding the key longer does nothing.
	if GetAction(in, cfg.ActionJump).JustPressed && body.Grounded {
		body.VZ = player.JumpForce
		body.Grounded = false
	}

	body.VX = gamemath.ClampSpeed(body.VX, player.MaxSpeed)
	body.VY = gamemath.ClampSpeed(body.VY, player.MaxSpeed)
}
