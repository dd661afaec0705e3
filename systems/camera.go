package systems

import (
	"github.com/automoto/eclipse-contract/components"
	"github.com/automoto/eclipse-contract/config"
	"github.com/automoto/eclipse-contract/gamemath"
)

// UpdateCamera eases the view horizontally so the player stays centered once
// they walk past the middle of the screen. The view never scrolls left of x=0.
func UpdateCamera(camera *components.CameraData, playerBody *components.BodyData, viewWidth float64) {
	targetX := max(playerBody.X+playerBody.W/2-viewWidth/2, 0)
	camera.Position.X = gamemath.Approach(camera.Position.X, targetX, config.Camera.FollowSmoothing, config.Camera.SnapDistance)
}
