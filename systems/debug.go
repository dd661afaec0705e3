package systems

import (
	"image/color"

	"github.com/automoto/eclipse-contract/components"
	"github.com/automoto/eclipse-contract/render"
	"github.com/yohamta/donburi"
)

// DrawFootprints outlines the player's and every unit's footprint. Units that
// overlap the player or another unit are drawn in red. Expects world
// coordinates.
func DrawFootprints(s render.Surface, player *donburi.Entry, units []*donburi.Entry) {
	playerBody := components.Body.Get(player)
	s.StrokeRect(playerBody.X, playerBody.Y, playerBody.W, playerBody.H, 1, color.RGBA{0, 0, 255, 255}) // Blue

	for _, u := range units {
		body := components.Body.Get(u)
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if CheckCollision(body, playerBody) || len(OverlappingUnits(u, units)) > 0 {
			c = color.RGBA{255, 0, 0, 255} // Red
		}
		s.StrokeRect(body.X, body.Y, body.W, body.H, 1, c)
	}
}
