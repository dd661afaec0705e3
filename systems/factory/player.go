package factory

import (
	"github.com/automoto/eclipse-contract/archetypes"
	"github.com/automoto/eclipse-contract/components"
	cfg "github.com/automoto/eclipse-contract/config"
	"github.com/automoto/eclipse-contract/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, space *resolv.Space, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
	obj.Data = player
	components.Body.SetValue(player, components.BodyData{
		Object:   obj,
		Grounded: true,
	})
	components.Player.SetValue(player, components.PlayerData{
		Speed:     cfg.Player.Speed,
		MaxSpeed:  cfg.Player.MaxSpeed,
		JumpForce: cfg.Player.JumpForce,
		Soul:      cfg.Player.Soul,
		MaxSoul:   cfg.Player.MaxSoul,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Appearance.SetValue(player, components.AppearanceData{
		Color: cfg.Player.Color,
	})

	if space != nil {
		space.Add(obj)
	}
	return player
}
