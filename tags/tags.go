package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Unit     = donburi.NewTag().SetName("Unit")
	Particle = donburi.NewTag().SetName("Particle")
)

// Resolv tags for footprint overlap queries
const (
	ResolvPlayer = "player"
	ResolvUnit   = "unit"
)
