package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed     float64
	MaxSpeed  float64
	JumpForce float64
	Soul      float64 // Spent to summon units
	MaxSoul   float64
}

var Player = donburi.NewComponentType[PlayerData]()
