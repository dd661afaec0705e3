package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BodyData is the kinematic state shared by the player and every unit.
// The embedded resolv object holds the ground-plane footprint (X, Y, W, H);
// Z is the height above the floor.
type BodyData struct {
	*resolv.Object
	Z          float64
	VX, VY, VZ float64
	Grounded   bool
}

// Foot returns the bottom-center of the footprint.
func (b *BodyData) Foot() (x, y float64) {
	return b.X + b.W/2, b.Y + b.H
}

var Body = donburi.NewComponentType[BodyData]()
