package systems

import (
	"github.com/automoto/eclipse-contract/components"
	cfg "github.com/automoto/eclipse-contract/config"
)

// Physics integrates bodies on the ground plane and along the height axis.
// MaxY tracks the viewport and must be refreshed through OnResize.
type Physics struct {
	Gravity  float64
	Friction float64
	MinY     float64 // Horizon line
	MaxY     float64 // Bottom of the walkable band
}

// NewPhysics returns a physics step configured from cfg.Physics for a viewport
// of the given height.
func NewPhysics(viewportHeight float64) *Physics {
	p := &Physics{
		Gravity:  cfg.Physics.Gravity,
		Friction: cfg.Physics.Friction,
		MinY:     cfg.Physics.MinY,
	}
	p.OnResize(viewportHeight)
	return p
}

// OnResize recomputes the bottom bound from the viewport height. The band
// never inverts: a viewport too short for it collapses onto the horizon.
func (p *Physics) OnResize(viewportHeight float64) {
	p.MaxY = max(viewportHeight-cfg.Physics.BottomMargin, p.MinY)
}

// ApplyGravity pulls airborne or rising bodies down. Bodies resting on the
// floor are left alone.
func (p *Physics) ApplyGravity(b *components.BodyData) {
	if b.Z > 0 || b.VZ > 0 {
		b.VZ -= p.Gravity
		b.Grounded = false
	}
}

// ApplyPhysics moves the body by its velocity, applies ground friction and
// clamps it to the floor, the left edge and the horizon band.
func (p *Physics) ApplyPhysics(b *components.BodyData) {
	b.X += b.VX
	b.Y += b.VY
	b.Z += b.VZ

	// Friction only acts on the ground plane; vz decays through floor contact.
	b.VX *= p.Friction
	b.VY *= p.Friction

	if b.Z < 0 {
		b.Z = 0
		b.VZ = 0
		b.Grounded = true
	}

	// Open-ended to the right.
	if b.X < 0 {
		b.X = 0
	}
	if b.Y < p.MinY {
		b.Y = p.MinY
	}
	if b.Y > p.MaxY {
		b.Y = p.MaxY
	}

	// Keep the footprint registered in the right space cells.
	b.Update()
}

// CheckCollision reports whether two footprints overlap on the ground plane.
// Height is not considered; touching edges do not overlap.
func CheckCollision(a, b *components.BodyData) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}
