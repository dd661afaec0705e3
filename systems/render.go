package systems

import (
	"cmp"
	"image/color"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/automoto/eclipse-contract/components"
	cfg "github.com/automoto/eclipse-contract/config"
	"github.com/automoto/eclipse-contract/render"
	"github.com/yohamta/donburi"
)

// Player sprite layout, relative to the body's top-left corner
const (
	hoodOffsetX = 10
	hoodOffsetY = 5
	hoodSize    = 20
	eyeLeftX    = 12
	eyeRightX   = 22
	eyeOffsetY  = 12
	eyeWidth    = 6
	eyeHeight   = 4
	eyeShift    = 4 // horizontal look offset, sign follows vx
)

// DepthSort returns the entries ordered back to front by ground-plane y.
// Entries with equal y keep their input order.
func DepthSort(entries []*donburi.Entry) []*donburi.Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b *donburi.Entry) int {
		return cmp.Compare(components.Body.Get(a).Y, components.Body.Get(b).Y)
	})
	return sorted
}

// DrawEntity draws a player or a unit.
func DrawEntity(s render.Surface, e *donburi.Entry) {
	if e.HasComponent(components.Player) {
		DrawPlayer(s, e)
		return
	}
	DrawUnit(s, e)
}

// DrawPlayer draws the shadow at ground level, then the glowing body lifted by
// z with its hood and eyes.
func DrawPlayer(s render.Surface, e *donburi.Entry) {
	body := components.Body.Get(e)
	appearance := components.Appearance.Get(e)

	s.Save()
	defer s.Restore()

	s.FillEllipse(body.X+body.W/2, body.Y+body.H-cfg.Render.ShadowLift, body.W/2, cfg.Render.PlayerShadowRY, cfg.Render.PlayerShadowColor)

	drawY := body.Y - body.Z

	s.SetGlow(cfg.Player.GlowBlur, appearance.Color)
	s.FillRect(body.X, drawY, body.W, body.H, appearance.Color)
	s.FillRect(body.X+hoodOffsetX, drawY+hoodOffsetY, hoodSize, hoodSize, cfg.Player.HoodColor)

	s.SetGlow(cfg.Player.EyeGlowBlur, cfg.Player.EyeColor)
	shift := float64(eyeShift)
	if body.VX < 0 {
		shift = -shift
	}
	s.FillRect(body.X+eyeLeftX+shift, drawY+eyeOffsetY, eyeWidth, eyeHeight, cfg.Player.EyeColor)
	s.FillRect(body.X+eyeRightX+shift, drawY+eyeOffsetY, eyeWidth, eyeHeight, cfg.Player.EyeColor)
}

// DrawUnit draws the shadow, the body lifted by z, a health bar above it and
// the archetype's decoration.
func DrawUnit(s render.Surface, e *donburi.Entry) {
	body := components.Body.Get(e)
	appearance := components.Appearance.Get(e)
	health := components.Health.Get(e)
	unit := components.Unit.Get(e)

	s.FillEllipse(body.X+body.W/2, body.Y+body.H-cfg.Render.ShadowLift, body.W/2, cfg.Render.UnitShadowRY, cfg.Render.UnitShadowColor)

	drawY := body.Y - body.Z
	s.FillRect(body.X, drawY, body.W, body.H, appearance.Color)

	barY := drawY - cfg.Render.HealthBarGap
	s.FillRect(body.X, barY, body.W, cfg.Render.HealthBarHeight, cfg.Render.HealthBarBg)
	s.FillRect(body.X, barY, body.W*health.Ratio(), cfg.Render.HealthBarHeight, cfg.Render.HealthBarFg)

	if unit.TypeConfig == nil {
		return
	}
	if unit.TypeConfig.HasEyes {
		size := cfg.Render.GhoulEyeSize
		s.FillRect(body.X+cfg.Render.GhoulEyeOffsetX, drawY+cfg.Render.GhoulEyeOffsetY, size, size, unit.TypeConfig.EyeColor)
	}
	if unit.TypeConfig.Kind == cfg.Fixed {
		inset := cfg.Render.WardRuneInset
		s.StrokeRect(body.X+inset, drawY+inset, body.W-2*inset, body.H-2*inset, cfg.Render.WardRuneWidth, cfg.Render.WardRuneColor)
	}
}

// DrawConnector draws the faint tether between the player's and a unit's feet.
func DrawConnector(s render.Surface, playerBody, unitBody *components.BodyData) {
	px, py := playerBody.Foot()
	ux, uy := unitBody.Foot()
	s.Line(px, py, ux, uy, 1, cfg.Render.ConnectorColor)
}

// DrawGround fills the floor, draws the grid scrolled by the camera and the
// horizon line.
func DrawGround(s render.Surface, physics *Physics, cameraX float64) {
	width, height := s.Size()
	s.FillRect(0, 0, width, height, cfg.Render.FloorColor)

	grid := cfg.Render.GridSize
	for x := -math.Mod(cameraX, grid); x < width; x += grid {
		s.Line(x, 0, x, height, 1, cfg.Render.GridColor)
	}
	for y := 0.0; y < height; y += grid {
		s.Line(0, y, width, y, 1, cfg.Render.GridColor)
	}

	s.Line(0, physics.MinY, width, physics.MinY, cfg.Render.HorizonWidth, cfg.Render.HorizonColor)
}

// DrawMenuBackground scatters faint dots over the idle screen. The dots are
// regenerated on every call.
func DrawMenuBackground(s render.Surface, rng *rand.Rand) {
	width, height := s.Size()
	for range cfg.Render.MenuDotCount {
		x := rng.Float64() * width
		y := rng.Float64() * height
		size := rng.Float64() * cfg.Render.MenuDotMaxSize
		s.FillRect(x, y, size, size, cfg.Render.MenuDotColor)
	}
}

// DrawParticles draws every live particle as a fading disc.
func DrawParticles(s render.Surface, w donburi.World) {
	components.Particle.Each(w, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		if p.Size <= 0 || p.Alpha <= 0 {
			return
		}
		clr := color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: uint8(min(p.Alpha, 1) * 255)}
		r := float64(p.Size)
		s.FillEllipse(p.X, p.Y, r, r, clr)
	})
}

// DrawInstructions draws the control hint in screen space.
func DrawInstructions(s render.Surface) {
	s.Text(cfg.Render.Instructions, cfg.Render.InstructionsX, cfg.Render.InstructionsY, cfg.Render.TextColor)
}
