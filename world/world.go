// Package world owns the simulation state and advances it one tick at a time:
// input, summoning, player logic, physics, unit AI and rendering.
package world

import (
	"log"
	"math/rand/v2"

	"github.com/automoto/eclipse-contract/components"
	cfg "github.com/automoto/eclipse-contract/config"
	"github.com/automoto/eclipse-contract/input"
	"github.com/automoto/eclipse-contract/render"
	"github.com/automoto/eclipse-contract/systems"
	"github.com/automoto/eclipse-contract/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SoulDisplay receives the player's soul, truncated to an integer, once per tick.
type SoulDisplay interface {
	SetSoul(soul int)
}

// Options configures a World at construction.
type Options struct {
	Width, Height float64      // Initial viewport size
	Input         *input.State // Required
	Display       SoulDisplay  // Optional
	Rand          *rand.Rand   // Optional; used for visual noise only
}

type World struct {
	world   donburi.World
	space   *resolv.Space
	physics *systems.Physics
	input   *input.State
	display SoulDisplay
	rng     *rand.Rand

	player *donburi.Entry
	camera *donburi.Entry
	units  []*donburi.Entry

	running       bool
	width, height float64
}

// New creates the world with its player. The game starts in the idle state;
// call Start to begin.
func New(opts Options) *World {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	in := opts.Input
	if in == nil {
		in = input.NewState()
	}

	w := &World{
		world:   donburi.NewWorld(),
		space:   factory.CreateSpace(),
		physics: systems.NewPhysics(opts.Height),
		input:   in,
		display: opts.Display,
		rng:     rng,
		width:   opts.Width,
		height:  opts.Height,
	}
	w.player = factory.CreatePlayer(w.world, w.space, cfg.Player.SpawnX, cfg.Player.SpawnY)
	w.camera = factory.CreateCamera(w.world)
	return w
}

// Start begins (or restarts) a run: units and particles are cleared and the
// player is put back at the spawn point at rest. Health and soul carry over.
func (w *World) Start() {
	log.Println("Contract signed, game starting")

	for _, u := range w.units {
		w.removeUnit(u)
	}
	w.units = nil
	systems.ClearParticles(w.world)

	body := components.Body.Get(w.player)
	body.X = cfg.Player.SpawnX
	body.Y = cfg.Player.SpawnY
	body.Z = 0
	body.VX, body.VY, body.VZ = 0, 0, 0
	body.Grounded = true
	body.Update()

	components.Camera.Get(w.camera).Position.X = 0
	w.running = true
}

// Stop returns to the idle state without touching the world.
func (w *World) Stop() {
	w.running = false
}

// OnResize records the new viewport size and moves the bottom bound with it.
func (w *World) OnResize(width, height float64) {
	w.width, w.height = width, height
	w.physics.OnResize(height)
}

// Tick advances the simulation by one frame. It does nothing while idle.
func (w *World) Tick() {
	if !w.running {
		return
	}

	for _, name := range cfg.Units.Order {
		if systems.GetAction(w.input, cfg.Units.Types[name].SummonAction).JustPressed {
			w.Summon(name)
		}
	}
	if w.input.PointerClicked() {
		x, y := w.input.Pointer()
		if name, ok := systems.SummonSlotAt(w.width, w.height, x, y); ok {
			w.Summon(name)
		}
	}

	player := components.Player.Get(w.player)
	playerBody := components.Body.Get(w.player)
	systems.UpdatePlayer(w.input, player, playerBody)
	w.physics.ApplyGravity(playerBody)
	w.physics.ApplyPhysics(playerBody)

	for _, u := range w.units {
		systems.UpdateUnit(w.physics, u, playerBody)
		if components.Unit.Get(u).State == cfg.UnitDead {
			continue
		}
		w.physics.ApplyPhysics(components.Body.Get(u))
	}
	w.reapDeadUnits()

	systems.UpdateParticles(w.world)
	systems.UpdateCamera(components.Camera.Get(w.camera), playerBody, w.width)

	if w.display != nil {
		w.display.SetSoul(w.Soul())
	}

	// Must come after every read of pressed state this tick.
	w.input.AdvanceFrame()
}

// Summon spends soul on a unit of the given type placed next to the player.
// It reports false and changes nothing if the player cannot afford it.
func (w *World) Summon(typeName string) bool {
	typeName, unitType := factory.UnitType(typeName)
	player := components.Player.Get(w.player)
	if player.Soul < unitType.Cost {
		log.Printf("Not enough soul to summon %s (have %d, need %v)", typeName, int(player.Soul), unitType.Cost)
		return false
	}
	player.Soul -= unitType.Cost

	playerBody := components.Body.Get(w.player)
	x := playerBody.X + cfg.Units.SpawnOffsetX
	y := playerBody.Y + cfg.Units.SpawnOffsetY
	unit := factory.CreateUnit(w.world, w.space, typeName, x, y)
	w.units = append(w.units, unit)

	fx, fy := components.Body.Get(unit).Foot()
	factory.CreateSummonBurst(w.world, w.rng, fx, fy)

	log.Printf("Summoned %s!", typeName)
	return true
}

// Draw renders the idle background or the running world onto s. The summon
// bar is laid out from the surface size, which should match the viewport
// given to OnResize so clicks land on the slots drawn.
func (w *World) Draw(s render.Surface) {
	s.Clear()
	if !w.running {
		systems.DrawMenuBackground(s, w.rng)
		return
	}

	cameraX := components.Camera.Get(w.camera).Position.X
	systems.DrawGround(s, w.physics, cameraX)

	s.Save()
	s.Translate(-cameraX, 0)
	playerBody := components.Body.Get(w.player)
	for _, e := range w.RenderOrder() {
		systems.DrawEntity(s, e)
		if e != w.player {
			systems.DrawConnector(s, playerBody, components.Body.Get(e))
		}
	}
	systems.DrawParticles(s, w.world)
	if cfg.Debug.ShowFootprints {
		systems.DrawFootprints(s, w.player, w.units)
	}
	s.Restore()

	systems.DrawInstructions(s)
	systems.DrawSummonBar(s, components.Player.Get(w.player).Soul)
}

// RenderOrder returns the player and all units sorted back to front.
func (w *World) RenderOrder() []*donburi.Entry {
	entries := make([]*donburi.Entry, 0, len(w.units)+1)
	entries = append(entries, w.player)
	entries = append(entries, w.units...)
	return systems.DepthSort(entries)
}

// OverlappingUnits returns the units whose footprint overlaps the entry's.
func (w *World) OverlappingUnits(e *donburi.Entry) []*donburi.Entry {
	return systems.OverlappingUnits(e, w.units)
}

// Soul returns the player's soul truncated to an integer.
func (w *World) Soul() int {
	return int(components.Player.Get(w.player).Soul)
}

func (w *World) Running() bool {
	return w.running
}

// Units returns the live units in summon order.
func (w *World) Units() []*donburi.Entry {
	return w.units
}

func (w *World) Player() *donburi.Entry {
	return w.player
}

func (w *World) Physics() *systems.Physics {
	return w.physics
}

// Donburi exposes the underlying entity world for schedulers.
func (w *World) Donburi() donburi.World {
	return w.world
}

func (w *World) reapDeadUnits() {
	alive := w.units[:0]
	for _, u := range w.units {
		if components.Unit.Get(u).State == cfg.UnitDead {
			log.Printf("%s has fallen", components.Unit.Get(u).TypeName)
			w.removeUnit(u)
			continue
		}
		alive = append(alive, u)
	}
	clear(w.units[len(alive):])
	w.units = alive
}

func (w *World) removeUnit(u *donburi.Entry) {
	w.space.Remove(components.Body.Get(u).Object)
	w.world.Remove(u.Entity())
}
