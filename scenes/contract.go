package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/eclipse-contract/config"
	"github.com/automoto/eclipse-contract/input"
	"github.com/automoto/eclipse-contract/render/ebitensurface"
	"github.com/automoto/eclipse-contract/systems"
	"github.com/automoto/eclipse-contract/ui"
	"github.com/automoto/eclipse-contract/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const (
	layerWorld ecs.LayerID = iota
	layerUI
)

// ContractScene hosts the simulation: it polls devices, drives the world one
// tick per update and shows the title menu while the world is idle.
type ContractScene struct {
	ecs      *ecs.ECS
	world    *world.World
	input    *input.State
	hud      *systems.HUD
	menu     *ui.MenuUI
	skipMenu bool
	once     sync.Once

	width, height int
}

func NewContractScene(skipMenu bool) *ContractScene {
	return &ContractScene{
		skipMenu: skipMenu,
		width:    cfg.C.Width,
		height:   cfg.C.Height,
	}
}

func (cs *ContractScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()
}

func (cs *ContractScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

// OnResize forwards the window size to the world once it exists.
func (cs *ContractScene) OnResize(width, height int) {
	if width == cs.width && height == cs.height {
		return
	}
	cs.width, cs.height = width, height
	if cs.world != nil {
		cs.world.OnResize(float64(width), float64(height))
	}
}

func (cs *ContractScene) configure() {
	cs.input = input.NewState()
	cs.hud = &systems.HUD{}
	cs.world = world.New(world.Options{
		Width:   float64(cs.width),
		Height:  float64(cs.height),
		Input:   cs.input,
		Display: cs.hud,
	})
	cs.menu = ui.NewMenuUI(cs.world.Start)

	ecs := ecs.NewECS(cs.world.Donburi())

	// Polling must come first; the tick advances the input frame last.
	ecs.AddSystem(cs.pollInput)
	ecs.AddSystem(cs.updateMenu)
	ecs.AddSystem(cs.tick)

	ecs.AddRenderer(layerWorld, cs.drawWorld)
	ecs.AddRenderer(layerUI, cs.drawUI)

	cs.ecs = ecs

	if cs.skipMenu {
		cs.world.Start()
	}
	log.Printf("Scene ready (%dx%d)", cs.width, cs.height)
}

func (cs *ContractScene) pollInput(_ *ecs.ECS) {
	PollInput(cs.input)
}

func (cs *ContractScene) updateMenu(_ *ecs.ECS) {
	if cs.world.Running() {
		if systems.GetAction(cs.input, cfg.ActionMenu).JustPressed {
			log.Println("Returning to menu")
			cs.world.Stop()
		}
		return
	}

	cs.menu.Update()
	if systems.GetAction(cs.input, cfg.ActionStart).JustPressed {
		cs.world.Start()
	}
}

func (cs *ContractScene) tick(_ *ecs.ECS) {
	if !cs.world.Running() {
		// The world only rolls the input frame over while it runs.
		cs.input.AdvanceFrame()
		return
	}
	cs.world.Tick()
}

func (cs *ContractScene) drawWorld(_ *ecs.ECS, screen *ebiten.Image) {
	surface := ebitensurface.New(screen)
	cs.world.Draw(surface)
	if cs.world.Running() {
		cs.hud.DrawHUD(surface)
	}
}

func (cs *ContractScene) drawUI(_ *ecs.ECS, screen *ebiten.Image) {
	if cs.world.Running() {
		return
	}
	cs.menu.Draw(screen)
}
