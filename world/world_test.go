package world_test

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/eclipse-contract/components"
	cfg "github.com/automoto/eclipse-contract/config"
	"github.com/automoto/eclipse-contract/input"
	"github.com/automoto/eclipse-contract/render"
	"github.com/automoto/eclipse-contract/systems"
	"github.com/automoto/eclipse-contract/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type soulSpy struct {
	values []int
}

func (s *soulSpy) SetSoul(soul int) {
	s.values = append(s.values, soul)
}

func newWorld(t *testing.T) (*world.World, *input.State, *soulSpy) {
	t.Helper()
	in := input.NewState()
	spy := &soulSpy{}
	w := world.New(world.Options{
		Width:   1024,
		Height:  768,
		Input:   in,
		Display: spy,
		Rand:    rand.New(rand.NewPCG(1, 1)),
	})
	return w, in, spy
}

// press holds a key for exactly one tick.
func press(w *world.World, in *input.State, code input.Code) {
	in.KeyDown(code)
	w.Tick()
	in.KeyUp(code)
}

func setSoul(w *world.World, soul float64) {
	components.Player.Get(w.Player()).Soul = soul
}

func TestNew(t *testing.T) {
	w, _, _ := newWorld(t)
	assert.False(t, w.Running())
	assert.Empty(t, w.Units())
	assert.Equal(t, 50, w.Soul())
	assert.Equal(t, 718.0, w.Physics().MaxY)

	body := components.Body.Get(w.Player())
	assert.Equal(t, cfg.Player.SpawnX, body.X)
	assert.Equal(t, cfg.Player.SpawnY, body.Y)
	assert.True(t, body.Grounded)
}

func TestTick(t *testing.T) {
	t.Run("does nothing while idle", func(t *testing.T) {
		w, in, spy := newWorld(t)
		in.KeyDown("KeyD")
		w.Tick()
		assert.Equal(t, cfg.Player.SpawnX, components.Body.Get(w.Player()).X)
		assert.Empty(t, spy.values)
	})
	t.Run("moves the player and pushes soul to the display", func(t *testing.T) {
		w, in, spy := newWorld(t)
		w.Start()
		in.KeyDown("KeyD")
		w.Tick()
		assert.InDelta(t, 101.5, components.Body.Get(w.Player()).X, 1e-9)
		assert.Equal(t, []int{50}, spy.values)
	})
	t.Run("a held jump key only jumps once", func(t *testing.T) {
		w, in, _ := newWorld(t)
		w.Start()
		in.KeyDown("Space")
		body := components.Body.Get(w.Player())
		jumps := 0
		wasGrounded := true
		for range 60 {
			w.Tick()
			if wasGrounded && !body.Grounded {
				jumps++
			}
			wasGrounded = body.Grounded
			assert.GreaterOrEqual(t, body.Z, 0.0)
		}
		assert.Equal(t, 1, jumps)
		assert.True(t, body.Grounded)
	})
	t.Run("display receives soul truncated to an integer", func(t *testing.T) {
		w, _, spy := newWorld(t)
		w.Start()
		setSoul(w, 12.7)
		w.Tick()
		assert.Equal(t, []int{12}, spy.values)
	})
}

func TestSummon(t *testing.T) {
	t.Run("pressing 1 summons a ghoul next to the player", func(t *testing.T) {
		w, in, _ := newWorld(t)
		w.Start()
		press(w, in, "Digit1")

		require.Len(t, w.Units(), 1)
		u := w.Units()[0]
		assert.Equal(t, "Ghoul", components.Unit.Get(u).TypeName)
		assert.Equal(t, 40, w.Soul())
		assert.Equal(t, cfg.Ground, components.Movement.Get(u).Kind)
	})
	t.Run("holding the key summons only once", func(t *testing.T) {
		w, in, _ := newWorld(t)
		w.Start()
		in.KeyDown("Digit3")
		for range 10 {
			w.Tick()
		}
		assert.Len(t, w.Units(), 1)
		assert.Equal(t, 35, w.Soul())
	})
	t.Run("is refused without enough soul", func(t *testing.T) {
		w, in, _ := newWorld(t)
		w.Start()
		setSoul(w, 5)
		press(w, in, "Digit1")
		assert.Empty(t, w.Units())
		assert.Equal(t, 5, w.Soul())
	})
	t.Run("exact soul is enough", func(t *testing.T) {
		w, _, _ := newWorld(t)
		setSoul(w, 20)
		assert.True(t, w.Summon("Wisp"))
		assert.Equal(t, 0, w.Soul())
		assert.False(t, w.Summon("Wisp"))
	})
	t.Run("units spawn offset from the player", func(t *testing.T) {
		w, _, _ := newWorld(t)
		require.True(t, w.Summon("Ward"))
		body := components.Body.Get(w.Units()[0])
		assert.Equal(t, cfg.Player.SpawnX+cfg.Units.SpawnOffsetX, body.X)
		assert.Equal(t, cfg.Player.SpawnY, body.Y)
	})
	t.Run("unknown types fall back to a ghoul", func(t *testing.T) {
		w, _, _ := newWorld(t)
		require.True(t, w.Summon("Lich"))
		assert.Equal(t, "Ghoul", components.Unit.Get(w.Units()[0]).TypeName)
	})
	t.Run("several keys in one tick summon in table order", func(t *testing.T) {
		w, in, _ := newWorld(t)
		w.Start()
		in.KeyDown("Digit3")
		in.KeyDown("Digit1")
		w.Tick()
		require.Len(t, w.Units(), 2)
		assert.Equal(t, "Ghoul", components.Unit.Get(w.Units()[0]).TypeName)
		assert.Equal(t, "Ward", components.Unit.Get(w.Units()[1]).TypeName)
	})
}

// click presses and releases the pointer over a point for one tick.
func click(w *world.World, in *input.State, x, y float64) {
	in.PointerMove(x, y)
	in.PointerPress()
	w.Tick()
	in.PointerRelease()
}

// slotCenter returns the center of the summon bar slot for a unit type.
func slotCenter(t *testing.T, width, height float64, typeName string) (float64, float64) {
	t.Helper()
	for _, slot := range systems.SummonSlots(width, height) {
		if slot.TypeName == typeName {
			return slot.X + slot.W/2, slot.Y + slot.H/2
		}
	}
	t.Fatalf("no summon slot for %s", typeName)
	return 0, 0
}

func TestSummonBar(t *testing.T) {
	t.Run("clicking a slot summons that unit", func(t *testing.T) {
		w, in, _ := newWorld(t)
		w.Start()
		x, y := slotCenter(t, 1024, 768, "Wisp")
		click(w, in, x, y)

		require.Len(t, w.Units(), 1)
		assert.Equal(t, "Wisp", components.Unit.Get(w.Units()[0]).TypeName)
		assert.Equal(t, 30, w.Soul())
	})
	t.Run("holding the button summons only once", func(t *testing.T) {
		w, in, _ := newWorld(t)
		w.Start()
		x, y := slotCenter(t, 1024, 768, "Ghoul")
		in.PointerMove(x, y)
		in.PointerPress()
		for range 10 {
			w.Tick()
		}
		assert.Len(t, w.Units(), 1)
		assert.Equal(t, 40, w.Soul())
	})
	t.Run("clicks outside the bar do nothing", func(t *testing.T) {
		w, in, _ := newWorld(t)
		w.Start()
		click(w, in, 500, 300)
		assert.Empty(t, w.Units())
		assert.Equal(t, 50, w.Soul())
	})
	t.Run("clicks go through the soul check", func(t *testing.T) {
		w, in, _ := newWorld(t)
		w.Start()
		setSoul(w, 12)
		x, y := slotCenter(t, 1024, 768, "Ward")
		click(w, in, x, y)
		assert.Empty(t, w.Units())
		assert.Equal(t, 12, w.Soul())
	})
	t.Run("clicks are ignored while idle", func(t *testing.T) {
		w, in, _ := newWorld(t)
		x, y := slotCenter(t, 1024, 768, "Ghoul")
		click(w, in, x, y)
		assert.Empty(t, w.Units())
	})
	t.Run("slots follow the viewport", func(t *testing.T) {
		w, in, _ := newWorld(t)
		w.OnResize(800, 400)
		w.Start()
		x, y := slotCenter(t, 800, 400, "Ghoul")
		click(w, in, x, y)
		require.Len(t, w.Units(), 1)
		assert.Equal(t, 40, w.Soul())
	})
}

func TestUnits(t *testing.T) {
	t.Run("wisps hover while ghouls stay on the floor", func(t *testing.T) {
		w, _, _ := newWorld(t)
		w.Start()
		require.True(t, w.Summon("Wisp"))
		require.True(t, w.Summon("Ghoul"))
		for range 30 {
			w.Tick()
		}
		assert.Equal(t, cfg.AI.HoverHeight, components.Body.Get(w.Units()[0]).Z)
		assert.Equal(t, 0.0, components.Body.Get(w.Units()[1]).Z)
	})
	t.Run("ghouls catch up with a player who walked away", func(t *testing.T) {
		w, in, _ := newWorld(t)
		w.Start()
		require.True(t, w.Summon("Ghoul"))
		in.KeyDown("KeyD")
		for range 120 {
			w.Tick()
		}
		in.KeyUp("KeyD")
		for range 300 {
			w.Tick()
		}
		player := components.Body.Get(w.Player())
		ghoul := components.Body.Get(w.Units()[0])
		assert.Less(t, player.X-ghoul.X, cfg.AI.FollowDistance+1)
		assert.Equal(t, cfg.UnitIdle, components.Unit.Get(w.Units()[0]).State)
	})
	t.Run("dead units are removed", func(t *testing.T) {
		w, _, _ := newWorld(t)
		w.Start()
		require.True(t, w.Summon("Ghoul"))
		require.True(t, w.Summon("Ward"))
		components.Health.Get(w.Units()[0]).Current = 0
		w.Tick()
		require.Len(t, w.Units(), 1)
		assert.Equal(t, "Ward", components.Unit.Get(w.Units()[0]).TypeName)
	})
	t.Run("overlapping units are found through the space", func(t *testing.T) {
		w, _, _ := newWorld(t)
		require.True(t, w.Summon("Ward"))
		assert.Empty(t, w.OverlappingUnits(w.Player()))

		ward := components.Body.Get(w.Units()[0])
		ward.X = 120
		ward.Update()
		assert.Equal(t, w.Units(), w.OverlappingUnits(w.Player()))
	})
	t.Run("overlaps are still found far to the right", func(t *testing.T) {
		w, _, _ := newWorld(t)
		require.True(t, w.Summon("Ward"))
		require.True(t, w.Summon("Ghoul"))

		player := components.Body.Get(w.Player())
		player.X = 20000
		player.Update()
		ward := components.Body.Get(w.Units()[0])
		ward.X = 20010
		ward.Update()

		require.True(t, systems.CheckCollision(player, ward))
		assert.Equal(t, []*donburi.Entry{w.Units()[0]}, w.OverlappingUnits(w.Player()))
	})
}

func TestStart(t *testing.T) {
	w, in, _ := newWorld(t)
	w.Start()
	press(w, in, "Digit1")
	in.KeyDown("KeyD")
	for range 30 {
		w.Tick()
	}
	in.KeyUp("KeyD")
	require.Len(t, w.Units(), 1)

	w.Stop()
	assert.False(t, w.Running())
	w.Start()

	assert.True(t, w.Running())
	assert.Empty(t, w.Units())
	assert.Equal(t, 40, w.Soul(), "soul carries over a restart")
	body := components.Body.Get(w.Player())
	assert.Equal(t, cfg.Player.SpawnX, body.X)
	assert.Equal(t, 0.0, body.VX)
	assert.Empty(t, w.OverlappingUnits(w.Player()))
}

func TestOnResize(t *testing.T) {
	w, in, _ := newWorld(t)
	w.OnResize(800, 400)
	assert.Equal(t, 350.0, w.Physics().MaxY)

	w.Start()
	in.KeyDown("KeyS")
	for range 100 {
		w.Tick()
	}
	assert.Equal(t, 350.0, components.Body.Get(w.Player()).Y)

	t.Run("a very short window keeps bodies on the horizon", func(t *testing.T) {
		w, in, _ := newWorld(t)
		w.OnResize(800, 120)
		assert.Equal(t, cfg.Physics.MinY, w.Physics().MaxY)

		w.Start()
		in.KeyDown("KeyW")
		w.Tick()
		assert.Equal(t, cfg.Physics.MinY, components.Body.Get(w.Player()).Y)
	})
}

func TestDraw(t *testing.T) {
	t.Run("idle screen shows only the menu dots", func(t *testing.T) {
		w, _, _ := newWorld(t)
		r := render.NewRecorder(1024, 768)
		w.Draw(r)
		assert.Equal(t, "clear", r.Ops[0].Kind)
		assert.Equal(t, cfg.Render.MenuDotCount, r.Count("rect"))
		assert.Zero(t, r.Count("text"))
	})
	t.Run("draws entities back to front with a connector per unit", func(t *testing.T) {
		w, _, _ := newWorld(t)
		w.Start()
		require.True(t, w.Summon("Ghoul"))
		require.True(t, w.Summon("Ward"))
		components.Body.Get(w.Units()[0]).Y = 500
		components.Body.Get(w.Units()[1]).Y = 250

		order := w.RenderOrder()
		require.Len(t, order, 3)
		assert.Equal(t, w.Units()[1], order[0])
		assert.Equal(t, w.Player(), order[1])
		assert.Equal(t, w.Units()[0], order[2])

		r := render.NewRecorder(1024, 768)
		w.Draw(r)
		assert.Equal(t, 2, r.Count("line")-groundLines(1024, 768))
		texts := r.Filter("text")
		require.Len(t, texts, 1)
		assert.Equal(t, cfg.Render.Instructions, texts[0].Text)
	})
	t.Run("summon bar is drawn over everything", func(t *testing.T) {
		w, _, _ := newWorld(t)
		w.Start()
		setSoul(w, 12)
		r := render.NewRecorder(1024, 768)
		w.Draw(r)

		labels := r.Filter("label")
		require.Len(t, labels, 2*len(cfg.Units.Order))
		assert.Equal(t, labels[len(labels)-1], r.Ops[len(r.Ops)-1])

		strokes := r.Filter("stroke")
		require.Len(t, strokes, len(cfg.Units.Order))
		assert.Equal(t, cfg.SummonBar.AffordableColor, strokes[0].Color)
		assert.Equal(t, cfg.SummonBar.UnaffordableColor, strokes[1].Color)
	})
	t.Run("world is drawn through the camera offset", func(t *testing.T) {
		w, _, _ := newWorld(t)
		w.Start()
		r := render.NewRecorder(1024, 768)
		w.Draw(r)
		translates := r.Filter("translate")
		require.Len(t, translates, 1)
		assert.Zero(t, translates[0].X)
		assert.Equal(t, r.Count("save"), r.Count("restore"))
	})
}

// groundLines is the number of grid lines plus the horizon for a view with the
// camera at x=0.
func groundLines(width, height int) int {
	grid := int(cfg.Render.GridSize)
	return (width+grid-1)/grid + (height+grid-1)/grid + 1
}
