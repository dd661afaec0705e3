package config

import "image/color"

// PhysicsConfig contains the ground-plane physics tunables
type PhysicsConfig struct {
	Gravity      float64 // subtracted from vz each tick while airborne
	Friction     float64 // multiplier applied to vx and vy each tick (< 1)
	MinY         float64 // horizon line, the smallest ground-plane y
	BottomMargin float64 // maxY = viewport height - BottomMargin
}

// SpaceConfig sizes the resolv space used for footprint overlap queries
type SpaceConfig struct {
	Width      int
	Height     int
	CellWidth  int
	CellHeight int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Spawn
	SpawnX float64
	SpawnY float64

	// Movement
	Speed     float64 // added to vx/vy per held direction
	MaxSpeed  float64 // per-axis clamp
	JumpForce float64

	// Stats
	Health  int
	Soul    float64
	MaxSoul float64

	// Dimensions
	Width  float64
	Height float64

	// Visual
	Color       color.RGBA
	HoodColor   color.RGBA
	EyeColor    color.RGBA
	GlowBlur    float64
	EyeGlowBlur float64
}

// UnitTypeConfig is one row of the summonable archetype table
type UnitTypeConfig struct {
	Name   string
	Kind   MovementKind
	Speed  float64
	Health int
	Cost   float64

	// Dimensions
	Width  float64
	Height float64

	// Visual
	Color    color.RGBA
	EyeColor color.RGBA
	HasEyes  bool

	SummonAction ActionID
	Hotkey       string // Shown on the summon bar slot
}

// UnitsConfig contains the summon table
type UnitsConfig struct {
	Types map[string]UnitTypeConfig

	// Order in which summon actions are polled each tick
	Order []string

	// Spawn offset relative to the player's position
	SpawnOffsetX float64
	SpawnOffsetY float64
}

// AIConfig contains unit AI tunables
type AIConfig struct {
	FollowDistance float64 // units closer than this hold position
	HoverHeight    float64 // fixed z for FLYING units
}

// RenderConfig contains colors and spacing for the world renderer
type RenderConfig struct {
	FloorColor     color.RGBA
	GridColor      color.NRGBA
	GridSize       float64
	HorizonColor   color.RGBA
	HorizonWidth   float64
	ConnectorColor color.NRGBA

	PlayerShadowColor color.NRGBA
	UnitShadowColor   color.NRGBA
	PlayerShadowRY    float64
	UnitShadowRY      float64
	ShadowLift        float64 // shadow center sits this far above the footprint bottom

	HealthBarHeight float64
	HealthBarGap    float64 // distance between bar top and body top
	HealthBarBg     color.RGBA
	HealthBarFg     color.RGBA

	MenuDotColor   color.NRGBA
	MenuDotCount   int
	MenuDotMaxSize float64

	TextColor       color.RGBA
	Instructions    string
	InstructionsX   float64
	InstructionsY   float64
	HUDX            float64
	HUDY            float64
	WardRuneColor   color.RGBA
	WardRuneWidth   float64
	WardRuneInset   float64
	GhoulEyeOffsetX float64
	GhoulEyeOffsetY float64
	GhoulEyeSize    float64
}

// SummonBarConfig lays out the row of clickable summon slots along the bottom
// of the screen
type SummonBarConfig struct {
	SlotSize     float64
	Padding      float64 // Gap after each slot
	BottomOffset float64 // Slot top sits this far above the bottom edge
	IconInset    float64
	OutlineWidth float64

	SlotColor         color.RGBA
	AffordableColor   color.RGBA // Outline when the player has enough soul
	UnaffordableColor color.RGBA
	CostColor         color.RGBA
	HotkeyColor       color.RGBA

	CostOffsetX   float64
	CostOffsetY   float64 // Baseline below the slot top
	HotkeyOffsetX float64
	HotkeyOffsetY float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
	SnapDistance    float64 // Below this distance the camera snaps to its target
}

// ParticleConfig contains the summon burst configuration
type ParticleConfig struct {
	Count    int
	MinSpeed float64
	MaxSpeed float64
	MinLife  int // ticks
	MaxLife  int // ticks
	MinSize  float64
	MaxSize  float64
	Shrink   float64 // size lost per tick
	Colors   []color.RGBA
}

// Config holds general game configuration
type Config struct {
	Title  string
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu       bool // Skip menu and go directly to game
	ShowFootprints bool // Outline collision footprints
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Space SpaceConfig
var Player PlayerConfig
var Units UnitsConfig
var AI AIConfig
var Render RenderConfig
var SummonBar SummonBarConfig
var Camera CameraConfig
var Particles ParticleConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	Gold      = color.RGBA{R: 212, G: 175, B: 55, A: 255}
	Purple    = color.RGBA{R: 123, G: 44, B: 191, A: 255}
	Olive     = color.RGBA{R: 85, G: 107, B: 47, A: 255}
	PaleCyan  = color.RGBA{R: 170, G: 240, B: 255, A: 255}
	Bone      = color.RGBA{R: 214, G: 204, B: 180, A: 255}
	DarkFloor = color.RGBA{R: 26, G: 26, B: 26, A: 255}
)

func init() {
	C = &Config{
		Title:  "Eclipse Contract",
		Width:  1024,
		Height: 768,
	}

	Physics = PhysicsConfig{
		Gravity:      0.9,  // Higher gravity for snappy hops
		Friction:     0.85, // Ground-plane drag
		MinY:         200,
		BottomMargin: 50,
	}

	// The world is open to the right; the space only needs to be large enough
	// for the area the player can realistically reach.
	Space = SpaceConfig{
		Width:      16384,
		Height:     4096,
		CellWidth:  32,
		CellHeight: 32,
	}

	Player = PlayerConfig{
		SpawnX: 100,
		SpawnY: 300,

		Speed:     1.5,
		MaxSpeed:  5,
		JumpForce: 7, // Short fixed hop

		Health:  100,
		Soul:    50,
		MaxSoul: 100,

		Width:  40,
		Height: 60,

		Color:       Purple,
		HoodColor:   Black,
		EyeColor:    Gold,
		GlowBlur:    20,
		EyeGlowBlur: 5,
	}

	ghoulType := UnitTypeConfig{
		Name:         "Ghoul",
		Kind:         Ground,
		Speed:        2,
		Health:       15,
		Cost:         10,
		Width:        25,
		Height:       25,
		Color:        Olive,
		EyeColor:     Red,
		HasEyes:      true,
		SummonAction: ActionSummonGhoul,
		Hotkey:       "1",
	}

	wispType := UnitTypeConfig{
		Name:         "Wisp",
		Kind:         Flying,
		Speed:        1.5,
		Health:       8,
		Cost:         20,
		Width:        20,
		Height:       20,
		Color:        PaleCyan,
		SummonAction: ActionSummonWisp,
		Hotkey:       "2",
	}

	wardType := UnitTypeConfig{
		Name:         "Ward",
		Kind:         Fixed,
		Speed:        0, // Never moves
		Health:       30,
		Cost:         15,
		Width:        30,
		Height:       30,
		Color:        Bone,
		SummonAction: ActionSummonWard,
		Hotkey:       "3",
	}

	Units = UnitsConfig{
		Types: map[string]UnitTypeConfig{
			"Ghoul": ghoulType,
			"Wisp":  wispType,
			"Ward":  wardType,
		},
		Order:        []string{"Ghoul", "Wisp", "Ward"},
		SpawnOffsetX: 50,
		SpawnOffsetY: 0,
	}

	AI = AIConfig{
		FollowDistance: 100,
		HoverHeight:    50,
	}

	Render = RenderConfig{
		FloorColor:     DarkFloor,
		GridColor:      color.NRGBA{R: 255, G: 255, B: 255, A: 13}, // ~5%
		GridSize:       50,
		HorizonColor:   Purple,
		HorizonWidth:   2,
		ConnectorColor: color.NRGBA{R: 212, G: 175, B: 55, A: 51}, // ~20%

		PlayerShadowColor: color.NRGBA{R: 0, G: 0, B: 0, A: 102},
		UnitShadowColor:   color.NRGBA{R: 0, G: 0, B: 0, A: 77},
		PlayerShadowRY:    10,
		UnitShadowRY:      8,
		ShadowLift:        5,

		HealthBarHeight: 4,
		HealthBarGap:    10,
		HealthBarBg:     Red,
		HealthBarFg:     Green,

		MenuDotColor:   color.NRGBA{R: 255, G: 255, B: 255, A: 5}, // ~2%
		MenuDotCount:   50,
		MenuDotMaxSize: 2,

		TextColor:       White,
		Instructions:    "WASD to Move (2.5D) | Space to Jump | 1 Ghoul  2 Wisp  3 Ward | Esc for Menu",
		InstructionsX:   20,
		InstructionsY:   80,
		HUDX:            20,
		HUDY:            40,
		WardRuneColor:   Purple,
		WardRuneWidth:   2,
		WardRuneInset:   6,
		GhoulEyeOffsetX: 15,
		GhoulEyeOffsetY: 5,
		GhoulEyeSize:    5,
	}

	SummonBar = SummonBarConfig{
		SlotSize:     60,
		Padding:      10,
		BottomOffset: 80,
		IconInset:    10,
		OutlineWidth: 2,

		SlotColor:         color.RGBA{R: 50, G: 50, B: 50, A: 255},
		AffordableColor:   White,
		UnaffordableColor: color.RGBA{R: 100, G: 50, B: 50, A: 255},
		CostColor:         color.RGBA{R: 255, G: 215, B: 0, A: 255},
		HotkeyColor:       White,

		CostOffsetX:   5,
		CostOffsetY:   17,
		HotkeyOffsetX: 40,
		HotkeyOffsetY: 52,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		SnapDistance:    0.5,
	}

	Particles = ParticleConfig{
		Count:    20,
		MinSpeed: 1,
		MaxSpeed: 3,
		MinLife:  20,
		MaxLife:  40,
		MinSize:  2,
		MaxSize:  5,
		Shrink:   0.1,
		Colors: []color.RGBA{
			{R: 148, G: 0, B: 211, A: 255},
			{R: 0, G: 255, B: 255, A: 255},
			{R: 75, G: 0, B: 130, A: 255},
		},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:       false,
		ShowFootprints: false,
	}
}
