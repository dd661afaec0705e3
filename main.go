package main

import (
	"flag"
	"log"

	"github.com/automoto/eclipse-contract/config"
	"github.com/automoto/eclipse-contract/fonts"
	"github.com/automoto/eclipse-contract/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Resizer is implemented by scenes that track the window size.
type Resizer interface {
	OnResize(width, height int)
}

type Game struct {
	scene Scene
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}

	return &Game{
		scene: scenes.NewContractScene(config.Debug.SkipMenu),
	}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the logical screen the same size as the window.
func (g *Game) Layout(width, height int) (int, int) {
	if r, ok := g.scene.(Resizer); ok {
		r.OnResize(width, height)
	}
	return width, height
}

func main() {
	configPath := flag.String("config", "", "path to a YAML file overriding game tunables")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "start playing immediately")
	flag.BoolVar(&config.Debug.ShowFootprints, "debug", config.Debug.ShowFootprints, "outline collision footprints")
	flag.Parse()

	if *configPath != "" {
		overrides, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if err := config.Apply(overrides); err != nil {
			log.Fatalf("Invalid config %s: %v", *configPath, err)
		}
		log.Printf("Loaded config overrides from %s", *configPath)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
