package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/spiritfire/assets"
	"github.com/automoto/spiritfire/config"
	"github.com/automoto/spiritfire/fonts"
	"github.com/automoto/spiritfire/scenes"
	"github.com/automoto/spiritfire/systems"
	"github.com/automoto/spiritfire/transition"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds   image.Rectangle
	director *scenes.Director
}

func NewGame() *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.director = scenes.NewDirector(transition.Level, func(sc scenes.SceneChanger) scenes.Scene {
			return scenes.NewLevelScene(sc, config.Debug.StartLevel, nil)
		})
	} else {
		g.director = scenes.NewDirector(transition.MainMenu, func(sc scenes.SceneChanger) scenes.Scene {
			return scenes.NewMenuScene(sc)
		})
	}

	return g
}

func (g *Game) Update() error {
	g.director.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.director.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.IntVar(&config.Debug.StartLevel, "level", config.Debug.StartLevel, "level to start when skipping the menu")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "start a level directly")
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "draw collision boxes and enemy paths")
	flag.Parse()

	if n := assets.LevelCount(); config.Debug.StartLevel < 1 || config.Debug.StartLevel > n {
		log.Fatalf("-level must be between 1 and %d", n)
	}

	ebiten.SetWindowTitle("Spiritfire")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and apply saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	systems.ApplySettings(systems.LoadSettings())

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
