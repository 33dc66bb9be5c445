package main

import (
	"flag"
	"image"
	"io"
	"log"

	"github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/scenes"
	"github.com/automoto/tilebound/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levelName string) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, levelName)
	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	levelName := flag.String("level", "", "level to play (file stem in the level directory)")
	levelDir := flag.String("levels", "", "directory containing level files")
	debug := flag.Bool("debug", false, "show the debug overlay on start")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Flags win over saved settings
	if *levelDir != "" {
		config.Level.Dir = *levelDir
	}
	if *levelName != "" {
		config.Level.Default = *levelName
	}
	if *debug {
		config.Debug.ShowOverlay = true
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("tilebound")
	ebiten.SetTPS(config.C.TPS)

	game := NewGame(config.Level.Default)
	err := ebiten.RunGame(game)
	if c, ok := game.scene.(io.Closer); ok {
		_ = c.Close()
	}
	if err != nil {
		log.Fatal(err)
	}
}
