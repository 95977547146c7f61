package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pakuverse/paku/assets"
	cfg "github.com/pakuverse/paku/config"
	"github.com/pakuverse/paku/fonts"
	"github.com/pakuverse/paku/leveldata"
	"github.com/pakuverse/paku/scenes"
	"github.com/pakuverse/paku/systems"
)

type Scene interface {
	Update()
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

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

func main() {
	levelPath := flag.String("level", "", "path to an external .lvl file (defaults to a bundled level)")
	levelName := flag.String("name", "", "bundled level to start (see assets/levels)")
	fontPath := flag.String("font", "", "optional TTF file for the HUD")
	showGrid := flag.Bool("grid", false, "overlay tile grid lines")
	flag.Parse()

	cfg.Debug.ShowGrid = *showGrid

	if *fontPath != "" {
		ttf, err := os.ReadFile(*fontPath)
		if err != nil {
			log.Printf("Warning: Could not read font: %v", err)
		} else if err := fonts.LoadFontWithSize(fonts.HUD, ttf, 16); err != nil {
			log.Printf("Warning: Could not load font: %v", err)
		}
	}

	// Initialize persistence and load saved high scores
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	name, level, err := pickLevel(*levelPath, *levelName)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("paku")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	g := &Game{scene: scenes.NewLevelScene(name, level)}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// pickLevel resolves which map to show: an external file when -level is
// given, otherwise a bundled one.
func pickLevel(path, name string) (string, *leveldata.Level, error) {
	if path != "" {
		dir, base := filepath.Split(path)
		if dir == "" {
			dir = "."
		}
		lvl, err := leveldata.Load(os.DirFS(dir), base)
		if err != nil {
			return "", nil, err
		}
		return strings.TrimSuffix(base, ".lvl"), lvl, nil
	}

	levels, names, err := leveldata.LoadAll(assets.FS, "levels")
	if err != nil {
		return "", nil, err
	}
	if name == "" {
		name = names[0]
	}
	lvl, ok := levels[name]
	if !ok {
		return "", nil, fmt.Errorf("no bundled level named %q (have %v)", name, names)
	}
	return name, lvl, nil
}
