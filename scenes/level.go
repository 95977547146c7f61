package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pakuverse/paku/components"
	cfg "github.com/pakuverse/paku/config"
	"github.com/pakuverse/paku/leveldata"
	"github.com/pakuverse/paku/systems"
	"github.com/pakuverse/paku/systems/factory"
)

// LevelScene presents one parsed level: the board, the entities at
// their start positions, and the score HUD.
type LevelScene struct {
	ecs   *ecs.ECS
	name  string
	level *leveldata.Level
	once  sync.Once
}

func NewLevelScene(name string, level *leveldata.Level) *LevelScene {
	return &LevelScene{name: name, level: level}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent flashes from the OS window
	// background.
	screen.Fill(color.Black)
	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdatePelletPulse)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawEntities)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	ls.ecs = e

	board := factory.CreateBoard(e, ls.name, ls.level)
	score := components.Score.Get(board)
	score.Best = systems.BestScore(ls.name)

	factory.CreateSpace(e, ls.level.Board)
	factory.CreatePacman(e, ls.level)
	factory.CreateGhosts(e, ls.level)
}
