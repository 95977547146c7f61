package factory

import (
	"log"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pakuverse/paku/archetypes"
	"github.com/pakuverse/paku/components"
	cfg "github.com/pakuverse/paku/config"
	"github.com/pakuverse/paku/leveldata"
)

// CreateBoard spawns the board entity holding the parsed level, the
// score counters, and the looping pellet-pulse tween.
func CreateBoard(e *ecs.ECS, name string, lvl *leveldata.Level) *donburi.Entry {
	board := archetypes.Board.Spawn(e)

	components.Board.Set(board, &components.BoardData{
		Name:        name,
		Level:       lvl,
		DotsLeft:    lvl.Board.DotCount(),
		PelletScale: cfg.Pellet.PulseMax,
	})
	components.Score.Set(board, &components.ScoreData{
		Points: lvl.Points,
		Lives:  lvl.Lives,
	})

	// Power pellets breathe: shrink and grow on a loop.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(cfg.Pellet.PulseMax, cfg.Pellet.PulseMin, cfg.Pellet.PulseSecs, ease.Linear),
		gween.New(cfg.Pellet.PulseMin, cfg.Pellet.PulseMax, cfg.Pellet.PulseSecs, ease.Linear),
	)
	components.Tween.Set(board, tw)

	log.Printf("Loaded level %s: %dx%d board, %d dots, %d warps",
		name, lvl.Board.Width, lvl.Board.Height, lvl.Board.DotCount(), len(lvl.Warps))

	return board
}
