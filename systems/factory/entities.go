package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pakuverse/paku/archetypes"
	"github.com/pakuverse/paku/components"
	cfg "github.com/pakuverse/paku/config"
	"github.com/pakuverse/paku/leveldata"
)

// CreatePacman spawns Pac-Man at his derived start position.
func CreatePacman(e *ecs.ECS, lvl *leveldata.Level) *donburi.Entry {
	pac := archetypes.Pacman.Spawn(e)
	components.Pacman.Set(pac, &components.PacmanData{})
	components.Position.Set(pac, &components.PositionData{
		X: lvl.Start.Pacman.X,
		Y: lvl.Start.Pacman.Y,
	})
	return pac
}

// CreateGhosts spawns the four ghosts at their house positions, in
// release order.
func CreateGhosts(e *ecs.ECS, lvl *leveldata.Level) []*donburi.Entry {
	starts := [4]leveldata.Point{
		lvl.Start.Blinky,
		lvl.Start.Pinky,
		lvl.Start.Inky,
		lvl.Start.Clyde,
	}

	ghosts := make([]*donburi.Entry, 0, len(starts))
	for i, info := range cfg.Ghosts {
		g := archetypes.Ghost.Spawn(e)
		components.Ghost.Set(g, &components.GhostData{
			Name:  info.Name,
			Color: info.Color,
		})
		components.Position.Set(g, &components.PositionData{
			X: starts[i].X,
			Y: starts[i].Y,
		})
		ghosts = append(ghosts, g)
	}
	return ghosts
}
