package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pakuverse/paku/components"
	cfg "github.com/pakuverse/paku/config"
	"github.com/pakuverse/paku/tags"
)

var (
	Board = newArchetype(
		tags.Board,
		components.Board,
		components.Score,
		components.Tween,
	)
	Pacman = newArchetype(
		tags.Pacman,
		components.Pacman,
		components.Position,
	)
	Ghost = newArchetype(
		tags.Ghost,
		components.Ghost,
		components.Position,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
