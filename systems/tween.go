package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/pakuverse/paku/components"
)

// UpdatePelletPulse advances the board's looping pellet tween and
// publishes the current scale for the renderer.
func UpdatePelletPulse(e *ecs.ECS) {
	boardEntry, ok := components.Board.First(e.World)
	if !ok {
		return
	}
	tw := components.Tween.Get(boardEntry)
	board := components.Board.Get(boardEntry)

	scale, _, done := tw.Update(1.0 / 60.0)
	board.PelletScale = scale
	if done {
		tw.Reset()
	}
}
