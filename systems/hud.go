package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/pakuverse/paku/components"
	cfg "github.com/pakuverse/paku/config"
	"github.com/pakuverse/paku/fonts"
)

const (
	hudMargin     = 10
	hudLineHeight = 18
)

// DrawHUD renders the score line and the remaining lives below the
// board.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	boardEntry, ok := components.Board.First(e.World)
	if !ok {
		return
	}
	board := components.Board.Get(boardEntry)
	score := components.Score.Get(boardEntry)
	if board.Level == nil {
		return
	}

	baseY := board.Level.Board.Height*cfg.C.TileSize + hudMargin + hudLineHeight

	line := fmt.Sprintf("%s   score %d   best %d   dots %d",
		board.Name, score.Points, score.Best, board.DotsLeft)
	text.Draw(screen, line, fonts.HUD.Get(), hudMargin, baseY, cfg.HUDWhite)

	// One yellow disc per remaining life.
	r := float32(cfg.C.TileSize) * 0.35
	cy := float32(baseY+hudLineHeight) + r
	for i := 0; i < score.Lives; i++ {
		cx := float32(hudMargin) + r + float32(i)*(2*r+6)
		vector.DrawFilledCircle(screen, cx, cy, r, cfg.PacYellow, false)
	}
}
