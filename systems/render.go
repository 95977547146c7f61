package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pakuverse/paku/components"
	cfg "github.com/pakuverse/paku/config"
	"github.com/pakuverse/paku/leveldata"
	"github.com/pakuverse/paku/tags"
)

// DrawLevel renders the board tiles: walls, dots, pellets, and warp
// mouths.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	boardEntry, ok := components.Board.First(e.World)
	if !ok {
		return
	}
	board := components.Board.Get(boardEntry)
	if board.Level == nil {
		return
	}

	ts := float64(cfg.C.TileSize)
	b := board.Level.Board
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			px, py := float32(float64(x)*ts), float32(float64(y)*ts)
			switch code := b.At(x, y); {
			case code == leveldata.CellWall:
				vector.DrawFilledRect(screen, px, py, float32(ts), float32(ts), cfg.WallBlue, false)
			case code == leveldata.CellDot:
				vector.DrawFilledCircle(screen, px+float32(ts/2), py+float32(ts/2),
					float32(ts)*0.1, cfg.DotCream, false)
			case code == leveldata.CellPellet:
				r := float32(ts) * 0.3 * board.PelletScale
				vector.DrawFilledCircle(screen, px+float32(ts/2), py+float32(ts/2),
					r, cfg.DotCream, false)
			case code < 0:
				vector.DrawFilledRect(screen, px, py, float32(ts), float32(ts), cfg.WarpGreen, false)
			}
		}
	}

	if cfg.Debug.ShowGrid {
		drawGrid(screen, b)
	}
}

func drawGrid(screen *ebiten.Image, b leveldata.Board) {
	ts := float32(cfg.C.TileSize)
	w, h := float32(b.Width)*ts, float32(b.Height)*ts
	for x := 0; x <= b.Width; x++ {
		vector.StrokeLine(screen, float32(x)*ts, 0, float32(x)*ts, h, 1, cfg.GridGray, false)
	}
	for y := 0; y <= b.Height; y++ {
		vector.StrokeLine(screen, 0, float32(y)*ts, w, float32(y)*ts, 1, cfg.GridGray, false)
	}
}

// DrawEntities renders Pac-Man and the ghosts at their sub-tile
// positions.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	ts := float64(cfg.C.TileSize)

	tags.Ghost.Each(e.World, func(entry *donburi.Entry) {
		ghost := components.Ghost.Get(entry)
		pos := components.Position.Get(entry)
		cx := float32((pos.X + 0.5) * ts)
		cy := float32((pos.Y + 0.5) * ts)
		r := float32(ts) * 0.45
		vector.DrawFilledCircle(screen, cx, cy, r, ghost.Color, false)
		// Square off the lower half for the classic skirt silhouette.
		vector.DrawFilledRect(screen, cx-r, cy, 2*r, r*0.9, ghost.Color, false)
	})

	tags.Pacman.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		cx := float32((pos.X + 0.5) * ts)
		cy := float32((pos.Y + 0.5) * ts)
		vector.DrawFilledCircle(screen, cx, cy, float32(ts*cfg.Pacman.Radius), cfg.PacYellow, false)
	})
}
