package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pakuverse/paku/archetypes"
	"github.com/pakuverse/paku/components"
	cfg "github.com/pakuverse/paku/config"
	"github.com/pakuverse/paku/leveldata"
	"github.com/pakuverse/paku/tags"
)

// CreateSpace builds a resolv.Space from the board: one solid object
// per wall tile and one tagged object per warp mouth. Movement resolves
// against this space rather than the board itself.
func CreateSpace(e *ecs.ECS, b leveldata.Board) *donburi.Entry {
	ts := cfg.C.TileSize
	space := archetypes.Space.Spawn(e)
	spaceData := resolv.NewSpace(b.Width*ts, b.Height*ts, ts, ts)

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			px, py := float64(x*ts), float64(y*ts)
			switch code := b.At(x, y); {
			case code == leveldata.CellWall:
				obj := resolv.NewObject(px, py, float64(ts), float64(ts), tags.ResolvSolid)
				obj.SetShape(resolv.NewRectangle(0, 0, float64(ts), float64(ts)))
				spaceData.Add(obj)
			case code < 0:
				obj := resolv.NewObject(px, py, float64(ts), float64(ts), tags.ResolvWarp)
				spaceData.Add(obj)
			}
		}
	}

	components.Space.Set(space, spaceData)
	return space
}
