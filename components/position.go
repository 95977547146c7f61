package components

import "github.com/yohamta/donburi"

// PositionData is a sub-tile position in tile units; entities move in
// finer steps than the board grid.
type PositionData struct {
	X, Y float64
}

var Position = donburi.NewComponentType[PositionData]()
