package components

import (
	"github.com/yohamta/donburi"

	"github.com/pakuverse/paku/leveldata"
)

// BoardData wraps the parsed level plus the running level-clear counter.
type BoardData struct {
	Name     string
	Level    *leveldata.Level
	DotsLeft int

	// Current power-pellet radius scale, driven by the board's tween
	PelletScale float32
}

var Board = donburi.NewComponentType[BoardData]()
