package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type GhostData struct {
	Name  string
	Color color.RGBA
}

var Ghost = donburi.NewComponentType[GhostData]()
