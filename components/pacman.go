package components

import "github.com/yohamta/donburi"

type PacmanData struct {
	Facing float64 // radians; which way the mouth points
}

var Pacman = donburi.NewComponentType[PacmanData]()
