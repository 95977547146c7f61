package tags

import "github.com/yohamta/donburi"

var (
	Pacman = donburi.NewTag().SetName("Pacman")
	Ghost  = donburi.NewTag().SetName("Ghost")
	Board  = donburi.NewTag().SetName("Board")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvWarp  = "warp"
)
