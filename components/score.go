package components

import "github.com/yohamta/donburi"

type ScoreData struct {
	Points int
	Lives  int
	Best   int // best recorded score for the current level
}

var Score = donburi.NewComponentType[ScoreData]()
