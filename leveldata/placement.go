package leveldata

// deriveStartPositions computes initial sub-tile positions from the two
// spawn anchors, mirroring the arcade layout: Pac-Man centered on his
// two-tile spawn, Blinky just above the house, Pinky at house center
// with Inky and Clyde flanking him.
func deriveStartPositions(ghost, pac Coordinate) StartPositions {
	gx, gy := float64(ghost.X), float64(ghost.Y)
	return StartPositions{
		Pacman: Point{X: float64(pac.X) + 0.5, Y: float64(pac.Y)},
		Blinky: Point{X: gx + 3.5, Y: gy - 1},
		Pinky:  Point{X: gx + 3.5, Y: gy + 2},
		Inky:   Point{X: gx + 1.5, Y: gy + 2},
		Clyde:  Point{X: gx + 5.5, Y: gy + 2},
	}
}
