package leveldata

import "fmt"

const pacMarker = '$'

// findPacSpawn locates the single horizontal '$$' pair over unclaimed
// cells and claims it.
func findPacSpawn(g *charGrid, claimed claimGrid) (Coordinate, error) {
	found := false
	var spawn Coordinate
	for y := 0; y < g.height; y++ {
		for x := 0; x+1 < g.width; x++ {
			if claimed[y][x] || claimed[y][x+1] {
				continue
			}
			if g.rows[y][x] != pacMarker || g.rows[y][x+1] != pacMarker {
				continue
			}
			if found {
				return Coordinate{}, fmt.Errorf("%w: second pair at (%d,%d)",
					ErrMultiplePacSpawns, x, y)
			}
			found = true
			spawn = Coordinate{X: x, Y: y}
			claimed[y][x] = true
			claimed[y][x+1] = true
		}
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.rows[y][x] == pacMarker && !claimed[y][x] {
				return Coordinate{}, fmt.Errorf("%w: stray '$' at (%d,%d)",
					ErrInvalidPacSpawn, x, y)
			}
		}
	}

	if !found {
		return Coordinate{}, ErrNoPacSpawn
	}
	return spawn, nil
}
