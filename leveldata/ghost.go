package leveldata

import "fmt"

// Ghost house dimensions in tiles.
const (
	ghostBlockW = 8
	ghostBlockH = 5
)

const ghostMarker = '@'

// findGhostSpawn locates the single 8x5 ghost-house rectangle, claims
// its cells, and checks the release mouths above and below the house
// center. The scan is a brute-force bounded double loop,
// O(width*height*40) worst case, which is fine at arcade-map scale.
func findGhostSpawn(g *charGrid, claimed claimGrid) (Coordinate, error) {
	found := false
	var spawn Coordinate
	for y := 0; y+ghostBlockH <= g.height; y++ {
		for x := 0; x+ghostBlockW <= g.width; x++ {
			if !ghostBlockAt(g, x, y) {
				continue
			}
			if found {
				// A window overlapping the accepted house means the
				// marker region is oversized, not that there are two
				// houses; the stray check below reports its leftover
				// cells.
				if overlapsClaim(claimed, x, y) {
					continue
				}
				return Coordinate{}, fmt.Errorf("%w: second house at (%d,%d)",
					ErrMultipleGhostSpawns, x, y)
			}
			found = true
			spawn = Coordinate{X: x, Y: y}
			for yy := y; yy < y+ghostBlockH; yy++ {
				for xx := x; xx < x+ghostBlockW; xx++ {
					claimed[yy][xx] = true
				}
			}
		}
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.rows[y][x] == ghostMarker && !claimed[y][x] {
				return Coordinate{}, fmt.Errorf("%w: stray '@' at (%d,%d)",
					ErrInvalidGhostSpawn, x, y)
			}
		}
	}

	if !found {
		return Coordinate{}, ErrNoGhostSpawn
	}
	if err := checkReleaseMouths(g, spawn); err != nil {
		return Coordinate{}, err
	}
	return spawn, nil
}

func ghostBlockAt(g *charGrid, x, y int) bool {
	for yy := y; yy < y+ghostBlockH; yy++ {
		for xx := x; xx < x+ghostBlockW; xx++ {
			if g.rows[yy][xx] != ghostMarker {
				return false
			}
		}
	}
	return true
}

func overlapsClaim(claimed claimGrid, x, y int) bool {
	for yy := y; yy < y+ghostBlockH; yy++ {
		for xx := x; xx < x+ghostBlockW; xx++ {
			if claimed[yy][xx] {
				return true
			}
		}
	}
	return false
}

// checkReleaseMouths requires the two cells directly above and the two
// directly below the house's horizontal center to be open space: ghosts
// leave through the top and fruit drops in through the bottom.
func checkReleaseMouths(g *charGrid, spawn Coordinate) error {
	x, y := spawn.X, spawn.Y
	if y == 0 || y+ghostBlockH >= g.height {
		return fmt.Errorf("%w: house touches the map edge", ErrGhostSpawnBlocked)
	}
	for _, xx := range []int{x + 3, x + 4} {
		if g.rows[y-1][xx] != ' ' || g.rows[y+ghostBlockH][xx] != ' ' {
			return fmt.Errorf("%w: column %d", ErrGhostSpawnBlocked, xx)
		}
	}
	return nil
}
