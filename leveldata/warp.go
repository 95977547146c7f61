package leveldata

import (
	"fmt"
	"sort"
)

// maxWarpID caps distinct tunnel ids per map. Id 0 is reserved and
// never valid.
const maxWarpID = 9

// collectWarps groups unclaimed digit cells by value, claims them, and
// validates the pairing rules: every id appears on exactly two cells
// and the ids used are contiguous starting at 1. A map with no digits
// simply has no warps.
func collectWarps(g *charGrid, claimed claimGrid) (map[int]WarpPair, error) {
	coords := make(map[int][]Coordinate)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if claimed[y][x] {
				continue
			}
			r := g.rows[y][x]
			if r < '0' || r > '9' {
				continue
			}
			id := int(r - '0')
			coords[id] = append(coords[id], Coordinate{X: x, Y: y})
			claimed[y][x] = true
		}
	}
	if len(coords) == 0 {
		return map[int]WarpPair{}, nil
	}

	ids := make([]int, 0, len(coords))
	for id, cs := range coords {
		if len(cs) != 2 {
			return nil, fmt.Errorf("%w: id %d appears %d times, want 2",
				ErrInvalidWarp, id, len(cs))
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	if len(ids) > maxWarpID {
		return nil, fmt.Errorf("%w: %d distinct ids, max %d",
			ErrInvalidWarp, len(ids), maxWarpID)
	}
	for i, id := range ids {
		if id != i+1 {
			return nil, fmt.Errorf("%w: got ids %v", ErrInvalidWarp, ids)
		}
	}

	warps := make(map[int]WarpPair, len(ids))
	for _, id := range ids {
		cs := coords[id]
		warps[id] = WarpPair{A: cs[0], B: cs[1]}
	}
	return warps, nil
}
