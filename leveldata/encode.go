package leveldata

import "fmt"

// encodeBoard maps every grid character to its numeric cell code in a
// single row-major pass. Spawn markers encode as the terrain they leave
// behind once their meaning has been consumed by the earlier scans:
// '$' cells become open floor, '@' cells become house walls.
func encodeBoard(g *charGrid) (Board, error) {
	cells := make([]int, 0, g.width*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			r := g.rows[y][x]
			code, ok := cellCode(r)
			if !ok {
				return Board{}, fmt.Errorf("%w: %q at (%d,%d)",
					ErrInvalidCharacters, string(r), x, y)
			}
			cells = append(cells, code)
		}
	}
	return newBoard(g.width, g.height, cells)
}

func cellCode(r rune) (code int, ok bool) {
	switch {
	case r == ' ':
		return CellEmpty, true
	case r == '#':
		return CellWall, true
	case r == '-':
		return CellDot, true
	case r == '!':
		return CellPellet, true
	case r == pacMarker:
		return CellEmpty, true
	case r == ghostMarker:
		return CellWall, true
	case r >= '1' && r <= '9':
		return -int(r - '0'), true
	}
	return 0, false
}
