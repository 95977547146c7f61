// Package leveldata parses plain-text level maps into a validated Level:
// a numeric board plus spawn anchors, warp pairings, and derived start
// positions. It has no dependencies on ebitengine, donburi, or resolv;
// pure data only.
package leveldata

import "fmt"

// Cell codes stored in a Board. Warp mouths are stored as the negated
// warp id (-1..-9), so any negative cell is a warp.
const (
	CellEmpty  = 0
	CellWall   = 1
	CellDot    = 2
	CellPellet = 3
)

// Coordinate is a zero-based (column, row) tile position.
type Coordinate struct {
	X, Y int
}

// Point is a sub-tile position in tile units. Entities move in finer
// steps than the tile grid, so start positions are floats.
type Point struct {
	X, Y float64
}

// WarpPair holds the two mouths of one warp tunnel, in the order their
// digits were encountered scanning the map row-major.
type WarpPair struct {
	A, B Coordinate
}

// Board is the numeric cell grid, row-major. The game loop mutates it
// during play (eaten dots and pellets become CellEmpty); the parser
// only ever produces it.
type Board struct {
	Width  int
	Height int
	Cells  []int // len == Width*Height, indexed [y*Width+x]
}

func newBoard(width, height int, cells []int) (Board, error) {
	if len(cells) != width*height {
		return Board{}, fmt.Errorf("%w: %d cells for %dx%d", ErrBoardSize, len(cells), width, height)
	}
	return Board{Width: width, Height: height, Cells: cells}, nil
}

// At returns the cell code at (x, y).
func (b Board) At(x, y int) int {
	return b.Cells[y*b.Width+x]
}

// Set overwrites the cell code at (x, y).
func (b Board) Set(x, y, code int) {
	b.Cells[y*b.Width+x] = code
}

// DotCount returns how many dots and pellets the board holds. The game
// loop uses it as the level-clear counter.
func (b Board) DotCount() int {
	n := 0
	for _, c := range b.Cells {
		if c == CellDot || c == CellPellet {
			n++
		}
	}
	return n
}

// StartPositions are the initial sub-tile positions derived from the
// two spawn anchors.
type StartPositions struct {
	Pacman Point
	Blinky Point
	Pinky  Point
	Inky   Point
	Clyde  Point
}

// Level is the validated result of parsing one map file. Ownership
// passes to the caller; the parser keeps no reference.
type Level struct {
	Board      Board
	GhostSpawn Coordinate // top-left of the 8x5 ghost house
	PacSpawn   Coordinate // left cell of the $$ pair
	Warps      map[int]WarpPair
	Start      StartPositions
	Lives      int
	Points     int
}
