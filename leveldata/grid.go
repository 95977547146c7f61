package leveldata

import (
	"fmt"
	"strings"
)

// charGrid is the raw character map. Rectangular by construction and
// immutable after ingestion.
type charGrid struct {
	width  int
	height int
	rows   [][]rune
}

func newCharGrid(text string) (*charGrid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, ErrLevelEmpty
	}

	lines := strings.Split(text, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}

	width := len(rows[0])
	if width == 0 {
		return nil, ErrLevelEmpty
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrLevelNotRectangular, y, len(row), width)
		}
	}

	return &charGrid{width: width, height: len(rows), rows: rows}, nil
}

// claimGrid marks cells already interpreted by an earlier scan so
// multi-cell tokens are never read twice. Indexed [y][x].
type claimGrid [][]bool

func newClaimGrid(width, height int) claimGrid {
	c := make(claimGrid, height)
	for y := range c {
		c[y] = make([]bool, width)
	}
	return c
}
