package leveldata

import (
	"errors"
	"testing"
)

func TestWarps_SinglePair(t *testing.T) {
	rows := setCell(fixture, 1, 1, '1')
	rows = setCell(rows, 10, 1, '1')
	lvl, err := Parse(mapText(rows))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(lvl.Warps) != 1 {
		t.Fatalf("len(Warps) = %d, want 1", len(lvl.Warps))
	}
	pair, ok := lvl.Warps[1]
	if !ok {
		t.Fatal("Warps missing id 1")
	}
	// Mouths are recorded in row-major scan order.
	if want := (Coordinate{X: 1, Y: 1}); pair.A != want {
		t.Errorf("Warps[1].A = %v, want %v", pair.A, want)
	}
	if want := (Coordinate{X: 10, Y: 1}); pair.B != want {
		t.Errorf("Warps[1].B = %v, want %v", pair.B, want)
	}
}

func TestWarps_TwoPairs(t *testing.T) {
	rows := setCell(fixture, 1, 1, '1')
	rows = setCell(rows, 2, 1, '1')
	rows = setCell(rows, 9, 7, '2')
	rows = setCell(rows, 10, 7, '2')
	lvl, err := Parse(mapText(rows))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(lvl.Warps) != 2 {
		t.Errorf("len(Warps) = %d, want 2", len(lvl.Warps))
	}
	for id := 1; id <= 2; id++ {
		if _, ok := lvl.Warps[id]; !ok {
			t.Errorf("Warps missing id %d", id)
		}
	}
}

func TestWarps_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		cells []struct {
			x, y int
			c    byte
		}
	}{
		{
			name: "unpaired digit",
			cells: []struct {
				x, y int
				c    byte
			}{{1, 1, '1'}},
		},
		{
			name: "digit used three times",
			cells: []struct {
				x, y int
				c    byte
			}{{1, 1, '1'}, {2, 1, '1'}, {3, 1, '1'}},
		},
		{
			name: "gap in ids",
			cells: []struct {
				x, y int
				c    byte
			}{{1, 1, '1'}, {2, 1, '1'}, {9, 7, '3'}, {10, 7, '3'}},
		},
		{
			name: "ids not starting at 1",
			cells: []struct {
				x, y int
				c    byte
			}{{1, 1, '2'}, {2, 1, '2'}},
		},
		{
			name: "zero is reserved",
			cells: []struct {
				x, y int
				c    byte
			}{{1, 1, '0'}, {2, 1, '0'}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows := cloneRows(fixture)
			for _, cell := range tc.cells {
				rows = setCell(rows, cell.x, cell.y, cell.c)
			}
			_, err := Parse(mapText(rows))
			if !errors.Is(err, ErrInvalidWarp) {
				t.Errorf("Parse() = %v, want ErrInvalidWarp", err)
			}
		})
	}
}

func TestWarps_NoneIsValid(t *testing.T) {
	lvl, err := Parse(mapText(fixture))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(lvl.Warps) != 0 {
		t.Errorf("len(Warps) = %d, want 0", len(lvl.Warps))
	}
}
