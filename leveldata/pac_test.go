package leveldata

import (
	"errors"
	"testing"
)

func clearPacSpawn(rows []string) []string {
	out := setCell(rows, 7, 7, ' ')
	return setCell(out, 8, 7, ' ')
}

func TestPacSpawn_Missing(t *testing.T) {
	_, err := Parse(mapText(clearPacSpawn(fixture)))
	if !errors.Is(err, ErrNoPacSpawn) {
		t.Errorf("Parse() = %v, want ErrNoPacSpawn", err)
	}
}

func TestPacSpawn_TwoPairs(t *testing.T) {
	rows := setCell(fixture, 9, 1, '$')
	rows = setCell(rows, 10, 1, '$')
	_, err := Parse(mapText(rows))
	if !errors.Is(err, ErrMultiplePacSpawns) {
		t.Errorf("Parse() = %v, want ErrMultiplePacSpawns", err)
	}
}

func TestPacSpawn_Stray(t *testing.T) {
	rows := setCell(fixture, 10, 1, '$')
	_, err := Parse(mapText(rows))
	if !errors.Is(err, ErrInvalidPacSpawn) {
		t.Errorf("Parse() = %v, want ErrInvalidPacSpawn", err)
	}
}

func TestPacSpawn_Triple(t *testing.T) {
	// "$$$" pairs up the first two markers and leaves the third as a
	// stray.
	rows := setCell(fixture, 9, 7, '$')
	_, err := Parse(mapText(rows))
	if !errors.Is(err, ErrInvalidPacSpawn) {
		t.Errorf("Parse() = %v, want ErrInvalidPacSpawn", err)
	}
}

func TestPacSpawn_Quadruple(t *testing.T) {
	rows := setCell(fixture, 9, 7, '$')
	rows = setCell(rows, 10, 7, '$')
	_, err := Parse(mapText(rows))
	if !errors.Is(err, ErrMultiplePacSpawns) {
		t.Errorf("Parse() = %v, want ErrMultiplePacSpawns", err)
	}
}

func TestPacSpawn_VerticalPair(t *testing.T) {
	rows := clearPacSpawn(fixture)
	rows = setCell(rows, 10, 1, '$')
	rows = setCell(rows, 10, 7, '$')
	_, err := Parse(mapText(rows))
	if !errors.Is(err, ErrInvalidPacSpawn) {
		t.Errorf("Parse() = %v, want ErrInvalidPacSpawn", err)
	}
}
