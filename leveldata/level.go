package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// StartingLives is how many lives a fresh Level begins with. The single
// bonus life at 10000 points is the game loop's business, not ours.
const StartingLives = 3

// Parse validates raw level text and builds the Level. Stages run in a
// fixed order (grid, ghost house, pac spawn, warps, encoding), so a
// map with several defects always reports the same one. The claim
// overlay is threaded through the scans to keep multi-cell tokens from
// being interpreted twice.
func Parse(data []byte) (*Level, error) {
	grid, err := newCharGrid(string(data))
	if err != nil {
		return nil, err
	}
	claimed := newClaimGrid(grid.width, grid.height)

	ghostSpawn, err := findGhostSpawn(grid, claimed)
	if err != nil {
		return nil, err
	}
	pacSpawn, err := findPacSpawn(grid, claimed)
	if err != nil {
		return nil, err
	}
	warps, err := collectWarps(grid, claimed)
	if err != nil {
		return nil, err
	}
	board, err := encodeBoard(grid)
	if err != nil {
		return nil, err
	}

	return &Level{
		Board:      board,
		GhostSpawn: ghostSpawn,
		PacSpawn:   pacSpawn,
		Warps:      warps,
		Start:      deriveStartPositions(ghostSpawn, pacSpawn),
		Lives:      StartingLives,
		Points:     0,
	}, nil
}

// Load reads and parses one level file. It takes an fs.FS so callers
// can pass embed.FS (bundled maps) or os.DirFS (external files).
func Load(fsys fs.FS, path string) (*Level, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileRead, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return lvl, nil
}

// LoadAll discovers every .lvl file under levelsDir in fsys, parses
// each, and returns the levels keyed by stem name plus a sorted name
// list.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.lvl"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .lvl files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		lvl, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".lvl")
		levels[stem] = lvl
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
