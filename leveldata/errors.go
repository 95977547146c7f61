package leveldata

import "errors"

// Every way a level file can be rejected. Parsing is fail-fast: the
// first violation found (in stage order: grid, ghost house, pac spawn,
// warps, encoding) is returned and no partial Level is ever exposed.
// Errors are wrapped with cell context; classify with errors.Is.
var (
	ErrFileRead            = errors.New("failed to read level file")
	ErrLevelEmpty          = errors.New("level file empty or zero width; ensure no empty lines")
	ErrLevelNotRectangular = errors.New("level not rectangular; row lengths are irregular")

	ErrNoGhostSpawn        = errors.New("no ghost spawn found")
	ErrMultipleGhostSpawns = errors.New("multiple ghost spawns found")
	ErrInvalidGhostSpawn   = errors.New("stray '@'; the ghost spawn must be a single 8x5 '@' rectangle")
	ErrGhostSpawnBlocked   = errors.New("the two cells above and below the ghost spawn center must be open for ghost and fruit release")

	ErrNoPacSpawn        = errors.New("no pac-man spawn found")
	ErrMultiplePacSpawns = errors.New("multiple pac-man spawns found")
	ErrInvalidPacSpawn   = errors.New("stray '$'; the pac-man spawn must be a single horizontal '$$' pair")

	ErrInvalidWarp = errors.New("warp digits must appear in pairs using contiguous ids starting at 1")

	ErrInvalidCharacters = errors.New("invalid character in level")

	// ErrBoardSize guards board construction against a cell-count
	// mismatch. Unreachable while the rectangularity check holds.
	ErrBoardSize = errors.New("board cell count does not match level dimensions")
)
