package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"

	"github.com/pakuverse/paku/leveldata"
)

type Config struct {
	Width    int
	Height   int
	TileSize int
}

// PacmanConfig contains all Pac-Man-related configuration values
type PacmanConfig struct {
	StartingLives int
	MaxLives      int
	BonusLifeAt   int // one extra life, once, at this score

	// Draw radius as a fraction of a tile
	Radius float64
}

// GhostInfo names one of the four ghosts and its draw color.
type GhostInfo struct {
	Name  string
	Color color.RGBA
}

// FruitInfo is one row of the bonus-fruit table.
type FruitInfo struct {
	Name   string
	Points int
}

// ScoringConfig contains the point values awarded during play
type ScoringConfig struct {
	Dot    int
	Pellet int

	// Successive ghosts eaten under a single pellet
	GhostChain []int

	// Bonus fruit appears after this many dots, then once more
	FruitFirstDots  int
	FruitSecondDots int
	FruitLingerSecs int

	// Indexed by one-based level number; the last entry repeats
	FruitByLevel []FruitInfo
}

// PelletConfig contains power-pellet presentation values
type PelletConfig struct {
	PulseMin  float32 // radius scale at the small end of the pulse
	PulseMax  float32
	PulseSecs float32 // one half of the pulse cycle
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowGrid bool // overlay tile grid lines
}

// Global configuration instances
var C *Config
var Pacman PacmanConfig
var Scoring ScoringConfig
var Pellet PelletConfig
var Debug DebugConfig

// Ghosts in release order.
var Ghosts = [4]GhostInfo{
	{Name: "blinky", Color: BlinkyRed},
	{Name: "pinky", Color: PinkyPink},
	{Name: "inky", Color: InkyCyan},
	{Name: "clyde", Color: ClydeOrange},
}

// Default is the ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// Shared RGBA color constants
var (
	WallBlue    = color.RGBA{R: 33, G: 33, B: 222, A: 255}
	DotCream    = color.RGBA{R: 255, G: 183, B: 174, A: 255}
	PacYellow   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlinkyRed   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	PinkyPink   = color.RGBA{R: 255, G: 184, B: 255, A: 255}
	InkyCyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	ClydeOrange = color.RGBA{R: 255, G: 184, B: 82, A: 255}
	WarpGreen   = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	HUDWhite    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	GridGray    = color.RGBA{R: 60, G: 60, B: 60, A: 255}
)

func init() {
	C = &Config{
		Width:    672, // 28 tiles
		Height:   864, // 31 board rows plus HUD space
		TileSize: 24,
	}

	Pacman = PacmanConfig{
		StartingLives: leveldata.StartingLives,
		MaxLives:      leveldata.StartingLives,
		BonusLifeAt:   10000,
		Radius:        0.45,
	}

	Scoring = ScoringConfig{
		Dot:             10,
		Pellet:          50,
		GhostChain:      []int{200, 400, 800, 1600},
		FruitFirstDots:  70,
		FruitSecondDots: 170,
		FruitLingerSecs: 9,
		FruitByLevel: []FruitInfo{
			{Name: "cherry", Points: 100},
			{Name: "strawberry", Points: 300},
			{Name: "orange", Points: 500},
			{Name: "orange", Points: 500},
			{Name: "apple", Points: 700},
			{Name: "apple", Points: 700},
			{Name: "melon", Points: 1000},
			{Name: "melon", Points: 1000},
			{Name: "galaxian", Points: 2000},
			{Name: "galaxian", Points: 2000},
			{Name: "bell", Points: 3000},
			{Name: "bell", Points: 3000},
			{Name: "key", Points: 5000},
		},
	}

	Pellet = PelletConfig{
		PulseMin:  0.6,
		PulseMax:  1.0,
		PulseSecs: 0.4,
	}

	Debug = DebugConfig{
		ShowGrid: false,
	}
}

// FruitForLevel returns the bonus fruit for a one-based level number.
func FruitForLevel(n int) FruitInfo {
	if n < 1 {
		n = 1
	}
	if n > len(Scoring.FruitByLevel) {
		n = len(Scoring.FruitByLevel)
	}
	return Scoring.FruitByLevel[n-1]
}
