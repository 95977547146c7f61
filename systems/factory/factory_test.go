package factory

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pakuverse/paku/components"
	"github.com/pakuverse/paku/leveldata"
	"github.com/pakuverse/paku/tags"
)

const testMap = "############\n" +
	"#--        #\n" +
	"#@@@@@@@@  #\n" +
	"#@@@@@@@@  #\n" +
	"#@@@@@@@@ !#\n" +
	"#@@@@@@@@  #\n" +
	"#@@@@@@@@  #\n" +
	"#11    $$  #\n" +
	"############\n"

func parseTestLevel(t *testing.T) *leveldata.Level {
	t.Helper()
	lvl, err := leveldata.Parse([]byte(testMap))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	return lvl
}

func TestCreateBoard(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	lvl := parseTestLevel(t)

	entry := CreateBoard(e, "test", lvl)
	board := components.Board.Get(entry)
	if board.Name != "test" {
		t.Errorf("Name = %q, want %q", board.Name, "test")
	}
	if want := lvl.Board.DotCount(); board.DotsLeft != want {
		t.Errorf("DotsLeft = %d, want %d", board.DotsLeft, want)
	}

	score := components.Score.Get(entry)
	if score.Lives != leveldata.StartingLives {
		t.Errorf("Lives = %d, want %d", score.Lives, leveldata.StartingLives)
	}
	if score.Points != 0 {
		t.Errorf("Points = %d, want 0", score.Points)
	}

	if components.Tween.Get(entry) == nil {
		t.Error("board entity has no pellet tween")
	}
}

func TestCreateSpace(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	lvl := parseTestLevel(t)

	entry := CreateSpace(e, lvl.Board)
	space := components.Space.Get(entry)

	want := 0
	for _, c := range lvl.Board.Cells {
		if c == leveldata.CellWall || c < 0 {
			want++
		}
	}
	if got := len(space.Objects()); got != want {
		t.Errorf("space has %d objects, want %d", got, want)
	}

	warps := 0
	for _, obj := range space.Objects() {
		if obj.HasTags(tags.ResolvWarp) {
			warps++
		}
	}
	if warps != 2 {
		t.Errorf("space has %d warp objects, want 2", warps)
	}
}

func TestCreateEntities(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	lvl := parseTestLevel(t)

	pac := CreatePacman(e, lvl)
	pos := components.Position.Get(pac)
	if pos.X != lvl.Start.Pacman.X || pos.Y != lvl.Start.Pacman.Y {
		t.Errorf("pacman at (%v,%v), want (%v,%v)",
			pos.X, pos.Y, lvl.Start.Pacman.X, lvl.Start.Pacman.Y)
	}

	ghosts := CreateGhosts(e, lvl)
	if len(ghosts) != 4 {
		t.Fatalf("len(ghosts) = %d, want 4", len(ghosts))
	}
	if name := components.Ghost.Get(ghosts[0]).Name; name != "blinky" {
		t.Errorf("ghosts[0].Name = %q, want %q", name, "blinky")
	}
	if p := components.Position.Get(ghosts[1]); p.X != lvl.Start.Pinky.X || p.Y != lvl.Start.Pinky.Y {
		t.Errorf("pinky at (%v,%v), want (%v,%v)", p.X, p.Y, lvl.Start.Pinky.X, lvl.Start.Pinky.Y)
	}

	count := 0
	tags.Ghost.Each(e.World, func(entry *donburi.Entry) {
		count++
	})
	if count != 4 {
		t.Errorf("world has %d ghost entities, want 4", count)
	}
}
