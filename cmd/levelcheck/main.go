// Command levelcheck validates level map files and reports the first
// structural problem in each.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pakuverse/paku/leveldata"
)

func main() {
	quiet := flag.Bool("q", false, "suppress per-file success output")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: levelcheck [-q] <level.lvl> ...")
		os.Exit(2)
	}

	failed := 0
	for _, path := range flag.Args() {
		dir, base := filepath.Split(path)
		if dir == "" {
			dir = "."
		}
		lvl, err := leveldata.Load(os.DirFS(dir), base)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		if !*quiet {
			fmt.Printf("%s: ok: %dx%d, %d dots, %d warps, ghost house (%d,%d), pac spawn (%d,%d)\n",
				path, lvl.Board.Width, lvl.Board.Height,
				lvl.Board.DotCount(), len(lvl.Warps),
				lvl.GhostSpawn.X, lvl.GhostSpawn.Y,
				lvl.PacSpawn.X, lvl.PacSpawn.Y)
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}
