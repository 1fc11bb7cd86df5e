// Command debugger runs the tcell-based Live Debugger TUI (internal/debugger)
// against a freshly-started engine in a synthetic test room, for manually
// exercising watch expressions, flag toggles, map export, and decompile
// commands without a full game frontend attached.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hearthlab/cavern-core/internal/constants"
	"github.com/hearthlab/cavern-core/internal/debugger"
	"github.com/hearthlab/cavern-core/internal/engine"
	"github.com/hearthlab/cavern-core/internal/stage"
)

func roomStage(w, h int) *stage.Stage {
	grid := &stage.TileGrid{Width: w, Height: h, Tiles: make([]byte, w*h)}
	for x := 0; x < w; x++ {
		grid.Set(x, h-1, 1)
	}
	attrs := &stage.AttrBank{}
	attrs[1] = stage.AttrSolidBlock
	return &stage.Stage{
		Data: stage.StageData{TileSize: 16, DisplayName: "debugger test room"},
		Map:  &stage.Map{Width: w, Height: h, TileSize: 16, Foreground: grid, Attrs: attrs},
	}
}

func main() {
	seed := flag.Int64("seed", 1, "game RNG seed")
	flag.Parse()

	consts := constants.Build(constants.VariantFreeware)
	eng := engine.New(consts, int32(*seed), int32(*seed+1))
	eng.NewGame(roomStage(40, 30), engine.Scripts{})

	tui, err := debugger.NewTUI(eng)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := tui.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer tui.Close()

	tui.Run()
}
