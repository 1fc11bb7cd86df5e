package stage

import (
	"testing"

	"github.com/hearthlab/cavern-core/internal/fixedpoint"
)

func flatMap(w, h int, solidRow int) *Map {
	tiles := make([]byte, w*h)
	for x := 0; x < w; x++ {
		tiles[solidRow*w+x] = 1
	}
	var bank AttrBank
	bank[1] = AttrSolidBlock
	return &Map{
		Width: w, Height: h, TileSize: 16,
		Foreground: &TileGrid{Width: w, Height: h, Tiles: tiles},
		Attrs:      &bank,
	}
}

func TestResolveMoveStopsAtFloor(t *testing.T) {
	m := flatMap(10, 10, 5) // solid row at tile y=5
	halfW := fixedpoint.FromPixels(4)
	halfH := fixedpoint.FromPixels(4)
	x := fixedpoint.FromPixels(80)
	y := fixedpoint.FromPixels(70) // just above the solid row (tile 5 starts at y=80px)

	_, ny, flags := ResolveMove(m, x, y, halfW, halfH, 0, fixedpoint.FromPixels(20))
	if !flags.HitBottomWall {
		t.Fatalf("expected HitBottomWall, flags=%+v", flags)
	}
	if fixedpoint.ToPixels(ny) > 80-4 {
		t.Fatalf("expected snap above floor, got y=%d px", fixedpoint.ToPixels(ny))
	}
}

func TestResolveMoveNoCollisionInOpenAir(t *testing.T) {
	m := flatMap(10, 10, 9)
	halfW := fixedpoint.FromPixels(4)
	halfH := fixedpoint.FromPixels(4)
	x := fixedpoint.FromPixels(50)
	y := fixedpoint.FromPixels(50)

	_, _, flags := ResolveMove(m, x, y, halfW, halfH, fixedpoint.FromPixels(5), fixedpoint.FromPixels(5))
	if flags.AnyFlag {
		t.Fatalf("expected no collision in open air, got %+v", flags)
	}
}

func TestTileAtOutOfBoundsReturnsEmpty(t *testing.T) {
	m := flatMap(4, 4, 1)
	if attr := m.TileAt(fixedpoint.FromPixels(-100), fixedpoint.FromPixels(-100)); attr != AttrEmpty {
		t.Fatalf("expected AttrEmpty out of bounds, got %v", attr)
	}
}
