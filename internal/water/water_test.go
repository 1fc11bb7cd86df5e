package water

import (
	"testing"

	"github.com/hearthlab/cavern-core/internal/fixedpoint"
)

func TestColumnTickSettlesTowardTarget(t *testing.T) {
	c := &Column{Height: 10, Target: 0}
	for i := 0; i < 500; i++ {
		c.Tick()
	}
	if c.Height > 0.5 || c.Height < -0.5 {
		t.Fatalf("expected column to settle near 0, got %v", c.Height)
	}
}

func TestImpulseAndTickDiffusesToNeighbors(t *testing.T) {
	bounds := fixedpoint.Rect[int32]{Left: 0, Top: 0, Right: fixedpoint.FromPixels(40), Bottom: fixedpoint.FromPixels(16)}
	w := NewDynamicWater(bounds)
	mid := len(w.Columns) / 2
	w.Impulse(fixedpoint.FromPixels(int32(mid*ColumnStep)), 5)
	w.Tick()
	if w.Columns[mid].Height == 0 {
		t.Fatal("expected impulsed column to move")
	}
	if w.Columns[mid-1].Height <= 0 || w.Columns[mid+1].Height <= 0 {
		t.Fatalf("expected both neighbors to rise, got %v and %v", w.Columns[mid-1].Height, w.Columns[mid+1].Height)
	}
}

func TestIsNonInteractingExcludesListedTypes(t *testing.T) {
	if !IsNonInteracting(191) {
		t.Fatal("expected npc type 191 to be excluded from water interaction")
	}
	if IsNonInteracting(50) {
		t.Fatal("expected npc type 50 to interact with water")
	}
}
