package fx

import (
	"testing"

	"github.com/hearthlab/cavern-core/internal/fixedpoint"
)

func TestFallingIslandInactiveUntilStarted(t *testing.T) {
	f := New()
	if f.Active {
		t.Fatal("expected new falling island to be inactive")
	}
	f.Tick()
	if f.Y != 0 {
		t.Fatalf("expected inactive island to hold position, got Y=%d", f.Y)
	}
}

func TestFallingIslandDescendsWhileActive(t *testing.T) {
	f := New()
	f.Start(fixedpoint.FromPixels(10), fixedpoint.FromPixels(20))
	startY := f.Y
	f.Tick()
	if f.Y <= startY {
		t.Fatalf("expected Y to increase after tick, got %d (start %d)", f.Y, startY)
	}
	if f.X != fixedpoint.FromPixels(10) {
		t.Fatalf("expected X to stay fixed at start value, got %d", f.X)
	}
}

func TestFallingIslandStopHaltsDescent(t *testing.T) {
	f := New()
	f.Start(0, 0)
	f.Stop()
	if f.Active {
		t.Fatal("expected Stop to clear Active")
	}
	f.Tick()
	if f.Y != 0 {
		t.Fatalf("expected no descent once stopped, got Y=%d", f.Y)
	}
}
