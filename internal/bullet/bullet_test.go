package bullet

import (
	"testing"

	"github.com/hearthlab/cavern-core/internal/fixedpoint"
)

func sampleTable() Table {
	return Table{
		1: {Damage: 4, LifeTicks: 10, HalfW: fixedpoint.FromPixels(2), HalfH: fixedpoint.FromPixels(2), Flags: HitsWalls | HitsNPCs},
	}
}

func TestFireRejectsUnknownType(t *testing.T) {
	l := NewList()
	if l.Fire(sampleTable(), 999, 0, 0, 0, 0, true) {
		t.Fatal("expected Fire to reject unknown bullet type")
	}
}

func TestFireAndTickExpiresAfterLifetime(t *testing.T) {
	l := NewList()
	if !l.Fire(sampleTable(), 1, 0, 0, fixedpoint.FromPixels(1), 0, true) {
		t.Fatal("expected Fire to succeed")
	}
	for i := 0; i < 10; i++ {
		l.Tick(nil)
	}
	if l.Count() != 0 {
		t.Fatalf("expected bullet to expire, got count=%d", l.Count())
	}
}

func TestArenaRecyclesSlotsAfterExpiry(t *testing.T) {
	l := NewList()
	for i := 0; i < MaxSlots; i++ {
		if !l.Fire(sampleTable(), 1, 0, 0, 0, 0, true) {
			t.Fatalf("expected slot %d to be available", i)
		}
	}
	if l.Fire(sampleTable(), 1, 0, 0, 0, 0, true) {
		t.Fatal("expected arena to be full")
	}
	for i := 0; i < 10; i++ {
		l.Tick(nil)
	}
	if l.Count() != 0 {
		t.Fatal("expected all bullets to expire")
	}
	if !l.Fire(sampleTable(), 1, 0, 0, 0, 0, true) {
		t.Fatal("expected a freed slot to be reusable")
	}
}
