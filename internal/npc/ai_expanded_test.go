package npc

import (
	"testing"

	"github.com/hearthlab/cavern-core/internal/caret"
	"github.com/hearthlab/cavern-core/internal/fixedpoint"
	"github.com/hearthlab/cavern-core/internal/randgen"
)

func TestDefaultDispatchIncludesRepresentativeTypesFromEveryAIFile(t *testing.T) {
	d := DefaultDispatch()
	for _, id := range []uint16{0, 3, 4, 13, 14, 256, 142, 120, 121, 124, 337, 357, 59, 307, 93, 249, 301, 299, 300} {
		if _, ok := d[id]; !ok {
			t.Fatalf("DefaultDispatch missing npc type %d", id)
		}
	}
}

func TestTickColonAFacesByDirection(t *testing.T) {
	n := &NPC{Direction: fixedpoint.Left}
	_ = tickColonA(n, nil)
	if n.AnimNum != 0 {
		t.Fatalf("colon_a facing left: AnimNum = %d, want 0", n.AnimNum)
	}
	n.Direction = fixedpoint.Right
	_ = tickColonA(n, nil)
	if n.AnimNum != 1 {
		t.Fatalf("colon_a facing right: AnimNum = %d, want 1", n.AnimNum)
	}
}

func TestTickColonBEmitsZzzWhenAsleep(t *testing.T) {
	carets := caret.NewList()
	n := &NPC{Direction: fixedpoint.Right, RNG: randgen.NewXorShift(1)}
	ctx := &TickContext{Carets: carets}
	for i := 0; i < 101; i++ {
		_ = tickColonB(n, ctx)
	}
	if carets.Count() == 0 {
		t.Fatalf("expected at least one Zzz caret after 101 sleeping ticks")
	}
}

func TestTickSunstoneTogglesIgnoreSolidityOnActivate(t *testing.T) {
	n := &NPC{ActionNum: 10, Direction: fixedpoint.Right}
	_ = tickSunstone(n, nil)
	if n.Flags&FlagIgnoreSolidity == 0 {
		t.Fatalf("expected FlagIgnoreSolidity set once moving")
	}
}

func TestTickEyeDoorOpensWhenPlayerNear(t *testing.T) {
	n := &NPC{X: 0, Y: 0}
	near := fakePlayerView{x: 100, y: 100}
	ctx := &TickContext{Player: near}
	_ = tickEyeDoor(n, ctx)
	if n.ActionNum != 2 {
		t.Fatalf("expected door to start opening, ActionNum = %d", n.ActionNum)
	}
}

func TestTickFlowerCubJumpsTowardCloserPlayer(t *testing.T) {
	n := &NPC{ActionNum: 12, AnimNum: 2}
	right := fakePlayerView{x: 100000, y: 0}
	ctx := &TickContext{Player: right}
	for n.ActionNum == 12 {
		_ = tickFlowerCub(n, ctx)
	}
	if n.VelX <= 0 {
		t.Fatalf("expected cub to jump toward the player on its right, VelX = %d", n.VelX)
	}
}

func TestTickIntroDemonCrownEmitsParticles(t *testing.T) {
	carets := caret.NewList()
	n := &NPC{RNG: randgen.NewXorShift(2)}
	ctx := &TickContext{Carets: carets, EffectRNG: randgen.NewXorShift(9)}
	for i := 0; i < 9; i++ {
		_ = tickIntroDemonCrown(n, ctx)
	}
	if carets.Count() == 0 {
		t.Fatalf("expected demon crown to emit at least one particle caret")
	}
}

type fakePlayerView struct{ x, y fixedpoint.Subpixel }

func (f fakePlayerView) Position() (fixedpoint.Subpixel, fixedpoint.Subpixel) { return f.x, f.y }
func (f fakePlayerView) Direction() fixedpoint.Direction                     { return fixedpoint.Right }
