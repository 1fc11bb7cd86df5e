package npc

import (
	"testing"

	"github.com/hearthlab/cavern-core/internal/randgen"
)

func TestSpawnKillRecyclesSlotWithNewGeneration(t *testing.T) {
	l := NewList()
	ref, err := l.Spawn(NPC{NPCType: 4, RNG: randgen.NewXorShift(1)})
	if err != nil {
		t.Fatal(err)
	}
	if l.Get(ref) == nil {
		t.Fatal("expected live ref to resolve")
	}

	l.Kill(ref)
	if l.Get(ref) != nil {
		t.Fatal("expected killed ref to be stale")
	}

	ref2, err := l.Spawn(NPC{NPCType: 3, RNG: randgen.NewXorShift(1)})
	if err != nil {
		t.Fatal(err)
	}
	if ref2.slot != ref.slot {
		t.Fatalf("expected slot reuse, got slots %d and %d", ref.slot, ref2.slot)
	}
	if ref2.gen == ref.gen {
		t.Fatal("expected generation to change on reuse")
	}
	if l.Get(ref) != nil {
		t.Fatal("old ref must still be stale after slot reuse")
	}
}

func TestSpawnFailsWhenArenaFull(t *testing.T) {
	l := NewList()
	for i := 0; i < MaxSlots; i++ {
		if _, err := l.Spawn(NPC{RNG: randgen.NewXorShift(int32(i))}); err != nil {
			t.Fatalf("unexpected error on spawn %d: %v", i, err)
		}
	}
	if _, err := l.Spawn(NPC{}); err != ErrArenaFull {
		t.Fatalf("expected ErrArenaFull, got %v", err)
	}
}

func TestResolveParentRefsClearsOnParentDeath(t *testing.T) {
	l := NewList()
	parentRef, _ := l.Spawn(NPC{NPCType: 1})
	parent := l.Get(parentRef)
	childRef, _ := l.Spawn(NPC{NPCType: 2})
	child := l.Get(childRef)
	l.SetParent(child, parent)

	l.resolveParentRefs()
	if l.Get(childRef).Parent != l.Get(parentRef) {
		t.Fatal("expected child to resolve parent pointer")
	}

	l.Kill(parentRef)
	l.resolveParentRefs()
	if l.Get(childRef).Parent != nil {
		t.Fatal("expected stale parent pointer to clear after parent death")
	}

	// A later, unrelated Spawn reusing the freed slot must not make the
	// child's stale ParentRef resolve to the new occupant.
	replacementRef, _ := l.Spawn(NPC{NPCType: 9})
	if replacementRef.slot != parentRef.slot {
		t.Fatalf("expected replacement to reuse parent's freed slot, got slot %d want %d", replacementRef.slot, parentRef.slot)
	}
	l.resolveParentRefs()
	if l.Get(childRef).Parent != nil {
		t.Fatal("expected child's stale ParentRef to stay nil after slot recycled by unrelated Spawn")
	}
}

func TestTickDispatchesByNPCType(t *testing.T) {
	l := NewList()
	ref, _ := l.Spawn(NPC{NPCType: 13})
	ctx := &TickContext{List: l}
	l.Tick(ctx, DefaultDispatch())
	if l.Get(ref).AnimNum != 1 {
		t.Fatalf("expected forcefield anim to advance, got %d", l.Get(ref).AnimNum)
	}
}

func TestEachVisitsOnlyAliveInSlotOrder(t *testing.T) {
	l := NewList()
	var refs []Ref
	for i := 0; i < 3; i++ {
		ref, _ := l.Spawn(NPC{NPCType: uint16(i)})
		refs = append(refs, ref)
	}
	l.Kill(refs[1])

	var seen []uint16
	l.Each(func(n *NPC) { seen = append(seen, n.NPCType) })
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 2 {
		t.Fatalf("unexpected traversal: %v", seen)
	}
}
