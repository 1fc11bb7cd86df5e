package npc

import "fmt"

// MaxSlots bounds the NPC arena the way a fixed-capacity slot table would
// (no npc/list.rs survived distillation; this follows spec.md's NPC
// arena description and the teacher's own fixed-capacity entity-list
// idiom instead of a ported file — see DESIGN.md); spawns beyond this are
// rejected rather than growing the slice, so per-tick iteration cost
// stays bounded.
const MaxSlots = 512

// ErrArenaFull is returned by List.Spawn when every slot is occupied.
var ErrArenaFull = fmt.Errorf("npc: arena full (max %d)", MaxSlots)

// Ref is a stable handle to a slot: (slot index, generation). A Ref
// resolved after the slot has been recycled (killed and respawned) is
// reported as stale rather than silently pointing at the wrong entity —
// the access-token discipline named in the design note.
type Ref struct {
	slot int
	gen  uint32
}

// IsZero reports whether r is the zero Ref (never assigned).
func (r Ref) IsZero() bool { return r.gen == 0 }

// List is the fixed-capacity NPC arena plus a free list for O(1) spawn.
type List struct {
	slots [MaxSlots]NPC
	gen   [MaxSlots]uint32
	free  []int
}

// NewList allocates an empty arena with every slot on the free list.
func NewList() *List {
	l := &List{free: make([]int, 0, MaxSlots)}
	for i := MaxSlots - 1; i >= 0; i-- {
		l.free = append(l.free, i)
	}
	return l
}

// Spawn places npc into a free slot, bumping that slot's generation so any
// outstanding Ref into a previous occupant is now stale. Returns the new
// Ref, or ErrArenaFull if no slot is available.
func (l *List) Spawn(n NPC) (Ref, error) {
	if len(l.free) == 0 {
		return Ref{}, ErrArenaFull
	}
	idx := l.free[len(l.free)-1]
	l.free = l.free[:len(l.free)-1]

	l.gen[idx]++
	if l.gen[idx] == 0 { // never let generation 0 mean "valid"
		l.gen[idx] = 1
	}
	n.slot = idx
	n.alive = true
	n.ID = l.gen[idx]
	l.slots[idx] = n
	return Ref{slot: idx, gen: l.gen[idx]}, nil
}

// Kill removes the NPC at ref, returning it to the free list. Killing an
// already-stale or out-of-range ref is a no-op.
func (l *List) Kill(ref Ref) {
	if !l.valid(ref) {
		return
	}
	l.slots[ref.slot] = NPC{}
	l.free = append(l.free, ref.slot)
}

func (l *List) valid(ref Ref) bool {
	return ref.slot >= 0 && ref.slot < MaxSlots && l.slots[ref.slot].alive && l.gen[ref.slot] == ref.gen
}

// Get resolves ref to its NPC, or nil if the ref is stale.
func (l *List) Get(ref Ref) *NPC {
	if !l.valid(ref) {
		return nil
	}
	return &l.slots[ref.slot]
}

// RefOf returns n's current Ref; useful right after Spawn-by-value lookups.
func (l *List) RefOf(n *NPC) Ref { return Ref{slot: n.slot, gen: l.gen[n.slot]} }

// Each calls fn for every currently-alive NPC, in slot order (matching the
// source's plain Vec iteration order, which callers rely on for
// deterministic replay per §8).
func (l *List) Each(fn func(n *NPC)) {
	for i := range l.slots {
		if l.slots[i].alive {
			fn(&l.slots[i])
		}
	}
}

// resolveParentRefs re-links each alive NPC's Parent pointer from its
// ParentRef (slot, generation) handle, clearing it if the parent died (or
// the parent's slot was recycled by an unrelated Spawn since) this tick.
// This runs once per tick before AI dispatch so AI code can read n.Parent
// directly instead of doing its own lookup (grounded on the source's
// NPC::get_parent pattern).
func (l *List) resolveParentRefs() {
	for i := range l.slots {
		if !l.slots[i].alive {
			continue
		}
		n := &l.slots[i]
		n.Parent = nil
		if n.ParentRef.IsZero() || !l.valid(n.ParentRef) {
			continue
		}
		n.Parent = &l.slots[n.ParentRef.slot]
	}
}

// SetParent records child as owned by parent, capturing parent's current
// generation so a later slot recycle (parent dies, an unrelated NPC
// spawns into the same slot) is never mistaken for the same parent.
func (l *List) SetParent(child *NPC, parent *NPC) {
	child.ParentRef = l.RefOf(parent)
}

// Tick resolves parent links, then dispatches every alive NPC's AI
// function by NPCType. It does not integrate physics; the engine calls
// Integrate for each NPC after Tick returns.
func (l *List) Tick(ctx *TickContext, dispatch Dispatch) {
	l.resolveParentRefs()
	l.Each(func(n *NPC) {
		fn, ok := dispatch[n.NPCType]
		if !ok {
			return
		}
		_ = fn(n, ctx)
	})
}

// Count returns the number of currently-alive NPCs.
func (l *List) Count() int {
	n := 0
	l.Each(func(*NPC) { n++ })
	return n
}
