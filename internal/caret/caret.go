// Package caret implements short-lived cosmetic effect entities (bubbles,
// sparkles, zzz, dust, splashes) owned by SharedGameState and ticked
// alongside NPCs and bullets.
//
// There is no caret.rs in the retained reference material (see
// original_source/_INDEX.md), so this package is grounded on spec.md's
// caret description together with the teacher's entity/arena idiom
// (internal/npc.List, internal/bullet.List) rather than a direct source
// file — recorded in the design note.
package caret

import (
	"github.com/hearthlab/cavern-core/internal/fixedpoint"
)

// Kind identifies which animation/lifetime table entry a caret uses.
type Kind uint8

const (
	KindBubble Kind = iota
	KindSplashDrop
	KindNone2
	KindShoot
	KindSnakeAfterimage
	KindZzz
	KindSparkle
	KindSmallProjectileDissipation
	KindEmpty
	KindFollowPlayer // invisible sound-emitter caret
	KindFormationAfterimage
	KindWindParticles
	KindGunshotSmoke
	KindSnakeStoppingSmoke
	KindExhaust
	KindDustDebris
	KindElectricSpark
	KindLittleParticles // Curly air tank bubbles
	KindLevelUp
	KindHurt
	KindDropItem
	KindDoubleDropItem
	KindPistolSmoke
	KindDrops
)

// lifetimes gives the built-in tick count for kinds whose animation runs
// to completion rather than being explicitly removed by its owner (§ S1
// "Zzz lifetime elapses").
var lifetimes = map[Kind]uint16{
	KindZzz:                        16,
	KindSparkle:                    16,
	KindLevelUp:                    50,
	KindHurt:                       16,
	KindSmallProjectileDissipation: 8,
	KindGunshotSmoke:               8,
	KindExhaust:                    18,
	KindElectricSpark:              6,
}

// Caret is one live effect entity.
type Caret struct {
	Kind               Kind
	X, Y               fixedpoint.Subpixel
	VelX, VelY         fixedpoint.Subpixel
	Direction          fixedpoint.Direction
	AnimNum            uint16
	AnimCounter        uint16
	TicksRemaining     uint16 // 0 means "lives until explicitly removed"
	alive              bool
}

// MaxSlots bounds the caret arena, mirroring internal/bullet.MaxSlots's
// fixed-capacity-array rationale — cosmetic effects never need the
// headroom a gameplay entity arena does.
const MaxSlots = 128

// List is the fixed-capacity caret arena owned by SharedGameState.
type List struct {
	slots [MaxSlots]Caret
	free  []int
}

// NewList allocates an empty caret arena.
func NewList() *List {
	l := &List{free: make([]int, 0, MaxSlots)}
	for i := MaxSlots - 1; i >= 0; i-- {
		l.free = append(l.free, i)
	}
	return l
}

// Create spawns a caret of kind at (x, y) facing dir, matching the
// source's create_caret(x, y, kind, direction) signature (§ S1). Returns
// false if the arena is full, a silently-dropped spawn rather than an
// error since cosmetic effects are never load-bearing for simulation
// correctness.
func (l *List) Create(x, y fixedpoint.Subpixel, kind Kind, dir fixedpoint.Direction) bool {
	if len(l.free) == 0 {
		return false
	}
	idx := l.free[len(l.free)-1]
	l.free = l.free[:len(l.free)-1]
	l.slots[idx] = Caret{
		Kind: kind, X: x, Y: y, Direction: dir,
		TicksRemaining: lifetimes[kind],
		alive:          true,
	}
	return true
}

// Tick advances every live caret's animation by one frame and removes it
// once its lifetime (if any) elapses.
func (l *List) Tick() {
	for i := range l.slots {
		c := &l.slots[i]
		if !c.alive {
			continue
		}
		c.X += c.VelX
		c.Y += c.VelY
		c.AnimCounter++

		if c.TicksRemaining > 0 {
			c.TicksRemaining--
			if c.TicksRemaining == 0 {
				c.alive = false
				l.free = append(l.free, i)
			}
		}
	}
}

// Each calls fn for every currently-live caret.
func (l *List) Each(fn func(c *Caret)) {
	for i := range l.slots {
		if l.slots[i].alive {
			fn(&l.slots[i])
		}
	}
}

// Remove despawns the caret fn points at (used by KindFollowPlayer-style
// carets an owner explicitly retires rather than lets expire).
func (l *List) Remove(c *Caret) {
	for i := range l.slots {
		if &l.slots[i] == c && c.alive {
			c.alive = false
			l.free = append(l.free, i)
			return
		}
	}
}

// Count returns the number of currently-live carets.
func (l *List) Count() int {
	n := 0
	l.Each(func(*Caret) { n++ })
	return n
}
