// Package bullet implements player and NPC projectiles: a per-weapon-level
// table of bullet tuning (damage, lifetime, size, hit flags) and a fixed
// arena that steps and collides active bullets each tick.
//
// There is no bullet.rs in the retained reference material (see
// original_source/_INDEX.md), so this package is grounded on spec.md's
// weapon/bullet description together with the teacher's entity/arena idiom
// (internal/npc.List) rather than a direct
// source file — recorded in the design note.
package bullet

import (
	"github.com/hearthlab/cavern-core/internal/fixedpoint"
	"github.com/hearthlab/cavern-core/internal/stage"
)

// HitFlag marks what a bullet type can collide with.
type HitFlag uint8

const (
	HitsWalls HitFlag = 1 << iota
	HitsNPCs
	HitsPlayer
	PiercesNPCs // Missile Launcher / Super Missile Launcher at max level
)

// TuningEntry is one row of the bullet table: the tuning for one
// (weapon, level) pair (§ weapon leveling, spec "bullet table").
type TuningEntry struct {
	Damage       int16
	LifeTicks    uint16
	HalfW, HalfH fixedpoint.Subpixel
	Speed        fixedpoint.Subpixel
	Flags        HitFlag
	EnemyXP      uint16 // experience the bullet type normally grants an enemy's killer, for drop tables that key off bullet type
}

// Table maps a bullet type id (weapon*8 + level, the on-disk convention
// used by the bullet table file) to its tuning.
type Table map[uint16]TuningEntry

// Bullet is one live projectile.
type Bullet struct {
	Type         uint16
	OwnerIsPlayer bool
	X, Y         fixedpoint.Subpixel
	VelX, VelY   fixedpoint.Subpixel
	Life         uint16
	Tuning       TuningEntry
	alive        bool
}

// Bounds returns the bullet's current hit box.
func (b *Bullet) Bounds() fixedpoint.Rect[int32] {
	return fixedpoint.CenteredAt(b.X, b.Y, b.Tuning.HalfW, b.Tuning.HalfH)
}

// MaxSlots bounds the bullet arena, mirroring internal/npc.MaxSlots's
// fixed-capacity-array rationale.
const MaxSlots = 64

// List is the fixed-capacity bullet arena.
type List struct {
	slots [MaxSlots]Bullet
	free  []int
}

// NewList allocates an empty bullet arena.
func NewList() *List {
	l := &List{free: make([]int, 0, MaxSlots)}
	for i := MaxSlots - 1; i >= 0; i-- {
		l.free = append(l.free, i)
	}
	return l
}

// Fire spawns a bullet of typ at (x, y) travelling at (vx, vy), looking up
// its tuning from table. Returns false if the arena is full or typ is not
// in the table (a silently-ignored fire, matching the source's behaviour
// of capping simultaneous player shots rather than erroring).
func (l *List) Fire(table Table, typ uint16, x, y, vx, vy fixedpoint.Subpixel, ownerIsPlayer bool) bool {
	tuning, ok := table[typ]
	if !ok || len(l.free) == 0 {
		return false
	}
	idx := l.free[len(l.free)-1]
	l.free = l.free[:len(l.free)-1]
	l.slots[idx] = Bullet{
		Type: typ, OwnerIsPlayer: ownerIsPlayer,
		X: x, Y: y, VelX: vx, VelY: vy,
		Life: tuning.LifeTicks, Tuning: tuning, alive: true,
	}
	return true
}

// Tick advances every live bullet by one frame: integrate position,
// resolve wall collisions when Flags&HitsWalls is set, and expire on
// lifetime or wall impact.
func (l *List) Tick(m *stage.Map) {
	for i := range l.slots {
		b := &l.slots[i]
		if !b.alive {
			continue
		}
		if b.Life > 0 {
			b.Life--
		}
		if b.Life == 0 {
			b.alive = false
			l.free = append(l.free, i)
			continue
		}

		if b.Tuning.Flags&HitsWalls != 0 && m != nil {
			nx, ny, flags := stage.ResolveMove(m, b.X, b.Y, b.Tuning.HalfW, b.Tuning.HalfH, b.VelX, b.VelY)
			b.X, b.Y = nx, ny
			if flags.AnyFlag {
				b.alive = false
				l.free = append(l.free, i)
				continue
			}
		} else {
			b.X += b.VelX
			b.Y += b.VelY
		}
	}
}

// Each calls fn for every currently-live bullet.
func (l *List) Each(fn func(b *Bullet)) {
	for i := range l.slots {
		if l.slots[i].alive {
			fn(&l.slots[i])
		}
	}
}

// Remove despawns the bullet fn points at (e.g. on hit-confirm against an
// NPC or the player).
func (l *List) Remove(b *Bullet) {
	for i := range l.slots {
		if &l.slots[i] == b && b.alive {
			b.alive = false
			l.free = append(l.free, i)
			return
		}
	}
}

// Count returns the number of currently-live bullets.
func (l *List) Count() int {
	n := 0
	l.Each(func(*Bullet) { n++ })
	return n
}
