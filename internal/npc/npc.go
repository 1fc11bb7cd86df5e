// Package npc implements the NPC entity model: a fixed-capacity slot
// arena, the action_num/anim_num state-machine convention every AI
// function follows, physics integration against internal/stage, and a
// dispatch table of per-type tick functions. The AI dispatch table is
// grounded directly on the retained npc/ai/*.rs sources (doctor.rs,
// toroko.rs, misc.rs, ...); no npc/mod.rs survived distillation (absent
// from original_source/_INDEX.md), so the arena/slot-token primitives
// (List, Ref) follow spec.md's NPC module description and the teacher's
// own fixed-capacity entity-list idiom instead of a ported file.
package npc

import (
	"github.com/hearthlab/cavern-core/internal/caret"
	"github.com/hearthlab/cavern-core/internal/fixedpoint"
	"github.com/hearthlab/cavern-core/internal/randgen"
)

// Condition bits mirror the source's NPC::cond bitfield (Cond in
// original_source, §3 NPC).
type Condition uint16

const (
	CondAlive Condition = 1 << iota
	CondAlive2            // "alive" flag used during the spawn-fade-in frame
	CondHidden
	CondCollidesWithNPC
	CondCollidesWithTerrain
	CondIgnoreSolidity
	CondInteractable
	CondAnimatingFromZero
	CondFromWarp
)

func (c Condition) Has(bit Condition) bool { return c&bit != 0 }

// Flag bits mirror the source's NPC::npc_flags (per-type behaviour flags
// decoded from the placement record's Flags field, §3/§6).
type Flag uint16

const (
	FlagSolidSoft Flag = 1 << iota
	FlagIgnoreSolidity
	FlagInvulnerable
	FlagIgnore44
	FlagShootable
	FlagSolidHard
	FlagRearAndInvisible
	FlagEventWhenKilled
	FlagEventWhenTouched
	FlagNoClip
	FlagScripted
	FlagInteractable
	FlagAppearWhenFlagSet
	FlagSpawnFacingRight
	FlagAppearWhenFlagNotSet
	FlagShowDamage
)

// NPC is one entity: position/velocity/size in subpixels, the action/anim
// state machine, and housekeeping used by physics and the dispatch table.
// Field names follow the source 1:1 so the grounding between a Go method
// and its Rust original stays legible.
type NPC struct {
	ID       uint32 // slot generation token, see List
	NPCType  uint16
	Cond     Condition
	Flags    Flag
	Direction fixedpoint.Direction

	X, Y           fixedpoint.Subpixel
	VelX, VelY     fixedpoint.Subpixel
	TargetX, TargetY fixedpoint.Subpixel
	DisplayX, DisplayY fixedpoint.Subpixel // previous-tick position, for interpolated rendering

	HitboxHalfW, HitboxHalfH fixedpoint.Subpixel
	DisplayHalfW, DisplayHalfH fixedpoint.Subpixel

	ActionNum, ActionCounter, ActionCounter2 uint16
	AnimNum, AnimCounter                      uint16
	AnimRect                                  fixedpoint.Rect[int32]

	Life      int16
	Damage    uint16
	Experience uint32

	EventNum uint16
	FlagNum  uint16

	// ParentRef is the (slot, generation) handle of the owning entity, the
	// zero Ref meaning "no parent" (§3 "parent_id referents may have died;
	// lookups must tolerate dangling IDs and be no-ops"). A bare slot
	// index is not enough: once a dead parent's slot is recycled by an
	// unrelated Spawn, a surviving child must still read as parentless
	// rather than resolve to the new occupant, which is why this uses the
	// same (slot, generation) pair as Ref instead of slot+1 alone.
	ParentRef Ref
	Parent    *NPC // resolved once per tick by List.resolveParentRefs; nil if ParentRef is stale

	RNG randgen.RNG

	slot  int
	alive bool
}

// AIFunc is one NPC type's per-tick behaviour, matching the source's
// tick_nNNN_name methods. ctx carries everything an AI function needs
// beyond the NPC itself (§3 NPC, "world access during tick").
type AIFunc func(n *NPC, ctx *TickContext) error

// TickContext bundles the cross-cutting dependencies an AI function may
// touch: the owning list (to spawn children), the player (for tracking/
// attack AI), and the per-tick cosmetic RNG split (§8 dual-RNG invariant).
type TickContext struct {
	List      *List
	Player    PlayerView
	EffectRNG randgen.RNG
	Carets    *caret.List
}

// PlayerView is the minimal read surface AI functions need from the
// player actor, kept narrow so internal/npc does not import
// internal/player (the engine adapts *player.Player to it).
type PlayerView interface {
	Position() (x, y fixedpoint.Subpixel)
	Direction() fixedpoint.Direction
}

// animate steps AnimCounter/AnimNum through [first, last] every `every`
// ticks, matching the common `anim_counter += 1; if > N { anim_num += 1 }`
// idiom repeated across every ai/*.rs file.
func animate(n *NPC, every uint16, first, last uint16) {
	n.AnimCounter++
	if n.AnimCounter > every {
		n.AnimCounter = 0
		n.AnimNum++
		if n.AnimNum > last {
			n.AnimNum = first
		}
	}
}
