package npc

import (
	"github.com/hearthlab/cavern-core/internal/caret"
	"github.com/hearthlab/cavern-core/internal/fixedpoint"
)

// sandZoneDispatch returns the representative subset of npc/ai/sand_zone.rs:
// the two Colon statue types and the Sunstone switch block, chosen because
// together they cover the package's three recurring shapes — a purely
// cosmetic idle animation (colon_a), an RNG-gated fidget with a caret
// side effect (colon_b), and a direction-driven ignore-solidity toggle
// block (sunstone).
func sandZoneDispatch() Dispatch {
	return Dispatch{
		120: tickColonA,
		121: tickColonB,
		124: tickSunstone,
	}
}

// tickColonA (type 120) just mirrors its sprite by facing direction
// (tick_n120_colon_a).
func tickColonA(n *NPC, _ *TickContext) error {
	if n.Direction == fixedpoint.Left {
		n.AnimNum = 0
	} else {
		n.AnimNum = 1
	}
	return nil
}

// tickColonB (type 121) is asleep (facing right) unless spawned facing
// left, in which case it occasionally startles for a few ticks before
// settling back down; the sleeping pose periodically emits a Zzz caret
// (tick_n121_colon_b).
func tickColonB(n *NPC, ctx *TickContext) error {
	if n.Direction != fixedpoint.Left {
		n.AnimNum = 2
		n.ActionCounter++
		if n.ActionCounter > 100 {
			n.ActionCounter = 0
			if ctx != nil && ctx.Carets != nil {
				ctx.Carets.Create(n.X, n.Y, caret.KindZzz, fixedpoint.Left)
			}
		}
		return nil
	}

	switch n.ActionNum {
	case 0, 1:
		if n.ActionNum == 0 {
			n.ActionNum = 1
			n.AnimNum = 0
			n.AnimCounter = 0
		}
		if n.RNG.Range(0, 119) == 10 {
			n.ActionNum = 2
			n.ActionCounter = 0
			n.AnimNum = 1
		}
	case 2:
		n.ActionCounter++
		if n.ActionCounter > 8 {
			n.ActionNum = 1
			n.AnimNum = 0
		}
	}
	return nil
}

// tickSunstone (type 124) is a switch-activated moving block: idle until
// action 10, then it inches 0x20 subpixels per tick along its spawn
// direction while phasing through terrain; it does not shake the camera
// or play a sound (tick_n124_sunstone). The "ignore_solidity while moving,
// solid while idle" toggle is the pattern other switch-blocks in the
// package reuse.
func tickSunstone(n *NPC, _ *TickContext) error {
	switch n.ActionNum {
	case 0, 1:
		if n.ActionNum == 0 {
			n.ActionNum = 1
			n.X += fixedpoint.FromPixels(8)
			n.Y += fixedpoint.FromPixels(8)
		}
		n.Flags &^= FlagIgnoreSolidity
		n.AnimNum = 0
	case 10, 11:
		if n.ActionNum == 10 {
			n.ActionNum = 11
			n.ActionCounter = 0
			n.AnimNum = 1
			n.Flags |= FlagIgnoreSolidity
		}
		dx, dy := n.Direction.Vector()
		n.X += dx * 0x20
		n.Y += dy * 0x20
		n.ActionCounter++
	}
	return nil
}
