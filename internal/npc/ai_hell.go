package npc

import "github.com/hearthlab/cavern-core/internal/caret"

const maxFallSpeed = 0x5ff

func clampFallSpeed(n *NPC) {
	if n.VelY > maxFallSpeed {
		n.VelY = maxFallSpeed
	}
}

// hellDispatch returns a representative pair from npc/ai/hell.rs: a plain
// falling-then-idle statue (numahachi) and a cosmetic ghost that emits
// particle carets on a duty cycle (puppy_ghost). Both avoid the
// hit_bottom_wall-gated behaviours several other hell.rs types use, since
// this port's Tick/Integrate split does not thread last-tick collision
// flags back onto the NPC the way the source's combined tick+move step
// does (recorded in the design note).
func hellDispatch() Dispatch {
	return Dispatch{
		337: tickNumahachi,
		357: tickPuppyGhost,
	}
}

// tickNumahachi (type 337) shifts 8px up from its spawn point, then
// loops a two-frame idle animation while falling under gravity
// (tick_n337_numahachi).
func tickNumahachi(n *NPC, _ *TickContext) error {
	if n.ActionNum == 0 {
		n.ActionNum = 1
		n.Y -= 0x1000
	}
	if n.ActionNum == 1 {
		n.ActionNum = 2
		n.AnimNum = 0
		n.VelX = 0
	}
	if n.ActionNum == 2 {
		animate(n, 50, 0, 1)
	}

	n.VelY += 0x40
	clampFallSpeed(n)
	n.X += n.VelX
	n.Y += n.VelY
	return nil
}

// tickPuppyGhost (type 357) drifts in place, emitting an upward particle
// caret roughly every 8 ticks before self-destructing 50 ticks after
// activation; it plays no sound (tick_n357_puppy_ghost).
func tickPuppyGhost(n *NPC, ctx *TickContext) error {
	switch n.ActionNum {
	case 0:
		n.ActionCounter++
	case 10, 11:
		if n.ActionNum == 10 {
			n.ActionNum = 11
			n.ActionCounter = 0
		}
		n.ActionCounter++
		if n.ActionCounter > 50 {
			n.Cond &^= CondAlive
		}
	}

	if n.ActionCounter%8 == 1 && ctx != nil && ctx.Carets != nil {
		dx := n.RNG.Range(-8, 8)
		ctx.Carets.Create(n.X+dx*0x200, n.Y+0x1000, caret.KindLittleParticles, n.Direction.Opposite())
	}
	return nil
}
