package npc

import (
	"github.com/hearthlab/cavern-core/internal/caret"
	"github.com/hearthlab/cavern-core/internal/fixedpoint"
)

// introDispatch returns the two cutscene-only dressing types from
// npc/ai/intro.rs used by the title sequence: a bobbing character
// portrait (balrog_misery) and a particle-emitting idle crown
// (demon_crown). Neither is reachable from gameplay NPCs proper; both are
// kept because the title screen is itself an event this engine drives
// through the same NPC/TSC substrate as a stage.
func introDispatch() Dispatch {
	return Dispatch{
		299: tickIntroBalrogMisery,
		300: tickIntroDemonCrown,
	}
}

// tickIntroBalrogMisery (type 299) bobs up and down forever once placed,
// with its starting offset and initial pose chosen by spawn direction
// (tick_n299_intro_balrog_misery).
func tickIntroBalrogMisery(n *NPC, _ *TickContext) error {
	if n.ActionNum == 0 {
		n.ActionNum = 1
		switch n.Direction {
		case fixedpoint.Left:
			n.AnimNum = 1
			n.ActionCounter = 25
			n.Y -= 0x40 * 25
		case fixedpoint.Right:
			n.AnimNum = 0
			n.ActionCounter = 0
		}
	}

	n.ActionCounter++
	if (n.ActionCounter/50)%2 != 0 {
		n.Y += 0x40
	} else {
		n.Y -= 0x40
	}
	return nil
}

// tickIntroDemonCrown (type 300) settles into place once, then emits an
// upward particle caret every eighth tick for as long as it lives
// (tick_n300_intro_demon_crown).
func tickIntroDemonCrown(n *NPC, ctx *TickContext) error {
	if n.ActionNum == 0 {
		n.ActionNum = 1
		n.Y += 0xc00
	}

	n.AnimCounter++
	if n.AnimCounter%8 == 1 && ctx != nil && ctx.Carets != nil {
		dx := ctx.EffectRNG.Range(-8, 8)
		ctx.Carets.Create(n.X+dx*0x200, n.Y+0x1000, caret.KindLittleParticles, fixedpoint.Up)
	}
	return nil
}
