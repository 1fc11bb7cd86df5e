package npc

import (
	"math"

	"github.com/hearthlab/cavern-core/internal/caret"
	"github.com/hearthlab/cavern-core/internal/fixedpoint"
)

// cdegRad converts one "cdeg" unit (1/256 of a full turn, the source's
// compact angle encoding) to radians.
const cdegRad = math.Pi / 128.0

// miseryDispatch returns two representative types from npc/ai/misery.rs:
// a short scripted dash-off used by the boss fight's appear/vanish
// transition (boss_appearing) and a homing projectile that steers its
// heading a degree at a time toward the nearest player each tick
// (fish_missile) — the package's clearest example of trig-driven homing
// AI as distinct from the RNG-driven idle fidgets seen elsewhere.
func miseryDispatch() Dispatch {
	return Dispatch{
		249: tickMiseryBossAppearing,
		301: tickMiseryFishMissile,
	}
}

// tickMiseryBossAppearing (type 249) slides the boss in from offscreen
// for 8 ticks before self-destructing, the shared "fade in" bookend to
// the matching vanishing type (tick_n249_misery_boss_appearing).
func tickMiseryBossAppearing(n *NPC, _ *TickContext) error {
	n.ActionCounter2++
	if n.ActionCounter2 > 8 {
		n.Cond &^= CondAlive
	}
	if n.Direction == fixedpoint.Left {
		n.X -= 0x400
	} else {
		n.X += 0x400
	}
	return nil
}

// tickMiseryFishMissile (type 301) flies along a heading stored in
// ActionCounter2 (in cdeg units), nudging that heading one step per tick
// toward the angle to the nearest player, and trailing an exhaust caret
// every third tick (tick_n301_misery_fish_missile).
func tickMiseryFishMissile(n *NPC, ctx *TickContext) error {
	if n.ActionNum == 0 {
		n.ActionNum = 1
	}

	radians := float64(n.ActionCounter2) * cdegRad
	n.VelX = int32(2 * math.Cos(radians) * 512.0)
	n.VelY = int32(2 * math.Sin(radians) * 512.0)
	n.X += n.VelX
	n.Y += n.VelY

	if ctx != nil && ctx.Player != nil {
		px, py := ctx.Player.Position()
		heading := math.Atan2(-float64(n.Y-py), -float64(n.X-px))
		switch {
		case heading < radians && radians-heading < math.Pi:
			n.ActionCounter2 = (n.ActionCounter2 - 1) & 0xff
		case heading < radians:
			n.ActionCounter2 = (n.ActionCounter2 + 1) & 0xff
		case heading-radians < math.Pi:
			n.ActionCounter2 = (n.ActionCounter2 + 1) & 0xff
		default:
			n.ActionCounter2 = (n.ActionCounter2 - 1) & 0xff
		}
	}

	n.AnimCounter++
	if n.AnimCounter > 2 {
		n.AnimCounter = 0
		if ctx != nil && ctx.Carets != nil {
			ctx.Carets.Create(n.X, n.Y, caret.KindExhaust, fixedpoint.FacingPlayer)
		}
	}

	n.AnimNum = (n.ActionCounter2 + 0x10) / 0x20
	if n.AnimNum > 7 {
		n.AnimNum = 7
	}
	return nil
}
