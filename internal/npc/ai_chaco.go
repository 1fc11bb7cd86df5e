package npc

import (
	"github.com/hearthlab/cavern-core/internal/caret"
	"github.com/hearthlab/cavern-core/internal/fixedpoint"
)

// chacoDispatch returns npc/ai/chaco.rs's single type: an idle-fidget NPC
// that turns to face whichever player walks within a proximity box, then
// occasionally walks a few steps (tick_n093_chaco). It is kept as the
// package's one representative because it combines three recurring
// shapes at once: RNG-gated idle fidgeting, closest-player facing, and a
// scripted walk cycle driven by animate.
func chacoDispatch() Dispatch {
	return Dispatch{
		93: tickChaco,
	}
}

func tickChaco(n *NPC, ctx *TickContext) error {
	switch n.ActionNum {
	case 0, 1:
		if n.ActionNum == 0 {
			n.ActionNum = 1
			n.ActionCounter = 0
			n.AnimCounter = 0
		}
		if n.RNG.Range(0, 119) == 10 {
			n.ActionNum = 2
			n.ActionCounter = 0
			n.AnimNum = 1
		}
		if ctx != nil && ctx.Player != nil {
			px, py := ctx.Player.Position()
			dx := n.X - px
			if dx < 0 {
				dx = -dx
			}
			if dx < 0x4000 && n.Y-0x4000 < py && n.Y+0x2000 > py {
				if n.X > px {
					n.Direction = fixedpoint.Left
				} else {
					n.Direction = fixedpoint.Right
				}
			}
		}
	case 2:
		n.ActionCounter++
		if n.ActionCounter > 8 {
			n.ActionNum = 1
			n.AnimNum = 0
		}
	case 3, 4:
		if n.ActionNum == 3 {
			n.ActionNum = 4
			n.AnimNum = 2
			n.AnimCounter = 0
		}
		animate(n, 4, 2, 5)
		dx, _ := n.Direction.Vector()
		n.X += dx * 0x200
	case 10:
		n.AnimNum = 6
		n.ActionCounter++
		if n.ActionCounter > 200 {
			n.ActionCounter = 0
			if ctx != nil && ctx.Carets != nil {
				ctx.Carets.Create(n.X, n.Y, caret.KindZzz, fixedpoint.Left)
			}
		}
	}
	return nil
}
