package npc

import "github.com/hearthlab/cavern-core/internal/fixedpoint"

// doctorDispatch returns npc/ai/doctor.rs's facing-away idle variant: a
// settle-then-loop fidget that, on command (action 40), spawns a pair of
// red-crystal (type 257) satellites — the package's representative
// example of an NPC acting as a spawn point for a second, simpler
// satellite type (tick_n256_doctor_facing_away).
func doctorDispatch() Dispatch {
	return Dispatch{
		256: tickDoctorFacingAway,
	}
}

func tickDoctorFacingAway(n *NPC, ctx *TickContext) error {
	switch n.ActionNum {
	case 0, 1:
		if n.ActionNum == 0 {
			n.ActionNum = 1
			n.Y -= fixedpoint.FromPixels(8)
		}
		n.AnimNum = 0
	case 10, 11:
		if n.ActionNum == 10 {
			n.ActionNum = 11
			n.AnimNum = 0
			n.AnimCounter = 0
			n.ActionCounter2 = 0
		}
		n.AnimCounter++
		if n.AnimCounter > 5 {
			n.AnimCounter = 0
			n.AnimNum++
			if n.AnimNum > 1 {
				n.AnimNum = 0
				n.ActionCounter2++
				if n.ActionCounter2 > 5 {
					n.ActionNum = 1
				}
			}
		}
	case 20, 21:
		n.ActionNum = 21
		n.AnimNum = 2
	case 40, 41:
		if n.ActionNum == 40 {
			n.ActionNum = 41
			if ctx != nil && ctx.List != nil {
				left := NPC{NPCType: 257, Cond: CondAlive, RNG: n.RNG, X: n.X - 0x1c00, Y: n.Y - 0x2000, Direction: fixedpoint.Left}
				right := left
				right.Direction = fixedpoint.Right
				if leftRef, err := ctx.List.Spawn(left); err == nil {
					if leftNPC := ctx.List.Get(leftRef); leftNPC != nil {
						ctx.List.SetParent(leftNPC, n)
					}
				}
				if rightRef, err := ctx.List.Spawn(right); err == nil {
					if rightNPC := ctx.List.Get(rightRef); rightNPC != nil {
						ctx.List.SetParent(rightNPC, n)
					}
				}
			}
		}
	}
	return nil
}
