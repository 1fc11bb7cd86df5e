package npc

// torokoDispatch returns npc/ai/toroko.rs's flower_cub: an idle cub that
// winds up and hops toward whichever player is closer. The source gates
// landing on a hit_bottom_wall collision flag this port doesn't carry
// between the AI and physics steps (engine.Engine runs NPC AI, then
// Integrate, as separate passes per tick); here landing is instead timed
// off the jump's own rise/fall duration, a deliberate simplification
// noted in the design note rather than a faithful port of that one
// sub-case.
func torokoDispatch() Dispatch {
	return Dispatch{
		142: tickFlowerCub,
	}
}

func tickFlowerCub(n *NPC, ctx *TickContext) error {
	switch n.ActionNum {
	case 10, 11:
		if n.ActionNum == 10 {
			n.ActionNum = 11
			n.AnimNum = 0
			n.ActionCounter = 0
		}
		n.ActionCounter++
		if n.ActionCounter > 30 {
			n.ActionNum = 12
			n.AnimNum = 1
			n.AnimCounter = 0
		}
	case 12:
		n.AnimCounter++
		if n.AnimCounter > 8 {
			n.AnimCounter = 0
			n.AnimNum++
		}
		if n.AnimNum == 3 {
			n.ActionNum = 20
			n.ActionCounter = 0
			n.VelY = -0x200
			if ctx != nil && ctx.Player != nil {
				px, _ := ctx.Player.Position()
				if px >= n.X {
					n.VelX = 0x200
				} else {
					n.VelX = -0x200
				}
			}
		}
	case 20:
		if n.VelY < -127 {
			n.AnimNum = 3
		} else {
			n.AnimNum = 4
		}
		n.ActionCounter++
		if n.ActionCounter > 40 {
			n.AnimNum = 2
			n.ActionNum = 21
			n.ActionCounter = 0
			n.VelX = 0
		}
	case 21:
		n.ActionCounter++
		if n.ActionCounter > 10 {
			n.ActionNum = 10
			n.AnimNum = 0
		}
	}

	n.VelY += 64
	if n.VelY > 0x5ff {
		n.VelY = 0x5ff
	}
	if n.VelY < -0x5ff {
		n.VelY = -0x5ff
	}
	n.X += n.VelX
	n.Y += n.VelY
	return nil
}
