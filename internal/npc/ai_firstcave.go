package npc

// firstCaveDispatch returns npc/ai/first_cave.rs's eye_door: a proximity
// switch that opens when the player enters its trigger box and closes
// again once they leave, the simplest example in the package of the
// "player-proximity gated animation" shape several door/gate types share.
func firstCaveDispatch() Dispatch {
	return Dispatch{
		59: tickEyeDoor,
	}
}

const eyeDoorTrigger = 0x8000

func playerInRange(n *NPC, ctx *TickContext) bool {
	if ctx == nil || ctx.Player == nil {
		return false
	}
	px, py := ctx.Player.Position()
	return n.X-eyeDoorTrigger < px && n.X+eyeDoorTrigger > px &&
		n.Y-eyeDoorTrigger < py && n.Y+eyeDoorTrigger > py
}

// tickEyeDoor (type 59) opens (anim 0 -> 2) when the player steps within
// its trigger box and closes again (anim 2 -> 0) once they leave
// (tick_n059_eye_door).
func tickEyeDoor(n *NPC, ctx *TickContext) error {
	switch n.ActionNum {
	case 0, 1:
		n.ActionNum = 1
		if playerInRange(n, ctx) {
			n.ActionNum = 2
			n.AnimCounter = 0
		}
	case 2:
		n.AnimCounter++
		if n.AnimCounter > 2 {
			n.AnimCounter = 0
			n.AnimNum++
			if n.AnimNum == 2 {
				n.ActionNum = 3
			}
		}
	case 3:
		if !playerInRange(n, ctx) {
			n.ActionNum = 4
			n.AnimCounter = 0
		}
	case 4:
		n.AnimCounter++
		if n.AnimCounter > 2 {
			n.AnimCounter = 0
			n.AnimNum--
			if n.AnimNum == 0 {
				n.ActionNum = 1
			}
		}
	}
	return nil
}
