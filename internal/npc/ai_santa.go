package npc

import "github.com/hearthlab/cavern-core/internal/fixedpoint"

// santaDispatch returns npc/ai/santa.rs's caged variant: an idle fidget
// loop gated entirely by n.RNG, the shape every "background NPC that
// occasionally twitches" type in the package shares (tick_n307_santa_caged).
func santaDispatch() Dispatch {
	return Dispatch{
		307: tickSantaCaged,
	}
}

func tickSantaCaged(n *NPC, _ *TickContext) error {
	switch n.ActionNum {
	case 0, 1:
		if n.ActionNum == 0 {
			n.ActionNum = 1
			n.ActionCounter = 0
			n.AnimNum = 0
			n.X += fixedpoint.FromPixels(1)
			n.Y -= fixedpoint.FromPixels(2)
		}
		if n.RNG.Range(0, 159) == 10 {
			n.ActionNum = 2
			n.ActionCounter = 0
			n.AnimNum = 1
		}
	case 2:
		n.ActionCounter++
		if n.ActionCounter > 12 {
			n.ActionNum = 1
			n.AnimNum = 0
		}
	}
	return nil
}
