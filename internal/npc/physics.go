package npc

import (
	"github.com/hearthlab/cavern-core/internal/fixedpoint"
	"github.com/hearthlab/cavern-core/internal/stage"
)

// Integrate moves n by its current velocity against m's tile collision;
// the engine calls it for every NPC after all AI functions have run for
// the tick. NPCs with FlagIgnoreSolidity (or CondIgnoreSolidity) skip the
// map entirely (ghosts, cutscene props) the way the source checks
// npc_flags.ignore_solidity first.
func Integrate(n *NPC, m *stage.Map) CollisionResult {
	if n.Flags&FlagIgnoreSolidity != 0 || n.Cond.Has(CondIgnoreSolidity) || !n.Cond.Has(CondCollidesWithTerrain) {
		n.X += n.VelX
		n.Y += n.VelY
		return CollisionResult{}
	}

	nx, ny, flags := stage.ResolveMove(m, n.X, n.Y, n.HitboxHalfW, n.HitboxHalfH, n.VelX, n.VelY)
	n.X, n.Y = nx, ny

	if flags.HitBottomWall || flags.HitTopWall {
		n.VelY = 0
	}
	if flags.HitLeftWall || flags.HitRightWall {
		n.VelX = 0
	}

	return CollisionResult{Flags: flags}
}

// CollisionResult is the per-tick outcome handed back to the caller (the
// engine loop) so it can react to terrain hits outside the AI function
// itself — e.g. playing a landing sound.
type CollisionResult struct {
	Flags stage.CollisionFlags
}

// Bounds returns n's current hit box as a world-space rect, for broad-phase
// queries against bullets or the player.
func (n *NPC) Bounds() fixedpoint.Rect[int32] {
	return fixedpoint.CenteredAt(n.X, n.Y, n.HitboxHalfW, n.HitboxHalfH)
}
