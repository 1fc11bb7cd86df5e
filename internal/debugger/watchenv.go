package debugger

import (
	"fmt"

	"github.com/hearthlab/cavern-core/internal/engine"
	"github.com/hearthlab/cavern-core/internal/exprvm"
	"github.com/hearthlab/cavern-core/internal/npc"
)

// EngineEnv adapts a running engine.Engine to exprvm.Env so the debugger's
// watch expressions can reference live flags and counts (§9 "a debugger
// overlay ... wired through the same watch-expression grammar as in-game
// flag displays").
//
// Supported grammar:
//
//	tick_count, npc_count, bullet_count, caret_count   (bare idents)
//	flag[N]                                            (game flag N, 0/1)
//	skip[N], map[N]                                    (skip/map flag N)
//	npc_count(T)                                       (live NPCs of type T)
//	player_x(0), player_y(0), player_life(0)            (one arg: player index)
type EngineEnv struct {
	Engine *engine.Engine
}

func (e EngineEnv) Ident(name string) (float64, error) {
	switch name {
	case "tick_count":
		return float64(e.Engine.State.TickCount), nil
	case "npc_count":
		return float64(e.Engine.NPCs.Count()), nil
	case "bullet_count":
		return float64(e.Engine.Bullets.Count()), nil
	case "caret_count":
		return float64(e.Engine.Carets.Count()), nil
	default:
		return 0, &exprvm.EvalError{What: "unknown identifier " + name}
	}
}

func (e EngineEnv) Index(name string, idx float64) (float64, error) {
	i := int(idx)
	switch name {
	case "flag":
		return boolF(e.Engine.State.Flags.Game.Get(i)), nil
	case "skip":
		return boolF(e.Engine.State.Flags.Skip.Get(i)), nil
	case "map":
		return boolF(e.Engine.State.Flags.Map.Get(i)), nil
	default:
		return 0, &exprvm.EvalError{What: "unknown indexable " + name}
	}
}

func (e EngineEnv) Call(name string, args []float64) (float64, error) {
	if len(args) != 1 {
		return 0, &exprvm.EvalError{What: fmt.Sprintf("%s takes exactly one argument", name)}
	}
	if name == "npc_count" {
		npcType, n := uint16(args[0]), 0
		e.Engine.NPCs.Each(func(c *npc.NPC) {
			if c.NPCType == npcType {
				n++
			}
		})
		return float64(n), nil
	}
	idx := int(args[0])
	if idx < 0 || idx >= len(e.Engine.Players) || e.Engine.Players[idx] == nil {
		return 0, &exprvm.EvalError{What: "no such player " + name}
	}
	p := e.Engine.Players[idx]
	switch name {
	case "player_x":
		return float64(p.X), nil
	case "player_y":
		return float64(p.Y), nil
	case "player_life":
		return float64(p.Life), nil
	default:
		return 0, &exprvm.EvalError{What: "unknown function " + name}
	}
}

func boolF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

var _ exprvm.Env = EngineEnv{}
