package debugger

import (
	"testing"

	"github.com/hearthlab/cavern-core/internal/constants"
	"github.com/hearthlab/cavern-core/internal/engine"
	"github.com/hearthlab/cavern-core/internal/exprvm"
)

func TestEngineEnvIdentsAndFlags(t *testing.T) {
	eng := engine.New(constants.Build(constants.VariantFreeware), 1, 2)
	env := EngineEnv{Engine: eng}

	if v, err := exprvm.EvalString("tick_count", env); err != nil || v != 0 {
		t.Fatalf("tick_count = (%v, %v), want (0, nil)", v, err)
	}

	eng.State.Flags.Game.Set(7, true)
	if v, err := exprvm.EvalString("flag[7]", env); err != nil || v != 1 {
		t.Fatalf("flag[7] = (%v, %v), want (1, nil)", v, err)
	}
	if v, err := exprvm.EvalString("flag[8]", env); err != nil || v != 0 {
		t.Fatalf("flag[8] = (%v, %v), want (0, nil)", v, err)
	}
}

func TestEngineEnvUnknownIdentErrors(t *testing.T) {
	eng := engine.New(constants.Build(constants.VariantFreeware), 1, 2)
	env := EngineEnv{Engine: eng}
	if _, err := exprvm.EvalString("not_a_thing", env); err == nil {
		t.Fatalf("expected error for unknown identifier")
	}
}

func TestEngineEnvPlayerCallRequiresAttachedPlayer(t *testing.T) {
	eng := engine.New(constants.Build(constants.VariantFreeware), 1, 2)
	env := EngineEnv{Engine: eng}
	if _, err := exprvm.EvalString("player_x(0)", env); err == nil {
		t.Fatalf("expected error with no player attached")
	}
}
