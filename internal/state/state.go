// Package state implements SharedGameState: the engine's "world header"
// bundling control flags, the three flag bitvector tiers, the dual RNG
// streams, timing mode, and fade/camera-shake bookkeeping, grounded on
// shared_game_state.rs.
package state

import (
	"github.com/hearthlab/cavern-core/internal/bitflags"
	"github.com/hearthlab/cavern-core/internal/constants"
	"github.com/hearthlab/cavern-core/internal/frame"
	"github.com/hearthlab/cavern-core/internal/randgen"
)

// TimingMode selects the simulation's fixed tick rate (TimingMode in the
// source); FrameSynchronized ties simulation steps to vsync instead of a
// fixed delta and is represented here as tps==0.
type TimingMode int

const (
	Timing50Hz TimingMode = iota
	Timing60Hz
	TimingFrameSynchronized
)

// TPS returns the ticks-per-second for a fixed timing mode, 0 for
// FrameSynchronized (get_tps).
func (t TimingMode) TPS() int {
	switch t {
	case Timing50Hz:
		return 50
	case Timing60Hz:
		return 60
	default:
		return 0
	}
}

// Difficulty mirrors GameDifficulty's non-contiguous discriminants
// (Normal=0, Easy=2, Hard=4) exactly, since save files persist the raw
// byte.
type Difficulty uint8

const (
	DifficultyNormal Difficulty = 0
	DifficultyEasy   Difficulty = 2
	DifficultyHard   Difficulty = 4
)

// DifficultyFromByte clamps an out-of-range save byte to Normal rather
// than panicking, matching from_primitive's unwrap_or fallback.
func DifficultyFromByte(b uint8) Difficulty {
	switch Difficulty(b) {
	case DifficultyEasy, DifficultyHard:
		return Difficulty(b)
	default:
		return DifficultyNormal
	}
}

// FadeState is the screen transition state machine used between stages
// and on game-over/credits.
type FadeState int

const (
	FadeVisible FadeState = iota
	FadeOut
	FadeHidden
	FadeIn
)

// ControlFlags are the simulation-wide gates the TSC VM and outer loop
// read each tick (§3 SharedGameState.control_flags).
type ControlFlags struct {
	TickWorld            bool
	ControlEnabled       bool
	InteractionsDisabled bool
	CreditsRunning       bool
	Windy                bool
}

// SharedGameState bundles everything every subsystem needs read access to
// each tick.
type SharedGameState struct {
	Constants *constants.EngineConstants
	Flags     *bitflags.Flags
	Control   ControlFlags

	GameRNG   randgen.RNG // drives simulation-affecting randomness; must stay deterministic for replay
	EffectRNG randgen.RNG // drives cosmetic-only randomness (shake, smoke drift); never consumed by anything replay-sensitive

	Camera *frame.Frame

	Timing     TimingMode
	Difficulty Difficulty
	Fade       FadeState

	TileSize int32

	TickCount uint64
}

// New constructs a SharedGameState with fresh RNG streams from the given
// seeds (kept separate per §8's dual-RNG determinism invariant) and a
// default camera.
func New(consts *constants.EngineConstants, gameSeed, effectSeed int32) *SharedGameState {
	return &SharedGameState{
		Constants: consts,
		Flags:     bitflags.NewFlags(),
		Control:   ControlFlags{TickWorld: true, ControlEnabled: true},
		GameRNG:   randgen.NewXorShift(gameSeed),
		EffectRNG: randgen.NewXorShift(effectSeed),
		Camera:    frame.New(16),
		Timing:    Timing50Hz,
		TileSize:  consts.TileSize,
	}
}

// EnterStage resets the per-stage flag tier, matching the source's
// behavior on every stage transition (§4.4).
func (s *SharedGameState) EnterStage() {
	s.Flags.ResetMapFlags()
}

// Tick advances the tick counter; callers call this once per simulation
// step regardless of whether TickWorld gates the rest of the update (the
// counter itself is used for things like animation timers that run even
// while the world is paused for a cutscene).
func (s *SharedGameState) Tick() {
	s.TickCount++
}
