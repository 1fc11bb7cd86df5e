// Package fx implements the cutscene-adjacent visual effects the original
// game keeps as standalone components rather than folding into the NPC
// or caret systems: the "Core" boss intro's falling island, floating
// damage/EXP number popups, and the end-credits illustration/cast-roll
// state machine.
//
// Grounded on components/falling_island.rs, components/number_popup.rs
// and components/credits.rs — these have no spec.md coverage of their
// own (the distilled spec only mentions carets and bullets), so this
// package is one of SPEC_FULL.md's supplemented features, kept to tick
// state only: the original files interleave this state with direct
// batch-drawing calls the engine's renderer boundary keeps out of scope.
package fx

import "github.com/hearthlab/cavern-core/internal/fixedpoint"

// fallIslandSpeed is the descent rate in subpixels/tick, chosen so a
// typical multi-second cutscene fall matches the source's real-time feel
// at the engine's default 50Hz tick rate.
const fallIslandSpeed fixedpoint.Subpixel = 0x80

// FallingIsland drives the position of the Core boss intro's falling
// island platform. The TSC `<FL+`-adjacent event that triggers this
// cutscene owns starting it; the effect itself only advances position.
type FallingIsland struct {
	Active bool
	X, Y   fixedpoint.Subpixel
}

// New returns an inactive falling island effect.
func New() *FallingIsland { return &FallingIsland{} }

// Start begins the fall from (x, y).
func (f *FallingIsland) Start(x, y fixedpoint.Subpixel) {
	f.Active = true
	f.X, f.Y = x, y
}

// Stop ends the effect, matching the source's implicit end when the
// cutscene's TSC event state moves past FallingIsland.
func (f *FallingIsland) Stop() { f.Active = false }

// Tick advances the island's descent by one frame while active.
func (f *FallingIsland) Tick() {
	if !f.Active {
		return
	}
	f.Y += fallIslandSpeed
}
