// Package constants holds the EngineConstants record: static game tuning
// (player physics, weapon/bullet tables, rect atlases, music/stage tables,
// texture size hints, localized strings, gamepad rect maps), patched for
// CS+/Switch/Demo variants and per-mod overlays (§2 Constants & Tables,
// §9 "Global constants" design note). It is built once at boot and taken
// as a read-only reference downstream, per the design note's guidance.
package constants

import "github.com/hearthlab/cavern-core/internal/fixedpoint"

// Variant names the game edition whose defaults a build should start from.
type Variant int

const (
	VariantFreeware Variant = iota
	VariantCSPlus
	VariantSwitch
	VariantDemo
)

// PhysicsConsts is one movement tuning profile (ground or air, normal or
// underwater — each combination gets its own instance).
type PhysicsConsts struct {
	MaxDash      int32
	MaxMove      int32
	GravityGround int32
	GravityAir    int32
	DashGround    int32
	DashAir       int32
	Resist        int32
	Jump          int32
}

// BoosterConsts tunes the v0.8/v2.0 booster jetpack thrust tables (Glossary: Booster).
type BoosterConsts struct {
	Fuel       uint32
	Up         int32
	UpNoKey    int32
	Down       int32
	Left       int32
	Right      int32
}

// PlayerConsts bundles the player's tuning tables.
type PlayerConsts struct {
	Life, MaxLife uint16
	AirPhysics    PhysicsConsts
	WaterPhysics  PhysicsConsts
	Booster08     BoosterConsts
	Booster20     BoosterConsts
}

// GameConsts carries boot-time defaults: intro/new-game stage and spawn.
type GameConsts struct {
	IntroStage, IntroEvent     uint16
	IntroPlayerPos             [2]int16
	NewGameStage, NewGameEvent uint16
	NewGamePlayerPos           [2]int16
	TileOffsetX                int32
}

// TextScriptConsts controls TSC decoding (§4.3).
type TextScriptConsts struct {
	Encrypted         bool
	EncodingUTF8      bool // false = Shift-JIS
	TextSpeedNormal   int32
	TextSpeedFast     int32
	AnimatedFacePics  bool
}

// AtlasRect is a texture atlas region keyed by (npc_type, direction offset)
// pairs elsewhere; stored here as a plain rect table entry.
type AtlasRect = fixedpoint.Rect[int32]

// GamepadRects maps on-screen touch-control button names to their atlas
// rectangles (mobile/Switch input hints; §2 "gamepad rect maps").
type GamepadRects map[string]AtlasRect

// StageTableEntry is one row of the stage table (§6 stage.tbl/.sect/mrmap.bin/.dat).
type StageTableEntry struct {
	ID          uint16
	Tileset     string
	Filename    string
	BossNo      uint8
	DisplayName map[string]string // locale -> name
}

// MusicTableEntry names one playable track by logical id.
type MusicTableEntry struct {
	ID       uint16
	Filename string
}

// TextureSizeHint supplements texture_sizes.json: a texture's native pixel
// size, used to compute atlas scale before the asset is actually decoded.
type TextureSizeHint struct {
	Width, Height int
}

// EngineConstants is the immutable-after-setup configuration record every
// subsystem reads from. Construct with Build, then treat as read-only.
type EngineConstants struct {
	Variant      Variant
	Game         GameConsts
	Player       PlayerConsts
	TextScript   TextScriptConsts
	Gamepad      GamepadRects
	StageTable   []StageTableEntry
	MusicTable   []MusicTableEntry
	TextureSizes map[string]TextureSizeHint
	Locale       map[string]string // flat key -> localized string, see internal/i18n for the loader
	TileSize     int32
}

// Build assembles the base EngineConstants for a variant. It mirrors the
// source's pattern of a big nested default record constructed once, then
// optionally patched (see Patch).
func Build(v Variant) *EngineConstants {
	c := &EngineConstants{
		Variant:  v,
		TileSize: 16,
		Game: GameConsts{
			IntroStage: 0, IntroEvent: 200,
			NewGameStage: 13, NewGameEvent: 200,
			TileOffsetX: 0,
		},
		Player: PlayerConsts{
			Life: 3, MaxLife: 3,
			AirPhysics: PhysicsConsts{
				MaxDash: 0x32, MaxMove: 0x5ff, GravityGround: 0x50, GravityAir: 0x20,
				DashGround: 0x2aa, DashAir: 0x5ff, Resist: 0x33, Jump: 0x500,
			},
			WaterPhysics: PhysicsConsts{
				MaxDash: 0x32, MaxMove: 0x2ff, GravityGround: 0x28, GravityAir: 0x10,
				DashGround: 0x1aa, DashAir: 0x2ff, Resist: 0x19, Jump: 0x280,
			},
			Booster08: BoosterConsts{Fuel: 50, Up: 0x20, UpNoKey: 0x10, Down: 0x20, Left: 0x20, Right: 0x20},
			Booster20: BoosterConsts{Fuel: 100, Up: 0x5ff, UpNoKey: 0x20, Down: 0x5ff, Left: 0x5ff, Right: 0x5ff},
		},
		TextScript: TextScriptConsts{
			Encrypted: true, EncodingUTF8: false,
			TextSpeedNormal: 4, TextSpeedFast: 1,
			AnimatedFacePics: false,
		},
		Gamepad:      GamepadRects{},
		StageTable:   nil,
		MusicTable:   nil,
		TextureSizes: map[string]TextureSizeHint{},
		Locale:       map[string]string{},
	}

	switch v {
	case VariantCSPlus:
		c.TextScript.EncodingUTF8 = true
		c.Player.Life, c.Player.MaxLife = 3, 3
	case VariantSwitch:
		c.TextScript.EncodingUTF8 = true
		c.TextScript.AnimatedFacePics = true
	case VariantDemo:
		c.TextScript.Encrypted = false
	}

	return c
}

// Patch applies a mod/variant overlay on top of the base constants. Only
// non-zero/non-empty overlay fields take effect, matching the source's
// "patch a big record" idiom (§9 design note) — callers typically decode
// overlay from a YAML file (see internal/constants/variant.go) and pass it
// here rather than constructing one by hand.
type Patch struct {
	TileSize     int32
	TextureSizes map[string]TextureSizeHint
	Locale       map[string]string
	Gamepad      GamepadRects
	StageTable   []StageTableEntry
	MusicTable   []MusicTableEntry
}

// Apply merges p onto c in place.
func (c *EngineConstants) Apply(p Patch) {
	if p.TileSize != 0 {
		c.TileSize = p.TileSize
	}
	for k, v := range p.TextureSizes {
		c.TextureSizes[k] = v
	}
	for k, v := range p.Locale {
		c.Locale[k] = v
	}
	for k, v := range p.Gamepad {
		c.Gamepad[k] = v
	}
	if len(p.StageTable) > 0 {
		c.StageTable = p.StageTable
	}
	if len(p.MusicTable) > 0 {
		c.MusicTable = p.MusicTable
	}
}
