package state

import "gopkg.in/yaml.v3"

// KeyMap is one player's keyboard bindings, named the way the source's
// PlayerKeyMap lists them (settings.rs).
type KeyMap struct {
	Left, Up, Right, Down             string
	PrevWeapon, NextWeapon             string
	Jump, Shoot, Skip, Inventory, Map string
	Strafe, MenuOK, MenuBack          string
}

// DefaultKeyMap matches the freeware keyboard defaults.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: "ArrowLeft", Up: "ArrowUp", Right: "ArrowRight", Down: "ArrowDown",
		PrevWeapon: "A", NextWeapon: "S", Jump: "Z", Shoot: "X", Skip: "LeftControl",
		Inventory: "Q", Map: "W", Strafe: "LeftShift", MenuOK: "Z", MenuBack: "X",
	}
}

// Settings is the persisted user configuration record (Settings in
// settings.rs), decoded from/encoded to YAML — the format the rest of the
// retrieval pack's config-bearing repos standardize on (gopkg.in/yaml.v3),
// used here in place of the source's TOML-via-serde for the same shape of
// problem.
type Settings struct {
	Version uint32 `yaml:"version"`

	SeasonalTextures    bool `yaml:"seasonal_textures"`
	OriginalTextures    bool `yaml:"original_textures"`
	ShaderEffects       bool `yaml:"shader_effects"`
	LightCone           bool `yaml:"light_cone"`
	SubpixelCoords      bool `yaml:"subpixel_coords"`
	MotionInterpolation bool `yaml:"motion_interpolation"`
	TouchControls       bool `yaml:"touch_controls"`

	Soundtrack string  `yaml:"soundtrack"`
	BGMVolume  float32 `yaml:"bgm_volume"`
	SFXVolume  float32 `yaml:"sfx_volume"`

	TimingMode        TimingMode `yaml:"timing_mode"`
	PauseOnFocusLoss  bool       `yaml:"pause_on_focus_loss"`

	Player1ControllerType string `yaml:"player1_controller_type"`
	Player2ControllerType string `yaml:"player2_controller_type"`
	Player1KeyMap         KeyMap `yaml:"player1_key_map"`
	Player2KeyMap         KeyMap `yaml:"player2_key_map"`

	Player1AxisSensitivity float64 `yaml:"player1_controller_axis_sensitivity"`
	Player2AxisSensitivity float64 `yaml:"player2_controller_axis_sensitivity"`

	Speed               float64 `yaml:"speed"`
	GodMode             bool    `yaml:"god_mode"`
	InfiniteBooster     bool    `yaml:"infinite_booster"`
	DebugOutlines       bool    `yaml:"debug_outlines"`
	FPSCounter          bool    `yaml:"fps_counter"`
	Locale              string  `yaml:"locale"`
	NoClip              bool    `yaml:"noclip"`
	DebugMode           bool    `yaml:"debug_mode"`
	CutsceneSkipMode    string  `yaml:"cutscene_skip_mode"`
	AllowStrafe         bool    `yaml:"allow_strafe"`
}

// DefaultSettings matches the source's Default impl for the fields that
// affect the simulation core (display/window-manager fields are a host
// concern and are not modeled here).
func DefaultSettings() Settings {
	return Settings{
		Version:             3,
		ShaderEffects:       true,
		SubpixelCoords:      true,
		MotionInterpolation: true,
		BGMVolume:           1.0,
		SFXVolume:           1.0,
		TimingMode:          Timing50Hz,
		Player1KeyMap:       DefaultKeyMap(),
		Player2KeyMap:       DefaultKeyMap(),
		Speed:               1.0,
		Locale:              "en",
	}
}

// LoadSettings decodes a YAML settings document, falling back to
// DefaultSettings for any field the document omits (the zero-value yaml
// decode semantics already do this field-by-field, matching the source's
// per-field migration-on-load behavior across settings.rs's version bumps).
func LoadSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Encode serializes s back to YAML for persistence.
func (s Settings) Encode() ([]byte, error) {
	return yaml.Marshal(s)
}

// EffectiveTPS scales the timing mode's base tick rate by Speed, clamped
// to the spec's [0.1, 3.0] range (§4.1 "Speed multiplier").
func (s Settings) EffectiveTPS() float64 {
	speed := s.Speed
	if speed < 0.1 {
		speed = 0.1
	} else if speed > 3.0 {
		speed = 3.0
	}
	return float64(s.TimingMode.TPS()) * speed
}
