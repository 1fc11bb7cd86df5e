package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hearthlab/cavern-core/internal/state"
)

// keyByName maps a settings.KeyMap binding name to an ebiten.Key, defaulting
// to an always-unpressed sentinel for names this build doesn't recognize
// rather than panicking on a bad config file.
var keyByName = map[string]ebiten.Key{
	"ArrowLeft": ebiten.KeyArrowLeft, "ArrowRight": ebiten.KeyArrowRight,
	"ArrowUp": ebiten.KeyArrowUp, "ArrowDown": ebiten.KeyArrowDown,
	"A": ebiten.KeyA, "S": ebiten.KeyS, "Z": ebiten.KeyZ, "X": ebiten.KeyX,
	"Q": ebiten.KeyQ, "W": ebiten.KeyW,
	"LeftControl": ebiten.KeyControlLeft, "LeftShift": ebiten.KeyShiftLeft,
	"Escape": ebiten.KeyEscape,
}

// Keyboard is an ebiten-backed Controller, the adapter the desktop/dev
// build uses (grounded on the teacher's ebiten input usage, e.g.
// game.go's per-tick ebiten.IsKeyPressed polling, generalized to the
// engine's configurable key map).
type Keyboard struct {
	keys state.KeyMap

	held     map[string]bool
	prevHeld map[string]bool
	trigger  map[string]bool
}

// NewKeyboard builds a keyboard adapter bound to the given key map.
func NewKeyboard(keys state.KeyMap) *Keyboard {
	return &Keyboard{keys: keys, held: map[string]bool{}, prevHeld: map[string]bool{}, trigger: map[string]bool{}}
}

func (k *Keyboard) isHeld(name string) bool {
	key, ok := keyByName[name]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(key)
}

// Update polls the current frame's held-key state.
func (k *Keyboard) Update() error {
	for _, name := range []string{
		k.keys.Left, k.keys.Right, k.keys.Up, k.keys.Down,
		k.keys.PrevWeapon, k.keys.NextWeapon, k.keys.Jump, k.keys.Shoot,
		k.keys.Skip, k.keys.Inventory, k.keys.Map, k.keys.Strafe,
		k.keys.MenuOK, k.keys.MenuBack, "Escape",
	} {
		k.held[name] = k.isHeld(name)
	}
	return nil
}

// UpdateTrigger latches this-frame-only presses from the held state,
// called once per tick after Update (matching the source's two-phase
// update/update_trigger split so held and triggered queries stay
// consistent within a single tick).
func (k *Keyboard) UpdateTrigger() {
	for name, held := range k.held {
		k.trigger[name] = held && !k.prevHeld[name]
		k.prevHeld[name] = held
	}
}

func (k *Keyboard) MoveUp() bool    { return k.held[k.keys.Up] }
func (k *Keyboard) MoveDown() bool  { return k.held[k.keys.Down] }
func (k *Keyboard) MoveLeft() bool  { return k.held[k.keys.Left] }
func (k *Keyboard) MoveRight() bool { return k.held[k.keys.Right] }

func (k *Keyboard) PrevWeapon() bool { return k.held[k.keys.PrevWeapon] }
func (k *Keyboard) NextWeapon() bool { return k.held[k.keys.NextWeapon] }
func (k *Keyboard) Shoot() bool      { return k.held[k.keys.Shoot] }
func (k *Keyboard) Jump() bool       { return k.held[k.keys.Jump] }
func (k *Keyboard) Map() bool        { return k.held[k.keys.Map] }
func (k *Keyboard) Inventory() bool  { return k.held[k.keys.Inventory] }
func (k *Keyboard) Skip() bool       { return k.held[k.keys.Skip] }
func (k *Keyboard) Strafe() bool     { return k.held[k.keys.Strafe] }

func (k *Keyboard) TriggerUp() bool        { return k.trigger[k.keys.Up] }
func (k *Keyboard) TriggerDown() bool      { return k.trigger[k.keys.Down] }
func (k *Keyboard) TriggerLeft() bool      { return k.trigger[k.keys.Left] }
func (k *Keyboard) TriggerRight() bool     { return k.trigger[k.keys.Right] }
func (k *Keyboard) TriggerPrevWeapon() bool { return k.trigger[k.keys.PrevWeapon] }
func (k *Keyboard) TriggerNextWeapon() bool { return k.trigger[k.keys.NextWeapon] }
func (k *Keyboard) TriggerShoot() bool     { return k.trigger[k.keys.Shoot] }
func (k *Keyboard) TriggerJump() bool      { return k.trigger[k.keys.Jump] }
func (k *Keyboard) TriggerMap() bool       { return k.trigger[k.keys.Map] }
func (k *Keyboard) TriggerInventory() bool { return k.trigger[k.keys.Inventory] }
func (k *Keyboard) TriggerSkip() bool      { return k.trigger[k.keys.Skip] }
func (k *Keyboard) TriggerStrafe() bool    { return k.trigger[k.keys.Strafe] }
func (k *Keyboard) TriggerMenuOK() bool    { return k.trigger[k.keys.MenuOK] }
func (k *Keyboard) TriggerMenuBack() bool  { return k.trigger[k.keys.MenuBack] }
func (k *Keyboard) TriggerMenuPause() bool { return k.trigger["Escape"] }

func (k *Keyboard) LookUp() bool    { return false }
func (k *Keyboard) LookDown() bool  { return false }
func (k *Keyboard) LookLeft() bool  { return false }
func (k *Keyboard) LookRight() bool { return false }

func (k *Keyboard) MoveAnalogX() float64 {
	switch {
	case k.held[k.keys.Left]:
		return -1
	case k.held[k.keys.Right]:
		return 1
	default:
		return 0
	}
}

func (k *Keyboard) MoveAnalogY() float64 {
	switch {
	case k.held[k.keys.Up]:
		return -1
	case k.held[k.keys.Down]:
		return 1
	default:
		return 0
	}
}

// SetRumble is a no-op: a keyboard has no haptics.
func (k *Keyboard) SetRumble(lowFreq, hiFreq uint16, ticks uint32) {}

var _ Controller = (*Keyboard)(nil)
