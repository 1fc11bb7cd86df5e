package input

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// deadzone matches the source's default analog-stick deadzone so small
// resting drift on worn sticks doesn't register as movement.
const deadzone = 0.2

// Gamepad is an ebiten-backed Controller reading one connected gamepad by
// its standard layout button/axis indices (the only binding scheme ebiten
// exposes cross-platform; there is no gamepad_android.rs equivalent usable
// outside an Android JNI host, so this adapter is grounded on ebiten's own
// StandardGamepadButton/Axis API instead, generalizing the keyboard
// adapter's held/trigger latch structure to analog input).
type Gamepad struct {
	id ebiten.GamepadID

	held     map[ebiten.StandardGamepadButton]bool
	prevHeld map[ebiten.StandardGamepadButton]bool
	trigger  map[ebiten.StandardGamepadButton]bool

	axisX, axisY float64
}

// NewGamepad binds an adapter to the given connected gamepad id.
func NewGamepad(id ebiten.GamepadID) *Gamepad {
	return &Gamepad{
		id:       id,
		held:     map[ebiten.StandardGamepadButton]bool{},
		prevHeld: map[ebiten.StandardGamepadButton]bool{},
		trigger:  map[ebiten.StandardGamepadButton]bool{},
	}
}

func applyDeadzone(v float64) float64 {
	if math.Abs(v) < deadzone {
		return 0
	}
	return v
}

func (g *Gamepad) Update() error {
	if !ebiten.IsStandardGamepadLayoutAvailable(g.id) {
		return nil
	}
	for _, btn := range []ebiten.StandardGamepadButton{
		ebiten.StandardGamepadButtonLeftBottom, ebiten.StandardGamepadButtonLeftRight,
		ebiten.StandardGamepadButtonLeftTop, ebiten.StandardGamepadButtonLeftLeft,
		ebiten.StandardGamepadButtonRightBottom, ebiten.StandardGamepadButtonRightRight,
		ebiten.StandardGamepadButtonRightTop, ebiten.StandardGamepadButtonRightLeft,
		ebiten.StandardGamepadButtonFrontTopLeft, ebiten.StandardGamepadButtonFrontTopRight,
		ebiten.StandardGamepadButtonCenterRight, ebiten.StandardGamepadButtonCenterLeft,
	} {
		g.held[btn] = ebiten.IsStandardGamepadButtonPressed(g.id, btn)
	}
	g.axisX = applyDeadzone(ebiten.StandardGamepadAxisValue(g.id, ebiten.StandardGamepadAxisLeftStickHorizontal))
	g.axisY = applyDeadzone(ebiten.StandardGamepadAxisValue(g.id, ebiten.StandardGamepadAxisLeftStickVertical))
	return nil
}

// UpdateTrigger latches this-frame-only presses, mirroring the keyboard
// adapter's held/previous-held edge detection since ebiten doesn't expose
// a "pressed this frame" query for standard gamepad buttons directly.
func (g *Gamepad) UpdateTrigger() {
	for btn, held := range g.held {
		g.trigger[btn] = held && !g.prevHeld[btn]
		g.prevHeld[btn] = held
	}
}

func (g *Gamepad) dpadDown() bool {
	return g.held[ebiten.StandardGamepadButtonLeftBottom] || g.axisY > deadzone
}
func (g *Gamepad) dpadUp() bool {
	return g.held[ebiten.StandardGamepadButtonLeftTop] || g.axisY < -deadzone
}
func (g *Gamepad) dpadLeft() bool {
	return g.held[ebiten.StandardGamepadButtonLeftLeft] || g.axisX < -deadzone
}
func (g *Gamepad) dpadRight() bool {
	return g.held[ebiten.StandardGamepadButtonLeftRight] || g.axisX > deadzone
}

func (g *Gamepad) MoveUp() bool    { return g.dpadUp() }
func (g *Gamepad) MoveDown() bool  { return g.dpadDown() }
func (g *Gamepad) MoveLeft() bool  { return g.dpadLeft() }
func (g *Gamepad) MoveRight() bool { return g.dpadRight() }

func (g *Gamepad) PrevWeapon() bool { return g.held[ebiten.StandardGamepadButtonFrontTopLeft] }
func (g *Gamepad) NextWeapon() bool { return g.held[ebiten.StandardGamepadButtonFrontTopRight] }
func (g *Gamepad) Shoot() bool      { return g.held[ebiten.StandardGamepadButtonRightBottom] }
func (g *Gamepad) Jump() bool       { return g.held[ebiten.StandardGamepadButtonRightRight] }
func (g *Gamepad) Map() bool        { return g.held[ebiten.StandardGamepadButtonRightTop] }
func (g *Gamepad) Inventory() bool  { return g.held[ebiten.StandardGamepadButtonRightLeft] }
func (g *Gamepad) Skip() bool       { return g.held[ebiten.StandardGamepadButtonCenterRight] }
func (g *Gamepad) Strafe() bool     { return g.held[ebiten.StandardGamepadButtonFrontTopLeft] }

func (g *Gamepad) TriggerUp() bool        { return g.trigger[ebiten.StandardGamepadButtonLeftTop] }
func (g *Gamepad) TriggerDown() bool      { return g.trigger[ebiten.StandardGamepadButtonLeftBottom] }
func (g *Gamepad) TriggerLeft() bool      { return g.trigger[ebiten.StandardGamepadButtonLeftLeft] }
func (g *Gamepad) TriggerRight() bool     { return g.trigger[ebiten.StandardGamepadButtonLeftRight] }
func (g *Gamepad) TriggerPrevWeapon() bool {
	return g.trigger[ebiten.StandardGamepadButtonFrontTopLeft]
}
func (g *Gamepad) TriggerNextWeapon() bool {
	return g.trigger[ebiten.StandardGamepadButtonFrontTopRight]
}
func (g *Gamepad) TriggerShoot() bool { return g.trigger[ebiten.StandardGamepadButtonRightBottom] }
func (g *Gamepad) TriggerJump() bool  { return g.trigger[ebiten.StandardGamepadButtonRightRight] }
func (g *Gamepad) TriggerMap() bool   { return g.trigger[ebiten.StandardGamepadButtonRightTop] }
func (g *Gamepad) TriggerInventory() bool {
	return g.trigger[ebiten.StandardGamepadButtonRightLeft]
}
func (g *Gamepad) TriggerSkip() bool    { return g.trigger[ebiten.StandardGamepadButtonCenterRight] }
func (g *Gamepad) TriggerStrafe() bool  { return g.trigger[ebiten.StandardGamepadButtonFrontTopLeft] }
func (g *Gamepad) TriggerMenuOK() bool  { return g.trigger[ebiten.StandardGamepadButtonRightBottom] }
func (g *Gamepad) TriggerMenuBack() bool { return g.trigger[ebiten.StandardGamepadButtonRightRight] }
func (g *Gamepad) TriggerMenuPause() bool {
	return g.trigger[ebiten.StandardGamepadButtonCenterRight]
}

func (g *Gamepad) LookUp() bool    { return false }
func (g *Gamepad) LookDown() bool  { return false }
func (g *Gamepad) LookLeft() bool  { return false }
func (g *Gamepad) LookRight() bool { return false }

func (g *Gamepad) MoveAnalogX() float64 { return g.axisX }
func (g *Gamepad) MoveAnalogY() float64 { return g.axisY }

// SetRumble drives the gamepad's dual-motor vibration, matching the
// source's low/high frequency split (lowFreq drives the strong motor,
// hiFreq the weak one).
func (g *Gamepad) SetRumble(lowFreq, hiFreq uint16, ticks uint32) {
	ebiten.VibrateGamepad(g.id, &ebiten.VibrateGamepadOptions{
		Duration:        time.Duration(ticks) * time.Second / 60,
		StrongMagnitude: float64(lowFreq) / 65535,
		WeakMagnitude:   float64(hiFreq) / 65535,
	})
}

var _ Controller = (*Gamepad)(nil)
