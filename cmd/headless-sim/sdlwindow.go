//go:build sdlwindow

// This file only builds with `-tags sdlwindow`. It demonstrates that the
// input boundary (internal/input.Controller) is truly adapter-agnostic:
// the engine never imports ebiten directly, so an entirely different
// windowing/input backend can drive the same simulation core, grounded on
// RetroCodeRamen-Nitro-Core-DX's internal/ui/ui.go SDL window + keyboard
// polling loop.
package main

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hearthlab/cavern-core/internal/state"
)

// sdlKeyByName maps the same settings.KeyMap binding names internal/input's
// ebiten keyboard adapter recognizes onto SDL scancodes, so both adapters
// can share one settings file.
var sdlKeyByName = map[string]sdl.Scancode{
	"ArrowLeft": sdl.SCANCODE_LEFT, "ArrowRight": sdl.SCANCODE_RIGHT,
	"ArrowUp": sdl.SCANCODE_UP, "ArrowDown": sdl.SCANCODE_DOWN,
	"A": sdl.SCANCODE_A, "S": sdl.SCANCODE_S, "Z": sdl.SCANCODE_Z, "X": sdl.SCANCODE_X,
	"Q": sdl.SCANCODE_Q, "W": sdl.SCANCODE_W,
	"LeftControl": sdl.SCANCODE_LCTRL, "LeftShift": sdl.SCANCODE_LSHIFT,
	"Escape": sdl.SCANCODE_ESCAPE,
}

// sdlWindow owns an SDL window purely to keep an event pump alive for
// sdl.GetKeyboardState(); headless-sim never renders into it (the core's
// draw interface is out of scope, §1).
type sdlWindow struct {
	window *sdl.Window
}

func newSDLWindow() (*sdlWindow, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}
	win, err := sdl.CreateWindow(
		"cavern-core headless-sim (sdlwindow)",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		320, 240, sdl.WINDOW_HIDDEN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl create window: %w", err)
	}
	return &sdlWindow{window: win}, nil
}

func (w *sdlWindow) Close() {
	w.window.Destroy()
	sdl.Quit()
}

// pump drains the SDL event queue so GetKeyboardState stays current; it
// does not interpret any event itself, mirroring the headless nature of
// this command (no rendering, no audio).
func (w *sdlWindow) pump() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
	}
}

// sdlController is an input.Controller backed by SDL's polled keyboard
// state, generalizing internal/input.Keyboard's held/trigger latch
// structure (§3 "abstract controller") to a non-ebiten backend.
type sdlController struct {
	win  *sdlWindow
	keys state.KeyMap

	held     map[string]bool
	prevHeld map[string]bool
	trigger  map[string]bool
}

func newSDLController(win *sdlWindow, keys state.KeyMap) *sdlController {
	return &sdlController{
		win: win, keys: keys,
		held: map[string]bool{}, prevHeld: map[string]bool{}, trigger: map[string]bool{},
	}
}

func (c *sdlController) bindingNames() []string {
	return []string{
		c.keys.Left, c.keys.Right, c.keys.Up, c.keys.Down,
		c.keys.PrevWeapon, c.keys.NextWeapon, c.keys.Jump, c.keys.Shoot,
		c.keys.Skip, c.keys.Inventory, c.keys.Map, c.keys.Strafe,
		c.keys.MenuOK, c.keys.MenuBack, "Escape",
	}
}

func (c *sdlController) Update() error {
	c.win.pump()
	keyState := sdl.GetKeyboardState()
	for _, name := range c.bindingNames() {
		code, ok := sdlKeyByName[name]
		c.held[name] = ok && keyState[code] != 0
	}
	return nil
}

func (c *sdlController) UpdateTrigger() {
	for name, held := range c.held {
		c.trigger[name] = held && !c.prevHeld[name]
		c.prevHeld[name] = held
	}
}

func (c *sdlController) MoveUp() bool    { return c.held[c.keys.Up] }
func (c *sdlController) MoveDown() bool  { return c.held[c.keys.Down] }
func (c *sdlController) MoveLeft() bool  { return c.held[c.keys.Left] }
func (c *sdlController) MoveRight() bool { return c.held[c.keys.Right] }

func (c *sdlController) PrevWeapon() bool { return c.held[c.keys.PrevWeapon] }
func (c *sdlController) NextWeapon() bool { return c.held[c.keys.NextWeapon] }
func (c *sdlController) Shoot() bool      { return c.held[c.keys.Shoot] }
func (c *sdlController) Jump() bool       { return c.held[c.keys.Jump] }
func (c *sdlController) Map() bool        { return c.held[c.keys.Map] }
func (c *sdlController) Inventory() bool  { return c.held[c.keys.Inventory] }
func (c *sdlController) Skip() bool       { return c.held[c.keys.Skip] }
func (c *sdlController) Strafe() bool     { return c.held[c.keys.Strafe] }

func (c *sdlController) TriggerUp() bool        { return c.trigger[c.keys.Up] }
func (c *sdlController) TriggerDown() bool      { return c.trigger[c.keys.Down] }
func (c *sdlController) TriggerLeft() bool      { return c.trigger[c.keys.Left] }
func (c *sdlController) TriggerRight() bool     { return c.trigger[c.keys.Right] }
func (c *sdlController) TriggerPrevWeapon() bool { return c.trigger[c.keys.PrevWeapon] }
func (c *sdlController) TriggerNextWeapon() bool { return c.trigger[c.keys.NextWeapon] }
func (c *sdlController) TriggerShoot() bool     { return c.trigger[c.keys.Shoot] }
func (c *sdlController) TriggerJump() bool      { return c.trigger[c.keys.Jump] }
func (c *sdlController) TriggerMap() bool       { return c.trigger[c.keys.Map] }
func (c *sdlController) TriggerInventory() bool { return c.trigger[c.keys.Inventory] }
func (c *sdlController) TriggerSkip() bool      { return c.trigger[c.keys.Skip] }
func (c *sdlController) TriggerStrafe() bool    { return c.trigger[c.keys.Strafe] }
func (c *sdlController) TriggerMenuOK() bool    { return c.trigger[c.keys.MenuOK] }
func (c *sdlController) TriggerMenuBack() bool  { return c.trigger[c.keys.MenuBack] }
func (c *sdlController) TriggerMenuPause() bool { return c.trigger["Escape"] }

func (c *sdlController) LookUp() bool    { return false }
func (c *sdlController) LookDown() bool  { return false }
func (c *sdlController) LookLeft() bool  { return false }
func (c *sdlController) LookRight() bool { return false }

func (c *sdlController) MoveAnalogX() float64 {
	switch {
	case c.held[c.keys.Left]:
		return -1
	case c.held[c.keys.Right]:
		return 1
	default:
		return 0
	}
}

func (c *sdlController) MoveAnalogY() float64 {
	switch {
	case c.held[c.keys.Up]:
		return -1
	case c.held[c.keys.Down]:
		return 1
	default:
		return 0
	}
}

// SetRumble is a no-op: SDL_GameControllerRumble targets gamepads, not the
// keyboard this adapter polls.
func (c *sdlController) SetRumble(lowFreq, hiFreq uint16, ticks uint32) {}

// runSDLInputProbe opens a hidden SDL window, polls it for the given
// number of ticks, and reports how many ticks observed at least one held
// binding. It proves the SDL adapter round-trips through input.Controller
// without needing a renderer, the same boundary cmd/headless-sim already
// exercises for ebiten's adapters indirectly through internal/engine.
func runSDLInputProbe(ticks int) error {
	win, err := newSDLWindow()
	if err != nil {
		return err
	}
	defer win.Close()

	ctrl := newSDLController(win, state.DefaultKeyMap())
	observed := 0
	for i := 0; i < ticks; i++ {
		if err := ctrl.Update(); err != nil {
			return err
		}
		ctrl.UpdateTrigger()
		if ctrl.MoveUp() || ctrl.MoveDown() || ctrl.MoveLeft() || ctrl.MoveRight() || ctrl.Jump() || ctrl.Shoot() {
			observed++
		}
	}
	fmt.Printf("sdlwindow input probe: %d/%d ticks observed input\n", observed, ticks)
	return nil
}
