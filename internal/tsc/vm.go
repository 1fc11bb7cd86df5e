package tsc

import (
	"fmt"

	"github.com/hearthlab/cavern-core/internal/bitflags"
)

// State is the VM's run state (§4.3 TextScriptVM.state).
type State int

const (
	StateStopped State = iota
	StateRunning
	StateMsg
	StateWaitTicks
	StateWaitInput
	StateWaitStanding
	StateFallingIsland
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StateMsg:
		return "msg"
	case StateWaitTicks:
		return "wait_ticks"
	case StateWaitInput:
		return "wait_input"
	case StateWaitStanding:
		return "wait_standing"
	case StateFallingIsland:
		return "falling_island"
	default:
		return "unknown"
	}
}

// TextFlags mirror the text-box cosmetic flags named in §4.3 (face,
// text-box visibility, nodding indicator, background shadow).
type TextFlags struct {
	ShowFace     bool
	ShowTextBox  bool
	NodIndicator bool
	Shadow       bool
}

// Selector names which of the engine's concurrent script slots a VM
// instance is running — the source runs up to three at once (scene,
// global/inventory, stage-select), each independently steppable.
type Selector int

const (
	SelectorScene Selector = iota
	SelectorGlobal
	SelectorStageSelect
)

// VM is one text-script interpreter instance.
type VM struct {
	Selector Selector
	Programs map[uint16]Program

	state State

	curEvent uint16
	curIndex int

	Flags      *bitflags.Flags
	TextFlags  TextFlags
	TextBuffer string
	Face       uint16

	WaitTicksRemaining uint16
	Suspend            bool // true while this VM should halt the outer simulation loop

	stack []int32 // numeric stack for conditional opcodes that need it

	handlers map[string]Handler
	hooks    Hooks
}

// Hooks is the boundary the VM calls through for every opcode whose effect
// lives in another subsystem — inventory, weapons, NPCs, camera, sound,
// stage transitions — the same pattern as audio.SoundManager and
// npc.PlayerView: the tsc package stays ignorant of player/npc/stage types
// and a host wires a concrete adapter in. A VM with no hooks set still runs
// scripts that use these opcodes; they just have no effect, matching §7's
// "missing subsystem" tolerance already established for <ITJ/<NCJ.
type Hooks interface {
	HasItem(id uint16) bool
	GiveItem(id uint16)
	TakeItem(id uint16)
	HasWeapon(id uint16) bool
	GiveWeapon(id uint16, ammo uint16)
	NPCAlive(npcType uint16) bool
	SetNPCDirection(event uint16, facingLeft bool)
	FocusCamera(x, y int32)
	ShakeCamera(strength uint16)
	Transition(mapID uint16, event uint16)
	PlaySound(id uint16)
	PlayMusic(id uint16)
	StopMusic()
	ShowNumber(value int32, x, y int32)
}

// SetHooks attaches the cross-subsystem adapter. Safe to call at any time;
// nil clears it back to the no-hooks default.
func (vm *VM) SetHooks(h Hooks) { vm.hooks = h }

// Handler executes one opcode against the VM, returning an error only for
// malformed scripts (unknown flag index, etc.) — runtime control flow
// (jumps, suspension) is expressed by mutating the VM directly.
type Handler func(vm *VM, args []int32) error

// New builds a VM over the given parsed programs, sharing flags with the
// rest of the simulation (game_flags/skip_flags/map_flags are global
// state, not per-VM, per §3 SharedGameState).
func New(selector Selector, programs map[uint16]Program, flags *bitflags.Flags) *VM {
	vm := &VM{Selector: selector, Programs: programs, Flags: flags, state: StateStopped}
	vm.handlers = defaultHandlers()
	return vm
}

// State returns the VM's current run state.
func (vm *VM) State() State { return vm.state }

// ErrNoSuchEvent is returned by Start/jump when the requested event id has
// no program.
var ErrNoSuchEvent = fmt.Errorf("tsc: event not found")

// Start begins executing event from its first opcode.
func (vm *VM) Start(event uint16) error {
	if _, ok := vm.Programs[event]; !ok {
		return ErrNoSuchEvent
	}
	vm.curEvent = event
	vm.curIndex = 0
	vm.state = StateRunning
	vm.Suspend = false
	return nil
}

// Advance is called by the host when the player presses the confirm
// button during StateMsg/StateWaitInput, resuming script execution.
func (vm *VM) Advance() {
	if vm.state == StateMsg || vm.state == StateWaitInput {
		vm.state = StateRunning
	}
}

// Tick steps the VM once per frame: it decrements WaitTicks counters, and
// otherwise dispatches opcodes until the script suspends (Msg/WaitInput/
// WaitStanding/WaitTicks>0), stops (END with no further events), or
// reaches the end of the current event's program.
func (vm *VM) Tick() error {
	if vm.state == StateWaitTicks {
		if vm.WaitTicksRemaining > 0 {
			vm.WaitTicksRemaining--
		}
		if vm.WaitTicksRemaining == 0 {
			vm.state = StateRunning
		}
	}
	if vm.state != StateRunning {
		return nil
	}

	for vm.state == StateRunning {
		prog, ok := vm.Programs[vm.curEvent]
		if !ok || vm.curIndex >= len(prog) {
			vm.state = StateStopped
			return nil
		}
		op := prog[vm.curIndex]
		vm.curIndex++

		if op.Kind == OpText {
			vm.TextBuffer += op.Text
			continue
		}

		h, ok := vm.handlers[op.Name]
		if !ok {
			// Unknown opcode: per §7 this stops the script, not a panic.
			vm.state = StateStopped
			return &ParseError{Reason: "unknown opcode <" + op.Name}
		}
		if err := h(vm, op.Args); err != nil {
			vm.state = StateStopped
			return err
		}
	}
	return nil
}

// jumpTo moves execution to the start of event, staying in StateRunning so
// Tick's loop continues without returning to the caller — this is what
// makes <FLJ a true jump rather than a suspend point.
func (vm *VM) jumpTo(event uint16) error {
	if _, ok := vm.Programs[event]; !ok {
		return ErrNoSuchEvent
	}
	vm.curEvent = event
	vm.curIndex = 0
	return nil
}
