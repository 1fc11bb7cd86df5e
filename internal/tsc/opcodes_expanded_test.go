package tsc

import (
	"testing"

	"github.com/hearthlab/cavern-core/internal/bitflags"
)

// mockHooks records every call so tests can assert on exactly what the VM
// dispatched, without depending on internal/player or internal/engine.
type mockHooks struct {
	items    map[uint16]bool
	weapons  map[uint16]uint16
	npcAlive map[uint16]bool

	npcDirEvent uint16
	npcDirLeft  bool

	focusX, focusY int32
	shakeStrength  uint16

	transitionMap, transitionEvent uint16
	transitioned                   bool

	lastSfx, lastSong uint16
	musicStopped      bool

	numValue, numX, numY int32
	numShown             bool
}

func newMockHooks() *mockHooks {
	return &mockHooks{items: map[uint16]bool{}, weapons: map[uint16]uint16{}, npcAlive: map[uint16]bool{}}
}

func (m *mockHooks) HasItem(id uint16) bool  { return m.items[id] }
func (m *mockHooks) GiveItem(id uint16)      { m.items[id] = true }
func (m *mockHooks) TakeItem(id uint16)      { delete(m.items, id) }
func (m *mockHooks) HasWeapon(id uint16) bool {
	_, ok := m.weapons[id]
	return ok
}
func (m *mockHooks) GiveWeapon(id uint16, ammo uint16)      { m.weapons[id] = ammo }
func (m *mockHooks) NPCAlive(npcType uint16) bool           { return m.npcAlive[npcType] }
func (m *mockHooks) SetNPCDirection(event uint16, left bool) {
	m.npcDirEvent, m.npcDirLeft = event, left
}
func (m *mockHooks) FocusCamera(x, y int32)  { m.focusX, m.focusY = x, y }
func (m *mockHooks) ShakeCamera(s uint16)    { m.shakeStrength = s }
func (m *mockHooks) Transition(mapID, event uint16) {
	m.transitionMap, m.transitionEvent, m.transitioned = mapID, event, true
}
func (m *mockHooks) PlaySound(id uint16) { m.lastSfx = id }
func (m *mockHooks) PlayMusic(id uint16) { m.lastSong = id }
func (m *mockHooks) StopMusic()          { m.musicStopped = true }
func (m *mockHooks) ShowNumber(value, x, y int32) {
	m.numValue, m.numX, m.numY, m.numShown = value, x, y, true
}

var _ Hooks = (*mockHooks)(nil)

func runOnce(t *testing.T, src string, event uint16, h Hooks) *VM {
	t.Helper()
	programs, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	vm := New(SelectorScene, programs, bitflags.NewFlags())
	vm.SetHooks(h)
	if err := vm.Start(event); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := vm.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	return vm
}

func TestItemGrantAndJump(t *testing.T) {
	h := newMockHooks()
	runOnce(t, "#0001\n<IT+0005<END", 1, h)
	if !h.items[5] {
		t.Fatal("expected item 5 granted")
	}

	src := "#0100\n<ITJ0005:0200<END\n#0200\n<MSGYes<END"
	vm := runOnce(t, src, 100, h)
	if vm.curEvent != 200 {
		t.Fatalf("expected jump to event 200, got %d", vm.curEvent)
	}
}

func TestWeaponGrantAndJump(t *testing.T) {
	h := newMockHooks()
	runOnce(t, "#0001\n<AM+0002:0010<END", 1, h)
	if h.weapons[2] != 10 {
		t.Fatalf("expected weapon 2 with ammo 10, got %d", h.weapons[2])
	}

	src := "#0100\n<AMJ0002:0200<END\n#0200\n<MSGOK<END"
	vm := runOnce(t, src, 100, h)
	if vm.curEvent != 200 {
		t.Fatalf("expected jump to event 200, got %d", vm.curEvent)
	}
}

func TestSkipAndMapFlagJumps(t *testing.T) {
	flags := bitflags.NewFlags()
	flags.Skip.Set(7, true)
	flags.Map.Set(9, true)

	programs, err := Parse("#0100\n<SKJ0007:0200<END\n#0200\n<MPJ0009:0300<END\n#0300\n<MSGOK<END")
	if err != nil {
		t.Fatal(err)
	}
	vm := New(SelectorScene, programs, flags)
	_ = vm.Start(100)
	if err := vm.Tick(); err != nil {
		t.Fatal(err)
	}
	if vm.curEvent != 300 {
		t.Fatalf("expected SKJ then MPJ to land on event 300, got %d", vm.curEvent)
	}
}

func TestCameraAndShakeOpcodes(t *testing.T) {
	h := newMockHooks()
	runOnce(t, "#0001\n<FOM0010:0020<QUA0005<END", 1, h)
	if h.focusX != 10 || h.focusY != 20 {
		t.Fatalf("FocusCamera got (%d,%d), want (10,20)", h.focusX, h.focusY)
	}
	if h.shakeStrength != 5 {
		t.Fatalf("ShakeCamera strength = %d, want 5", h.shakeStrength)
	}
}

func TestSoundOpcodes(t *testing.T) {
	h := newMockHooks()
	runOnce(t, "#0001\n<CMU0003<SOU0007<FMU<END", 1, h)
	if h.lastSong != 3 {
		t.Fatalf("expected music 3, got %d", h.lastSong)
	}
	if h.lastSfx != 7 {
		t.Fatalf("expected sfx 7, got %d", h.lastSfx)
	}
	if !h.musicStopped {
		t.Fatal("expected FMU to stop music")
	}
}

func TestTransitionStopsScript(t *testing.T) {
	h := newMockHooks()
	vm := runOnce(t, "#0001\n<TRA0042:0099<END", 1, h)
	if !h.transitioned || h.transitionMap != 42 || h.transitionEvent != 99 {
		t.Fatalf("expected Transition(42,99), got map=%d event=%d ok=%v", h.transitionMap, h.transitionEvent, h.transitioned)
	}
	if vm.State() != StateStopped {
		t.Fatalf("expected Stopped after <TRA, got %v", vm.State())
	}
}

func TestNumOpcodeShowsNumber(t *testing.T) {
	h := newMockHooks()
	runOnce(t, "#0001\n<NUM0099:0010:0020<END", 1, h)
	if !h.numShown || h.numValue != 99 || h.numX != 10 || h.numY != 20 {
		t.Fatalf("unexpected ShowNumber call: value=%d x=%d y=%d shown=%v", h.numValue, h.numX, h.numY, h.numShown)
	}
}

func TestNCJUsesHooksNow(t *testing.T) {
	h := newMockHooks()
	h.npcAlive[267] = true
	src := "#0100\n<NCJ0267:0200<END\n#0200\n<MSGAlive<END"
	vm := runOnce(t, src, 100, h)
	if vm.curEvent != 200 {
		t.Fatalf("expected NCJ to jump once hooked NPC is alive, got event %d", vm.curEvent)
	}
}

func TestMYDSetsLinkedNPCDirection(t *testing.T) {
	h := newMockHooks()
	runOnce(t, "#0042\n<MYD0002<END", 42, h)
	if h.npcDirEvent != 42 || !h.npcDirLeft {
		t.Fatalf("expected event 42 facing left, got event=%d left=%v", h.npcDirEvent, h.npcDirLeft)
	}
}

func TestWithoutHooksOpcodesAreHarmlessNoops(t *testing.T) {
	// No SetHooks call: every hooked opcode must still run to completion
	// rather than panicking on a nil interface (§7 "missing subsystem"
	// tolerance already established for <ITJ/<NCJ).
	programs, err := Parse("#0001\n<IT+0001<AM+0002:0005<FOM0001:0002<QUA0003<CMU0001<SOU0001<FMU<NUM0001<END")
	if err != nil {
		t.Fatal(err)
	}
	vm := New(SelectorScene, programs, bitflags.NewFlags())
	_ = vm.Start(1)
	if err := vm.Tick(); err != nil {
		t.Fatalf("expected no error with nil hooks, got %v", err)
	}
	if vm.State() != StateStopped {
		t.Fatalf("expected Stopped, got %v", vm.State())
	}
}
