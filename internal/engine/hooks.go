package engine

import (
	"github.com/hearthlab/cavern-core/internal/fixedpoint"
	"github.com/hearthlab/cavern-core/internal/frame"
	"github.com/hearthlab/cavern-core/internal/npc"
)

// defaultQuakeTicks is how long a <QUA opcode's shake lasts when the
// script gives no duration of its own (most call sites pass only a
// strength argument, matching the source's QUA taking a single arg).
const defaultQuakeTicks = 30

// PendingTransition records a <TRA stage-transition request for the host
// to act on between ticks (loading a new Stage is outside the core's
// scope, §1 "Filesystem / VFS ... consumed through opaque readers" —
// the host owns asset loading, the core only records intent).
type PendingTransition struct {
	MapID uint16
	Event uint16
}

// scriptHooks bridges tsc.Hooks to the engine's own subsystems: the live
// player's inventory/weapons, the NPC arena, the camera, and the opaque
// sound manager, grounded on §4.3's "side effects range from flag sets,
// item grants, camera focus, stage transitions ... to text-box control."
type scriptHooks struct {
	e *Engine
}

func (h scriptHooks) HasItem(id uint16) bool {
	if p := h.e.livePlayer(); p != nil {
		return p.HasItem(id)
	}
	return false
}

func (h scriptHooks) GiveItem(id uint16) {
	if p := h.e.livePlayer(); p != nil {
		p.GiveItem(id)
	}
}

func (h scriptHooks) TakeItem(id uint16) {
	if p := h.e.livePlayer(); p != nil {
		p.TakeItem(id)
	}
}

func (h scriptHooks) HasWeapon(id uint16) bool {
	if p := h.e.livePlayer(); p != nil {
		return p.HasWeapon(id)
	}
	return false
}

func (h scriptHooks) GiveWeapon(id uint16, ammo uint16) {
	if p := h.e.livePlayer(); p != nil {
		p.GiveWeapon(id, ammo)
	}
}

// TakeWeapon is not part of tsc.Hooks (no <AM- wiring needs it yet from
// the opcode table); exposed for symmetry and future <AM- support.
func (h scriptHooks) TakeWeapon(id uint16) {
	if p := h.e.livePlayer(); p != nil {
		p.TakeWeapon(id)
	}
}

func (h scriptHooks) NPCAlive(npcType uint16) bool {
	found := false
	h.e.NPCs.Each(func(n *npc.NPC) {
		if n.NPCType == npcType {
			found = true
		}
	})
	return found
}

func (h scriptHooks) SetNPCDirection(event uint16, facingLeft bool) {
	h.e.NPCs.Each(func(n *npc.NPC) {
		if n.EventNum != event {
			return
		}
		if facingLeft {
			n.Direction = fixedpoint.Left
		} else {
			n.Direction = fixedpoint.Right
		}
	})
}

func (h scriptHooks) FocusCamera(x, y int32) {
	ts := h.e.State.TileSize
	h.e.CameraFocus = &frame.PointTarget{X: fixedpoint.FromPixels(x * ts), Y: fixedpoint.FromPixels(y * ts)}
}

func (h scriptHooks) ShakeCamera(strength uint16) {
	h.e.State.Camera.Quake(int32(strength), defaultQuakeTicks)
}

func (h scriptHooks) Transition(mapID uint16, event uint16) {
	h.e.PendingTransition = &PendingTransition{MapID: mapID, Event: event}
}

func (h scriptHooks) PlaySound(id uint16) {
	if h.e.Sound != nil {
		h.e.Sound.PlaySfx(id)
	}
}

func (h scriptHooks) PlayMusic(id uint16) {
	if h.e.Sound != nil {
		h.e.Sound.PlaySong(id)
	}
}

func (h scriptHooks) StopMusic() {
	if h.e.Sound != nil {
		h.e.Sound.StopSong()
	}
}

func (h scriptHooks) ShowNumber(value int32, x, y int32) {
	popup := &numberPopupRequest{Value: value, X: fixedpoint.Subpixel(x), Y: fixedpoint.Subpixel(y)}
	h.e.PendingNumberPopups = append(h.e.PendingNumberPopups, popup)
}

// numberPopupRequest is a <NUM opcode's payload before the host's fx
// manager turns it into an animated fx.NumberPopup; the core records the
// request but doesn't own the popup's lifetime ticking itself (that stays
// with whichever fx.NumberPopup pool the host's draw layer owns).
type numberPopupRequest struct {
	Value int32
	X, Y  fixedpoint.Subpixel
}

// wireScriptHooks attaches scriptHooks to every live script VM. Called
// from NewGame/LoadGame so a fresh Scripts value always has its cross-
// subsystem bridge in place before the first Tick.
func (e *Engine) wireScriptHooks() {
	h := scriptHooks{e: e}
	if e.Scripts.Scene != nil {
		e.Scripts.Scene.SetHooks(h)
	}
	if e.Scripts.Global != nil {
		e.Scripts.Global.SetHooks(h)
	}
	if e.Scripts.StageSelect != nil {
		e.Scripts.StageSelect.SetHooks(h)
	}
}
