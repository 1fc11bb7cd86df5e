// Package player implements the player actor: movement/physics state,
// the weapon inventory with per-weapon ammo and experience-driven
// leveling, and the equip bitmask (booster, map system, turbocharge,
// whimsical star, etc.).
//
// No player.rs is present in the retained reference material (see
// original_source/_INDEX.md), so this package is grounded on spec.md's
// player description, the constants already pulled from engine_constants
// (internal/constants.PlayerConsts), and the teacher's entity-struct idiom
// (internal/game/soldier.go's const blocks and state-machine fields) —
// recorded in the design note alongside the same decision for internal/bullet.
package player

import (
	"github.com/hearthlab/cavern-core/internal/bitflags"
	"github.com/hearthlab/cavern-core/internal/constants"
	"github.com/hearthlab/cavern-core/internal/fixedpoint"
	"github.com/hearthlab/cavern-core/internal/stage"
)

// ItemSlotCount bounds the inventory item id range (the original engine's
// item ids top out well under this, §6 TSC <IT+/<IT-/<ITJ item argument).
const ItemSlotCount = 128

// Equip is the player's equipped-item bitmask (§ equip flags).
type Equip uint16

const (
	EquipBooster2    Equip = 1 << iota // v2.0 booster (all-directional thrust)
	EquipMap                           // map system HUD overlay
	EquipArmsBarrier                   // energy shield vs contact damage
	EquipTurbocharge                   // faster weapon fire rate
	EquipAirTank                       // unlimited underwater air
	EquipBooster08                     // v0.8 booster (upward thrust only)
	EquipMimiga                        // Mimiga Mask cosmetic flag
	EquipWhimsicalStar                 // orbiting star shield
	EquipNikumaru                      // Nikumaru Counter (speedrun timer) enabled
)

// ControlMode selects stick-vs-button movement semantics (§ Settings).
type ControlMode int

const (
	ControlNormal ControlMode = iota
	ControlReverseL
	ControlReverseR
)

// State is the player's current movement/animation mode.
type State int

const (
	StateGround State = iota
	StateJumping
	StateFalling
	StateUnderwater
)

func (s State) String() string {
	switch s {
	case StateGround:
		return "ground"
	case StateJumping:
		return "jumping"
	case StateFalling:
		return "falling"
	case StateUnderwater:
		return "underwater"
	default:
		return "unknown"
	}
}

// invincibilityTicks is how long the player stays flashing-and-immune
// after taking a hit (~3s at the simulation's 50Hz tick rate).
const invincibilityTicks = 150

// WeaponSlot is one inventory entry: a weapon id, its current ammo, max
// ammo, and accumulated experience (which drives its level via LevelFor).
type WeaponSlot struct {
	WeaponID      uint16
	Ammo, MaxAmmo uint16
	Experience    uint32
}

// expThresholds are the experience values at which a weapon advances from
// level 1->2 and 2->3; most weapons share these two cutoffs (a handful of
// weapons override them, tracked per weapon id by the caller's table —
// out of scope for the shared substrate here).
var expThresholds = [2]uint32{30, 70}

// Level returns the weapon's current level (1, 2, or 3) from its
// accumulated experience.
func (w WeaponSlot) Level() int {
	switch {
	case w.Experience >= uint32(expThresholds[1]):
		return 3
	case w.Experience >= uint32(expThresholds[0]):
		return 2
	default:
		return 1
	}
}

// Player is the player actor.
type Player struct {
	X, Y       fixedpoint.Subpixel
	VelX, VelY fixedpoint.Subpixel
	Direction  fixedpoint.Direction
	HalfW, HalfH fixedpoint.Subpixel

	Life, MaxLife uint16
	Equip         Equip
	Control       ControlMode
	State         State

	Weapons      []WeaponSlot
	CurrentSlot  int
	BoosterFuel  uint16

	// Items is the non-weapon inventory (puppies, keys, teleporter chip,
	// ...), addressed by item id the same way game_flags addresses flags
	// by index — TSC's <IT+/<IT-/<ITJ opcodes read and write it directly.
	Items *bitflags.BitVec

	invincibility uint16
	underwater    bool
}

// New constructs a player at (x, y) using tuning from consts.
func New(consts *constants.PlayerConsts, x, y fixedpoint.Subpixel) *Player {
	return &Player{
		X: x, Y: y,
		Direction: fixedpoint.Right,
		HalfW:     fixedpoint.FromPixels(5),
		HalfH:     fixedpoint.FromPixels(8),
		Life:      consts.Life,
		MaxLife:   consts.MaxLife,
		Items:     bitflags.New(ItemSlotCount, "inventory_items"),
	}
}

// HasItem reports whether item id is in the inventory.
func (p *Player) HasItem(id uint16) bool { return p.Items.Get(int(id)) }

// GiveItem adds item id to the inventory (a no-op if already held).
func (p *Player) GiveItem(id uint16) { p.Items.Set(int(id), true) }

// TakeItem removes item id from the inventory (a no-op if not held).
func (p *Player) TakeItem(id uint16) { p.Items.Set(int(id), false) }

// HasWeapon reports whether a weapon slot with the given id exists.
func (p *Player) HasWeapon(id uint16) bool {
	for i := range p.Weapons {
		if p.Weapons[i].WeaponID == id {
			return true
		}
	}
	return false
}

// GiveWeapon adds a new weapon slot (or, for a weapon already held, sets
// that slot's MaxAmmo to maxAmmo and refills Ammo to it, matching the
// source's "picking up a weapon you already have refills ammo instead of
// duplicating the slot" rule).
func (p *Player) GiveWeapon(id uint16, maxAmmo uint16) {
	for i := range p.Weapons {
		if p.Weapons[i].WeaponID == id {
			p.Weapons[i].MaxAmmo = maxAmmo
			p.Weapons[i].Ammo = maxAmmo
			return
		}
	}
	p.Weapons = append(p.Weapons, WeaponSlot{WeaponID: id, Ammo: maxAmmo, MaxAmmo: maxAmmo})
	if len(p.Weapons) == 1 {
		p.CurrentSlot = 0
	}
}

// TakeWeapon removes the weapon slot with the given id, if present,
// adjusting CurrentSlot so it still names a valid (or empty) slot.
func (p *Player) TakeWeapon(id uint16) {
	for i := range p.Weapons {
		if p.Weapons[i].WeaponID == id {
			p.Weapons = append(p.Weapons[:i], p.Weapons[i+1:]...)
			if p.CurrentSlot >= len(p.Weapons) {
				p.CurrentSlot = 0
			}
			return
		}
	}
}

// TakeDamage reduces Life by amount unless invincible or shielded by
// ArmsBarrier (which blocks contact damage but not bullet/spike damage —
// callers distinguish by not calling TakeDamage for barrier-blocked hits).
// Returns whether damage was actually applied.
func (p *Player) TakeDamage(amount uint16) bool {
	if p.invincibility > 0 {
		return false
	}
	if amount >= p.Life {
		p.Life = 0
	} else {
		p.Life -= amount
	}
	p.invincibility = invincibilityTicks
	return true
}

// Dead reports whether the player has run out of life.
func (p *Player) Dead() bool { return p.Life == 0 }

// TickInvincibility decrements the post-hit immunity counter; call once
// per frame regardless of input.
func (p *Player) TickInvincibility() {
	if p.invincibility > 0 {
		p.invincibility--
	}
}

// Invincible reports whether the player is currently immune to damage.
func (p *Player) Invincible() bool { return p.invincibility > 0 }

// Integrate steps the player's position by (dx, dy+gravity) against the
// stage's tile collision, records whether the tile under the player's
// center is water, and updates State from the result. The same movement
// rule applies in air and in water; consts is not read.
func (p *Player) Integrate(m *stage.Map, consts *constants.PlayerConsts, gravity, dx, dy fixedpoint.Subpixel) {
	p.underwater = m.TileAt(p.X, p.Y).Classify() == stage.KindWater

	nx, ny, flags := stage.ResolveMove(m, p.X, p.Y, p.HalfW, p.HalfH, dx, dy+gravity)
	p.X, p.Y = nx, ny

	switch {
	case flags.HitBottomWall:
		p.VelY = 0
		p.State = StateGround
	case p.underwater:
		p.State = StateUnderwater
	case p.VelY < 0:
		p.State = StateJumping
	default:
		p.State = StateFalling
	}

	if flags.HitTopWall {
		p.VelY = 0
	}
	if flags.HitLeftWall || flags.HitRightWall {
		p.VelX = 0
	}
}

// CameraTarget implements internal/frame.Target so the camera can track
// the player directly.
func (p *Player) CameraTarget() (fixedpoint.Subpixel, fixedpoint.Subpixel) { return p.X, p.Y }

// Position supplies the position half of internal/npc.PlayerView; the
// engine's adapter adds Direction, since Player exposes it as a field.
func (p *Player) Position() (fixedpoint.Subpixel, fixedpoint.Subpixel) { return p.X, p.Y }

// Bounds returns the player's current hit box.
func (p *Player) Bounds() fixedpoint.Rect[int32] {
	return fixedpoint.CenteredAt(p.X, p.Y, p.HalfW, p.HalfH)
}

// CurrentWeapon returns a pointer to the equipped weapon slot, or nil if
// the inventory is empty.
func (p *Player) CurrentWeapon() *WeaponSlot {
	if p.CurrentSlot < 0 || p.CurrentSlot >= len(p.Weapons) {
		return nil
	}
	return &p.Weapons[p.CurrentSlot]
}

// CycleWeapon moves to the next (or, if backward is true, previous)
// non-empty weapon slot.
func (p *Player) CycleWeapon(backward bool) {
	n := len(p.Weapons)
	if n == 0 {
		return
	}
	step := 1
	if backward {
		step = -1
	}
	for i := 0; i < n; i++ {
		p.CurrentSlot = ((p.CurrentSlot+step)%n + n) % n
		if p.Weapons[p.CurrentSlot].MaxAmmo == 0 || p.Weapons[p.CurrentSlot].Ammo > 0 {
			return
		}
	}
}
