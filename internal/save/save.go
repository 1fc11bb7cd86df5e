// Package save implements the two on-disk save layouts §6 requires:
// freeware (a fixed 20-byte "Do041220" header plus binary fields in a
// flat, original-layout array) and Cave Story+ (a tagged, variable-length
// structure carrying the extra difficulty/equip-slot fields the
// freeware release never had). There is no savefile.rs in the retained
// reference material, so the CS+ field ordering and its extra fields
// are this package's own design against the spec's field list — but the
// freeware magic itself is not: §6 gives "Do041220" verbatim, so that
// header is bit-exact rather than invented (recorded in the design
// note).
package save

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/hearthlab/cavern-core/internal/bitflags"
	"github.com/hearthlab/cavern-core/internal/constants"
	"github.com/hearthlab/cavern-core/internal/state"
)

// WeaponRecord is one persisted weapon slot (§4.7 field list).
type WeaponRecord struct {
	WeaponID   uint16
	Level      uint8
	Experience uint32
	MaxAmmo    uint16
	Ammo       uint16
}

// TeleporterSlot names one unlocked teleporter destination.
type TeleporterSlot struct {
	EventNum uint16
}

// Record is the full decoded contents of a save slot, independent of
// which on-disk Format it came from.
type Record struct {
	MapID, MusicID         uint16
	PlayerX, PlayerY       int32 // subpixels
	PlayerVelX, PlayerVelY int32
	Life, MaxLife          uint16
	ArmsBarrier            uint16
	Weapons                []WeaponRecord
	InventoryItems         []uint16
	Teleporters            []TeleporterSlot
	GameFlags              *bitflags.BitVec // 8000 bits, copied from SharedGameState.Flags.Game
	Timestamp              int64            // unix seconds; excluded from determinism comparisons per §8

	// Difficulty and EquippedItems round-trip only through FormatCSPlus.
	// Encode(r, FormatFreeware) silently drops both, matching the
	// original freeware release having neither a difficulty selector
	// nor a separate equip-slot bitmask (equipment there is just
	// inventory).
	Difficulty    state.Difficulty
	EquippedItems uint32
}

// Format names one of the two on-disk save layouts §6 requires.
type Format int

const (
	FormatFreeware Format = iota
	FormatCSPlus
)

// FormatForVariant is the "selectable via settings" switch §6 describes:
// the engine variant a build is configured for decides which layout it
// writes. Switch and Demo builds are CS+-derived distributions, so they
// use the extended layout too.
func FormatForVariant(v constants.Variant) Format {
	if v == constants.VariantFreeware {
		return FormatFreeware
	}
	return FormatCSPlus
}

// freewareMagic is given verbatim by §6: "Do041220", the original
// engine's Profile.dat signature.
var freewareMagic = [8]byte{'D', 'o', '0', '4', '1', '2', '2', '0'}

// csPlusMagic has no spec-given byte string (CS+'s profile format isn't
// named that precisely), so it's this package's own tag: "CS+SAVE" plus
// a version byte, following the same "ASCII tag + version" shape as
// freewareMagic instead of inventing an unrelated one.
var csPlusMagic = [8]byte{'C', 'S', '+', 'S', 'A', 'V', 'E', 1}

const (
	// freewareHeaderSize is exactly what §6 specifies: 8 bytes of magic
	// plus 12 reserved bytes, for a 20-byte header total.
	freewareHeaderSize = 20

	// The freeware layout has no length-prefixed sections (§6 "binary
	// fields in the original layout" means a flat array of fixed
	// records, the way the original engine's profile slots work) so
	// each table is capped at a fixed slot count; entries beyond the
	// cap are dropped on Encode rather than growing the record.
	freewareWeaponSlots     = 8
	freewareItemSlots       = 32
	freewareTeleporterSlots = 8

	// emptySlot marks an unused fixed slot. Item/event-num 0 is a valid
	// id in the original tables, so 0 can't double as "empty" the way
	// it does for WeaponID (weapon id 0 is always "no weapon" in both
	// layouts).
	emptySlot = 0xFFFF
)

// ErrCorrupt reports a malformed save buffer; per §7 partial loads are
// rejected atomically rather than applied piecemeal.
type ErrCorrupt struct{ Reason string }

func (e *ErrCorrupt) Error() string { return fmt.Sprintf("save: corrupt: %s", e.Reason) }

// Encode serializes r to the on-disk byte layout format selects.
func Encode(r *Record, format Format) []byte {
	if format == FormatFreeware {
		return encodeFreeware(r)
	}
	return encodeCSPlus(r)
}

// Decode parses a save buffer produced by Encode, detecting which
// Format it is from the leading magic and rejecting it atomically
// (returning an error, touching no caller state) on any truncation or
// unrecognized magic (§7 "partial loads are rejected atomically").
func Decode(data []byte) (*Record, Format, error) {
	if len(data) >= 8 && bytes.Equal(data[0:8], freewareMagic[:]) {
		r, err := decodeFreeware(data)
		return r, FormatFreeware, err
	}
	if len(data) >= 8 && bytes.Equal(data[0:8], csPlusMagic[:]) {
		r, err := decodeCSPlus(data)
		return r, FormatCSPlus, err
	}
	return nil, 0, &ErrCorrupt{Reason: "bad magic"}
}

func writeU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

// encodeFreeware writes the fixed 20-byte "Do041220" header followed by
// flat, fixed-size field tables — no length prefixes, matching §6's
// "original layout" phrasing for the freeware release.
func encodeFreeware(r *Record) []byte {
	var buf bytes.Buffer
	buf.Write(freewareMagic[:])
	var reserved [freewareHeaderSize - 8]byte
	buf.Write(reserved[:])

	var body [22]byte
	binary.LittleEndian.PutUint32(body[0:4], uint32(r.PlayerX))
	binary.LittleEndian.PutUint32(body[4:8], uint32(r.PlayerY))
	binary.LittleEndian.PutUint32(body[8:12], uint32(r.PlayerVelX))
	binary.LittleEndian.PutUint32(body[12:16], uint32(r.PlayerVelY))
	binary.LittleEndian.PutUint16(body[16:18], r.Life)
	binary.LittleEndian.PutUint16(body[18:20], r.MaxLife)
	binary.LittleEndian.PutUint16(body[20:22], r.ArmsBarrier)
	buf.Write(body[:])

	var ts [8]byte
	binary.LittleEndian.PutUint64(ts[:], uint64(r.Timestamp))
	buf.Write(ts[:])

	for i := 0; i < freewareWeaponSlots; i++ {
		var rec [11]byte
		if i < len(r.Weapons) {
			w := r.Weapons[i]
			binary.LittleEndian.PutUint16(rec[0:2], w.WeaponID)
			rec[2] = w.Level
			binary.LittleEndian.PutUint32(rec[3:7], w.Experience)
			binary.LittleEndian.PutUint16(rec[7:9], w.MaxAmmo)
			binary.LittleEndian.PutUint16(rec[9:11], w.Ammo)
		}
		buf.Write(rec[:])
	}

	for i := 0; i < freewareItemSlots; i++ {
		v := uint16(emptySlot)
		if i < len(r.InventoryItems) {
			v = r.InventoryItems[i]
		}
		writeU16(&buf, v)
	}

	for i := 0; i < freewareTeleporterSlots; i++ {
		v := uint16(emptySlot)
		if i < len(r.Teleporters) {
			v = r.Teleporters[i].EventNum
		}
		writeU16(&buf, v)
	}

	flagBytes := make([]byte, (bitflags.GameFlagCount+7)/8)
	if r.GameFlags != nil {
		r.GameFlags.CopyTo(flagBytes)
	}
	buf.Write(flagBytes)

	return buf.Bytes()
}

func decodeFreeware(data []byte) (*Record, error) {
	pos := freewareHeaderSize
	need := func(n int) error {
		if pos+n > len(data) {
			return &ErrCorrupt{Reason: "truncated"}
		}
		return nil
	}

	if err := need(22 + 8); err != nil {
		return nil, err
	}
	r := &Record{}
	r.PlayerX = int32(binary.LittleEndian.Uint32(data[pos : pos+4]))
	r.PlayerY = int32(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
	r.PlayerVelX = int32(binary.LittleEndian.Uint32(data[pos+8 : pos+12]))
	r.PlayerVelY = int32(binary.LittleEndian.Uint32(data[pos+12 : pos+16]))
	r.Life = binary.LittleEndian.Uint16(data[pos+16 : pos+18])
	r.MaxLife = binary.LittleEndian.Uint16(data[pos+18 : pos+20])
	r.ArmsBarrier = binary.LittleEndian.Uint16(data[pos+20 : pos+22])
	pos += 22
	r.Timestamp = int64(binary.LittleEndian.Uint64(data[pos : pos+8]))
	pos += 8

	if err := need(freewareWeaponSlots * 11); err != nil {
		return nil, err
	}
	for i := 0; i < freewareWeaponSlots; i++ {
		rec := data[pos : pos+11]
		id := binary.LittleEndian.Uint16(rec[0:2])
		if id != 0 {
			r.Weapons = append(r.Weapons, WeaponRecord{
				WeaponID:   id,
				Level:      rec[2],
				Experience: binary.LittleEndian.Uint32(rec[3:7]),
				MaxAmmo:    binary.LittleEndian.Uint16(rec[7:9]),
				Ammo:       binary.LittleEndian.Uint16(rec[9:11]),
			})
		}
		pos += 11
	}

	if err := need(freewareItemSlots * 2); err != nil {
		return nil, err
	}
	for i := 0; i < freewareItemSlots; i++ {
		v := binary.LittleEndian.Uint16(data[pos : pos+2])
		if v != emptySlot {
			r.InventoryItems = append(r.InventoryItems, v)
		}
		pos += 2
	}

	if err := need(freewareTeleporterSlots * 2); err != nil {
		return nil, err
	}
	for i := 0; i < freewareTeleporterSlots; i++ {
		v := binary.LittleEndian.Uint16(data[pos : pos+2])
		if v != emptySlot {
			r.Teleporters = append(r.Teleporters, TeleporterSlot{EventNum: v})
		}
		pos += 2
	}

	flagByteLen := (bitflags.GameFlagCount + 7) / 8
	if err := need(flagByteLen); err != nil {
		return nil, err
	}
	gameFlags := bitflags.New(bitflags.GameFlagCount, "game_flags")
	gameFlags.CopyFrom(data[pos : pos+flagByteLen])
	r.GameFlags = gameFlags

	return r, nil
}

// encodeCSPlus writes the tagged, variable-length layout: every table is
// length-prefixed rather than capped at a fixed slot count, which is
// what lets this format carry "additional slots" (§6) beyond the
// freeware release's fixed 8/32/8 tables, plus the Difficulty and
// EquippedItems fields freeware never had.
func encodeCSPlus(r *Record) []byte {
	var buf bytes.Buffer
	buf.Write(csPlusMagic[:])

	var hdr [2 + 2 + 4 + 4 + 4 + 4 + 2 + 2 + 2 + 1 + 4]byte
	binary.LittleEndian.PutUint16(hdr[0:2], r.MapID)
	binary.LittleEndian.PutUint16(hdr[2:4], r.MusicID)
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(r.PlayerX))
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(r.PlayerY))
	binary.LittleEndian.PutUint32(hdr[12:16], uint32(r.PlayerVelX))
	binary.LittleEndian.PutUint32(hdr[16:20], uint32(r.PlayerVelY))
	binary.LittleEndian.PutUint16(hdr[20:22], r.Life)
	binary.LittleEndian.PutUint16(hdr[22:24], r.MaxLife)
	binary.LittleEndian.PutUint16(hdr[24:26], r.ArmsBarrier)
	hdr[26] = uint8(r.Difficulty)
	binary.LittleEndian.PutUint32(hdr[27:31], r.EquippedItems)
	buf.Write(hdr[:])

	var ts [8]byte
	binary.LittleEndian.PutUint64(ts[:], uint64(r.Timestamp))
	buf.Write(ts[:])

	writeU16(&buf, uint16(len(r.Weapons)))
	for _, w := range r.Weapons {
		var rec [11]byte
		binary.LittleEndian.PutUint16(rec[0:2], w.WeaponID)
		rec[2] = w.Level
		binary.LittleEndian.PutUint32(rec[3:7], w.Experience)
		binary.LittleEndian.PutUint16(rec[7:9], w.MaxAmmo)
		binary.LittleEndian.PutUint16(rec[9:11], w.Ammo)
		buf.Write(rec[:])
	}

	writeU16(&buf, uint16(len(r.InventoryItems)))
	for _, item := range r.InventoryItems {
		writeU16(&buf, item)
	}

	writeU16(&buf, uint16(len(r.Teleporters)))
	for _, tp := range r.Teleporters {
		writeU16(&buf, tp.EventNum)
	}

	if r.GameFlags != nil {
		flagBytes := make([]byte, (r.GameFlags.Len()+7)/8)
		n := r.GameFlags.CopyTo(flagBytes)
		writeU16(&buf, uint16(n))
		buf.Write(flagBytes[:n])
	} else {
		writeU16(&buf, 0)
	}

	return buf.Bytes()
}

func decodeCSPlus(data []byte) (*Record, error) {
	pos := 8
	need := func(n int) error {
		if pos+n > len(data) {
			return &ErrCorrupt{Reason: "truncated"}
		}
		return nil
	}

	if err := need(31); err != nil {
		return nil, err
	}
	r := &Record{}
	r.MapID = binary.LittleEndian.Uint16(data[pos : pos+2])
	r.MusicID = binary.LittleEndian.Uint16(data[pos+2 : pos+4])
	r.PlayerX = int32(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
	r.PlayerY = int32(binary.LittleEndian.Uint32(data[pos+8 : pos+12]))
	r.PlayerVelX = int32(binary.LittleEndian.Uint32(data[pos+12 : pos+16]))
	r.PlayerVelY = int32(binary.LittleEndian.Uint32(data[pos+16 : pos+20]))
	r.Life = binary.LittleEndian.Uint16(data[pos+20 : pos+22])
	r.MaxLife = binary.LittleEndian.Uint16(data[pos+22 : pos+24])
	r.ArmsBarrier = binary.LittleEndian.Uint16(data[pos+24 : pos+26])
	r.Difficulty = state.DifficultyFromByte(data[pos+26])
	r.EquippedItems = binary.LittleEndian.Uint32(data[pos+27 : pos+31])
	pos += 31

	if err := need(8); err != nil {
		return nil, err
	}
	r.Timestamp = int64(binary.LittleEndian.Uint64(data[pos : pos+8]))
	pos += 8

	if err := need(2); err != nil {
		return nil, err
	}
	weaponCount := int(binary.LittleEndian.Uint16(data[pos : pos+2]))
	pos += 2
	for i := 0; i < weaponCount; i++ {
		if err := need(11); err != nil {
			return nil, err
		}
		rec := data[pos : pos+11]
		r.Weapons = append(r.Weapons, WeaponRecord{
			WeaponID:   binary.LittleEndian.Uint16(rec[0:2]),
			Level:      rec[2],
			Experience: binary.LittleEndian.Uint32(rec[3:7]),
			MaxAmmo:    binary.LittleEndian.Uint16(rec[7:9]),
			Ammo:       binary.LittleEndian.Uint16(rec[9:11]),
		})
		pos += 11
	}

	if err := need(2); err != nil {
		return nil, err
	}
	itemCount := int(binary.LittleEndian.Uint16(data[pos : pos+2]))
	pos += 2
	for i := 0; i < itemCount; i++ {
		if err := need(2); err != nil {
			return nil, err
		}
		r.InventoryItems = append(r.InventoryItems, binary.LittleEndian.Uint16(data[pos:pos+2]))
		pos += 2
	}

	if err := need(2); err != nil {
		return nil, err
	}
	tpCount := int(binary.LittleEndian.Uint16(data[pos : pos+2]))
	pos += 2
	for i := 0; i < tpCount; i++ {
		if err := need(2); err != nil {
			return nil, err
		}
		r.Teleporters = append(r.Teleporters, TeleporterSlot{EventNum: binary.LittleEndian.Uint16(data[pos : pos+2])})
		pos += 2
	}

	if err := need(2); err != nil {
		return nil, err
	}
	flagByteLen := int(binary.LittleEndian.Uint16(data[pos : pos+2]))
	pos += 2
	if err := need(flagByteLen); err != nil {
		return nil, err
	}
	gameFlags := bitflags.New(bitflags.GameFlagCount, "game_flags")
	gameFlags.CopyFrom(data[pos : pos+flagByteLen])
	r.GameFlags = gameFlags
	pos += flagByteLen

	return r, nil
}
