// Package stage implements the tile-based stage model: tile grids,
// per-tile collision attributes, NPC placement records, and the binary
// map file formats the original data files use (§3 Stage, §4.2, §6).
package stage

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// LoadError reports a malformed data file; per §7 resource loads are
// surfaced to the caller, never panics.
type LoadError struct {
	Format string
	Reason string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("stage: %s: %s", e.Format, e.Reason)
}

// pxmMagic is the little-endian "PXM\x10" header (§6).
var pxmMagic = [4]byte{'P', 'X', 'M', 0x10}

// TileGrid is one width*height plane of tile indices (foreground, mid, or
// background), as decoded from a .pxm file.
type TileGrid struct {
	Width, Height int
	Tiles         []byte // row-major, len == Width*Height
}

// At returns the tile index at (x, y), or 0 if out of bounds — the source's
// wrapping-multiply quirk is explicitly replaced here by a bounds check
// that returns tile 0 outside the grid (§9 Design Notes).
func (g *TileGrid) At(x, y int) byte {
	if g == nil || x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return 0
	}
	return g.Tiles[y*g.Width+x]
}

// Set writes a tile index, returning false (and doing nothing) when the
// coordinate is out of range or the tile is already that value — the
// caller (change_tile) uses the return value to decide whether to emit a
// smoke effect (§4.2).
func (g *TileGrid) Set(x, y int, id byte) bool {
	if g == nil || x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return false
	}
	idx := y*g.Width + x
	if g.Tiles[idx] == id {
		return false
	}
	g.Tiles[idx] = id
	return true
}

// LoadPXM parses a .pxm tile map: magic "PXM\x10", u16 width, u16 height,
// then width*height tile index bytes (§6). Loading is pure:
// LoadPXM(data) always produces the same result for the same bytes.
func LoadPXM(data []byte) (*TileGrid, error) {
	if len(data) < 8 {
		return nil, &LoadError{Format: "pxm", Reason: "file too short for header"}
	}
	if !bytes.Equal(data[0:4], pxmMagic[:]) {
		return nil, &LoadError{Format: "pxm", Reason: "bad magic"}
	}
	width := int(binary.LittleEndian.Uint16(data[4:6]))
	height := int(binary.LittleEndian.Uint16(data[6:8]))
	need := width * height
	body := data[8:]
	if len(body) < need {
		return nil, &LoadError{Format: "pxm", Reason: "truncated tile data"}
	}
	tiles := make([]byte, need)
	copy(tiles, body[:need])
	return &TileGrid{Width: width, Height: height, Tiles: tiles}, nil
}

// LoadPXA parses a .pxa attribute bank: exactly 256 bytes of attribute
// codes, one per possible tile index (§6).
func LoadPXA(data []byte) (*AttrBank, error) {
	if len(data) < 256 {
		return nil, &LoadError{Format: "pxa", Reason: "file too short, need 256 bytes"}
	}
	var bank AttrBank
	for i := 0; i < 256; i++ {
		bank[i] = TileAttr(data[i])
	}
	return &bank, nil
}

// NPCPlacement is one record from a .pxe file: a fixed-ID or gameplay NPC
// pre-placed in the stage (§3 NPC, §6).
type NPCPlacement struct {
	X, Y     int16 // tile coordinates
	FlagNum  uint16
	EventNum uint16
	NPCType  uint16
	Flags    uint16
}

// LoadPXE parses a .pxe NPC placement file: u32 record count (LE), then
// that many 12-byte records of {i16 x, i16 y, u16 flag_num, u16 event_num,
// u16 npc_type, u16 flags} (§6).
func LoadPXE(data []byte) ([]NPCPlacement, error) {
	if len(data) < 4 {
		return nil, &LoadError{Format: "pxe", Reason: "file too short for count"}
	}
	count := binary.LittleEndian.Uint32(data[0:4])
	body := data[4:]
	const recSize = 12
	need := int(count) * recSize
	if len(body) < need {
		return nil, &LoadError{Format: "pxe", Reason: "truncated records"}
	}
	out := make([]NPCPlacement, count)
	for i := range out {
		r := body[i*recSize : (i+1)*recSize]
		out[i] = NPCPlacement{
			X:        int16(binary.LittleEndian.Uint16(r[0:2])),
			Y:        int16(binary.LittleEndian.Uint16(r[2:4])),
			FlagNum:  binary.LittleEndian.Uint16(r[4:6]),
			EventNum: binary.LittleEndian.Uint16(r[6:8]),
			NPCType:  binary.LittleEndian.Uint16(r[8:10]),
			Flags:    binary.LittleEndian.Uint16(r[10:12]),
		}
	}
	return out, nil
}

// PxPackScroll names a parallax scroll speed for a PXPACK sub-map layer.
type PxPackScroll int

const (
	ScrollNormal PxPackScroll = iota
	ScrollThreeQuarters
	ScrollHalf
	ScrollQuarter
	ScrollEighth
	ScrollZero
	ScrollHThreeQuarters
	ScrollHHalf
	ScrollHQuarter
	ScrollV0Half
)

// PxPackLayer is one of the three sub-maps (foreground/mid/background)
// making up a layered parallax stage (§3 Stage, §6).
type PxPackLayer struct {
	Tileset    string
	Grid       *TileGrid
	ScrollX    PxPackScroll
	ScrollY    PxPackScroll
	OffsetX    int32
	OffsetY    int32
}

// PxPackMap is the decoded contents of a .pxpack file.
type PxPackMap struct {
	Header string
	Fg, Mg, Bg PxPackLayer
}

var pxPackHeader = "PXPACK121127"

// LoadPXPack parses a minimal .pxpack layered map: a fixed header string,
// followed by three sub-maps each carrying a tileset name, scroll mode
// pair, pixel offset, its own u16 width/height pair, and an embedded tile
// grid in the same layout as a bare .pxm body (no magic per sub-map). The
// header string is kept as read and is not validated. This mirrors
// the source's PxPack reader, simplified to the fields the simulation core
// actually consumes (display/scroll parameters; texture filenames are
// passed through as opaque strings for the host's renderer).
func LoadPXPack(data []byte) (*PxPackMap, error) {
	const headerLen = 16
	if len(data) < headerLen+4 {
		return nil, &LoadError{Format: "pxpack", Reason: "file too short for header"}
	}
	header := string(bytes.TrimRight(data[0:headerLen], "\x00"))
	pos := headerLen

	readLayer := func() (PxPackLayer, error) {
		if pos+2 > len(data) {
			return PxPackLayer{}, &LoadError{Format: "pxpack", Reason: "truncated layer name length"}
		}
		nameLen := int(data[pos])
		pos++
		if pos+nameLen > len(data) {
			return PxPackLayer{}, &LoadError{Format: "pxpack", Reason: "truncated layer name"}
		}
		name := string(data[pos : pos+nameLen])
		pos += nameLen

		if pos+10 > len(data) {
			return PxPackLayer{}, &LoadError{Format: "pxpack", Reason: "truncated layer header"}
		}
		scrollX := PxPackScroll(data[pos])
		scrollY := PxPackScroll(data[pos+1])
		offX := int32(binary.LittleEndian.Uint32(data[pos+2 : pos+6]))
		offY := int32(binary.LittleEndian.Uint32(data[pos+6 : pos+10]))
		pos += 10

		if pos+4 > len(data) {
			return PxPackLayer{}, &LoadError{Format: "pxpack", Reason: "truncated layer dims"}
		}
		w := int(binary.LittleEndian.Uint16(data[pos : pos+2]))
		h := int(binary.LittleEndian.Uint16(data[pos+2 : pos+4]))
		pos += 4

		need := w * h
		if pos+need > len(data) {
			return PxPackLayer{}, &LoadError{Format: "pxpack", Reason: "truncated layer tiles"}
		}
		tiles := make([]byte, need)
		copy(tiles, data[pos:pos+need])
		pos += need

		return PxPackLayer{
			Tileset: name,
			Grid:    &TileGrid{Width: w, Height: h, Tiles: tiles},
			ScrollX: scrollX, ScrollY: scrollY,
			OffsetX: offX, OffsetY: offY,
		}, nil
	}

	fg, err := readLayer()
	if err != nil {
		return nil, err
	}
	mg, err := readLayer()
	if err != nil {
		return nil, err
	}
	bg, err := readLayer()
	if err != nil {
		return nil, err
	}

	return &PxPackMap{Header: header, Fg: fg, Mg: mg, Bg: bg}, nil
}
