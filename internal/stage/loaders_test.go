package stage

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func buildPXM(w, h int, tiles []byte) []byte {
	var buf bytes.Buffer
	buf.Write(pxmMagic[:])
	var wh [4]byte
	binary.LittleEndian.PutUint16(wh[0:2], uint16(w))
	binary.LittleEndian.PutUint16(wh[2:4], uint16(h))
	buf.Write(wh[:])
	buf.Write(tiles)
	return buf.Bytes()
}

func TestLoadPXMRoundTrip(t *testing.T) {
	data := buildPXM(2, 2, []byte{1, 2, 3, 4})
	g, err := LoadPXM(data)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width != 2 || g.Height != 2 {
		t.Fatalf("got %dx%d", g.Width, g.Height)
	}
	if g.At(1, 1) != 4 {
		t.Fatalf("At(1,1) = %d, want 4", g.At(1, 1))
	}
	if g.At(-1, 0) != 0 || g.At(5, 5) != 0 {
		t.Fatal("out-of-bounds tile_at should return 0")
	}
}

func TestLoadPXMPurity(t *testing.T) {
	data := buildPXM(3, 2, []byte{1, 2, 3, 4, 5, 6})
	a, err1 := LoadPXM(data)
	b, err2 := LoadPXM(data)
	if err1 != nil || err2 != nil {
		t.Fatal(err1, err2)
	}
	if !bytes.Equal(a.Tiles, b.Tiles) || a.Width != b.Width || a.Height != b.Height {
		t.Fatal("loader is not pure")
	}
}

func TestLoadPXMBadMagic(t *testing.T) {
	data := buildPXM(1, 1, []byte{1})
	data[0] = 'X'
	if _, err := LoadPXM(data); err == nil {
		t.Fatal("expected error on bad magic")
	}
}

func TestLoadPXMTruncated(t *testing.T) {
	data := buildPXM(4, 4, []byte{1, 2, 3})
	if _, err := LoadPXM(data); err == nil {
		t.Fatal("expected error on truncated tile data")
	}
}

func TestLoadPXA(t *testing.T) {
	data := make([]byte, 256)
	data[5] = byte(AttrSolidBlock)
	bank, err := LoadPXA(data)
	if err != nil {
		t.Fatal(err)
	}
	if bank.At(5) != AttrSolidBlock {
		t.Fatalf("got %v", bank.At(5))
	}
}

func TestLoadPXAShort(t *testing.T) {
	if _, err := LoadPXA(make([]byte, 10)); err == nil {
		t.Fatal("expected error")
	}
}

func buildPXE(records []NPCPlacement) []byte {
	var buf bytes.Buffer
	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(len(records)))
	buf.Write(count[:])
	for _, r := range records {
		var rec [12]byte
		binary.LittleEndian.PutUint16(rec[0:2], uint16(r.X))
		binary.LittleEndian.PutUint16(rec[2:4], uint16(r.Y))
		binary.LittleEndian.PutUint16(rec[4:6], r.FlagNum)
		binary.LittleEndian.PutUint16(rec[6:8], r.EventNum)
		binary.LittleEndian.PutUint16(rec[8:10], r.NPCType)
		binary.LittleEndian.PutUint16(rec[10:12], r.Flags)
		buf.Write(rec[:])
	}
	return buf.Bytes()
}

func TestLoadPXERoundTrip(t *testing.T) {
	want := []NPCPlacement{
		{X: 5, Y: -3, FlagNum: 10, EventNum: 200, NPCType: 267, Flags: 0x0001},
		{X: 100, Y: 50, NPCType: 4},
	}
	got, err := LoadPXE(buildPXE(want))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("record %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestChangeTileReturnsWhetherChanged(t *testing.T) {
	g := &TileGrid{Width: 2, Height: 2, Tiles: []byte{0, 0, 0, 0}}
	if !g.Set(0, 0, 5) {
		t.Fatal("expected change to report true")
	}
	if g.Set(0, 0, 5) {
		t.Fatal("setting the same value should report false")
	}
	if g.Set(-1, 0, 9) {
		t.Fatal("out-of-bounds set should report false")
	}
}
