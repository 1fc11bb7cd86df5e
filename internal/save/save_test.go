package save

import (
	"bytes"
	"testing"

	"github.com/hearthlab/cavern-core/internal/bitflags"
	"github.com/hearthlab/cavern-core/internal/constants"
	"github.com/hearthlab/cavern-core/internal/state"
)

func sampleRecord() *Record {
	flags := bitflags.New(bitflags.GameFlagCount, "game_flags")
	flags.Set(1234, true)
	flags.Set(5000, true)

	return &Record{
		MapID: 7, MusicID: 3,
		PlayerX: 1000, PlayerY: -500,
		Life: 3, MaxLife: 3,
		Weapons:        []WeaponRecord{{WeaponID: 1, Level: 2, Experience: 45, MaxAmmo: 50, Ammo: 30}},
		InventoryItems: []uint16{4, 12},
		Teleporters:    []TeleporterSlot{{EventNum: 1000}},
		GameFlags:      flags,
		Timestamp:      1700000000,
		Difficulty:     state.DifficultyHard,
		EquippedItems:  0x3,
	}
}

func TestEncodeDecodeRoundTripCSPlus(t *testing.T) {
	r := sampleRecord()

	data := Encode(r, FormatCSPlus)
	got, format, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if format != FormatCSPlus {
		t.Fatalf("expected FormatCSPlus, got %v", format)
	}

	if got.MapID != 7 || got.MusicID != 3 {
		t.Fatalf("map/music id mismatch: %+v", got)
	}
	if got.PlayerX != 1000 || got.PlayerY != -500 {
		t.Fatalf("position mismatch: %+v", got)
	}
	if len(got.Weapons) != 1 || got.Weapons[0].Experience != 45 {
		t.Fatalf("weapon mismatch: %+v", got.Weapons)
	}
	if len(got.InventoryItems) != 2 || got.InventoryItems[1] != 12 {
		t.Fatalf("inventory mismatch: %+v", got.InventoryItems)
	}
	if len(got.Teleporters) != 1 || got.Teleporters[0].EventNum != 1000 {
		t.Fatalf("teleporter mismatch: %+v", got.Teleporters)
	}
	if got.Difficulty != state.DifficultyHard {
		t.Fatalf("difficulty mismatch: %v", got.Difficulty)
	}
	if got.EquippedItems != 0x3 {
		t.Fatalf("equipped items mismatch: %v", got.EquippedItems)
	}

	// S2 – flag persistence.
	if !got.GameFlags.Get(1234) || !got.GameFlags.Get(5000) {
		t.Fatal("expected set flags to survive round trip")
	}
	if got.GameFlags.Get(1233) {
		t.Fatal("expected untouched flag to remain false")
	}
}

func TestEncodeDecodeRoundTripFreeware(t *testing.T) {
	r := sampleRecord()

	data := Encode(r, FormatFreeware)
	if !bytes.HasPrefix(data, []byte("Do041220")) {
		t.Fatalf("expected freeware buffer to start with the Do041220 magic, got %q", data[:8])
	}
	if len(data) < freewareHeaderSize {
		t.Fatalf("expected at least a %d-byte freeware header", freewareHeaderSize)
	}

	got, format, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if format != FormatFreeware {
		t.Fatalf("expected FormatFreeware, got %v", format)
	}

	if got.PlayerX != 1000 || got.PlayerY != -500 {
		t.Fatalf("position mismatch: %+v", got)
	}
	if len(got.Weapons) != 1 || got.Weapons[0].Experience != 45 {
		t.Fatalf("weapon mismatch: %+v", got.Weapons)
	}
	if len(got.InventoryItems) != 2 || got.InventoryItems[1] != 12 {
		t.Fatalf("inventory mismatch: %+v", got.InventoryItems)
	}
	if len(got.Teleporters) != 1 || got.Teleporters[0].EventNum != 1000 {
		t.Fatalf("teleporter mismatch: %+v", got.Teleporters)
	}
	if !got.GameFlags.Get(1234) || !got.GameFlags.Get(5000) {
		t.Fatal("expected set flags to survive round trip")
	}

	// Freeware has no field for either — Encode must silently drop them
	// rather than error, matching the original release having neither.
	if got.Difficulty != state.DifficultyNormal {
		t.Fatalf("expected freeware decode to report DifficultyNormal, got %v", got.Difficulty)
	}
	if got.EquippedItems != 0 {
		t.Fatalf("expected freeware decode to report zero EquippedItems, got %v", got.EquippedItems)
	}
}

func TestFormatForVariant(t *testing.T) {
	cases := []struct {
		v    constants.Variant
		want Format
	}{
		{constants.VariantFreeware, FormatFreeware},
		{constants.VariantCSPlus, FormatCSPlus},
		{constants.VariantSwitch, FormatCSPlus},
		{constants.VariantDemo, FormatCSPlus},
	}
	for _, c := range cases {
		if got := FormatForVariant(c.v); got != c.want {
			t.Fatalf("FormatForVariant(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	if _, _, err := Decode([]byte{0, 0, 0, 0, 0, 0, 0, 0}); err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestDecodeRejectsTruncatedBuffer(t *testing.T) {
	flags := bitflags.New(bitflags.GameFlagCount, "game_flags")
	data := Encode(&Record{GameFlags: flags}, FormatCSPlus)
	if _, _, err := Decode(data[:len(data)-5]); err == nil {
		t.Fatal("expected error for truncated CS+ buffer")
	}

	freewareData := Encode(&Record{GameFlags: flags}, FormatFreeware)
	if _, _, err := Decode(freewareData[:len(freewareData)-5]); err == nil {
		t.Fatal("expected error for truncated freeware buffer")
	}
}

func TestDecodeDoesNotMutateOnFailure(t *testing.T) {
	flags := bitflags.New(bitflags.GameFlagCount, "game_flags")
	data := Encode(&Record{GameFlags: flags}, FormatCSPlus)
	truncated := data[:len(data)-2]
	before := append([]byte(nil), truncated...)
	_, _, _ = Decode(truncated)
	if !bytes.Equal(before, truncated) {
		t.Fatal("Decode must not mutate its input buffer")
	}
}
