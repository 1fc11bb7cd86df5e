package constants

import "testing"

func TestBuildVariantDefaults(t *testing.T) {
	c := Build(VariantFreeware)
	if c.TextScript.EncodingUTF8 {
		t.Fatal("freeware should default to Shift-JIS")
	}
	if !c.TextScript.Encrypted {
		t.Fatal("freeware TSC should be encrypted by default")
	}

	demo := Build(VariantDemo)
	if demo.TextScript.Encrypted {
		t.Fatal("demo TSC should not be encrypted")
	}
}

func TestPatchOverlayMerges(t *testing.T) {
	doc := []byte(`
tile_size: 32
locale:
  ui.start: "Begin"
stages:
  - id: 99
    tileset: "Lab"
    filename: "lab99"
    names:
      en: "The Lab"
`)
	patch, err := LoadPatch(doc)
	if err != nil {
		t.Fatal(err)
	}

	c := Build(VariantFreeware)
	c.Apply(patch)

	if c.TileSize != 32 {
		t.Fatalf("TileSize = %d, want 32", c.TileSize)
	}
	if c.Locale["ui.start"] != "Begin" {
		t.Fatalf("locale not merged: %+v", c.Locale)
	}
	if len(c.StageTable) != 1 || c.StageTable[0].Filename != "lab99" {
		t.Fatalf("stage table not applied: %+v", c.StageTable)
	}
}

func TestPatchZeroFieldsLeaveBaseUntouched(t *testing.T) {
	c := Build(VariantFreeware)
	before := c.TileSize
	c.Apply(Patch{})
	if c.TileSize != before {
		t.Fatalf("empty patch mutated TileSize: %d -> %d", before, c.TileSize)
	}
}
