package stage

import "github.com/hearthlab/cavern-core/internal/fixedpoint"

// BackgroundType selects one of the ten background rendering/physics
// variants (§3 StageData); Water overlays physics-affecting water.
type BackgroundType int

const (
	BackgroundTiledStatic BackgroundType = iota
	BackgroundTiledParallax
	BackgroundTiled
	BackgroundWater
	BackgroundBlack
	BackgroundScrolling
	BackgroundOutsideWind
	BackgroundOutside
	BackgroundOutsideUnknown
	BackgroundWaterway
)

// BackgroundTypeFromByte maps a raw stage-table byte to a BackgroundType, defaulting to
// Black for unrecognized values the way the source logs-and-falls-back.
func BackgroundTypeFromByte(v byte) BackgroundType {
	if v <= byte(BackgroundWaterway) {
		return BackgroundType(v)
	}
	return BackgroundBlack
}

// WaterRegionKind distinguishes a visible animated surface from a plain
// tinted depth region (§4.6).
type WaterRegionKind int

const (
	WaterLine WaterRegionKind = iota
	WaterDepth
)

// WaterRegion is one water area declared by the stage, in tile coordinates.
type WaterRegion struct {
	Kind     WaterRegionKind
	Bounds   fixedpoint.Rect[int]
	ColorIdx uint8
}

// StageData names the stage's assets and metadata (§3).
type StageData struct {
	Tileset        string
	Background     string
	BackgroundType BackgroundType
	NPC1, NPC2     string // NPC spritesheet names
	BossNo         int
	DisplayName    map[string]string // locale code -> localized name
	TileSize       int32             // 8 or 16 pixels
}

// Map carries the tile grid(s) and stage-level geometry (§3 Stage).
type Map struct {
	Width, Height int // in tiles
	TileSize      int32
	Foreground    *TileGrid
	Attrs         *AttrBank
	Water         []WaterRegion
	PxPack        *PxPackMap // non-nil for layered parallax stages
}

// TileAt returns the collision attribute for the tile under the given
// world-space subpixel coordinates, 0 (empty) outside the grid.
func (m *Map) TileAt(worldX, worldY fixedpoint.Subpixel) TileAttr {
	tx := int(fixedpoint.TileIndex(worldX, m.TileSize))
	ty := int(fixedpoint.TileIndex(worldY, m.TileSize))
	return m.Attrs.At(m.Foreground.At(tx, ty))
}

// ChangeTile mutates a breakable tile at tile coordinates (tx, ty),
// returning whether the tile actually changed (§4.2, §8 invariant 6).
func (m *Map) ChangeTile(tx, ty int, newID byte) bool {
	return m.Foreground.Set(tx, ty, newID)
}

// Stage bundles a map with its descriptive metadata (§3).
type Stage struct {
	Data StageData
	Map  *Map
}
