// Package water implements the spring-mesh water surface renderer,
// grounded on water_renderer.rs (DynamicWaterColumn.tick, WaterRenderer).
package water

import (
	"github.com/hearthlab/cavern-core/internal/fixedpoint"
	"github.com/hearthlab/cavern-core/internal/stage"
)

// Tuning constants copied verbatim from the source's DynamicWater.
const (
	Tension    = 0.03
	Dampening  = 0.01
	Spread     = 0.02
	ColumnStep = 4 // pixels between spring columns
)

// noCollisionNPCs lists NPC type ids that never perturb the water surface
// (decorative/background types), matching NO_COLL_NPCS in the source.
var noCollisionNPCs = map[uint16]bool{0: true, 3: true, 4: true, 18: true, 191: true, 195: true}

// IsNonInteracting reports whether an NPC type should be excluded from
// water-surface impulse interactions.
func IsNonInteracting(npcType uint16) bool { return noCollisionNPCs[npcType] }

// Column is one vertical spring in the 1-D water mesh.
type Column struct {
	Height float64 // current surface displacement, 0 = at rest
	Speed  float64
	Target float64 // resting height this column relaxes toward
}

// Tick advances one column's spring physics one frame, matching
// `speed += tension*(target-height) - speed*damping; height += speed`.
func (c *Column) Tick() {
	c.Speed += Tension*(c.Target-c.Height) - c.Speed*Dampening
	c.Height += c.Speed
}

// DynamicWater is a horizontal strip of spring columns rendered as an
// animated water line (§4.6 WaterRegion.Kind == WaterLine).
type DynamicWater struct {
	Bounds  fixedpoint.Rect[int32] // world subpixels
	Columns []Column
}

// NewDynamicWater allocates one column per ColumnStep pixels across width.
func NewDynamicWater(bounds fixedpoint.Rect[int32]) *DynamicWater {
	widthPx := int(fixedpoint.ToPixels(bounds.Right - bounds.Left))
	n := widthPx/ColumnStep + 1
	if n < 1 {
		n = 1
	}
	return &DynamicWater{Bounds: bounds, Columns: make([]Column, n)}
}

// Impulse displaces the columns nearest worldX by force, used when an NPC
// or the player crosses the surface.
func (w *DynamicWater) Impulse(worldX fixedpoint.Subpixel, force float64) {
	if len(w.Columns) == 0 {
		return
	}
	rel := worldX - w.Bounds.Left
	idx := int(fixedpoint.ToPixels(rel)) / ColumnStep
	if idx < 0 {
		idx = 0
	}
	if idx >= len(w.Columns) {
		idx = len(w.Columns) - 1
	}
	w.Columns[idx].Speed += force
}

// Tick advances every column's spring physics, then diffuses displacement
// to neighbors by Spread — a two-pass update so propagation is symmetric
// left-to-right and right-to-left within a single frame, as in the source.
func (w *DynamicWater) Tick() {
	for i := range w.Columns {
		w.Columns[i].Tick()
	}

	for pass := 0; pass < 2; pass++ {
		deltas := make([]float64, len(w.Columns))
		for i := range w.Columns {
			if i > 0 {
				d := Spread * (w.Columns[i].Height - w.Columns[i-1].Height)
				w.Columns[i-1].Speed += d
				deltas[i-1] += d
			}
			if i < len(w.Columns)-1 {
				d := Spread * (w.Columns[i].Height - w.Columns[i+1].Height)
				w.Columns[i+1].Speed += d
				deltas[i+1] += d
			}
		}
		for i := range w.Columns {
			w.Columns[i].Height += deltas[i]
		}
	}
}

// DepthRegion is a plain tinted-water area with no surface animation
// (§4.6 WaterRegion.Kind == WaterDepth).
type DepthRegion struct {
	Bounds   fixedpoint.Rect[int32]
	ColorIdx uint8
}

// Renderer owns every dynamic/depth water body for one loaded stage.
type Renderer struct {
	Dynamic []*DynamicWater
	Depth   []DepthRegion
}

// Initialize builds dynamic and depth water bodies from a stage's declared
// water regions, plus — when the stage's BackgroundType is Water — one
// full-width "core water" body covering the whole visible area below the
// waterline, matching WaterRenderer::initialize's special case.
func Initialize(m *stage.Map, bg stage.BackgroundType) *Renderer {
	r := &Renderer{}
	for _, region := range m.Water {
		bounds := fixedpoint.Rect[int32]{
			Left:   fixedpoint.FromPixels(int32(region.Bounds.Left * int(m.TileSize))),
			Top:    fixedpoint.FromPixels(int32(region.Bounds.Top * int(m.TileSize))),
			Right:  fixedpoint.FromPixels(int32(region.Bounds.Right * int(m.TileSize))),
			Bottom: fixedpoint.FromPixels(int32(region.Bounds.Bottom * int(m.TileSize))),
		}
		switch region.Kind {
		case stage.WaterLine:
			r.Dynamic = append(r.Dynamic, NewDynamicWater(bounds))
		case stage.WaterDepth:
			r.Depth = append(r.Depth, DepthRegion{Bounds: bounds, ColorIdx: region.ColorIdx})
		}
	}

	if bg == stage.BackgroundWater {
		full := fixedpoint.Rect[int32]{
			Left: 0, Top: 0,
			Right:  fixedpoint.FromPixels(int32(m.Width) * m.TileSize),
			Bottom: fixedpoint.FromPixels(int32(m.Height) * m.TileSize),
		}
		r.Dynamic = append(r.Dynamic, NewDynamicWater(full))
	}

	return r
}

// Tick advances every dynamic water body one frame.
func (r *Renderer) Tick() {
	for _, d := range r.Dynamic {
		d.Tick()
	}
}
