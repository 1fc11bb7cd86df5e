package stage

import "github.com/hearthlab/cavern-core/internal/fixedpoint"

// CollisionFlags is the per-tick result of resolving one moving entity's
// hit_bounds against the tile grid (§3 NPC "runtime collision flags").
type CollisionFlags struct {
	HitLeftWall, HitRightWall   bool
	HitTopWall, HitBottomWall   bool
	HitLeftSlope, HitRightSlope bool
	InWater                     bool
	AnyFlag                     bool
}

func (f *CollisionFlags) set() { f.AnyFlag = true }

// ResolveMove steps a moving body's hit_bounds (centered on (x, y), half
// extents halfW/halfH) by (dx, dy) subpixels and resolves it against the
// map's tile attributes using the fixed precedence of §4.2: slopes first,
// then walls, then ceiling/floor — applied per axis, horizontal before
// vertical, matching the source's integrate-then-resolve order.
func ResolveMove(m *Map, x, y, halfW, halfH, dx, dy fixedpoint.Subpixel) (fixedpoint.Subpixel, fixedpoint.Subpixel, CollisionFlags) {
	var flags CollisionFlags

	nx := x + dx
	if hit := resolveWallX(m, &nx, y, halfW, halfH, dx); hit {
		if dx < 0 {
			flags.HitLeftWall = true
		} else if dx > 0 {
			flags.HitRightWall = true
		}
		flags.set()
	}

	ny := y + dy
	if hitSlope := resolveSlopeY(m, nx, &ny, halfH, dy); hitSlope {
		if dx < 0 {
			flags.HitLeftSlope = true
		} else if dx > 0 {
			flags.HitRightSlope = true
		}
		flags.set()
	} else if hit := resolveWallY(m, nx, &ny, halfH, dy); hit {
		if dy < 0 {
			flags.HitTopWall = true
		} else {
			flags.HitBottomWall = true
		}
		flags.set()
	}

	if m.TileAt(nx, ny).Classify() == KindWater {
		flags.InWater = true
		flags.set()
	}

	return nx, ny, flags
}

// resolveWallX blocks horizontal movement into a solid tile, clamping *x to
// the tile boundary on contact.
func resolveWallX(m *Map, x *fixedpoint.Subpixel, y, halfW, halfH, dx fixedpoint.Subpixel) bool {
	if dx == 0 {
		return false
	}
	tileSize := m.TileSize * fixedpoint.PerPixel
	var leading fixedpoint.Subpixel
	if dx > 0 {
		leading = *x + halfW
	} else {
		leading = *x - halfW
	}
	// Probe both the top and bottom of the hit box so a tall body can't
	// slip through a solid tile that only overlaps part of its height.
	if !m.TileAt(leading, y-halfH+1).IsSolid() && !m.TileAt(leading, y+halfH-1).IsSolid() {
		return false
	}
	tileBoundary := (leading / tileSize) * tileSize
	if dx > 0 {
		*x = tileBoundary - halfW
	} else {
		*x = tileBoundary + tileSize + halfW
	}
	return true
}

// resolveWallY blocks vertical movement into a solid or one-way-floor tile.
func resolveWallY(m *Map, x fixedpoint.Subpixel, y *fixedpoint.Subpixel, halfH, dy fixedpoint.Subpixel) bool {
	if dy == 0 {
		return false
	}
	tileSize := m.TileSize * fixedpoint.PerPixel
	var leading fixedpoint.Subpixel
	if dy > 0 {
		leading = *y + halfH
	} else {
		leading = *y - halfH
	}
	attr := m.TileAt(x, leading)
	kind := attr.Classify()
	blocked := kind == KindSolid || (kind == KindOneWayFloor && dy > 0)
	if !blocked {
		return false
	}
	tileBoundary := (leading / tileSize) * tileSize
	if dy > 0 {
		*y = tileBoundary - halfH
	} else {
		*y = tileBoundary + tileSize + halfH
	}
	return true
}

// resolveSlopeY snaps *y along a slope tile's normal when the bottom edge
// of the hit box enters it while falling, or the top edge while rising.
func resolveSlopeY(m *Map, x fixedpoint.Subpixel, y *fixedpoint.Subpixel, halfH, dy fixedpoint.Subpixel) bool {
	if dy == 0 {
		return false
	}
	tileSize := m.TileSize * fixedpoint.PerPixel
	var probe fixedpoint.Subpixel
	if dy > 0 {
		probe = *y + halfH
	} else {
		probe = *y - halfH
	}
	attr := m.TileAt(x, probe)
	if attr.Classify() != KindSlope {
		return false
	}
	_, ny := attr.SlopeNormal()
	tileTop := (probe / tileSize) * tileSize
	if ny < 0 {
		*y = tileTop + halfH
	} else {
		*y = tileTop + tileSize - halfH
	}
	return true
}
