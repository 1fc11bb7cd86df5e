package debugger

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/hearthlab/cavern-core/internal/stage"
)

// tileColor gives a coarse color per tile: one shade for solid tiles and
// one for every other non-empty tile, just enough for a developer to
// eyeball solid ground in an exported stage, not a texture-accurate render
// (textures are opaque host assets, §1).
func tileColor(a stage.TileAttr) string {
	switch {
	case a.IsSolid():
		return "fill:#555555"
	default:
		return "fill:#101018"
	}
}

// ExportSVG renders a stage's foreground tile grid as an SVG document,
// one rect per tile, for the debugger's "export map" command — grounded
// on dungo's graph-to-SVG exporter, trimmed to a flat tile raster instead
// of a node/edge graph.
func ExportSVG(m *stage.Map, tilePx int) ([]byte, error) {
	if m == nil || m.Foreground == nil {
		return nil, fmt.Errorf("debugger: export: nil map")
	}
	if tilePx <= 0 {
		tilePx = 8
	}
	w := m.Width * tilePx
	h := m.Height * tilePx

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(w, h)
	canvas.Rect(0, 0, w, h, "fill:#000000")

	for ty := 0; ty < m.Height; ty++ {
		for tx := 0; tx < m.Width; tx++ {
			id := m.Foreground.At(tx, ty)
			if id == 0 {
				continue
			}
			attr := m.Attrs.At(id)
			canvas.Rect(tx*tilePx, ty*tilePx, tilePx, tilePx, tileColor(attr))
		}
	}

	for _, wr := range m.Water {
		canvas.Rect(
			wr.Bounds.Left*tilePx, wr.Bounds.Top*tilePx,
			wr.Bounds.Width()*tilePx, wr.Bounds.Height()*tilePx,
			"fill:#2040a0;fill-opacity:0.35",
		)
	}

	canvas.End()
	return buf.Bytes(), nil
}
