package debugger

import (
	"bytes"
	"testing"

	"github.com/hearthlab/cavern-core/internal/stage"
)

func TestExportSVGProducesValidDocument(t *testing.T) {
	grid := &stage.TileGrid{Width: 4, Height: 3, Tiles: []byte{
		0, 0, 0, 0,
		0, 1, 1, 0,
		1, 1, 1, 1,
	}}
	attrs := &stage.AttrBank{}
	attrs[1] = stage.AttrSolidBlock

	m := &stage.Map{Width: 4, Height: 3, TileSize: 16, Foreground: grid, Attrs: attrs}
	data, err := ExportSVG(m, 10)
	if err != nil {
		t.Fatalf("ExportSVG: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Fatalf("output missing <svg> tag")
	}
	if !bytes.Contains(data, []byte("</svg>")) {
		t.Fatalf("output missing closing </svg> tag")
	}
}

func TestExportSVGRejectsNilMap(t *testing.T) {
	if _, err := ExportSVG(nil, 8); err == nil {
		t.Fatalf("expected error for nil map")
	}
}
