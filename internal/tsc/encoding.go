package tsc

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Encoding selects how raw script bytes outside opcodes are interpreted,
// matching the source's per-locale TextScriptEncoding (UTF8 for CS+/
// Switch builds, Shift-JIS for the original freeware release, §4.3).
type Encoding int

const (
	EncodingShiftJIS Encoding = iota
	EncodingUTF8
)

// MeasureLine returns the pixel width a text-box renderer would need to
// lay out s with face, using golang.org/x/image/font's glyph advance
// metrics — the same measurement facility the stage-select menu and TSC
// text box both need for word wrap and centering.
func MeasureLine(face font.Face, s string) fixed.Int26_6 {
	var width fixed.Int26_6
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			width += face.Kern(prev, r)
		}
		adv, ok := face.GlyphAdvance(r)
		if ok {
			width += adv
		}
		prev = r
	}
	return width
}
