package fx

import "github.com/hearthlab/cavern-core/internal/fixedpoint"

// popupLifetimeTicks matches the source's fixed 80-tick display window
// before a damage/EXP number popup clears itself.
const popupLifetimeTicks uint16 = 80

// popupRiseTicks is how long the popup keeps drifting upward before
// holding in place (number_popup.rs's "tick 0-32: move up").
const popupRiseTicks uint16 = 32

// NumberPopup is a floating damage/EXP number spawned by the NPC and
// bullet subsystems on a hit, ported from NumberPopup in number_popup.rs.
type NumberPopup struct {
	X, Y         fixedpoint.Subpixel
	PrevX, PrevY fixedpoint.Subpixel

	value        int16
	valueDisplay int16
	counter      uint16
}

// NewNumberPopup returns a popup with no pending value.
func NewNumberPopup() *NumberPopup { return &NumberPopup{} }

// SetValue overwrites the pending (not-yet-displayed) delta.
func (p *NumberPopup) SetValue(v int16) { p.value = v }

// AddValue accumulates a delta onto the pending value, letting several
// hits within the same tick merge into a single popup.
func (p *NumberPopup) AddValue(v int16) { p.value += v }

// Tick folds any pending value into the displayed total and advances the
// display window, clearing the popup once its lifetime elapses.
func (p *NumberPopup) Tick() {
	if p.value != 0 {
		p.valueDisplay += p.value
		p.value = 0
		if p.counter > popupRiseTicks {
			p.counter = popupRiseTicks
		}
	}
	if p.valueDisplay == 0 {
		return
	}

	p.counter++
	if p.counter >= popupLifetimeTicks {
		p.counter = 0
		p.valueDisplay = 0
	}
}

// Displayed reports the currently-shown total and whether the popup is
// visible at all (a zero total means nothing to draw).
func (p *NumberPopup) Displayed() (int16, bool) {
	return p.valueDisplay, p.valueDisplay != 0
}

// YOffset returns the upward drift in subpixel-scale units for the
// current tick, ramping from 0 to popupRiseTicks/2 pixels then holding.
func (p *NumberPopup) YOffset() float64 {
	rise := p.counter
	if rise > popupRiseTicks {
		rise = popupRiseTicks
	}
	return float64(rise) * 0.5
}
