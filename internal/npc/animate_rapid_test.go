package npc

import (
	"testing"

	"pgregory.net/rapid"
)

// TestAnimateStaysInRangeProperty checks the §8 boundary invariant: AnimNum
// stays within [first, last] once animate has wrapped at least once, across
// randomized periods, ranges, and starting values (including values set
// outside the range before the first call, per the "snaps back on next
// wrap" boundary note).
func TestAnimateStaysInRangeProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		first := rapid.Uint16Range(0, 20).Draw(rt, "first")
		last := first + rapid.Uint16Range(0, 20).Draw(rt, "span")
		every := rapid.Uint16Range(0, 5).Draw(rt, "every")
		startAnim := rapid.Uint16Range(0, 40).Draw(rt, "startAnim")

		n := &NPC{AnimNum: startAnim}
		ticks := rapid.IntRange(1, 200).Draw(rt, "ticks")

		wrappedOnce := false
		for i := 0; i < ticks; i++ {
			prev := n.AnimNum
			animate(n, every, first, last)
			if n.AnimCounter == 0 && prev >= last {
				wrappedOnce = true
			}
			if wrappedOnce && (n.AnimNum < first || n.AnimNum > last) {
				rt.Fatalf("AnimNum %d escaped [%d,%d] after a wrap at tick %d", n.AnimNum, first, last, i)
			}
		}
	})
}
