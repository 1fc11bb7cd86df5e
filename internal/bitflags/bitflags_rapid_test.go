package bitflags

import (
	"testing"

	"pgregory.net/rapid"
)

// TestSetGetProperty checks the quantified invariant from §8:
// set_flag(i, v); get_flag(i) == v for 0 <= i < 8000; get_flag(i) == false
// for i >= 8000 — across randomized index/value sequences.
func TestSetGetProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		b := New(GameFlagCount, "prop")
		model := make(map[int]bool)

		steps := rapid.IntRange(1, 200).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			idx := rapid.IntRange(-10, GameFlagCount+10).Draw(rt, "idx")
			val := rapid.Bool().Draw(rt, "val")
			b.Set(idx, val)
			if idx >= 0 && idx < GameFlagCount {
				model[idx] = val
			}
		}

		for idx, want := range model {
			if got := b.Get(idx); got != want {
				rt.Fatalf("Get(%d) = %v, want %v", idx, got, want)
			}
		}
		if b.Get(GameFlagCount) || b.Get(GameFlagCount+5) {
			rt.Fatal("out-of-range Get should always be false")
		}
	})
}
