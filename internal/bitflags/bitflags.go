// Package bitflags implements the packed boolean bitvectors backing the
// three persistence tiers of game state: save-persisted game flags,
// per-run skip flags, and per-stage map flags (§4.4, §5, Glossary).
package bitflags

import "log"

// BitVec is a fixed-size packed bit array, one byte per 8 bits, mirroring
// util/bitvec.rs. Out-of-range access never panics: Get clamps to false and
// Set is a logged no-op, matching §7's "out-of-bounds flag writes: logged,
// silently clamped" policy.
type BitVec struct {
	bits []byte
	size int
	name string // used only in the out-of-range warning
}

// New creates a BitVec of the given bit size, all bits clear.
func New(size int, name string) *BitVec {
	return &BitVec{bits: make([]byte, size/8+1), size: size, name: name}
}

// Len returns the number of addressable bits.
func (b *BitVec) Len() int { return b.size }

// Get returns the bit at index, or false if index is out of range.
func (b *BitVec) Get(index int) bool {
	if index < 0 || index >= b.size {
		return false
	}
	return b.bits[index/8]&(1<<(uint(index)%8)) != 0
}

// Set writes the bit at index; out-of-range indices are logged and ignored.
func (b *BitVec) Set(index int, v bool) {
	if index < 0 || index >= b.size {
		log.Printf("bitflags: %s set(%d) out of range [0,%d)", b.name, index, b.size)
		return
	}
	mask := byte(1 << (uint(index) % 8))
	if v {
		b.bits[index/8] |= mask
	} else {
		b.bits[index/8] &^= mask
	}
}

// CopyTo copies up to len(dst) bytes of the packed representation into dst,
// returning the number of bytes copied (used by save-file serialization).
func (b *BitVec) CopyTo(dst []byte) int {
	n := min(len(b.bits), len(dst))
	copy(dst[:n], b.bits[:n])
	return n
}

// CopyFrom loads packed bytes back into the vector (save-file load).
func (b *BitVec) CopyFrom(src []byte) {
	n := min(len(b.bits), len(src))
	copy(b.bits[:n], src[:n])
}

// Raw exposes the packed bytes directly (read-only use: hashing, debugging).
func (b *BitVec) Raw() []byte { return b.bits }

// Standard tier sizes (§3 SharedGameState, Glossary).
const (
	GameFlagCount = 8000
	SkipFlagCount = 64
	MapFlagCount  = 128
)

// Flags bundles the three independent tiers carried by SharedGameState.
type Flags struct {
	Game *BitVec // persisted in save files
	Skip *BitVec // persists per run; lets TSC skip cutscenes on replay
	Map  *BitVec // resets on stage entry
}

// NewFlags allocates a fresh set of all three tiers at their spec sizes.
func NewFlags() *Flags {
	return &Flags{
		Game: New(GameFlagCount, "game_flags"),
		Skip: New(SkipFlagCount, "skip_flags"),
		Map:  New(MapFlagCount, "map_flags"),
	}
}

// ResetMapFlags clears the per-stage tier; called on stage entry.
func (f *Flags) ResetMapFlags() {
	f.Map = New(MapFlagCount, "map_flags")
}
