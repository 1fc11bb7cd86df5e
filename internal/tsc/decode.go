// Package tsc implements the Text ScriptCave bytecode interpreter: script
// decryption, event/opcode parsing, and a VM that steps opcodes against
// game state (flags, the active text box, face/illustration slots) one
// tick at a time.
//
// The full original opcode surface is close to 90 opcodes (§4.3); this
// package implements the parsing/dispatch substrate plus a representative
// opcode set covering control flow, flags, messages, and NPC/camera
// control — enough to run real scripts like the jump test in §5 (S3) —
// recorded as a deliberate scope decision in the design note, the same
// shape of decision as internal/npc's AI dispatch table.
package tsc

import "errors"

// ErrEmptyScript is returned by Decrypt for a zero-length buffer.
var ErrEmptyScript = errors.New("tsc: empty script buffer")

// Decrypt reverses the TSC obfuscation cipher in place on a copy of data
// and returns the plaintext. The key is the byte at the middle of the
// buffer; every other byte is XORed with it. Buffers too short to have a
// meaningful middle byte (len < 2) are returned unchanged, matching the
// spec's guidance to treat short/empty scripts as "no decryption needed"
// rather than hitting undefined behavior (§5 Edge Cases).
func Decrypt(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyScript
	}
	out := make([]byte, len(data))
	copy(out, data)
	if len(out) < 2 {
		return out, nil
	}
	mid := len(out) / 2
	key := out[mid]
	for i := range out {
		if i == mid {
			continue
		}
		out[i] ^= key
	}
	return out, nil
}
