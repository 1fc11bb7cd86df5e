// Package debugger implements the Live Debugger / command-line TUI named
// in §2 and §9 ("a debugger overlay belongs outside the simulation core,
// wired through the same watch-expression grammar as in-game flag
// displays"): a tcell frontend over a running engine.Engine, a TSC
// decompile-to-clipboard command, and an SVG stage exporter.
package debugger

import (
	"fmt"
	"strings"

	"github.com/hearthlab/cavern-core/internal/tsc"
)

// Decompile renders a parsed Program back into readable script source,
// the inverse of tsc.Parse, for the debugger's "copy decompiled event"
// command. It is not guaranteed to byte-match the original source (text
// encoding/whitespace choices are not preserved) but reproduces every
// opcode and its arguments in source order.
func Decompile(event uint16, prog tsc.Program) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%04d\n", event)
	for _, op := range prog {
		switch op.Kind {
		case tsc.OpText:
			b.WriteString(op.Text)
		case tsc.OpCode:
			b.WriteString("<")
			b.WriteString(op.Name)
			for j, a := range op.Args {
				if j > 0 {
					b.WriteString(":")
				}
				fmt.Fprintf(&b, "%04d", a)
			}
		}
	}
	b.WriteString("\n")
	return b.String()
}

// DecompileAll renders every event in a program set, in ascending event
// order, concatenated as one buffer suitable for a single clipboard copy.
func DecompileAll(programs map[uint16]tsc.Program) string {
	ids := make([]uint16, 0, len(programs))
	for id := range programs {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	var b strings.Builder
	for _, id := range ids {
		b.WriteString(Decompile(id, programs[id]))
	}
	return b.String()
}
