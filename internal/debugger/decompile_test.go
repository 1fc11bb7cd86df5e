package debugger

import (
	"strings"
	"testing"

	"github.com/hearthlab/cavern-core/internal/tsc"
)

func TestDecompileRoundTripsOpcodesAndText(t *testing.T) {
	prog := tsc.Program{
		{Kind: tsc.OpText, Text: "Hello"},
		{Kind: tsc.OpCode, Name: "MSG"},
		{Kind: tsc.OpCode, Name: "FL+", Args: []int32{1000}},
	}
	out := Decompile(5, prog)
	if !strings.Contains(out, "#0005") {
		t.Fatalf("missing event header: %q", out)
	}
	if !strings.Contains(out, "Hello") || !strings.Contains(out, "<MSG") || !strings.Contains(out, "<FL+1000") {
		t.Fatalf("decompile missing content: %q", out)
	}
}

func TestDecompileAllOrdersByEvent(t *testing.T) {
	programs := map[uint16]tsc.Program{
		20: {{Kind: tsc.OpText, Text: "b"}},
		5:  {{Kind: tsc.OpText, Text: "a"}},
	}
	out := DecompileAll(programs)
	if strings.Index(out, "#0005") > strings.Index(out, "#0020") {
		t.Fatalf("events not in ascending order: %q", out)
	}
}
