package debugger

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/hearthlab/cavern-core/internal/engine"
	"github.com/hearthlab/cavern-core/internal/exprvm"
)

// TUI is the tcell-backed Live Debugger frontend (§2, §9): a scrollable
// status panel over a running engine plus a one-line command prompt for
// watch expressions, flag toggles, map export, and decompile-to-clipboard.
// Grounded on the teacher's terminal renderer, trimmed from a full game
// frontend down to a read-mostly status overlay.
type TUI struct {
	screen tcell.Screen
	engine *engine.Engine

	watches []string
	log     []string
	input   string
	quit    bool
}

// NewTUI constructs a debugger bound to eng, allocating but not yet
// initializing its screen.
func NewTUI(eng *engine.Engine) (*TUI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, engine.Wrap(engine.ErrWindow, "tcell.NewScreen", err)
	}
	return &TUI{screen: screen, engine: eng}, nil
}

// Init brings up the terminal screen. Call Close when done.
func (t *TUI) Init() error {
	if err := t.screen.Init(); err != nil {
		return engine.Wrap(engine.ErrWindow, "screen init", err)
	}
	t.screen.SetStyle(tcell.StyleDefault)
	return nil
}

// Close tears down the terminal screen.
func (t *TUI) Close() {
	t.screen.Fini()
}

func (t *TUI) logf(format string, args ...interface{}) {
	t.log = append(t.log, fmt.Sprintf(format, args...))
	if len(t.log) > 200 {
		t.log = t.log[len(t.log)-200:]
	}
}

// runCommand interprets one line typed at the prompt. Recognized verbs:
//
//	watch <expr>      add a watch expression evaluated every redraw
//	unwatch <n>       remove watch index n
//	copy <event>      decompile event n and place it on the system clipboard
//	export <path>     write the current stage to an SVG file at path
//	quit              exit the debugger
//
// Anything else is evaluated once as a bare expression and logged.
func (t *TUI) runCommand(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	fields := strings.Fields(line)
	verb := fields[0]

	switch verb {
	case "quit", "q":
		t.quit = true
	case "watch":
		expr := strings.TrimSpace(strings.TrimPrefix(line, verb))
		t.watches = append(t.watches, expr)
	case "unwatch":
		var n int
		if _, err := fmt.Sscanf(line, "unwatch %d", &n); err == nil && n >= 0 && n < len(t.watches) {
			t.watches = append(t.watches[:n], t.watches[n+1:]...)
		}
	case "copy":
		var ev uint16
		if _, err := fmt.Sscanf(line, "copy %d", &ev); err != nil {
			t.logf("usage: copy <event>")
			return
		}
		vm := t.engine.Scripts.Resolve(ev)
		if vm == nil {
			t.logf("no such event %d", ev)
			return
		}
		text := Decompile(ev, vm.Programs[ev])
		if err := clipboard.WriteAll(text); err != nil {
			t.logf("clipboard: %v", err)
			return
		}
		t.logf("copied event %d (%d bytes) to clipboard", ev, len(text))
	case "export":
		path := strings.TrimSpace(strings.TrimPrefix(line, verb))
		if path == "" || t.engine.Stage == nil {
			t.logf("usage: export <path> (stage must be loaded)")
			return
		}
		data, err := ExportSVG(t.engine.Stage.Map, 8)
		if err != nil {
			t.logf("export: %v", err)
			return
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.logf("export: %v", err)
			return
		}
		t.logf("export: wrote %d bytes to %s", len(data), path)
	default:
		v, err := exprvm.EvalString(line, EngineEnv{Engine: t.engine})
		if err != nil {
			t.logf("error: %v", err)
			return
		}
		t.logf("%s = %v", line, v)
	}
}

func (t *TUI) drawLine(y int, s string, style tcell.Style) {
	for x, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
	}
}

func (t *TUI) render() {
	t.screen.Clear()
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	t.drawLine(0, fmt.Sprintf("tick=%d npc=%d bullet=%d caret=%d",
		t.engine.State.TickCount, t.engine.NPCs.Count(), t.engine.Bullets.Count(), t.engine.Carets.Count()), statusStyle)

	row := 2
	for i, w := range t.watches {
		v, err := exprvm.EvalString(w, EngineEnv{Engine: t.engine})
		if err != nil {
			t.drawLine(row, fmt.Sprintf("[%d] %s -> error: %v", i, w, err), tcell.StyleDefault.Foreground(tcell.ColorRed))
		} else {
			t.drawLine(row, fmt.Sprintf("[%d] %s = %v", i, w, v), tcell.StyleDefault)
		}
		row++
	}

	row++
	for _, line := range tailN(t.log, 10) {
		t.drawLine(row, line, tcell.StyleDefault.Foreground(tcell.ColorGray))
		row++
	}

	_, h := t.screen.Size()
	t.drawLine(h-1, "> "+t.input, tcell.StyleDefault.Reverse(true))
	t.screen.Show()
}

func tailN(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}

// Run drives the debugger's event loop, redrawing at a fixed interval and
// reacting to keypresses: Enter submits the prompt, Backspace edits it,
// any other rune appends to it. Returns when the user types "quit".
func (t *TUI) Run() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	t.render()
	for !t.quit {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEnter:
					t.runCommand(t.input)
					t.input = ""
				case tcell.KeyBackspace, tcell.KeyBackspace2:
					if len(t.input) > 0 {
						t.input = t.input[:len(t.input)-1]
					}
				case tcell.KeyEscape, tcell.KeyCtrlC:
					t.quit = true
				case tcell.KeyRune:
					t.input += string(ev.Rune())
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
			t.render()
		case <-ticker.C:
			t.render()
		}
	}
}
