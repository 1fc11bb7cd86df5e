package tsc

import (
	"fmt"
	"strconv"
	"strings"
)

// OpKind is a parsed script element: either literal text content or an
// opcode invocation.
type OpKind int

const (
	OpText OpKind = iota
	OpCode
)

// Op is one parsed element of a script body.
type Op struct {
	Kind OpKind
	Text string   // OpText: message content, in the active encoding's decoded form
	Name string   // OpCode: the three-letter mnemonic, e.g. "MSG", "FLJ"
	Args []int32  // OpCode: numeric argument groups, in NNNN / :NNNN source order
}

// Program is one event's fully parsed opcode/text stream.
type Program []Op

// ParseError reports a malformed script; per §7 parse errors stop the
// script rather than panicking.
type ParseError struct{ Reason string }

func (e *ParseError) Error() string { return fmt.Sprintf("tsc: parse: %s", e.Reason) }

// Parse splits decrypted script source into per-event programs keyed by
// event id, recognizing `#NNNN` event markers and `<AAA` opcodes
// optionally followed by NNNN and :NNNN argument groups (§4.3 opcode
// syntax). Anything else is literal message text.
func Parse(src string) (map[uint16]Program, error) {
	events := make(map[uint16]Program)
	var cur uint16
	haveCur := false

	i := 0
	for i < len(src) {
		switch {
		case src[i] == '#':
			end := i + 1
			for end < len(src) && isDigit(src[end]) {
				end++
			}
			if end == i+1 {
				return nil, &ParseError{Reason: "'#' not followed by an event number"}
			}
			n, err := strconv.ParseUint(src[i+1:end], 10, 16)
			if err != nil {
				return nil, &ParseError{Reason: "bad event number: " + err.Error()}
			}
			cur = uint16(n)
			haveCur = true
			if _, ok := events[cur]; !ok {
				events[cur] = nil
			}
			i = end
			if i < len(src) && src[i] == '\n' {
				i++
			}

		case src[i] == '<':
			if i+4 > len(src) {
				return nil, &ParseError{Reason: "truncated opcode"}
			}
			name := src[i+1 : i+4]
			i += 4
			var args []int32
			for i < len(src) && (isDigit(src[i]) || src[i] == ':') {
				sep := src[i] == ':'
				if sep {
					i++
				}
				start := i
				for i < len(src) && isDigit(src[i]) {
					i++
				}
				if i == start {
					break
				}
				n, err := strconv.ParseInt(src[start:i], 10, 32)
				if err != nil {
					return nil, &ParseError{Reason: "bad opcode argument: " + err.Error()}
				}
				args = append(args, int32(n))
			}
			if !haveCur {
				return nil, &ParseError{Reason: "opcode before any #event marker"}
			}
			events[cur] = append(events[cur], Op{Kind: OpCode, Name: name, Args: args})

		default:
			start := i
			for i < len(src) && src[i] != '<' && src[i] != '#' {
				i++
			}
			text := src[start:i]
			if haveCur && strings.TrimSpace(text) != "" {
				events[cur] = append(events[cur], Op{Kind: OpText, Text: text})
			}
		}
	}

	return events, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
