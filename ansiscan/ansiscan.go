// Package ansiscan scans raw ANSI byte streams (not ziyy markup) for text
// runs and CSI SGR sequences. It backs the CLI's `-e/--ansi` passthrough
// mode and the render package's Ansi synthetic tag, which folds a raw
// escape's SGR parameters into the current style-stack frame in place
// instead of pushing a new one.
//
// Grounded on importer/ansi/tokenizer.go's C0/C1/CSI dispatch loop and
// collectParams, narrowed from the teacher's full terminal-control
// vocabulary (cursor movement, DCS, OSC, SAUCE) down to the two event
// kinds this module's render pipeline actually consumes: literal text,
// and SGR parameter lists. Other CSI/C1 sequences are preserved verbatim
// as Other events so passthrough mode never drops bytes.
package ansiscan

import (
	"strconv"
	"strings"
)

// EventKind discriminates the Event sum type.
type EventKind int8

const (
	EventText EventKind = iota
	EventSGR            // CSI Ps... m
	EventOther          // any other C0/C1/CSI/OSC/DCS sequence, passed through verbatim
)

// Event is one unit of a raw ANSI scan.
type Event struct {
	Kind   EventKind
	Text   string // EventText, EventOther: raw bytes to pass through unchanged
	Params []int  // EventSGR: decoded numeric parameters, empty param -> 0
}

// Scan splits src into a sequence of Events. It never errors: any escape
// it doesn't recognize as a complete SGR sequence is emitted verbatim as
// an EventOther, since passthrough mode must never drop or reject input.
func Scan(src string) []Event {
	var events []Event
	i := 0
	for i < len(src) {
		c := src[i]
		if c != 0x1b {
			j := i
			for j < len(src) && src[j] != 0x1b {
				j++
			}
			events = append(events, Event{Kind: EventText, Text: src[i:j]})
			i = j
			continue
		}

		if i+1 >= len(src) {
			events = append(events, Event{Kind: EventOther, Text: src[i:]})
			break
		}
		if src[i+1] != '[' {
			// C1/other escape (OSC, DCS, simple ESC x): pass through
			// verbatim as a two-byte Other event (ESC and the byte after it).
			events = append(events, Event{Kind: EventOther, Text: src[i : i+2]})
			i += 2
			continue
		}

		end, final, params := scanCSI(src, i+2)
		raw := src[i:end]
		if final == 'm' {
			events = append(events, Event{Kind: EventSGR, Params: params})
		} else {
			events = append(events, Event{Kind: EventOther, Text: raw})
		}
		i = end
	}
	return events
}

// scanCSI reads CSI parameter bytes starting at pos (just after `ESC [`)
// until a final byte (0x40-0x7e) or end of input. Returns the index past
// the final byte, the final byte itself (0 if truncated), and the
// decoded numeric parameters.
func scanCSI(src string, pos int) (end int, final byte, params []int) {
	start := pos
	for pos < len(src) {
		b := src[pos]
		if b >= 0x40 && b <= 0x7e {
			final = b
			pos++
			break
		}
		pos++
	}
	raw := src[start:pos]
	if final != 0 {
		raw = src[start : pos-1]
	}
	for _, f := range strings.Split(raw, ";") {
		if f == "" {
			params = append(params, 0)
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			n = 0
		}
		params = append(params, n)
	}
	if raw == "" {
		params = nil
	}
	return pos, final, params
}
