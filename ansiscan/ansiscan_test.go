package ansiscan

import "testing"

func TestScanPlainText(t *testing.T) {
	events := Scan("hello")
	if len(events) != 1 || events[0].Kind != EventText || events[0].Text != "hello" {
		t.Fatalf("got %+v", events)
	}
}

func TestScanSingleSGR(t *testing.T) {
	events := Scan("\x1b[31m")
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1: %+v", len(events), events)
	}
	ev := events[0]
	if ev.Kind != EventSGR || len(ev.Params) != 1 || ev.Params[0] != 31 {
		t.Fatalf("got %+v", ev)
	}
}

func TestScanTextAroundSGR(t *testing.T) {
	events := Scan("red\x1b[31mtext\x1b[0mplain")
	want := []EventKind{EventText, EventSGR, EventText, EventSGR, EventText}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(events), len(want), events)
	}
	for i, k := range want {
		if events[i].Kind != k {
			t.Fatalf("event %d: got %v, want %v", i, events[i].Kind, k)
		}
	}
	if events[1].Params[0] != 31 || events[3].Params[0] != 0 {
		t.Fatalf("unexpected params: %+v %+v", events[1], events[3])
	}
}

func TestScanMultiParamSGR(t *testing.T) {
	events := Scan("\x1b[1;38;5;200m")
	ev := events[0]
	want := []int{1, 38, 5, 200}
	if ev.Kind != EventSGR || len(ev.Params) != len(want) {
		t.Fatalf("got %+v", ev)
	}
	for i, p := range want {
		if ev.Params[i] != p {
			t.Fatalf("param %d: got %d, want %d", i, ev.Params[i], p)
		}
	}
}

func TestScanEmptyParamDefaultsToZero(t *testing.T) {
	events := Scan("\x1b[;1m")
	ev := events[0]
	if ev.Kind != EventSGR || len(ev.Params) != 2 || ev.Params[0] != 0 || ev.Params[1] != 1 {
		t.Fatalf("got %+v", ev)
	}
}

func TestScanNonSGRCSIPassesThroughAsOther(t *testing.T) {
	events := Scan("\x1b[2J")
	if len(events) != 1 || events[0].Kind != EventOther || events[0].Text != "\x1b[2J" {
		t.Fatalf("got %+v", events)
	}
}

func TestScanTruncatedEscapeAtEndOfInput(t *testing.T) {
	events := Scan("abc\x1b")
	if len(events) != 2 || events[1].Kind != EventOther {
		t.Fatalf("got %+v", events)
	}
}

func TestScanTruncatedCSIWithNoParamBytes(t *testing.T) {
	events := Scan("abc\x1b[")
	if len(events) != 2 || events[1].Kind != EventOther || events[1].Text != "\x1b[" {
		t.Fatalf("got %+v", events)
	}
}

func TestScanC1EscapePassesThroughAsOther(t *testing.T) {
	events := Scan("\x1bX")
	if len(events) != 1 || events[0].Kind != EventOther || events[0].Text != "\x1bX" {
		t.Fatalf("got %+v", events)
	}
}
