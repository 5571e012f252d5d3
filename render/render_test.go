package render

import (
	"testing"

	"ziyy/style"
)

func renderToString(t *testing.T, source string, opts Options) string {
	t.Helper()
	sink := NewBufferSink()
	r := New(sink, opts)
	if err := r.Render(source); err != nil {
		t.Fatalf("Render(%q): %v", source, err)
	}
	return sink.String()
}

func TestRenderSimpleBold(t *testing.T) {
	got := renderToString(t, "<b>hi</b>", Options{})
	want := "\x1b[1mhi\x1b[22m"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderColorTagBareValue(t *testing.T) {
	got := renderToString(t, "<c red>hi</c>", Options{})
	want := "\x1b[31mhi\x1b[39m"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderColorTagRGBCall(t *testing.T) {
	got := renderToString(t, `<c rgb='150,75,0'>hi</c>`, Options{})
	want := "\x1b[38;2;150;75;0mhi\x1b[39m"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderDivWithHexColorAttribute(t *testing.T) {
	got := renderToString(t, `<div c='#fff'>hi</div>`, Options{})
	want := "\x1b[38;2;255;255;255mhi\x1b[39m"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderNestedBoldAndColor(t *testing.T) {
	got := renderToString(t, "<b><c blue>hi</c></b>", Options{})
	want := "\x1b[1m\x1b[34mhi\x1b[39m\x1b[22m"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// TestRenderBoldDimDirectTransition is the exact byte trace for the
// Bold/Dim direct-transition special case: real terminals stack codes 1
// and 2 rather than clearing one another, so moving straight between
// them must emit 22 first.
func TestRenderBoldDimDirectTransition(t *testing.T) {
	got := renderToString(t, "<b>a<d>b</d>c</b>", Options{})
	want := "\x1b[1ma\x1b[22;2mb\x1b[22;1mc\x1b[22m"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderLetBinding(t *testing.T) {
	got := renderToString(t, `<let name='g' c='red'/><g>hi</g>`, Options{})
	want := "\x1b[31mhi\x1b[39m"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderLetBindingUnknown(t *testing.T) {
	sink := NewBufferSink()
	r := New(sink, Options{})
	err := r.Render(`<g>hi</g>`)
	if err == nil {
		t.Fatalf("expected error for unbound tag name")
	}
}

func TestRenderPrePreservesWhitespace(t *testing.T) {
	got := renderToString(t, "<pre>a   b\nc</pre>", Options{})
	want := "a   b\nc"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderCollapsesWhitespaceOutsidePre(t *testing.T) {
	got := renderToString(t, "a   b\nc", Options{})
	want := "a b c"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderBrCount(t *testing.T) {
	got := renderToString(t, `a<br n=3/>b`, Options{})
	want := "a\n\n\nb"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderBrZero(t *testing.T) {
	got := renderToString(t, `a<br n=0/>b`, Options{})
	want := "ab"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderEmptyInput(t *testing.T) {
	got := renderToString(t, "", Options{})
	if got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestRenderUnclosedTagFlushesResetAtEof(t *testing.T) {
	got := renderToString(t, "<b>hi", Options{})
	want := "\x1b[1mhi\x1b[0m"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderMismatchedCloseErrors(t *testing.T) {
	sink := NewBufferSink()
	r := New(sink, Options{})
	err := r.Render("<b>hi</i>")
	if err == nil {
		t.Fatalf("expected mismatched tag error")
	}
}

func TestRenderEmptyCloseWildcard(t *testing.T) {
	got := renderToString(t, "<b>hi</>", Options{})
	want := "\x1b[1mhi\x1b[22m"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderLegacyModeFullResetOnTransition(t *testing.T) {
	got := renderToString(t, "<b>hi</b>", Options{Legacy: true})
	want := "\x1b[1mhi\x1b[0m"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteIncrementalThenClose(t *testing.T) {
	sink := NewBufferSink()
	r := New(sink, Options{})
	if err := r.Write("<b>a"); err != nil {
		t.Fatalf("Write 1: %v", err)
	}
	if err := r.Write("b</b>"); err != nil {
		t.Fatalf("Write 2: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	got := sink.String()
	want := "\x1b[1mab\x1b[22m"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteRawAnsiFoldsIntoCurrentFrame(t *testing.T) {
	sink := NewBufferSink()
	r := New(sink, Options{})
	if err := r.WriteRawAnsi("\x1b[31mred text"); err != nil {
		t.Fatalf("WriteRawAnsi: %v", err)
	}
	if err := r.Render("<b>more</b>"); err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := sink.String()
	want := "\x1b[31mred text\x1b[1mmore\x1b[22m"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	top := r.top()
	if top.Accum.FgColor.Kind != style.ColorAnsiBase || top.Accum.FgColor.Index != 1 {
		t.Fatalf("expected root accum fg=red after passthrough, got %+v", top.Accum.FgColor)
	}
}

func TestTreeSinkRecordsNodes(t *testing.T) {
	sink := NewTreeSink()
	r := New(sink, Options{})
	if err := r.Render("<b>hi</b>"); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(sink.Nodes) == 0 {
		t.Fatalf("expected at least one tree node")
	}
}
