package style

import "testing"

func TestEncodeTransitionBoldFromNone(t *testing.T) {
	prev := Style{}
	next := Style{Intensity: IntensityBold}
	got := string(EncodeTransition(prev, next))
	if got != "\x1b[1m" {
		t.Fatalf("got %q, want \\x1b[1m", got)
	}
}

func TestEncodeTransitionBoldToNone(t *testing.T) {
	prev := Style{Intensity: IntensityBold}
	next := Style{}
	got := string(EncodeTransition(prev, next))
	if got != "\x1b[22m" {
		t.Fatalf("got %q, want \\x1b[22m", got)
	}
}

// Mirrors spec.md scenario 6: <b>a<d>b</d>c</b>.
func TestIntensityBoldDimDirectTransitions(t *testing.T) {
	root := Style{}
	bStyle := Style{Intensity: IntensityBold}
	dStyle := Style{Intensity: IntensityDim}

	openB := EncodeTransition(root, root.Combine(bStyle))
	if string(openB) != "\x1b[1m" {
		t.Fatalf("open <b>: got %q", openB)
	}

	bAccum := root.Combine(bStyle)
	dAccum := bAccum.Combine(dStyle)
	openD := EncodeTransition(bAccum, dAccum)
	if string(openD) != "\x1b[22;2m" {
		t.Fatalf("open <d> inside <b>: got %q, want \\x1b[22;2m", openD)
	}

	closeD := EncodeTransition(dAccum, bAccum)
	if string(closeD) != "\x1b[22;1m" {
		t.Fatalf("close </d>: got %q, want \\x1b[22;1m", closeD)
	}

	closeB := EncodeTransition(bAccum, root)
	if string(closeB) != "\x1b[22m" {
		t.Fatalf("close </b>: got %q, want \\x1b[22m", closeB)
	}
}

func TestParseHexShortFormExpandsNibbles(t *testing.T) {
	c, err := ParseHex("f0a")
	if err != nil {
		t.Fatal(err)
	}
	if c.R != 0xFF || c.G != 0x00 || c.B != 0xAA {
		t.Fatalf("got %+v, want ff/00/aa", c)
	}
}

func TestColorFgDiffEmitsDefaultOnLeave(t *testing.T) {
	red := Color{Kind: ColorAnsiBase, Index: 1}
	prev := Style{FgColor: red}
	next := Style{}
	got := string(EncodeTransition(prev, next))
	if got != "\x1b[39m" {
		t.Fatalf("got %q, want \\x1b[39m", got)
	}
}

func TestStyleCombineIdentity(t *testing.T) {
	s := Style{Intensity: IntensityBold, Italics: ItalicsPlain}
	if got := s.Combine(Style{}); got != s {
		t.Fatalf("s+zero = %+v, want %+v", got, s)
	}
	if got := (Style{}).Combine(s); got != s {
		t.Fatalf("zero+s = %+v, want %+v", got, s)
	}
}

func TestIntensityUnsetAbsorbsSet(t *testing.T) {
	if got := IntensityBold.Combine(IntensityNoBold); got != IntensityNoBold {
		t.Fatalf("Bold+NoBold = %v, want NoBold", got)
	}
	if got := IntensityNone.Combine(IntensityNoBold); got != IntensityNone {
		t.Fatalf("None+NoBold = %v, want None (nothing to unset)", got)
	}
}

func TestInvertIsIdempotentOnIdentity(t *testing.T) {
	if got := (Style{}).Invert(); !got.IsZero() {
		t.Fatalf("invert(zero) = %+v, want zero", got)
	}
}
