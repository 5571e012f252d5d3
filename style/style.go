// Package style implements the SGR value algebra: one type per dimension
// (intensity, italics, underline, blink, invert/hide/delete/overline/
// propspace, color, font), each with Combine ("+"), Diff ("-") and Invert
// ("!") as described in spec.md §3-4.2.
//
// Grounded on original_source's style/effect/*.rs (the define_effect!/
// define_switch! macro-generated Add/Sub/Not impls) for the algebra
// itself, and on internal/types/sgr.go's Diff/DiffToANSI(previous) shape
// for how a Style becomes bytes.
package style

import "strings"

// Style is the fixed set of SGR dimensions a tag can declare. The zero
// value is the identity style (combining it with anything yields the
// other operand unchanged).
type Style struct {
	Intensity Intensity
	Italics   Italics
	Underline Underline
	Blink     Blink
	Invert    TriState
	Hide      TriState
	Delete    TriState
	Overline  TriState
	Propspace TriState
	Reset     bool
	FgColor   Color
	BgColor   Color
	Font      Font
}

// Combine returns the style that results from applying s, then other.
func (s Style) Combine(other Style) Style {
	return Style{
		Intensity: s.Intensity.Combine(other.Intensity),
		Italics:   s.Italics.Combine(other.Italics),
		Underline: s.Underline.Combine(other.Underline),
		Blink:     s.Blink.Combine(other.Blink),
		Invert:    s.Invert.Combine(other.Invert),
		Hide:      s.Hide.Combine(other.Hide),
		Delete:    s.Delete.Combine(other.Delete),
		Overline:  s.Overline.Combine(other.Overline),
		Propspace: s.Propspace.Combine(other.Propspace),
		Reset:     s.Reset || other.Reset,
		FgColor:   s.FgColor.Combine(other.FgColor),
		BgColor:   s.BgColor.Combine(other.BgColor),
		Font:      s.Font.Combine(other.Font),
	}
}

// Diff returns the minimal Style which, applied after other, produces s.
// Used for the StyleStackEntry bookkeeping invariant (spec.md §3); actual
// byte emission goes through EncodeTransition, which additionally handles
// the Bold/Dim direct-transition special case that a value-only Diff
// cannot express (see intensity.go).
func (s Style) Diff(other Style) Style {
	return Style{
		Intensity: s.Intensity.Diff(other.Intensity),
		Italics:   s.Italics.Diff(other.Italics),
		Underline: s.Underline.Diff(other.Underline),
		Blink:     s.Blink.Diff(other.Blink),
		Invert:    s.Invert.Diff(other.Invert),
		Hide:      s.Hide.Diff(other.Hide),
		Delete:    s.Delete.Diff(other.Delete),
		Overline:  s.Overline.Diff(other.Overline),
		Propspace: s.Propspace.Diff(other.Propspace),
		Reset:     s.Reset && !other.Reset,
		FgColor:   s.FgColor.Diff(other.FgColor),
		BgColor:   s.BgColor.Diff(other.BgColor),
		Font:      s.Font.Diff(other.Font),
	}
}

// Invert returns the delta needed to leave style s (i.e. Diff(zero, s)).
func (s Style) Invert() Style {
	return Style{}.Diff(s)
}

// IsZero reports whether s is the identity style.
func (s Style) IsZero() bool {
	return s == Style{}
}

// EncodeTransition renders the minimal ANSI SGR sequence that moves the
// ambient terminal style from prev to next. This is the render state
// machine's single byte-producing primitive, used both when pushing
// (prev=parent accum, next=child accum) and popping (prev=child accum,
// next=parent accum) a stack frame.
func EncodeTransition(prev, next Style) []byte {
	var codes []string

	codes = append(codes, encodeIntensityTransition(prev.Intensity, next.Intensity)...)

	if next.Italics != prev.Italics {
		if c := next.Italics.Diff(prev.Italics).code(); c != "" {
			codes = append(codes, c)
		}
	}
	if next.Underline != prev.Underline {
		if c := next.Underline.Diff(prev.Underline).code(); c != "" {
			codes = append(codes, c)
		}
	}
	if next.Blink != prev.Blink {
		if c := next.Blink.Diff(prev.Blink).code(); c != "" {
			codes = append(codes, c)
		}
	}
	appendTri(&codes, prev.Invert, next.Invert, "7", "27")
	appendTri(&codes, prev.Hide, next.Hide, "8", "28")
	appendTri(&codes, prev.Delete, next.Delete, "9", "29")
	appendTri(&codes, prev.Overline, next.Overline, "53", "55")
	appendTri(&codes, prev.Propspace, next.Propspace, "56", "57")

	if next.FgColor != prev.FgColor {
		codes = append(codes, next.FgColor.Diff(prev.FgColor).fgCodes()...)
	}
	if next.BgColor != prev.BgColor {
		codes = append(codes, next.BgColor.Diff(prev.BgColor).bgCodes()...)
	}
	if next.Font != prev.Font {
		if c := next.Font.code(); c != "" {
			codes = append(codes, c)
		} else if prev.Font != FontNone {
			codes = append(codes, "10")
		}
	}
	if next.Reset && !prev.Reset {
		codes = append(codes, "0")
	}

	if len(codes) == 0 {
		return nil
	}
	return []byte("\x1b[" + strings.Join(codes, ";") + "m")
}

func appendTri(codes *[]string, prev, next TriState, onCode, offCode string) {
	if next == prev {
		return
	}
	switch next {
	case StateSet:
		*codes = append(*codes, onCode)
	case StateNone, StateUnset:
		*codes = append(*codes, offCode)
	}
}

// Encode renders s as a standalone SGR sequence, i.e. the transition from
// the identity style. Used for previewing a Style outside the render
// stack (debug tree, tests).
func (s Style) Encode() []byte {
	return EncodeTransition(Style{}, s)
}
