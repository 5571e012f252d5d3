package style

import "strconv"

// Italics covers the italic dimension: plain italics or Fraktur (SGR 20),
// which terminals treat as mutually exclusive alternates of the same
// "non-upright" display, both clearing via the single code 23.
type Italics int8

const (
	ItalicsNone Italics = iota
	ItalicsPlain
	Fraktur
	ItalicsUnset
)

func (v Italics) Combine(other Italics) Italics {
	if other == ItalicsNone {
		return v
	}
	if v == ItalicsNone && other == ItalicsUnset {
		return ItalicsNone
	}
	return other
}

func (v Italics) Diff(other Italics) Italics {
	if v == ItalicsNone {
		return v.Invert(other)
	}
	if v == other {
		return ItalicsNone
	}
	return v
}

func (Italics) Invert(prev Italics) Italics {
	if prev == ItalicsNone || prev == ItalicsUnset {
		return ItalicsNone
	}
	return ItalicsUnset
}

func (v Italics) code() string {
	switch v {
	case ItalicsPlain:
		return "3"
	case Fraktur:
		return "20"
	case ItalicsUnset:
		return "23"
	}
	return ""
}

// Underline covers the single/double/curly/dotted/dashed variants. Single
// and double use the classic codes 4/21; the others use the SGR
// sub-parameter form 4:N standardized by kitty/VTE-family terminals.
type Underline int8

const (
	UnderlineNone Underline = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
	UnderlineUnset
)

func (v Underline) Combine(other Underline) Underline {
	if other == UnderlineNone {
		return v
	}
	if v == UnderlineNone && other == UnderlineUnset {
		return UnderlineNone
	}
	return other
}

func (v Underline) Diff(other Underline) Underline {
	if v == UnderlineNone {
		return v.Invert(other)
	}
	if v == other {
		return UnderlineNone
	}
	return v
}

func (Underline) Invert(prev Underline) Underline {
	if prev == UnderlineNone || prev == UnderlineUnset {
		return UnderlineNone
	}
	return UnderlineUnset
}

func (v Underline) code() string {
	switch v {
	case UnderlineSingle:
		return "4"
	case UnderlineDouble:
		return "21"
	case UnderlineCurly:
		return "4:3"
	case UnderlineDotted:
		return "4:4"
	case UnderlineDashed:
		return "4:5"
	case UnderlineUnset:
		return "24"
	}
	return ""
}

// Blink covers slow and fast (rapid) blink.
type Blink int8

const (
	BlinkNone Blink = iota
	BlinkSlow
	BlinkFast
	BlinkUnset
)

func (v Blink) Combine(other Blink) Blink {
	if other == BlinkNone {
		return v
	}
	if v == BlinkNone && other == BlinkUnset {
		return BlinkNone
	}
	return other
}

func (v Blink) Diff(other Blink) Blink {
	if v == BlinkNone {
		return v.Invert(other)
	}
	if v == other {
		return BlinkNone
	}
	return v
}

func (Blink) Invert(prev Blink) Blink {
	if prev == BlinkNone || prev == BlinkUnset {
		return BlinkNone
	}
	return BlinkUnset
}

func (v Blink) code() string {
	switch v {
	case BlinkSlow:
		return "5"
	case BlinkFast:
		return "6"
	case BlinkUnset:
		return "25"
	}
	return ""
}

// TriState is the shared shape for the plain binary dimensions: invert,
// hide, delete (strikethrough), overline, propspace. Each only ever needs
// a single on/off code pair.
type TriState int8

const (
	StateNone TriState = iota
	StateSet
	StateUnset
)

func (v TriState) Combine(other TriState) TriState {
	if other == StateNone {
		return v
	}
	if v == StateNone && other == StateUnset {
		return StateNone
	}
	return other
}

func (v TriState) Diff(other TriState) TriState {
	if v == StateNone {
		return v.Invert(other)
	}
	if v == other {
		return StateNone
	}
	return v
}

func (TriState) Invert(prev TriState) TriState {
	if prev == StateNone || prev == StateUnset {
		return StateNone
	}
	return StateUnset
}

// Font is reserved: the algebra supports it (SGR 10 primary, 11-19 alt
// fonts) but no tag attribute exposes it (spec.md §9, DESIGN.md).
type Font int8

const (
	FontNone Font = iota
	FontPrimary
	FontAlt1
	FontAlt2
	FontAlt3
	FontAlt4
	FontAlt5
	FontAlt6
	FontAlt7
	FontAlt8
	FontAlt9
)

func (v Font) Combine(other Font) Font {
	if other == FontNone {
		return v
	}
	return other
}

func (v Font) Diff(other Font) Font {
	if v == FontNone {
		if other == FontNone {
			return FontNone
		}
		return FontPrimary
	}
	if v == other {
		return FontNone
	}
	return v
}

func (v Font) code() string {
	if v == FontNone {
		return ""
	}
	return strconv.Itoa(10 + int(v) - 1)
}
