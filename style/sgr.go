package style

// DecodeSGR applies a raw `CSI Ps... m` parameter list on top of base,
// returning the resulting Style. Used to fold a passthrough ANSI escape
// (ansiscan.EventSGR) into the renderer's current style-stack frame.
//
// Grounded on internal/types/sgr.go's ApplyParams/applyExtendedColor
// switch, retargeted from the teacher's mutable SGR struct to this
// package's immutable Style value.
func DecodeSGR(params []int, base Style) Style {
	s := base
	for i := 0; i < len(params); i++ {
		code := params[i]
		switch code {
		case 0:
			s = Style{}
		case 1:
			s.Intensity = IntensityBold
		case 2:
			s.Intensity = IntensityDim
		case 22:
			s.Intensity = IntensityNone
		case 3:
			s.Italics = ItalicsPlain
		case 20:
			s.Italics = Fraktur
		case 23:
			s.Italics = ItalicsNone
		case 4:
			s.Underline = UnderlineSingle
		case 21:
			s.Underline = UnderlineDouble
		case 24:
			s.Underline = UnderlineNone
		case 5:
			s.Blink = BlinkSlow
		case 6:
			s.Blink = BlinkFast
		case 25:
			s.Blink = BlinkNone
		case 7:
			s.Invert = StateSet
		case 27:
			s.Invert = StateNone
		case 8:
			s.Hide = StateSet
		case 28:
			s.Hide = StateNone
		case 9:
			s.Delete = StateSet
		case 29:
			s.Delete = StateNone
		case 53:
			s.Overline = StateSet
		case 55:
			s.Overline = StateNone
		case 56:
			s.Propspace = StateSet
		case 57:
			s.Propspace = StateNone
		case 30, 31, 32, 33, 34, 35, 36, 37:
			s.FgColor = Color{Kind: ColorAnsiBase, Index: uint8(code - 30)}
		case 90, 91, 92, 93, 94, 95, 96, 97:
			s.FgColor = Color{Kind: ColorAnsiBase, Index: uint8(code-90) + 60}
		case 38:
			n, consumed := decodeExtendedColor(params, i+1)
			s.FgColor = n
			i += consumed
		case 39:
			s.FgColor = Color{Kind: ColorDefault}
		case 40, 41, 42, 43, 44, 45, 46, 47:
			s.BgColor = Color{Kind: ColorAnsiBase, Index: uint8(code - 40)}
		case 100, 101, 102, 103, 104, 105, 106, 107:
			s.BgColor = Color{Kind: ColorAnsiBase, Index: uint8(code-100) + 60}
		case 48:
			n, consumed := decodeExtendedColor(params, i+1)
			s.BgColor = n
			i += consumed
		case 49:
			s.BgColor = Color{Kind: ColorDefault}
		case 10:
			s.Font = FontPrimary
		case 11, 12, 13, 14, 15, 16, 17, 18, 19:
			s.Font = Font(code - 10 + 1)
		}
	}
	return s
}

func decodeExtendedColor(params []int, start int) (Color, int) {
	if start >= len(params) {
		return Color{}, 0
	}
	switch params[start] {
	case 5:
		if start+1 < len(params) {
			return Color{Kind: ColorAnsi256, Index: uint8(params[start+1])}, 2
		}
	case 2:
		if start+3 < len(params) {
			return Color{
				Kind: ColorRGB,
				R:    uint8(params[start+1]),
				G:    uint8(params[start+2]),
				B:    uint8(params[start+3]),
			}, 4
		}
	}
	return Color{}, 1
}
