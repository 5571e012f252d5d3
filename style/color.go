package style

import (
	"fmt"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorKind discriminates the Color sum type (spec.md §3).
type ColorKind int8

const (
	ColorInherit ColorKind = iota // no opinion; identity under Combine
	ColorDefault                  // explicit "reset to terminal default" (39/49)
	ColorAnsiBase                 // 0-7 standard, 8-15/60-67 bright via +8/+60 offset
	ColorAnsi256
	ColorRGB
)

// Color is one fg/bg channel value.
type Color struct {
	Kind  ColorKind
	Index uint8 // ColorAnsiBase / ColorAnsi256
	R, G, B uint8
}

func (c Color) isSetLike() bool {
	return c.Kind != ColorInherit
}

// Combine applies other on top of c: "apply c, then apply other."
func (c Color) Combine(other Color) Color {
	if other.Kind == ColorInherit {
		return c
	}
	return other
}

// Diff returns the minimal Color which, applied after other, produces c.
func (c Color) Diff(other Color) Color {
	if c == other {
		return Color{Kind: ColorInherit}
	}
	if c.Kind == ColorInherit {
		return c.Invert(other)
	}
	return c
}

// Invert returns the delta needed to leave color prev (c is unused except
// for dispatch symmetry with the other dimensions).
func (Color) Invert(prev Color) Color {
	if prev.Kind == ColorInherit {
		return Color{Kind: ColorInherit}
	}
	return Color{Kind: ColorDefault}
}

// VGA8 approximates the eight standard + eight bright ANSI base colors as
// RGB, for ApproxRGB only (never for encoding — encoding always emits
// symbolic SGR codes, not RGB substitutes).
var VGA8 = [16][3]uint8{
	{0x00, 0x00, 0x00}, {0xAA, 0x00, 0x00}, {0x00, 0xAA, 0x00}, {0xAA, 0x55, 0x00},
	{0x00, 0x00, 0xAA}, {0xAA, 0x00, 0xAA}, {0x00, 0xAA, 0xAA}, {0xAA, 0xAA, 0xAA},
	{0x55, 0x55, 0x55}, {0xFF, 0x55, 0x55}, {0x55, 0xFF, 0x55}, {0xFF, 0xFF, 0x55},
	{0x55, 0x55, 0xFF}, {0xFF, 0x55, 0xFF}, {0x55, 0xFF, 0xFF}, {0xFF, 0xFF, 0xFF},
}

// ApproxRGB returns a best-effort truecolor approximation of c. Explicit
// Rgb colors return themselves; base colors are looked up in VGA8 and
// 256-index colors are mapped by ansi256ToRGB, so an indexed color still
// yields a displayable value. Inherit and Default colors report ok=false.
func (c Color) ApproxRGB() (r, g, b uint8, ok bool) {
	switch c.Kind {
	case ColorRGB:
		return c.R, c.G, c.B, true
	case ColorAnsiBase:
		idx := c.Index
		if idx >= 60 {
			idx = idx - 60 + 8
		}
		if int(idx) < len(VGA8) {
			rgb := VGA8[idx]
			return rgb[0], rgb[1], rgb[2], true
		}
	case ColorAnsi256:
		return ansi256ToRGB(c.Index)
	}
	return 0, 0, 0, false
}

// ansi256ToRGB implements the standard xterm 256-color mapping: indices
// 0-15 come from VGA8, the 6x6x6 cube from the xterm channel levels, and
// the 24-step gray ramp is built as a go-colorful gray.
func ansi256ToRGB(idx uint8) (uint8, uint8, uint8, bool) {
	switch {
	case idx < 16:
		rgb := VGA8[idx]
		return rgb[0], rgb[1], rgb[2], true
	case idx < 232:
		n := int(idx) - 16
		levels := [6]uint8{0, 95, 135, 175, 215, 255}
		r := levels[n/36]
		g := levels[(n/6)%6]
		b := levels[n%6]
		return r, g, b, true
	default:
		level := 8 + (int(idx)-232)*10
		gray := colorful.Color{R: float64(level) / 255, G: float64(level) / 255, B: float64(level) / 255}
		r, g, b := gray.Clamped().RGB255()
		return r, g, b, true
	}
}

// ParseHex parses a `#RGB` or `#RRGGBB` literal (without the leading `#`,
// the scanner already strips it) into an Rgb Color, expanding short-form
// nibbles per spec.md §4.2.
func ParseHex(hex string) (Color, error) {
	var full string
	switch len(hex) {
	case 3:
		full = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
		full = hex
	default:
		return Color{}, fmt.Errorf("invalid hex color %q", hex)
	}
	c, err := colorful.Hex("#" + full)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return Color{Kind: ColorRGB, R: r, G: g, B: b}, nil
}

// ParseAnsiBase resolves a base color name (already matched against
// token.ColorNames by the caller) plus an optional "light" modifier.
func ParseAnsiBase(index int, light bool) Color {
	if light {
		return Color{Kind: ColorAnsiBase, Index: uint8(index + 60)}
	}
	return Color{Kind: ColorAnsiBase, Index: uint8(index)}
}

// ParseFixed parses the `fixed=N`/`fixed(N)` 256-color index form.
func ParseFixed(s string) (Color, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return Color{}, fmt.Errorf("invalid fixed color index %q", s)
	}
	return Color{Kind: ColorAnsi256, Index: uint8(n)}, nil
}

// ParseRGB parses the `rgb=r,g,b`/`rgb(r,g,b)` truecolor form.
func ParseRGB(r, g, b string) (Color, error) {
	ri, err1 := strconv.Atoi(r)
	gi, err2 := strconv.Atoi(g)
	bi, err3 := strconv.Atoi(b)
	if err1 != nil || err2 != nil || err3 != nil ||
		ri < 0 || ri > 255 || gi < 0 || gi > 255 || bi < 0 || bi > 255 {
		return Color{}, fmt.Errorf("invalid rgb components %s,%s,%s", r, g, b)
	}
	return Color{Kind: ColorRGB, R: uint8(ri), G: uint8(gi), B: uint8(bi)}, nil
}

// sgrCodes returns the SGR parameter(s) that set this color on the given
// channel (extendedPrefix is 38 or 48, baseCode 30 or 40, brightBase 90
// or 100, defaultCode 39 or 49, for foreground or background).
func (c Color) sgrCodes(extendedPrefix, baseCode, brightBase, defaultCode int) []string {
	switch c.Kind {
	case ColorDefault:
		return []string{strconv.Itoa(defaultCode)}
	case ColorAnsiBase:
		idx := c.Index
		if idx >= 60 {
			return []string{strconv.Itoa(brightBase + int(idx) - 60)}
		}
		if idx < 8 {
			return []string{strconv.Itoa(baseCode + int(idx))}
		}
		return []string{strconv.Itoa(brightBase + int(idx) - 8)}
	case ColorAnsi256:
		return []string{strconv.Itoa(extendedPrefix), "5", strconv.Itoa(int(c.Index))}
	case ColorRGB:
		return []string{strconv.Itoa(extendedPrefix), "2", strconv.Itoa(int(c.R)), strconv.Itoa(int(c.G)), strconv.Itoa(int(c.B))}
	}
	return nil
}

func (c Color) fgCodes() []string { return c.sgrCodes(38, 30, 90, 39) }
func (c Color) bgCodes() []string { return c.sgrCodes(48, 40, 100, 49) }
