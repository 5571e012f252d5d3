package parser

import (
	"fmt"

	"ziyy/style"
	"ziyy/token"
)

// parseColorValue parses one color expression starting at the current
// token (already fetched into p.tok). It recognizes every form in
// spec.md §4.2: a bare/light-qualified color name, `fixed=N`/`fixed(N)`,
// `rgb=r,g,b`/`rgb(r,g,b)`, and hex literals. It leaves p.tok positioned
// on the token after the color expression.
func (p *Parser) parseColorValue() (style.Color, error) {
	switch p.tok.Kind {
	case token.HexColor:
		c, err := style.ParseHex(p.tok.Content)
		if err != nil {
			return style.Color{}, p.errAt(err.Error())
		}
		if err := p.advance(); err != nil {
			return style.Color{}, err
		}
		return c, nil

	case token.KeywordLight:
		if err := p.advance(); err != nil {
			return style.Color{}, err
		}
		if p.tok.Kind != token.ColorName {
			return style.Color{}, p.errAt("expected color name after light")
		}
		idx := token.ColorNames[lower(p.tok.Content)]
		if err := p.advance(); err != nil {
			return style.Color{}, err
		}
		return style.ParseAnsiBase(idx, true), nil

	case token.ColorName:
		idx := token.ColorNames[lower(p.tok.Content)]
		if err := p.advance(); err != nil {
			return style.Color{}, err
		}
		light := false
		if p.tok.Kind == token.KeywordLight {
			light = true
			if err := p.advance(); err != nil {
				return style.Color{}, err
			}
		}
		return style.ParseAnsiBase(idx, light), nil

	case token.KeywordFixed:
		return p.parseColorCall(func(args []string) (style.Color, error) {
			if len(args) != 1 {
				return style.Color{}, p.errAt("fixed expects one argument")
			}
			return style.ParseFixed(args[0])
		})

	case token.KeywordRGB:
		return p.parseColorCall(func(args []string) (style.Color, error) {
			if len(args) != 3 {
				return style.Color{}, p.errAt("rgb expects three arguments")
			}
			return style.ParseRGB(args[0], args[1], args[2])
		})

	case token.String:
		text := p.tok.Content
		if err := p.advance(); err != nil {
			return style.Color{}, err
		}
		c, err := ParseColorText(text)
		if err != nil {
			return style.Color{}, p.errAt(err.Error())
		}
		return c, nil
	}

	return style.Color{}, p.errAt(fmt.Sprintf("invalid color value %q", p.tok.Content))
}

// parseColorCall parses either `name(arg,arg,...)` or `name=arg,arg,...`
// by consuming the keyword token itself then an optional parenthesized
// argument list, or the value after `=`.
func (p *Parser) parseColorCall(build func(args []string) (style.Color, error)) (style.Color, error) {
	if err := p.advance(); err != nil { // consume "fixed"/"rgb"
		return style.Color{}, err
	}
	if p.tok.Kind == token.Equal {
		if err := p.advance(); err != nil {
			return style.Color{}, err
		}
		if p.tok.Kind == token.String {
			c, err := build(splitArgs(p.tok.Content))
			if err != nil {
				return style.Color{}, err
			}
			return c, p.advance()
		}
		// bare numbers after `=` (fixed=N, rgb=r,g,b)
		if p.tok.Kind == token.Number {
			args := []string{p.tok.Content}
			if err := p.advance(); err != nil {
				return style.Color{}, err
			}
			for p.tok.Kind == token.Comma {
				if err := p.advance(); err != nil {
					return style.Color{}, err
				}
				args = append(args, p.tok.Content)
				if err := p.advance(); err != nil {
					return style.Color{}, err
				}
			}
			return build(args)
		}
		return style.Color{}, p.errAt("expected value after =")
	}
	if p.tok.Kind == token.LParen {
		if err := p.advance(); err != nil {
			return style.Color{}, err
		}
		var args []string
		for p.tok.Kind != token.RParen {
			args = append(args, p.tok.Content)
			if err := p.advance(); err != nil {
				return style.Color{}, err
			}
			if p.tok.Kind == token.Comma {
				if err := p.advance(); err != nil {
					return style.Color{}, err
				}
			}
		}
		if err := p.advance(); err != nil { // consume ')'
			return style.Color{}, err
		}
		return build(args)
	}
	return style.Color{}, p.errAt("expected ( or = after color function name")
}

// ParseColorText parses a standalone color expression already extracted
// as plain text, e.g. the body of a quoted `c="..."` attribute on a
// non-color tag (`<div c='#fff'>`, `<div x="light red">`). Unlike
// parseColorValue this has no token stream to walk, so it classifies the
// text directly: a leading `#` is hex, a bare or "light "-prefixed known
// name is an ANSI base color, three comma-separated numbers are rgb, one
// number is a fixed 256-color index.
func ParseColorText(text string) (style.Color, error) {
	text = trimSpace(text)
	if len(text) > 0 && text[0] == '#' {
		return style.ParseHex(text[1:])
	}

	light := false
	name := lower(text)
	if rest, ok := stripPrefix(name, "light "); ok {
		light = true
		name = trimSpace(rest)
	}
	if idx, ok := token.ColorNames[name]; ok {
		return style.ParseAnsiBase(idx, light), nil
	}

	args := splitArgs(text)
	switch len(args) {
	case 3:
		return style.ParseRGB(args[0], args[1], args[2])
	case 1:
		return style.ParseFixed(args[0])
	}
	return style.Color{}, fmt.Errorf("unrecognized color value %q", text)
}

func stripPrefix(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
		return s[len(prefix):], true
	}
	return s, false
}

func splitArgs(s string) []string {
	var out []string
	cur := ""
	for _, r := range s {
		if r == ',' {
			out = append(out, trimSpace(cur))
			cur = ""
			continue
		}
		cur += string(r)
	}
	out = append(out, trimSpace(cur))
	return out
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[start:end]
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}
