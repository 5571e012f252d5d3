// Package parser turns a token stream into the lazy Chunk sequence the
// render state machine consumes: Tag, Text, Whitespace, Escape, Comment,
// Eof (spec.md §4.3).
//
// Grounded on original_source/rust/ziyy-core/src/parser (Tag/Chunk shape)
// and on the teacher's token-consuming loop style in
// tokenizer/tokenizer.go's Tokenize().
package parser

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"ziyy/scanner"
	"ziyy/span"
	"ziyy/style"
	"ziyy/token"
	"ziyy/ziyyerr"
)

// Parser pulls tokens from a Scanner and assembles Chunks one at a time.
type Parser struct {
	sc  *scanner.Scanner
	tok token.Token
}

// New creates a Parser over src, positioned at the first token.
func New(src string) (*Parser, error) {
	p := &Parser{sc: scanner.New(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	t, err := p.sc.ScanToken()
	if err != nil {
		if se, ok := err.(*scanner.ScanError); ok {
			return ziyyerr.New(ziyyerr.UnknownToken, se.Span, se.Msg)
		}
		return ziyyerr.New(ziyyerr.UnknownToken, span.Zero, err.Error())
	}
	p.tok = t
	return nil
}

func (p *Parser) errAt(msg string) error {
	return ziyyerr.New(ziyyerr.UnexpectedToken, p.tok.Span, msg)
}

// Next returns the next Chunk, advancing the parser. Returns a Chunk with
// Kind == ChunkEof at end of input.
func (p *Parser) Next() (Chunk, error) {
	switch p.tok.Kind {
	case token.Eof:
		return Chunk{Kind: ChunkEof, Span: p.tok.Span}, nil

	case token.Less, token.LessSlash:
		return p.parseTagChunk()

	case token.Text:
		c := Chunk{Kind: ChunkText, Text: p.tok.Content, Span: p.tok.Span}
		return c, p.advance()

	case token.Whitespace:
		c := Chunk{Kind: ChunkWhitespace, Text: p.tok.Content, Span: p.tok.Span}
		return c, p.advance()

	case token.Comment:
		c := Chunk{Kind: ChunkComment, Text: p.tok.Content, Span: p.tok.Span}
		return c, p.advance()

	case token.EscAlert, token.EscBack, token.EscTab, token.EscLF, token.EscVTab,
		token.EscFF, token.EscCR, token.EscEsc, token.EscSlash, token.EscLess,
		token.EscGreat, token.EscOctal, token.EscHex, token.EscUni:
		r, _ := utf8.DecodeRuneInString(p.tok.Content)
		c := Chunk{Kind: ChunkEscape, Ch: r, Span: p.tok.Span}
		return c, p.advance()
	}

	return Chunk{}, ziyyerr.New(ziyyerr.UnexpectedToken, p.tok.Span,
		fmt.Sprintf("unexpected token %s in text context", p.tok.Kind))
}

func (p *Parser) parseTagChunk() (Chunk, error) {
	isClose := p.tok.Kind == token.LessSlash
	start := p.tok.Span
	if err := p.advance(); err != nil {
		return Chunk{}, err
	}

	if isClose && p.tok.Kind == token.Great {
		end := p.tok.Span
		if err := p.advance(); err != nil {
			return Chunk{}, err
		}
		return Chunk{Kind: ChunkTag, Tag: Tag{Name: EmptyTagName, Kind: TagClose, Span: start.Join(end)}, Span: start.Join(end)}, nil
	}

	if p.tok.Kind != token.Keyword && p.tok.Kind != token.Ident {
		return Chunk{}, p.errAt(fmt.Sprintf("expected tag name, found %s", p.tok.Kind))
	}
	nameText := p.tok.Content
	name, known := LookupTagName(nameText)
	if !known {
		name = AnyTagName(nameText)
	}
	if err := p.advance(); err != nil {
		return Chunk{}, err
	}

	if isClose {
		if p.tok.Kind != token.Great {
			return Chunk{}, p.errAt("expected > to close tag")
		}
		end := p.tok.Span
		if err := p.advance(); err != nil {
			return Chunk{}, err
		}
		return Chunk{Kind: ChunkTag, Tag: Tag{Name: name, Kind: TagClose, Span: start.Join(end)}, Span: start.Join(end)}, nil
	}

	tag := Tag{Name: name, Kind: TagOpen, Span: start}
	if preset, ok := ShorthandStyle(name); ok {
		tag.Style = preset
	}

	for p.tok.Kind != token.Great && p.tok.Kind != token.SlashGreat {
		if p.tok.Kind == token.Eof {
			return Chunk{}, ziyyerr.New(ziyyerr.UnexpectedEof, p.tok.Span, "unterminated tag")
		}
		if err := p.parseAttribute(&tag); err != nil {
			return Chunk{}, err
		}
	}
	if p.tok.Kind == token.SlashGreat {
		tag.Kind = TagSelfClose
	}
	end := p.tok.Span
	if err := p.advance(); err != nil {
		return Chunk{}, err
	}
	tag.Span = start.Join(end)
	return Chunk{Kind: ChunkTag, Tag: tag, Span: tag.Span}, nil
}

func isColorValueStart(k token.Kind) bool {
	switch k {
	case token.ColorName, token.KeywordFixed, token.KeywordRGB, token.HexColor, token.KeywordLight:
		return true
	}
	return false
}

func (p *Parser) parseAttribute(tag *Tag) error {
	if tag.Name.IsColorTag() && isColorValueStart(p.tok.Kind) {
		col, err := p.parseColorValue()
		if err != nil {
			return err
		}
		if tag.Name.IsBgColorTag() {
			tag.Style.BgColor = col
		} else {
			tag.Style.FgColor = col
		}
		return nil
	}

	key := lower(p.tok.Content)
	if err := p.advance(); err != nil {
		return err
	}

	var val Value
	if p.tok.Kind == token.Equal {
		if err := p.advance(); err != nil {
			return err
		}
		switch key {
		case "c", "color", "x", "bg":
			col, err := p.parseAttrColor()
			if err != nil {
				return err
			}
			if key == "x" || key == "bg" {
				tag.Style.BgColor = col
			} else {
				tag.Style.FgColor = col
			}
			return nil
		}
		v, err := p.parseAttrValue()
		if err != nil {
			return err
		}
		val = v
	} else {
		val = Value{Kind: ValueBool, Bool: true}
	}

	return applyAttribute(tag, key, val)
}

// parseAttrColor parses the value of a `c=`/`color=`/`x=`/`bg=` attribute,
// which usually arrives as a quoted string (`c="red"`, `c='#fff'`) and is
// parsed textually rather than token-by-token.
func (p *Parser) parseAttrColor() (style.Color, error) {
	switch p.tok.Kind {
	case token.String, token.Ident:
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
	return p.parseColorValue()
}

func (p *Parser) parseAttrValue() (Value, error) {
	switch p.tok.Kind {
	case token.String, token.Ident, token.Number, token.HexColor:
		v := Value{Kind: ValueSome, Text: p.tok.Content}
		return v, p.advance()
	}
	return Value{}, p.errAt(fmt.Sprintf("expected attribute value, found %s", p.tok.Kind))
}

func applyAttribute(tag *Tag, key string, val Value) error {
	switch key {
	case "b":
		if isFalse(val) {
			tag.Style.Intensity = tag.Style.Intensity.Combine(style.IntensityNoBold)
		} else {
			tag.Style.Intensity = tag.Style.Intensity.Combine(style.IntensityBold)
		}
	case "d":
		if isFalse(val) {
			tag.Style.Intensity = tag.Style.Intensity.Combine(style.IntensityNoDim)
		} else {
			tag.Style.Intensity = tag.Style.Intensity.Combine(style.IntensityDim)
		}
	case "u":
		tag.Style.Underline = tag.Style.Underline.Combine(underlineVariant(val))
	case "i":
		tag.Style.Italics = tag.Style.Italics.Combine(style.ItalicsPlain)
	case "s":
		tag.Style.Delete = style.StateSet
	case "h":
		tag.Style.Hide = style.StateSet
	case "k":
		tag.Style.Blink = tag.Style.Blink.Combine(style.BlinkSlow)
	case "r":
		tag.Style.Invert = style.StateSet
	case "id", "name":
		tag.Custom = val
	case "src", "class":
		tag.Src = val
	case "n":
		tag.Custom = val
	default:
		// unrecognized attribute: ignored, matching the grammar's
		// tolerance for structural tags (div/span/p/code) carrying no
		// intrinsic style attributes of their own.
	}
	return nil
}

func isFalse(v Value) bool {
	return v.Kind == ValueSome && v.Text == "false"
}

func underlineVariant(v Value) style.Underline {
	if v.Kind != ValueSome {
		return style.UnderlineSingle
	}
	switch v.Text {
	case "double":
		return style.UnderlineDouble
	case "curly":
		return style.UnderlineCurly
	case "dotted":
		return style.UnderlineDotted
	case "dashed":
		return style.UnderlineDashed
	case "none":
		return style.UnderlineUnset
	}
	return style.UnderlineSingle
}

// ParseAll parses the entire chunk sequence for src, sequentially.
func ParseAll(src string) ([]Chunk, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	var out []Chunk
	for {
		c, err := p.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
		if c.Kind == ChunkEof {
			return out, nil
		}
	}
}

// ParseFragments splits src into independent fragments (one per chunk: a
// tag, a text run, a whitespace run, an escape or a comment) and parses each fragment's
// tokens in a bounded pool of goroutines, since each fragment is
// self-contained. Document order is preserved by writing into a
// pre-sized result slice by index, not by goroutine completion order.
//
// Grounded on original_source/ziyy-core/src/parser/mod.rs's
// rayon-gated par_iter fragment→chunk mapping (spec.md §5); see
// SPEC_FULL.md's CONCURRENCY supplement for why this uses a plain
// WaitGroup instead of an extra dependency.
func ParseFragments(src string, workers int) ([]Chunk, error) {
	if workers < 1 {
		workers = 1
	}

	spans, err := splitFragments(src)
	if err != nil {
		return nil, err
	}

	results := make([]Chunk, len(spans))
	errs := make([]error, len(spans))

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, sp := range spans {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, sp span.Span) {
			defer wg.Done()
			defer func() { <-sem }()
			fp, err := New(src[sp.Start:sp.End])
			if err != nil {
				errs[i] = err
				return
			}
			c, err := fp.Next()
			if err != nil {
				errs[i] = err
				return
			}
			c.Span = sp
			results[i] = c
		}(i, sp)
	}
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}
	return append(results, Chunk{Kind: ChunkEof}), nil
}

// splitFragments does one sequential, cheap pass to locate fragment
// boundaries, reusing the ordinary Parser to find each Chunk's Span.
func splitFragments(src string) ([]span.Span, error) {
	chunks, err := ParseAll(src)
	if err != nil {
		return nil, err
	}
	var spans []span.Span
	for _, c := range chunks {
		if c.Kind == ChunkEof {
			continue
		}
		spans = append(spans, c.Span)
	}
	return spans, nil
}
