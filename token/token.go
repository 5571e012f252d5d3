// Package token defines the fixed token vocabulary produced by the
// scanner over the markup and color mini-languages.
package token

import (
	"fmt"

	"ziyy/span"
)

// Kind enumerates every token production the scanner can emit.
type Kind int

const (
	Eof Kind = iota

	// structural punctuation
	Less      // <
	LessSlash // </
	Great     // >
	SlashGreat
	Equal // =
	Comma
	Dot
	Slash
	LParen
	RParen

	// C-style escapes
	EscAlert // \a
	EscBack  // \b
	EscTab   // \t
	EscLF    // \n
	EscVTab  // \v
	EscFF    // \f
	EscCR    // \r
	EscEsc   // \e
	EscSlash // \\
	EscLess  // \<
	EscGreat // \>
	EscOctal // \0NNN
	EscHex   // \xHH
	EscUni   // \uHHHH

	// literals
	Ident
	String
	Number
	HexColor
	Whitespace
	Text

	// color names / modifiers
	ColorName
	KeywordFixed
	KeywordRGB
	KeywordLight

	// tag-name / attribute keywords
	Keyword

	Comment
	Unknown
)

var kindNames = map[Kind]string{
	Eof: "Eof", Less: "Less", LessSlash: "LessSlash", Great: "Great",
	SlashGreat: "SlashGreat", Equal: "Equal", Comma: "Comma", Dot: "Dot",
	Slash: "Slash", LParen: "LParen", RParen: "RParen",
	EscAlert: "EscAlert", EscBack: "EscBack", EscTab: "EscTab", EscLF: "EscLF",
	EscVTab: "EscVTab", EscFF: "EscFF", EscCR: "EscCR", EscEsc: "EscEsc",
	EscSlash: "EscSlash", EscLess: "EscLess", EscGreat: "EscGreat",
	EscOctal: "EscOctal", EscHex: "EscHex", EscUni: "EscUni",
	Ident: "Ident", String: "String", Number: "Number", HexColor: "HexColor",
	Whitespace: "Whitespace", Text: "Text", ColorName: "ColorName",
	KeywordFixed: "KeywordFixed", KeywordRGB: "KeywordRGB",
	KeywordLight: "KeywordLight", Keyword: "Keyword", Comment: "Comment",
	Unknown: "Unknown",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one scanned unit: its Kind, the raw source slice it covers,
// and the Span it occupies.
type Token struct {
	Kind    Kind
	Content string
	Custom  uint16 // not set by the scanner; escape tokens carry their decoded character in Content
	Span    span.Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Content, t.Span)
}

// TagKeywords are the reserved tag-name identifiers (spec.md §3).
var TagKeywords = map[string]bool{
	"a": true, "b": true, "br": true, "c": true, "code": true, "d": true,
	"div": true, "h": true, "i": true, "k": true, "let": true, "o": true,
	"p": true, "pre": true, "r": true, "s": true, "span": true, "u": true,
	"x": true, "ziyy": true,
}

// AttrKeywords are the reserved attribute-name identifiers.
var AttrKeywords = map[string]bool{
	"class": true, "id": true, "href": true, "indent": true, "n": true,
	"single": true, "double": true, "dashed": true, "dotted": true,
	"curly": true, "block": true, "none": true,
}

// ColorNames are the eight ANSI base color names.
var ColorNames = map[string]int{
	"black": 0, "red": 1, "green": 2, "yellow": 3,
	"blue": 4, "magenta": 5, "cyan": 6, "white": 7,
}
