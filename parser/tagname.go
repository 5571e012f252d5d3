package parser

import "strings"

// TagName is the closed set of tag names the grammar recognizes, plus
// Root (the implicit stack base), Empty (a wildcard `</>` close), Ansi
// (the raw-ANSI synthetic), and Any for a user-defined/bound name.
//
// Grounded on rust/ziyy-core/src/parser/tag.rs's TagName enum, extended
// with Root/Empty/Ansi per spec.md §3.
type TagName struct {
	kind tagNameKind
	Any  string // only set when kind == tagAny
}

type tagNameKind int8

const (
	tagRoot tagNameKind = iota
	tagEmpty
	tagAny
	tagA
	tagB
	tagBr
	tagC
	tagCode
	tagD
	tagDiv
	tagH
	tagI
	tagK
	tagLet
	tagO
	tagP
	tagPre
	tagR
	tagS
	tagSpan
	tagU
	tagX
	tagZiyy
	tagAnsi
)

var builtinTagNames = map[string]tagNameKind{
	"a": tagA, "b": tagB, "br": tagBr, "c": tagC, "code": tagCode,
	"d": tagD, "div": tagDiv, "h": tagH, "i": tagI, "k": tagK,
	"let": tagLet, "o": tagO, "p": tagP, "pre": tagPre, "r": tagR,
	"s": tagS, "span": tagSpan, "u": tagU, "x": tagX, "ziyy": tagZiyy,
}

// LookupTagName resolves an identifier/keyword slice to a TagName. The
// second return is false when name isn't one of the builtin keywords,
// in which case the caller should build TagName{kind: tagAny, Any: name}
// and resolve it through bindings.
func LookupTagName(name string) (TagName, bool) {
	if k, ok := builtinTagNames[strings.ToLower(name)]; ok {
		return TagName{kind: k}, true
	}
	return TagName{}, false
}

func AnyTagName(name string) TagName { return TagName{kind: tagAny, Any: name} }

var RootTagName = TagName{kind: tagRoot}
var EmptyTagName = TagName{kind: tagEmpty}
var AnsiTagName = TagName{kind: tagAnsi}

func (t TagName) IsEmpty() bool  { return t.kind == tagEmpty }
func (t TagName) IsAny() bool    { return t.kind == tagAny }
func (t TagName) IsAnsi() bool   { return t.kind == tagAnsi }
func (t TagName) IsLet() bool    { return t.kind == tagLet }
func (t TagName) IsBr() bool     { return t.kind == tagBr }
func (t TagName) IsPre() bool    { return t.kind == tagPre }
func (t TagName) IsColorTag() bool {
	return t.kind == tagC || t.kind == tagX
}
func (t TagName) IsBgColorTag() bool { return t.kind == tagX }

// styleShorthandKind returns the tag kind of the style-only shorthand
// tags (b, d, h, i, k, r, s, u) and whether name is one of them; see
// ShorthandStyle for the preset style itself.
func (t TagName) styleShorthandKind() (tagNameKind, bool) {
	switch t.kind {
	case tagB, tagD, tagH, tagI, tagK, tagR, tagS, tagU:
		return t.kind, true
	}
	return 0, false
}

func (t TagName) String() string {
	switch t.kind {
	case tagRoot:
		return "Root"
	case tagEmpty:
		return "Empty"
	case tagAnsi:
		return "Ansi"
	case tagAny:
		return "Any(" + t.Any + ")"
	}
	for name, k := range builtinTagNames {
		if k == t.kind {
			return name
		}
	}
	return "?"
}

func (a TagName) Equal(b TagName) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind == tagAny {
		return a.Any == b.Any
	}
	return true
}

// TagKind is Open, Close or SelfClose.
type TagKind int8

const (
	TagOpen TagKind = iota
	TagClose
	TagSelfClose
)
