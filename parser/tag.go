package parser

import (
	"ziyy/span"
	"ziyy/style"
)

// Tag is a parsed `<...>` construct: its resolved name, open/close/self-
// close kind, style attributes, and the tag-specific custom/src payload.
type Tag struct {
	Name   TagName
	Kind   TagKind
	Custom Value
	Style  style.Style
	Src    Value
	Span   span.Span
}
