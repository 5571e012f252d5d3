package parser

import "ziyy/style"

// builtinStyles maps each style-only shorthand tag to its preset Style.
//
// Grounded on original_source's crates/ziyy-core/src/builtins.rs
// (BUILTIN_STYLES: a process-wide, lazily-initialized, read-only map from
// short tag name to preset Style — spec.md §9 "Global static builtins").
var builtinStyles = map[tagNameKind]style.Style{
	tagB: {Intensity: style.IntensityBold},
	tagD: {Intensity: style.IntensityDim},
	tagH: {Hide: style.StateSet},
	tagK: {Blink: style.BlinkSlow},
	tagR: {Invert: style.StateSet},
	tagI: {Italics: style.ItalicsPlain},
	tagS: {Delete: style.StateSet},
	tagU: {Underline: style.UnderlineSingle},
}

// ShorthandStyle returns the preset style for a style-only shorthand tag
// name, and whether name is one of them.
func ShorthandStyle(name TagName) (style.Style, bool) {
	k, ok := name.styleShorthandKind()
	if !ok {
		return style.Style{}, false
	}
	s, ok := builtinStyles[k]
	return s, ok
}
