// Package ziyy is the public API for compiling ziyy markup into ANSI SGR
// escape sequences.
//
// This package provides functions to:
//   - Render markup text to a styled ANSI string (Style/TryStyle)
//   - Render markup as structured debug data (RenderToTree)
//   - Pre-bind a prefix of `<let>` declarations for repeated use (Prepare)
//
// Example usage:
//
//	out, err := ziyy.TryStyle("<b>hello <c red>world</c></b>")
//
// Grounded on pkg/splitans/splitans.go's facade shape: type aliases and
// thin wrapper functions over the internal packages, nothing more.
package ziyy

import "ziyy/render"

// Options configures rendering, aliasing render.Options for callers that
// don't need to import the render package directly.
type Options = render.Options

// TryStyle compiles markup into its ANSI-escaped form using the default
// Options.
func TryStyle(source string) (string, error) {
	return TryStyleWithOptions(source, Options{})
}

// TryStyleWithOptions compiles markup into its ANSI-escaped form.
func TryStyleWithOptions(source string, opts Options) (string, error) {
	sink := render.NewBufferSink()
	r := render.New(sink, opts)
	if err := r.Render(source); err != nil {
		return "", err
	}
	return sink.String(), nil
}

// Style compiles markup into its ANSI-escaped form, panicking on error.
// For malformed markup from an untrusted source, use TryStyle instead.
func Style(source string) string {
	out, err := TryStyle(source)
	if err != nil {
		panic(err)
	}
	return out
}

// RenderToTree compiles markup into a TreeSink, exposing one node per
// sink append instead of a concatenated byte stream. Used by the CLI's
// `--tree` debug flag.
func RenderToTree(source string, opts Options) (*render.TreeSink, error) {
	sink := render.NewTreeSink()
	r := render.New(sink, opts)
	if err := r.Render(source); err != nil {
		return nil, err
	}
	return sink, nil
}

// Prepare renders prefix once to establish its `<let>` bindings, then
// returns a function that renders further source against that same
// Renderer, so repeated calls don't re-parse and re-register the
// bindings every time.
func Prepare(prefix string, opts Options) (func(string) (string, error), error) {
	r := render.New(render.NewBufferSink(), opts)
	if err := r.Write(prefix); err != nil {
		return nil, err
	}
	return func(source string) (string, error) {
		sink := render.NewBufferSink()
		r.SwapSink(sink)
		if err := r.Write(source); err != nil {
			return "", err
		}
		if err := r.Close(); err != nil {
			return "", err
		}
		return sink.String(), nil
	}, nil
}
