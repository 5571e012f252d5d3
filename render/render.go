// Package render implements the nested style-stack state machine: the
// render state machine of spec.md §4.4. It consumes the parser's Chunk
// sequence, tracks the active style at every depth, and writes the
// minimal ANSI delta to a ByteSink on every tag open/close.
//
// Grounded on processor/virtualterminal.go's ApplyTokens dispatch loop
// (restyled as a chunk-stack machine instead of a cell buffer) and
// exporter/text.go's straight-through sink usage.
package render

import (
	"strconv"

	"ziyy/ansiscan"
	"ziyy/parser"
	"ziyy/style"
	"ziyy/ziyyerr"
)

// Options configures a Renderer's output, beyond what the style algebra
// itself decides.
type Options struct {
	// Legacy emits a full ESC[0m + style rebuild on any Set->Unset
	// transition instead of the precise per-dimension OFF code, for
	// ANSI-1990-era terminals that don't implement codes like 4:3 or
	// 53/55. Grounded on internal/types/sgr.go's legacyMode/useVGAColors
	// parameters to DiffToANSI. Off by default.
	Legacy bool

	// Strip discards every SGR byte the renderer would otherwise emit,
	// leaving only text, whitespace and line breaks. Backs the CLI's
	// `--strip` flag.
	Strip bool
}

// styleStackEntry is spec.md §3's StyleStackEntry: name, accum (the
// composed style at this depth), and diff (the delta emitted when this
// entry was pushed).
type styleStackEntry struct {
	Name  parser.TagName
	Accum style.Style
	Diff  style.Style
}

// Renderer holds the style stack, the bindings table, and the pre-mode
// depth counter, and writes to a ByteSink.
type Renderer struct {
	sink     ByteSink
	opts     Options
	stack    []styleStackEntry
	bindings map[string]style.Style
	preDepth int
	skipWS   bool
}

// New creates a Renderer writing to sink, with the stack initialized to
// [{Root, default, default}] per spec.md §3's invariant that the stack
// is never empty.
func New(sink ByteSink, opts Options) *Renderer {
	return &Renderer{
		sink:     sink,
		opts:     opts,
		stack:    []styleStackEntry{{Name: parser.RootTagName}},
		bindings: make(map[string]style.Style),
	}
}

// Render renders an entire source to the sink, including the implicit
// EOF reset if any style is still active.
func (r *Renderer) Render(source string) error {
	chunks, err := parser.ParseAll(source)
	if err != nil {
		return err
	}
	for _, c := range chunks {
		if err := r.handleChunk(c); err != nil {
			return err
		}
	}
	return nil
}

// Write renders source incrementally: every chunk is handled except the
// trailing Eof, since more source may follow in a later Write call. Call
// Close to flush the implicit EOF reset once the stream is complete.
func (r *Renderer) Write(source string) error {
	p, err := parser.New(source)
	if err != nil {
		return err
	}
	for {
		c, err := p.Next()
		if err != nil {
			return err
		}
		if c.Kind == parser.ChunkEof {
			return nil
		}
		if err := r.handleChunk(c); err != nil {
			return err
		}
	}
}

// Close flushes the implicit end-of-stream reset (spec.md §4.4's Eof
// row), for callers driving the Renderer incrementally via Write.
func (r *Renderer) Close() error {
	return r.handleEof()
}

// SwapSink redirects subsequent writes to a new sink without touching the
// style stack or bindings, so a Renderer primed with a prefix of `<let>`
// bindings can render many independent fragments against that same
// binding set.
func (r *Renderer) SwapSink(sink ByteSink) {
	r.sink = sink
}

func (r *Renderer) handleChunk(c parser.Chunk) error {
	switch c.Kind {
	case parser.ChunkText:
		r.sink.AppendBytes([]byte(c.Text))
	case parser.ChunkEscape:
		r.sink.AppendChar(c.Ch)
	case parser.ChunkWhitespace:
		r.writeWhitespace(c.Text)
	case parser.ChunkComment:
		// discarded
	case parser.ChunkTag:
		return r.handleTag(c.Tag)
	case parser.ChunkEof:
		return r.handleEof()
	}
	return nil
}

func (r *Renderer) writeWhitespace(text string) {
	if r.skipWS {
		r.skipWS = false
		return
	}
	if r.preDepth > 0 {
		r.sink.AppendBytes([]byte(text))
		return
	}
	r.sink.AppendBytes([]byte(" "))
}

func (r *Renderer) top() *styleStackEntry {
	return &r.stack[len(r.stack)-1]
}

func (r *Renderer) handleTag(tag parser.Tag) error {
	switch tag.Kind {
	case parser.TagOpen:
		return r.pushTag(tag)
	case parser.TagClose:
		return r.popTag(tag)
	case parser.TagSelfClose:
		return r.handleSelfClose(tag)
	}
	return nil
}

// resolveStyle merges a tag's own attribute style with a bound style
// when the tag name is unresolved (Any) or carries an explicit src
// reference (spec.md §4.4 "Binding resolution"): bound style first, the
// tag's own attributes override.
func (r *Renderer) resolveStyle(tag parser.Tag) (style.Style, error) {
	key, needsBinding := bindingKey(tag)
	if !needsBinding {
		return tag.Style, nil
	}
	bound, ok := r.bindings[key]
	if !ok {
		return style.Style{}, ziyyerr.UnknownTagError(key, tag.Span)
	}
	return bound.Combine(tag.Style), nil
}

func bindingKey(tag parser.Tag) (string, bool) {
	if text, ok := tag.Src.String(); ok {
		return text, true
	}
	if tag.Name.IsAny() {
		return tag.Name.Any, true
	}
	return "", false
}

func (r *Renderer) pushTag(tag parser.Tag) error {
	final, err := r.resolveStyle(tag)
	if err != nil {
		return err
	}
	top := r.top()
	newAccum := top.Accum.Combine(final)
	diff := final.Diff(top.Accum)
	r.sink.AppendBytes(r.encode(top.Accum, newAccum))
	r.stack = append(r.stack, styleStackEntry{Name: tag.Name, Accum: newAccum, Diff: diff})
	if tag.Name.IsPre() {
		r.preDepth++
	}
	return nil
}

func (r *Renderer) popTag(tag parser.Tag) error {
	top := r.top()
	if len(r.stack) == 1 || (!tag.Name.IsEmpty() && !tag.Name.Equal(top.Name)) {
		return ziyyerr.MismatchedTagsError(top.Name.String(), tag.Name.String(), tag.Span)
	}
	return r.popImplicit()
}

func (r *Renderer) popImplicit() error {
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	newTop := r.top()
	r.sink.AppendBytes(r.encode(top.Accum, newTop.Accum))
	if top.Name.IsPre() {
		r.preDepth--
	}
	return nil
}

func (r *Renderer) handleSelfClose(tag parser.Tag) error {
	switch {
	case tag.Name.IsBr():
		return r.handleBr(tag)
	case tag.Name.IsLet():
		return r.registerBinding(tag)
	default:
		if err := r.pushTag(tag); err != nil {
			return err
		}
		return r.popImplicit()
	}
}

func (r *Renderer) handleBr(tag parser.Tag) error {
	n := 1
	if text, ok := tag.Custom.String(); ok {
		if v, err := strconv.Atoi(text); err == nil {
			n = v
		} else {
			return ziyyerr.New(ziyyerr.InvalidNumber, tag.Span, "invalid br count "+text)
		}
	}
	for i := 0; i < n; i++ {
		r.sink.AppendChar('\n')
	}
	return nil
}

func (r *Renderer) registerBinding(tag parser.Tag) error {
	name, ok := tag.Custom.String()
	if !ok {
		return nil
	}
	r.bindings[name] = tag.Style
	r.skipWS = true
	return nil
}

func (r *Renderer) handleEof() error {
	if len(r.stack) > 1 {
		if !r.opts.Strip {
			r.sink.AppendBytes([]byte("\x1b[0m"))
		}
		r.stack = r.stack[:1]
	}
	return nil
}

// WriteRawAnsi feeds already-rendered ANSI bytes (CLI -e/--ansi mode, or
// embedded passthrough escapes) through the renderer. Text runs are
// written verbatim; SGR escapes do not push a new stack level — they
// mutate the current frame's accum/diff in place, per spec.md §4.4's
// Ansi synthetic, so any ziyy markup tags opened afterward compute their
// deltas against the now-updated ambient style.
func (r *Renderer) WriteRawAnsi(source string) error {
	for _, ev := range ansiscan.Scan(source) {
		switch ev.Kind {
		case ansiscan.EventText, ansiscan.EventOther:
			r.sink.AppendBytes([]byte(ev.Text))
		case ansiscan.EventSGR:
			top := r.top()
			top.Accum = style.DecodeSGR(ev.Params, top.Accum)
			top.Diff = top.Accum.Diff(r.parentAccum())
			if !r.opts.Strip {
				r.sink.AppendBytes([]byte("\x1b["))
				r.sink.AppendBytes(sgrRaw(ev.Params))
			}
		}
	}
	return nil
}

func (r *Renderer) parentAccum() style.Style {
	if len(r.stack) < 2 {
		return style.Style{}
	}
	return r.stack[len(r.stack)-2].Accum
}

func sgrRaw(params []int) []byte {
	b := make([]byte, 0, 8)
	for i, p := range params {
		if i > 0 {
			b = append(b, ';')
		}
		b = append(b, []byte(strconv.Itoa(p))...)
	}
	b = append(b, 'm')
	return b
}

// encode renders the transition from prev to next, or in Legacy mode a
// full reset-and-rebuild whenever any dimension moves Set->Unset (old
// terminals handled a bare ESC[0m more reliably than the newer
// sub-parameter/overline/propspace codes).
func (r *Renderer) encode(prev, next style.Style) []byte {
	if r.opts.Strip {
		return nil
	}
	// prev+next differs from next exactly when some dimension set in prev
	// has no value in next, i.e. when that dimension must be turned off.
	if !r.opts.Legacy || prev.Combine(next) == next {
		return style.EncodeTransition(prev, next)
	}
	return append([]byte("\x1b[0m"), style.EncodeTransition(style.Style{}, next)...)
}
