package render

import (
	"bytes"
	"encoding/json"
	"io"
)

// ByteSink is any collaborator that accepts appended bytes/runes, with
// the contract that appends are observable in the order they're made
// (spec.md §4.5).
type ByteSink interface {
	AppendBytes(b []byte)
	AppendChar(r rune)
}

// BufferSink accumulates into an owned in-memory buffer.
type BufferSink struct {
	buf bytes.Buffer
}

func NewBufferSink() *BufferSink { return &BufferSink{} }

func (s *BufferSink) AppendBytes(b []byte) { s.buf.Write(b) }
func (s *BufferSink) AppendChar(r rune)     { s.buf.WriteRune(r) }
func (s *BufferSink) String() string        { return s.buf.String() }
func (s *BufferSink) Bytes() []byte         { return s.buf.Bytes() }

// WriterSink forwards appends to an io.Writer, matching
// exporter/text.go's pattern of writing straight through to the
// destination stream instead of buffering.
type WriterSink struct {
	w   io.Writer
	err error
}

func NewWriterSink(w io.Writer) *WriterSink { return &WriterSink{w: w} }

func (s *WriterSink) AppendBytes(b []byte) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write(b)
}

func (s *WriterSink) AppendChar(r rune) {
	s.AppendBytes([]byte(string(r)))
}

// Err returns the first write error encountered, if any.
func (s *WriterSink) Err() error { return s.err }

// TreeNode is one exported node of a TreeSink, marshaled with
// encoding/json following exporter/table.go's "inspect the whole
// document as structured data" posture, repurposed from a token table
// into a chunk tree.
type TreeNode struct {
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
	Bytes string `json:"bytes,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

// TreeSink records one node per append call instead of concatenating
// bytes, for the CLI's `--tree` debug output: a byte run becomes a "bytes"
// node and a single character a "char" node. Nodes are not grouped by
// chunk: a chunk that writes nothing (a comment, a `<let>`, a tag with no
// style change) leaves no node, and `<br n=3/>` leaves three.
type TreeSink struct {
	Nodes []TreeNode
}

func NewTreeSink() *TreeSink { return &TreeSink{} }

func (s *TreeSink) AppendBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	s.Nodes = append(s.Nodes, TreeNode{Kind: "bytes", Bytes: string(b)})
}

func (s *TreeSink) AppendChar(r rune) {
	s.Nodes = append(s.Nodes, TreeNode{Kind: "char", Text: string(r)})
}

// MarshalJSON renders the tree as indented JSON, matching
// exporter/json.go's json.MarshalIndent convention.
func (s *TreeSink) MarshalJSON() ([]byte, error) {
	return json.MarshalIndent(s.Nodes, "", "  ")
}
