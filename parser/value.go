package parser

// ValueKind discriminates the Value sum type (spec.md §3): an attribute
// can be absent, a bare flag (`<b>`), or carry literal text (`n="3"`).
type ValueKind int8

const (
	ValueAbsent ValueKind = iota
	ValueBool
	ValueSome
)

type Value struct {
	Kind ValueKind
	Bool bool
	Text string
}

func (v Value) String() (string, bool) {
	if v.Kind == ValueSome {
		return v.Text, true
	}
	return "", false
}
