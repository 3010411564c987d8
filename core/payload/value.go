package payload

import (
	"github.com/goccy/go-json"

	"post-sync/core/utils"
)

// Kind identifies the shape of a decoded payload node.
type Kind uint8

const (
	// KindNull is an absent or JSON null value.
	KindNull Kind = iota
	// KindScalar is a string, number, or boolean leaf.
	KindScalar
	// KindSequence is an ordered list of values.
	KindSequence
	// KindMapping is an ordered set of key/value fields.
	KindMapping
)

// Value is one node of a decoded API payload. External APIs are weakly typed,
// so the same mapped path may point at a scalar in one response and a list or
// object in the next; Value makes that explicit instead of juggling raw anys.
//
// Mapping values remember their key declaration order, which collection
// detection depends on.
type Value struct {
	kind   Kind
	scalar any
	seq    []Value
	keys   []string
	fields map[string]Value
}

// Field is a single ordered mapping entry, used by the Mapping constructor.
type Field struct {
	Key   string
	Value Value
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Scalar wraps a leaf value. Numbers decoded from JSON arrive as json.Number,
// but any scalar Go value is accepted for hand-built payloads in tests.
func Scalar(v any) Value {
	if v == nil {
		return Null()
	}
	return Value{kind: KindScalar, scalar: v}
}

// Sequence builds an ordered list value.
func Sequence(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, seq: items}
}

// Mapping builds an ordered mapping value from the given fields.
func Mapping(fields ...Field) Value {
	v := Value{kind: KindMapping, keys: make([]string, 0, len(fields)), fields: make(map[string]Value, len(fields))}
	for _, f := range fields {
		v.setField(f.Key, f.Value)
	}
	return v
}

func (v *Value) setField(key string, val Value) {
	if _, exists := v.fields[key]; !exists {
		v.keys = append(v.keys, key)
	}
	v.fields[key] = val
}

// Kind returns the shape of this value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null/absent.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Len returns the number of items (sequence) or fields (mapping), else 0.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return len(v.keys)
	default:
		return 0
	}
}

// Index returns the i-th item of a sequence.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindSequence || i < 0 || i >= len(v.seq) {
		return Null(), false
	}
	return v.seq[i], true
}

// Field returns the named field of a mapping.
func (v Value) Field(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Null(), false
	}
	f, ok := v.fields[key]
	if !ok {
		return Null(), false
	}
	return f, true
}

// Keys returns the mapping keys in declaration order.
func (v Value) Keys() []string {
	if v.kind != KindMapping {
		return nil
	}
	return v.keys
}

// Items returns the sequence items. The returned slice is the backing slice;
// callers that mutate it must copy first.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return v.seq
}

// Scalar returns the underlying leaf value, or nil for non-scalars.
func (v Value) Scalar() any {
	if v.kind != KindScalar {
		return nil
	}
	return v.scalar
}

// Text renders a scalar as its string form. Null, sequences, and mappings
// render as the empty string; structured values have no meaningful text.
func (v Value) Text() string {
	if v.kind != KindScalar {
		return ""
	}
	if n, ok := v.scalar.(json.Number); ok {
		return n.String()
	}
	return utils.ToString(v.scalar)
}
