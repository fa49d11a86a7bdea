// Package asset models the YAML documents found in Unity .asset files as a
// small tagged variant. Lookups never fail: asking a scalar for a key, or a
// mapping for a missing one, yields the Invalid value, and the typed
// accessors report whether the value had the wanted kind.
package asset

import (
	"fmt"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	Invalid Kind = iota // missing key, index out of range, unrepresentable scalar
	Null
	Bool
	Int
	Float
	String
	Mapping
	Sequence
)

var kindNames = [...]string{
	Invalid:  "invalid",
	Null:     "null",
	Bool:     "bool",
	Int:      "int",
	Float:    "float",
	String:   "string",
	Mapping:  "mapping",
	Sequence: "sequence",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Value is one node of a parsed document.
type Value struct {
	kind Kind

	b bool
	i int64
	f float64
	s string

	entries []entry // Mapping, in document order
	items   []Value // Sequence
}

type entry struct {
	key   Value
	value Value
}

// Constructors for building documents in code.

func NullValue() Value { return Value{kind: Null} }
func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }
func IntValue(i int64) Value { return Value{kind: Int, i: i} }
func FloatValue(f float64) Value { return Value{kind: Float, f: f} }
func StringValue(s string) Value { return Value{kind: String, s: s} }

// SequenceValue builds a sequence of items.
func SequenceValue(items ...Value) Value {
	return Value{kind: Sequence, items: items}
}

// MappingValue builds a mapping from alternating string keys and values.
func MappingValue(pairs ...any) Value {
	if len(pairs)%2 != 0 {
		panic("asset: MappingValue needs key/value pairs")
	}
	v := Value{kind: Mapping}
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("asset: MappingValue key %d is %T, not string", i/2, pairs[i]))
		}
		val, ok := pairs[i+1].(Value)
		if !ok {
			panic(fmt.Sprintf("asset: MappingValue value for %q is %T, not Value", key, pairs[i+1]))
		}
		v.entries = append(v.entries, entry{key: StringValue(key), value: val})
	}
	return v
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Exists reports whether v is anything other than Invalid.
func (v Value) Exists() bool { return v.kind != Invalid }

// Key returns the value stored under a string key. When a key repeats, the
// last occurrence wins.
func (v Value) Key(name string) Value {
	if v.kind != Mapping {
		return Value{}
	}
	for i := len(v.entries) - 1; i >= 0; i-- {
		e := v.entries[i]
		if e.key.kind == String && e.key.s == name {
			return e.value
		}
	}
	return Value{}
}

// Path follows a chain of mapping keys.
func (v Value) Path(keys ...string) Value {
	cur := v
	for _, k := range keys {
		cur = cur.Key(k)
	}
	return cur
}

// Index returns the i-th item of a sequence.
func (v Value) Index(i int) Value {
	if v.kind != Sequence || i < 0 || i >= len(v.items) {
		return Value{}
	}
	return v.items[i]
}

// Len returns the number of sequence items, 0 for every other kind.
func (v Value) Len() int {
	if v.kind != Sequence {
		return 0
	}
	return len(v.items)
}

// Keys returns the string keys of a mapping in document order.
func (v Value) Keys() []string {
	if v.kind != Mapping {
		return nil
	}
	keys := make([]string, 0, len(v.entries))
	for _, e := range v.entries {
		if e.key.kind == String {
			keys = append(keys, e.key.s)
		}
	}
	return keys
}

// Str returns the string held by a String value.
func (v Value) Str() (string, bool) {
	if v.kind != String {
		return "", false
	}
	return v.s, true
}

// Int returns the integer held by an Int value. Floats are not truncated.
func (v Value) Int() (int64, bool) {
	if v.kind != Int {
		return 0, false
	}
	return v.i, true
}

// Float returns the number held by a Float value.
func (v Value) Float() (float64, bool) {
	if v.kind != Float {
		return 0, false
	}
	return v.f, true
}

// Bool returns the boolean held by a Bool value.
func (v Value) Bool() (bool, bool) {
	if v.kind != Bool {
		return false, false
	}
	return v.b, true
}

// Number coerces v to a float64: Float as is, Int converted, and 0 for
// every other kind including Invalid.
func (v Value) Number() float64 {
	switch v.kind {
	case Float:
		return v.f
	case Int:
		return float64(v.i)
	default:
		return 0
	}
}

// Interface converts v into plain Go values (map[string]any, []any,
// scalars, nil) for logging. Non-string mapping keys are formatted.
func (v Value) Interface() any {
	switch v.kind {
	case Bool:
		return v.b
	case Int:
		return v.i
	case Float:
		return v.f
	case String:
		return v.s
	case Sequence:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	case Mapping:
		out := make(map[string]any, len(v.entries))
		for _, e := range v.entries {
			key := e.key.s
			if e.key.kind != String {
				key = fmt.Sprint(e.key.Interface())
			}
			out[key] = e.value.Interface()
		}
		return out
	default:
		return nil
	}
}
