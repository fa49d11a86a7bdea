package asset

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Parse decodes every YAML document in data. A syntax error in any
// document fails the whole input. Empty input yields no documents and no
// error.
func Parse(data []byte) ([]Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var docs []Value
	for {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			// YAML library returns io.EOF when there are no more documents.
			if errors.Is(err, io.EOF) {
				return docs, nil
			}
			return nil, fmt.Errorf("document %d: %w", len(docs)+1, err)
		}
		v, err := fromNode(&node)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(docs)+1, err)
		}
		docs = append(docs, v)
	}
}

// MaxNodes caps how many values a single document may expand to once
// aliases are resolved.
const MaxNodes = 1 << 20

// ErrTooManyNodes is returned when alias expansion exceeds MaxNodes.
var ErrTooManyNodes = errors.New("document expands to too many nodes")

// builder converts one yaml.Node tree. open holds the nodes whose
// conversion has started but not finished; an alias to one of them is a
// cycle and resolves to Invalid.
type builder struct {
	open  map[*yaml.Node]bool
	count int
}

func fromNode(n *yaml.Node) (Value, error) {
	b := &builder{open: make(map[*yaml.Node]bool)}
	return b.build(n)
}

func (b *builder) build(n *yaml.Node) (Value, error) {
	b.count++
	if b.count > MaxNodes {
		return Value{}, fmt.Errorf("line %d: %w (limit %d)", n.Line, ErrTooManyNodes, MaxNodes)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return NullValue(), nil
		}
		return b.build(n.Content[0])

	case yaml.AliasNode:
		if n.Alias == nil || b.open[n.Alias] {
			return Value{}, nil
		}
		return b.build(n.Alias)

	case yaml.MappingNode:
		b.open[n] = true
		defer delete(b.open, n)
		v := Value{kind: Mapping, entries: make([]entry, 0, len(n.Content)/2)}
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, err := b.build(n.Content[i])
			if err != nil {
				return Value{}, err
			}
			val, err := b.build(n.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			v.entries = append(v.entries, entry{key: key, value: val})
		}
		return v, nil

	case yaml.SequenceNode:
		b.open[n] = true
		defer delete(b.open, n)
		v := Value{kind: Sequence, items: make([]Value, 0, len(n.Content))}
		for _, c := range n.Content {
			item, err := b.build(c)
			if err != nil {
				return Value{}, err
			}
			v.items = append(v.items, item)
		}
		return v, nil

	case yaml.ScalarNode:
		return scalar(n), nil

	default:
		return Value{}, fmt.Errorf("line %d: unexpected node kind %d", n.Line, n.Kind)
	}
}

// scalar resolves a scalar by its YAML tag. Integers that do not fit in
// int64 (yaml.v3 still tags the uint64 range !!int) become Float. Timestamps, binary and unrecognised tags keep their
// raw text as a String.
func scalar(n *yaml.Node) Value {
	switch n.ShortTag() {
	case "!!null":
		return NullValue()
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}
		}
		return BoolValue(b)
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return IntValue(i)
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}
		}
		return FloatValue(f)
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}
		}
		return FloatValue(f)
	default:
		return StringValue(n.Value)
	}
}
