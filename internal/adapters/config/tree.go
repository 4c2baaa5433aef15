package config

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Node.
type Kind uint8

const (
	// KindScalar is a string, number, boolean or null leaf.
	KindScalar Kind = iota
	// KindObject is a JSON object.
	KindObject
	// KindArray is a JSON array.
	KindArray
)

// Node is a JSON value. Exactly one of Object, Array or Scalar is meaningful, selected by Kind.
type Node struct {
	Kind   Kind
	Object map[string]*Node
	Array  []*Node
	Scalar any
}

// NewObject returns an empty object node.
func NewObject() *Node {
	return &Node{Kind: KindObject, Object: map[string]*Node{}}
}

// FromValue converts a decoded JSON value into a Node tree.
func FromValue(v any) *Node {
	switch val := v.(type) {
	case *Node:
		return val
	case map[string]any:
		n := NewObject()
		for k, child := range val {
			n.Object[k] = FromValue(child)
		}
		return n
	case []any:
		n := &Node{Kind: KindArray, Array: make([]*Node, len(val))}
		for i, child := range val {
			n.Array[i] = FromValue(child)
		}
		return n
	default:
		return &Node{Kind: KindScalar, Scalar: val}
	}
}

// Value converts the tree back into plain Go values.
func (n *Node) Value() any {
	switch n.Kind {
	case KindObject:
		out := make(map[string]any, len(n.Object))
		for k, child := range n.Object {
			out[k] = child.Value()
		}
		return out
	case KindArray:
		out := make([]any, len(n.Array))
		for i, child := range n.Array {
			out[i] = child.Value()
		}
		return out
	default:
		return n.Scalar
	}
}

// MarshalJSON implements json.Marshaler. Object keys are emitted in sorted order.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Value())
}

// UnmarshalJSON implements json.Unmarshaler. Numbers keep their literal form.
func (n *Node) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	*n = *FromValue(v)
	return nil
}

// child returns the named child of an object node or the indexed element
// of an array node, using the same keys walk produces.
func (n *Node) child(key string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	switch n.Kind {
	case KindObject:
		c, ok := n.Object[key]
		return c, ok
	case KindArray:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(n.Array) {
			return nil, false
		}
		return n.Array[i], true
	default:
		return nil, false
	}
}

// walk visits every scalar leaf in key order with its dotted path.
func (n *Node) walk(prefix []string, visit func(key string, value any)) {
	switch n.Kind {
	case KindObject:
		for _, k := range slices.Sorted(maps.Keys(n.Object)) {
			n.Object[k].walk(append(slices.Clip(prefix), k), visit)
		}
	case KindArray:
		for i, c := range n.Array {
			c.walk(append(slices.Clip(prefix), strconv.Itoa(i)), visit)
		}
	default:
		visit(strings.Join(prefix, "."), n.Scalar)
	}
}
