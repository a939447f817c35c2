package jsonschema

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Node is a mutable JSON object used to assemble schema documents.
// Keys keep their insertion order through mutation and marshaling so a
// rebuilt document is byte-stable across runs.
type Node struct {
	keys []string
	vals map[string]any
}

// NewNode returns an empty object node.
func NewNode() *Node {
	return &Node{vals: make(map[string]any)}
}

// Put sets key to v and returns the node for chaining. Overwriting an
// existing key keeps its original position.
func (n *Node) Put(key string, v any) *Node {
	if _, ok := n.vals[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.vals[key] = v
	return n
}

// Object returns the child object at key, creating it if key is absent or
// holds a non-object value.
func (n *Node) Object(key string) *Node {
	if child, ok := n.vals[key].(*Node); ok {
		return child
	}
	child := NewNode()
	n.Put(key, child)
	return child
}

// Array returns the child array at key, creating it if key is absent or
// holds a non-array value.
func (n *Node) Array(key string) *Array {
	if child, ok := n.vals[key].(*Array); ok {
		return child
	}
	child := &Array{}
	n.Put(key, child)
	return child
}

// Get returns the value stored at key.
func (n *Node) Get(key string) (any, bool) {
	v, ok := n.vals[key]
	return v, ok
}

// Keys returns the keys in insertion order. The slice is a copy.
func (n *Node) Keys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Len returns the number of keys.
func (n *Node) Len() int { return len(n.keys) }

// Clear removes every key.
func (n *Node) Clear() {
	n.keys = n.keys[:0]
	n.vals = make(map[string]any)
}

// MarshalJSON emits the object with keys in insertion order. Values are
// encoded with goccy/go-json.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil || len(n.keys) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range n.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(n.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Array is a mutable JSON array.
type Array struct {
	items []any
}

// Append adds v and returns the array for chaining.
func (a *Array) Append(v any) *Array {
	a.items = append(a.items, v)
	return a
}

// AppendObject adds a fresh object node and returns it.
func (a *Array) AppendObject() *Node {
	n := NewNode()
	a.items = append(a.items, n)
	return n
}

// Items returns the backing slice; callers must not mutate it.
func (a *Array) Items() []any { return a.items }

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.items) }

// MarshalJSON emits the array elements in order.
func (a *Array) MarshalJSON() ([]byte, error) {
	if a == nil || len(a.items) == 0 {
		return []byte("[]"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range a.items {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
