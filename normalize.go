package schemagen

import (
	"github.com/flowdsl/schemagen/internal/strutil"
	"github.com/flowdsl/schemagen/jsonschema"
)

// normalizeKeys rewrites the property keys beneath n from hyphenated to
// compact form, preserving key order. When two keys normalize to the same
// compact key the later one overwrites the earlier.
func normalizeKeys(n *jsonschema.Node) {
	properties := findProperties(n)
	if properties == nil || properties.Len() == 0 {
		return
	}

	keys := properties.Keys()
	values := make([]any, len(keys))
	for i, k := range keys {
		values[i], _ = properties.Get(k)
	}

	properties.Clear()
	for i, k := range keys {
		properties.Put(strutil.DashToCamelCase(k), values[i])
	}
}

// findProperties locates n's properties map: directly on n or, failing
// that, via a depth-first walk in key order. The walk exists for the
// oneOf-wrapped shape emitted for inline types; the first non-empty hit
// wins.
func findProperties(n *jsonschema.Node) *jsonschema.Node {
	if n == nil {
		return nil
	}
	if v, ok := n.Get("properties"); ok {
		if p, isNode := v.(*jsonschema.Node); isNode && p.Len() > 0 {
			return p
		}
	}
	for _, k := range n.Keys() {
		v, _ := n.Get(k)
		switch child := v.(type) {
		case *jsonschema.Node:
			if p := findProperties(child); p != nil {
				return p
			}
		case *jsonschema.Array:
			for _, item := range child.Items() {
				if obj, ok := item.(*jsonschema.Node); ok {
					if p := findProperties(obj); p != nil {
						return p
					}
				}
			}
		}
	}
	return nil
}
