package catalog

// Package catalog models the type-metadata index the generator consumes:
// which types carry a schema marker, the keys and node aliases they expose,
// their declared properties, and their supertype links.

import "sort"

// Property is a declared serializable property on a marked type. Type uses
// the compact spec encoding: "string", "object:<Ref>", "array:<Ref|scalar>"
// or "enum:v1,v2,...". Names starting with "__" are internal directives.
type Property struct {
	Name     string
	Type     string
	Required bool
}

// Marker is the schema-generation marker attached to a participating type.
type Marker struct {
	// Order ranks the type for key-merge precedence; lower wins first.
	Order int
	// Types lists alternate keys the type is registered under. When empty
	// the type's canonical name is the single key.
	Types []string
	// Nodes lists the node aliases the type may appear under.
	Nodes []string
	// Inline marks types that also accept a bare string form.
	Inline bool
	// TopLevel marks types that appear among top-level items rather than
	// as steps.
	TopLevel bool
	// Properties is the declared property list, in declaration order.
	Properties []Property
}

// Type is one entry in the catalog.
type Type struct {
	// Name is the canonical dotted type key.
	Name string
	// Extends names the supertype, "" when there is none.
	Extends string
	// Marker is nil for types that only participate as supertype links.
	Marker *Marker
}

// Banned is the external predicate excluding a type from generation.
type Banned func(*Type) bool

// BanNames builds a Banned predicate from an explicit deny-list of
// canonical type names.
func BanNames(names ...string) Banned {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(t *Type) bool {
		if t == nil {
			return false
		}
		_, ok := set[t.Name]
		return ok
	}
}

// Catalog is an immutable, queryable set of type metadata. Enumeration
// order is part of the contract: Marked returns types sorted by canonical
// name, so equal marker orders break ties deterministically.
type Catalog struct {
	base  string
	types map[string]*Type
}

// New builds a catalog. base is the designated step base type key; its
// definition becomes the step umbrella in the emitted schema.
func New(base string, types ...*Type) *Catalog {
	m := make(map[string]*Type, len(types))
	for _, t := range types {
		m[t.Name] = t
	}
	return &Catalog{base: base, types: m}
}

// StepBase returns the designated step base type key.
func (c *Catalog) StepBase() string { return c.base }

// Resolve returns the metadata for name, or nil when the catalog has no
// entry for it.
func (c *Catalog) Resolve(name string) *Type {
	return c.types[name]
}

// Marked returns every type carrying a schema marker, sorted by canonical
// name.
func (c *Catalog) Marked() []*Type {
	out := make([]*Type, 0, len(c.types))
	for _, t := range c.types {
		if t.Marker != nil {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ExtendsType reports whether t's supertype chain reaches base. Unresolved
// links end the walk.
func (c *Catalog) ExtendsType(t *Type, base string) bool {
	seen := make(map[string]struct{})
	for t != nil && t.Extends != "" {
		if _, ok := seen[t.Extends]; ok {
			return false
		}
		seen[t.Extends] = struct{}{}
		if t.Extends == base {
			return true
		}
		t = c.types[t.Extends]
	}
	return false
}
