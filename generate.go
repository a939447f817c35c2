package schemagen

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/flowdsl/schemagen/catalog"
	"github.com/flowdsl/schemagen/internal/strutil"
	"github.com/flowdsl/schemagen/jsonschema"
)

const (
	internalPrefix    = "__"
	extendsDirective  = "__extends"
	definitionsPrefix = "#/items/definitions/"
)

// generator owns the mutable tree state of a single build. It is
// constructed fresh per Generate call and never shared across builds.
type generator struct {
	cat *catalog.Catalog
	opt Options
	log *logrus.Logger

	items       *jsonschema.Node
	definitions *jsonschema.Node
	step        *jsonschema.Node

	typesByKey map[string]*catalog.Type
}

// Generate builds the schema document for cat. The result is a pure
// function of the catalog, the banned predicate and the options; running
// it twice yields byte-identical serializations.
func Generate(cat *catalog.Catalog, opt Options) (*jsonschema.Node, error) {
	if cat.StepBase() == "" {
		return nil, ErrNoStepBase
	}
	g := &generator{cat: cat, opt: opt, log: opt.logger()}
	return g.build(), nil
}

func (g *generator) build() *jsonschema.Node {
	root := jsonschema.NewNode()
	root.Put("$schema", g.opt.schemaID())
	root.Put("type", "array")

	g.items = root.Object("items")
	g.items.Put("maxProperties", 1)
	if g.opt.DisallowAdditional {
		g.items.Put("additionalProperties", false)
	}

	g.definitions = g.items.Object("definitions")
	g.step = g.definitions.Object(g.cat.StepBase())
	g.step.Put("type", "object").Put("maxProperties", 1)
	if g.opt.DisallowAdditional {
		g.step.Put("additionalProperties", false)
	}

	for _, key := range g.catalogKeys() {
		t := g.typesByKey[key]
		info := g.cat.Resolve(key)
		if g.banned(info) {
			continue
		}

		nodes := append([]string(nil), t.Marker.Nodes...)
		sort.Strings(nodes)

		if t.Marker.TopLevel {
			for _, node := range nodes {
				g.items.Object("properties").Object(node).Put("$ref", definitionsPrefix+key)
			}
		} else if g.cat.ExtendsType(info, g.cat.StepBase()) {
			for _, node := range nodes {
				g.step.Object("properties").Object(node).Put("$ref", definitionsPrefix+key)
			}
		}

		g.generateDefinition(key, t)
	}

	if g.opt.CaseMode == CaseCamel {
		for _, key := range g.definitions.Keys() {
			if def, ok := g.definitions.Get(key); ok {
				if n, isNode := def.(*jsonschema.Node); isNode {
					normalizeKeys(n)
				}
			}
		}
		normalizeKeys(g.step)
		normalizeKeys(g.items)
	}

	return root
}

// catalogKeys merges every marker key into the key catalog, ascending by
// marker order with first-write-wins on clashes, and returns the retained
// keys in ascending key order. Tie-breaking between equal orders follows
// the catalog's name-sorted enumeration.
func (g *generator) catalogKeys() []string {
	marked := g.cat.Marked()
	sort.SliceStable(marked, func(i, j int) bool {
		return marked[i].Marker.Order < marked[j].Marker.Order
	})

	g.typesByKey = make(map[string]*catalog.Type)
	var keys []string
	claim := func(key string, t *catalog.Type) {
		if _, taken := g.typesByKey[key]; taken {
			return
		}
		g.typesByKey[key] = t
		keys = append(keys, key)
	}
	for _, t := range marked {
		if len(t.Marker.Types) > 0 {
			for _, key := range t.Marker.Types {
				claim(key, t)
			}
			continue
		}
		claim(t.Name, t)
	}

	sort.Strings(keys)
	return keys
}

// generateDefinition builds the definition body for one retained
// (key, type) pair from its collected properties.
func (g *generator) generateDefinition(key string, t *catalog.Type) {
	definition := g.definitions.Object(key)
	objectDefinition := definition

	// Inline types accept a bare string alternative; their object shape
	// moves under the second oneOf branch.
	if t.Marker.Inline {
		oneOf := definition.Array("oneOf")
		oneOf.AppendObject().Put("type", "string")
		objectDefinition = oneOf.AppendObject()
	}

	objectDefinition.Put("type", "object")
	if g.opt.DisallowAdditional {
		objectDefinition.Put("additionalProperties", false)
	}

	var properties []catalog.Property
	g.collectProperties(&properties, t)

	sort.SliceStable(properties, func(i, j int) bool {
		return properties[i].Name < properties[j].Name
	})

	for _, p := range properties {
		if p.Name == extendsDirective && strings.HasPrefix(p.Type, "object:") {
			ref := strutil.After(p.Type, ":")
			definition.Array("anyOf").AppendObject().Put("$ref", definitionsPrefix+ref)
			continue
		}
		if p.Name == extendsDirective && strings.HasPrefix(p.Type, "array:") {
			// The definition becomes an array of the referenced type,
			// replacing whatever object shape accumulated so far.
			ref := strutil.After(p.Type, ":")
			definition.Put("type", "array")
			definition.Object("items").Put("$ref", definitionsPrefix+ref)
			continue
		}
		if strings.HasPrefix(p.Name, internalPrefix) {
			continue
		}

		g.setProperty(objectDefinition, p.Name, p.Type)

		if p.Required {
			name := p.Name
			if g.opt.CaseMode == CaseCamel {
				name = strutil.DashToCamelCase(name)
			}
			definition.Array("required").Append(name)
		}
	}
}

// setProperty translates one typed property spec into its schema fragment.
func (g *generator) setProperty(objectDefinition *jsonschema.Node, name, typ string) {
	properties := objectDefinition.Object("properties")
	switch {
	case strings.HasPrefix(typ, "object:"):
		properties.Object(name).Put("$ref", definitionsPrefix+strutil.After(typ, ":"))
	case strings.HasPrefix(typ, "array:"):
		item := strutil.After(typ, ":")
		p := properties.Object(name).Put("type", "array")
		if strings.Contains(item, ".") {
			p.Object("items").Put("$ref", definitionsPrefix+item)
		} else {
			p.Object("items").Put("type", item)
		}
	case strings.HasPrefix(typ, "enum:"):
		p := properties.Object(name).Put("type", "string")
		for _, v := range strings.Split(strutil.After(typ, ":"), ",") {
			p.Array("enum").Append(v)
		}
	default:
		properties.Object(name).Put("type", typ)
	}
}

func (g *generator) banned(t *catalog.Type) bool {
	return t != nil && g.opt.Banned != nil && g.opt.Banned(t)
}
